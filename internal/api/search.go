package api

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"
	"strconv"

	"github.com/mexm/mydmam-browser/internal/models"
)

// SearchRequest is one full-text query. With Constraints set the search is
// sent as a PUT and never cached; otherwise it is a cacheable GET.
type SearchRequest struct {
	Realm            string
	Q                string
	Limit            int
	ResolveHashPaths bool
	Constraints      *models.FileSearchConstraints
}

// Search runs a full-text query against a realm.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*models.OpenSearchResponse, error) {
	path := "/search/" + url.PathEscape(req.Realm)

	query := url.Values{}
	query.Set("q", req.Q)
	query.Set("limit", strconv.Itoa(req.Limit))
	if req.ResolveHashPaths {
		query.Set("resolveHashPaths", "1")
	} else {
		query.Set("resolveHashPaths", "0")
	}

	var out models.OpenSearchResponse

	if req.Constraints != nil {
		body := models.SearchConstraintsRequest{FileConstraints: req.Constraints.Clone()}
		if _, err := c.do(ctx, nethttp.MethodPut, path, query, body, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}

	key := c.endpoint(path, query)
	if raw, ok := c.cache.get(key); ok {
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("failed to decode cached search: %w", err)
		}
		c.logger.Debug().Str("q", req.Q).Msg("Search served from cache")
		return &out, nil
	}

	raw, err := c.do(ctx, nethttp.MethodGet, path, query, nil, &out)
	if err != nil {
		return nil, err
	}
	c.cache.put(key, raw)
	return &out, nil
}
