package api

import (
	"context"
	nethttp "net/http"
	"net/url"
	"strconv"

	"github.com/mexm/mydmam-browser/internal/models"
)

// ListRequest addresses one page of a directory listing. An empty HashPath
// lists the storage root.
type ListRequest struct {
	Realm    string
	Storage  string
	HashPath string
	Skip     int
	Limit    int
	Sort     models.FileSort
}

// GetRealms lists the realms known by the server.
func (c *Client) GetRealms(ctx context.Context) (*models.RealmListResponse, error) {
	var out models.RealmListResponse
	if _, err := c.do(ctx, nethttp.MethodGet, "/filesystem/list", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetStorages lists the storages of a realm.
func (c *Client) GetStorages(ctx context.Context, realm string) (*models.StorageListResponse, error) {
	var out models.StorageListResponse
	path := "/filesystem/list/" + url.PathEscape(realm)
	if _, err := c.do(ctx, nethttp.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List fetches one page of a directory listing.
func (c *Client) List(ctx context.Context, req ListRequest) (*models.FileResponse, error) {
	path := "/filesystem/list/" + url.PathEscape(req.Realm) + "/" + url.PathEscape(req.Storage)
	if req.HashPath != "" {
		path += "/" + url.PathEscape(req.HashPath)
	}

	query := url.Values{}
	query.Set("skip", strconv.Itoa(req.Skip))
	query.Set("limit", strconv.Itoa(req.Limit))
	query.Set("sortName", req.Sort.Name.String())
	query.Set("sortType", req.Sort.Type.String())
	query.Set("sortDate", req.Sort.Date.String())
	query.Set("sortSize", req.Sort.Size.String())

	var out models.FileResponse
	if _, err := c.do(ctx, nethttp.MethodGet, path, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
