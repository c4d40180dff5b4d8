package services

import (
	"context"
	"strings"

	"github.com/mexm/mydmam-browser/internal/api"
	"github.com/mexm/mydmam-browser/internal/constants"
	"github.com/mexm/mydmam-browser/internal/events"
	"github.com/mexm/mydmam-browser/internal/logging"
	"github.com/mexm/mydmam-browser/internal/models"
	"github.com/mexm/mydmam-browser/internal/prefs"
)

// SearchService runs full-text searches in the selected realm.
type SearchService struct {
	backend  Backend
	store    prefs.Store
	eventBus *events.EventBus
	logger   *logging.Logger
}

// NewSearchService creates a new SearchService. eventBus may be nil.
func NewSearchService(backend Backend, store prefs.Store, eventBus *events.EventBus, logger *logging.Logger) *SearchService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &SearchService{
		backend:  backend,
		store:    store,
		eventBus: eventBus,
		logger:   logger.Component("search-service"),
	}
}

// Search runs q. Constraints may be nil for a plain query. Returns nil on
// failure.
func (s *SearchService) Search(ctx context.Context, q string, limit int, resolveHashPaths bool, constraints *models.FileSearchConstraints) *models.OpenSearchResponse {
	realm := prefs.RealmOrEmpty(s.store)
	resp, err := s.backend.Search(ctx, api.SearchRequest{
		Realm:            realm,
		Q:                q,
		Limit:            limit,
		ResolveHashPaths: resolveHashPaths,
		Constraints:      constraints,
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("realm", realm).Str("q", q).Msg("Search failed")
		if s.eventBus != nil {
			s.eventBus.PublishError("search", err)
		}
		return nil
	}
	return resp
}

// Suggest is the search-as-you-type query: short inputs never reach the
// server, and hash paths are not resolved.
func (s *SearchService) Suggest(ctx context.Context, q string) []models.FileSearchResult {
	q = strings.TrimSpace(q)
	if len([]rune(q)) < constants.SuggestionMinQueryLength {
		return nil
	}
	resp := s.Search(ctx, q, constants.SuggestionLimit, false, nil)
	if resp == nil {
		return nil
	}
	return resp.Result.FoundedFiles
}
