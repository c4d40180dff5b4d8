package state

import (
	"context"
	"errors"
	"sync"

	"github.com/mexm/mydmam-browser/internal/constraints"
	"github.com/mexm/mydmam-browser/internal/events"
	"github.com/mexm/mydmam-browser/internal/logging"
	"github.com/mexm/mydmam-browser/internal/models"
)

// Searcher runs one search; nil means it failed.
type Searcher interface {
	Search(ctx context.Context, q string, limit int, resolveHashPaths bool, c *models.FileSearchConstraints) *models.OpenSearchResponse
}

// SearchSession is the search results page: a query, its advanced filters
// and the displayed response. Every effective filter edit re-runs the
// query with the edited filters.
type SearchSession struct {
	searcher Searcher
	eventBus *events.EventBus
	logger   *logging.Logger

	limit   int
	resolve bool

	q        string
	model    constraints.Model
	response *models.OpenSearchResponse
	issued   int64

	mu sync.RWMutex
}

// NewSearchSession creates a session. limit 0 lets the server pick its
// maximum.
func NewSearchSession(searcher Searcher, eventBus *events.EventBus, logger *logging.Logger, limit int, resolveHashPaths bool) *SearchSession {
	if logger == nil {
		logger = logging.Nop()
	}
	return &SearchSession{
		searcher: searcher,
		eventBus: eventBus,
		logger:   logger.Component("search"),
		limit:    limit,
		resolve:  resolveHashPaths,
	}
}

// Search runs q with the current filters.
func (s *SearchSession) Search(ctx context.Context, q string) *models.OpenSearchResponse {
	s.mu.Lock()
	s.q = q
	s.mu.Unlock()
	return s.run(ctx)
}

// SetQuery replaces the query text without running it.
func (s *SearchSession) SetQuery(q string) {
	s.mu.Lock()
	s.q = q
	s.mu.Unlock()
}

// SearchAgain re-runs the current query.
func (s *SearchSession) SearchAgain(ctx context.Context) *models.OpenSearchResponse {
	return s.run(ctx)
}

// Query returns the current query text.
func (s *SearchSession) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.q
}

// Response returns the displayed response.
func (s *SearchSession) Response() *models.OpenSearchResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.response
}

// Constraints returns a copy of the filters. ok is false when absent.
func (s *SearchSession) Constraints() (models.FileSearchConstraints, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model.Constraints()
}

// EnableAdvancedFilters switches filters on with their defaults. Nothing
// happens when they are already on.
func (s *SearchSession) EnableAdvancedFilters(ctx context.Context) *models.OpenSearchResponse {
	s.mu.Lock()
	changed := s.model.EnableAdvancedFilters()
	s.mu.Unlock()
	if !changed {
		return nil
	}
	return s.changed(ctx)
}

// DisableAdvancedFilters switches filters off and re-runs the query
// unconstrained. Nothing happens when they are already off.
func (s *SearchSession) DisableAdvancedFilters(ctx context.Context) *models.OpenSearchResponse {
	s.mu.Lock()
	changed := s.model.DisableAdvancedFilters()
	s.mu.Unlock()
	if !changed {
		return nil
	}
	return s.changed(ctx)
}

// SetCondition edits a tri-state filter.
func (s *SearchSession) SetCondition(ctx context.Context, field constraints.ConditionField, value models.SearchConstraintCondition) (*models.OpenSearchResponse, error) {
	return s.edit(ctx, func(m *constraints.Model) (bool, error) {
		return true, m.SetCondition(field, value)
	})
}

// SetRange edits the date or size filter.
func (s *SearchSession) SetRange(ctx context.Context, field constraints.RangeField, r models.SearchConstraintRange) (*models.OpenSearchResponse, error) {
	return s.edit(ctx, func(m *constraints.Model) (bool, error) {
		return true, m.SetRange(field, r)
	})
}

// SetStorages replaces the storage allow-list.
func (s *SearchSession) SetStorages(ctx context.Context, list []string) (*models.OpenSearchResponse, error) {
	return s.edit(ctx, func(m *constraints.Model) (bool, error) {
		return true, m.SetStorages(list)
	})
}

// AddStorage adds one storage. Adding a storage already listed does not
// re-run the query.
func (s *SearchSession) AddStorage(ctx context.Context, name string) (*models.OpenSearchResponse, error) {
	return s.edit(ctx, func(m *constraints.Model) (bool, error) {
		return m.AddStorage(name)
	})
}

// RemoveStorage removes one storage. Removing a storage not listed does not
// re-run the query.
func (s *SearchSession) RemoveStorage(ctx context.Context, name string) (*models.OpenSearchResponse, error) {
	return s.edit(ctx, func(m *constraints.Model) (bool, error) {
		return m.RemoveStorage(name)
	})
}

// SetParentPath restricts the search to a subtree; "" removes the
// restriction.
func (s *SearchSession) SetParentPath(ctx context.Context, p string) (*models.OpenSearchResponse, error) {
	return s.edit(ctx, func(m *constraints.Model) (bool, error) {
		return true, m.SetParentPath(p)
	})
}

// SetParentHashPath pins the subtree by its hash path.
func (s *SearchSession) SetParentHashPath(ctx context.Context, hashPath string) (*models.OpenSearchResponse, error) {
	return s.edit(ctx, func(m *constraints.Model) (bool, error) {
		return true, m.SetParentHashPath(hashPath)
	})
}

// Apply runs several filter edits and re-runs the query once. fn may switch
// filters on through the model. When fn fails the filters are restored
// and nothing is sent.
func (s *SearchSession) Apply(ctx context.Context, fn func(*constraints.Model) error) (*models.OpenSearchResponse, error) {
	return s.edit(ctx, func(m *constraints.Model) (bool, error) {
		return true, fn(m)
	})
}

func (s *SearchSession) edit(ctx context.Context, fn func(*constraints.Model) (bool, error)) (*models.OpenSearchResponse, error) {
	s.mu.Lock()
	prev := s.model.Clone()
	changed, err := fn(&s.model)
	if err != nil {
		s.model = prev
	}
	s.mu.Unlock()

	if err != nil {
		if errors.Is(err, constraints.ErrConstraintsAbsent) {
			s.logger.Error().Err(err).Msg("Constraint edited before advanced filters were enabled")
		}
		if s.eventBus != nil {
			s.eventBus.PublishError("constraints", err)
		}
		return nil, err
	}
	if !changed {
		return nil, nil
	}
	return s.changed(ctx), nil
}

func (s *SearchSession) changed(ctx context.Context) *models.OpenSearchResponse {
	if s.eventBus != nil {
		s.mu.RLock()
		var snapshot *models.FileSearchConstraints
		if c, ok := s.model.Constraints(); ok {
			snapshot = &c
		}
		s.mu.RUnlock()
		s.eventBus.Publish(NewConstraintsChangedEvent(snapshot))
	}
	return s.run(ctx)
}

func (s *SearchSession) run(ctx context.Context) *models.OpenSearchResponse {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	q := s.q
	var filters *models.FileSearchConstraints
	if c, ok := s.model.Constraints(); ok {
		filters = &c
	}
	s.mu.Unlock()

	s.logger.Debug().Int64("seq", seq).Str("q", q).Bool("constrained", filters != nil).Msg("Searching")

	resp := s.searcher.Search(ctx, q, s.limit, s.resolve, filters)
	if resp == nil {
		s.logger.Warn().Int64("seq", seq).Str("q", q).Msg("Search returned no data, keeping the displayed results")
		if s.eventBus != nil {
			s.eventBus.Publish(NewSearchErrorEvent(q, seq))
		}
		return nil
	}

	s.mu.Lock()
	stale := seq < s.issued
	s.response = resp
	s.mu.Unlock()

	if stale {
		s.logger.Warn().Int64("seq", seq).Msg("Applied a search response older than the newest request")
	}
	if s.eventBus != nil {
		s.eventBus.Publish(NewSearchChangedEvent(q, filters != nil, seq, stale, resp))
	}
	return resp
}
