package state

import (
	"context"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/mexm/mydmam-browser/internal/constants"
	"github.com/mexm/mydmam-browser/internal/events"
	"github.com/mexm/mydmam-browser/internal/logging"
	"github.com/mexm/mydmam-browser/internal/models"
	"github.com/mexm/mydmam-browser/internal/paging"
	"github.com/mexm/mydmam-browser/internal/prefs"
	"github.com/mexm/mydmam-browser/internal/sorting"
)

// Lister fetches one listing page; nil means the fetch failed.
type Lister interface {
	List(ctx context.Context, storage, hashPath string, skip, limit int, sort models.FileSort) *models.FileResponse
}

// ListingState is the directory navigator: it owns the current response
// cell, the column sort orders and the page size preference, and turns
// every paging, sort or page-size change into a fresh fetch.
//
// Responses are applied in arrival order. A response to a request older
// than the newest one issued still replaces the cell and is logged as
// stale.
type ListingState struct {
	lister     Lister
	store      prefs.Store
	eventBus   *events.EventBus
	logger     *logging.Logger
	maxButtons int

	storage  string
	hashPath string
	sort     sorting.State

	response      *models.FileResponse
	requestedSize int // page size sent with the applied response
	issued        int64

	mu sync.RWMutex
}

// NewListingState creates a navigator. maxButtons <= 0 uses the default.
func NewListingState(lister Lister, store prefs.Store, eventBus *events.EventBus, logger *logging.Logger, maxButtons int) *ListingState {
	if logger == nil {
		logger = logging.Nop()
	}
	if maxButtons <= 0 {
		maxButtons = constants.DefaultMaxPageButtons
	}
	return &ListingState{
		lister:     lister,
		store:      store,
		eventBus:   eventBus,
		logger:     logger.Component("listing"),
		maxButtons: maxButtons,
	}
}

// Open lists a directory from its first page. An empty hashPath is the
// storage root.
func (s *ListingState) Open(ctx context.Context, storage, hashPath string) *models.FileResponse {
	return s.fetch(ctx, storage, hashPath, 0)
}

// OpenAt lists a directory starting at skip.
func (s *ListingState) OpenAt(ctx context.Context, storage, hashPath string, skip int) *models.FileResponse {
	if skip < 0 {
		skip = 0
	}
	return s.fetch(ctx, storage, hashPath, skip)
}

// GoToSkip lists the current directory from skip.
func (s *ListingState) GoToSkip(ctx context.Context, skip int) *models.FileResponse {
	if skip < 0 {
		skip = 0
	}
	s.mu.RLock()
	storage, hashPath := s.storage, s.hashPath
	s.mu.RUnlock()
	return s.fetch(ctx, storage, hashPath, skip)
}

// GoToPage lists the 1-based page n of the current directory, using the
// page size of the displayed window.
func (s *ListingState) GoToPage(ctx context.Context, n int) *models.FileResponse {
	if n < 1 {
		n = 1
	}
	size := s.Window().PageSize
	if size <= 0 {
		size = s.store.PageSize()
	}
	return s.GoToSkip(ctx, (n-1)*size)
}

// Next follows the next-page button. Returns nil when it is hidden.
func (s *ListingState) Next(ctx context.Context) *models.FileResponse {
	w := s.Window()
	if !w.Next.Visible {
		return nil
	}
	return s.GoToSkip(ctx, w.Next.Skip)
}

// Previous follows the previous-page button. Returns nil when it is hidden.
func (s *ListingState) Previous(ctx context.Context) *models.FileResponse {
	w := s.Window()
	if !w.Previous.Visible {
		return nil
	}
	return s.GoToSkip(ctx, w.Previous.Skip)
}

// Refresh re-lists the displayed directory from its first page. Without a
// displayed response it does nothing.
func (s *ListingState) Refresh(ctx context.Context) *models.FileResponse {
	s.mu.RLock()
	resp := s.response
	storage := s.storage
	s.mu.RUnlock()

	if resp == nil {
		return nil
	}
	hashPath := ""
	if resp.CurrentItem != nil {
		hashPath = resp.CurrentItem.HashPath
	}
	return s.fetch(ctx, storage, hashPath, 0)
}

// ChangePageSize persists the page size and refreshes.
func (s *ListingState) ChangePageSize(ctx context.Context, n int) (*models.FileResponse, error) {
	if err := s.store.SetPageSize(n); err != nil {
		return nil, err
	}
	if s.eventBus != nil {
		s.eventBus.PublishPreference("page_size", strconv.Itoa(s.store.PageSize()))
	}
	return s.Refresh(ctx), nil
}

// CycleSort advances the sort order of col and refreshes.
func (s *ListingState) CycleSort(ctx context.Context, col sorting.Column) (*models.FileResponse, error) {
	s.mu.Lock()
	order, err := s.sort.Cycle(col)
	fs := s.sort.FileSort()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if s.eventBus != nil {
		s.eventBus.Publish(NewSortChangedEvent(col, order, fs))
	}
	return s.Refresh(ctx), nil
}

// SetSortOrder sets the order of one column and refreshes.
func (s *ListingState) SetSortOrder(ctx context.Context, col sorting.Column, order models.SortOrder) (*models.FileResponse, error) {
	s.mu.Lock()
	err := s.sort.Set(col, order)
	fs := s.sort.FileSort()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if s.eventBus != nil {
		s.eventBus.Publish(NewSortChangedEvent(col, order, fs))
	}
	return s.Refresh(ctx), nil
}

// SetSort replaces all column orders without fetching; used to seed the
// navigator before the first Open.
func (s *ListingState) SetSort(fs models.FileSort) {
	s.mu.Lock()
	s.sort = sorting.NewState(fs)
	s.mu.Unlock()
}

// Sort returns the current column orders.
func (s *ListingState) Sort() models.FileSort {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sort.FileSort()
}

// Response returns the displayed response, nil before the first success.
func (s *ListingState) Response() *models.FileResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.response
}

// Location returns the storage and hash path last requested.
func (s *ListingState) Location() (storage, hashPath string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.storage, s.hashPath
}

// Window derives the page controls from the displayed response. The page
// size is the larger of the one requested with that response and the
// server's listSize.
func (s *ListingState) Window() paging.Window {
	s.mu.RLock()
	resp := s.response
	requested := s.requestedSize
	s.mu.RUnlock()

	if resp == nil {
		return paging.Window{}
	}
	size := paging.EffectivePageSize(requested, resp.ListSize)
	return paging.Compute(resp.SkipCount, size, resp.Total, s.maxButtons)
}

func (s *ListingState) fetch(ctx context.Context, storage, hashPath string, skip int) *models.FileResponse {
	limit := s.store.PageSize()

	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.storage = storage
	s.hashPath = hashPath
	sort := s.sort.FileSort()
	s.mu.Unlock()

	log := s.logger.Derive(s.logger.With().Int64("seq", seq).Str("fetch", uuid.NewString()).Logger())
	log.Debug().
		Str("storage", storage).
		Str("hash_path", hashPath).
		Int("skip", skip).
		Int("limit", limit).
		Msg("Listing")

	if s.eventBus != nil {
		s.eventBus.Publish(NewListingLoadingEvent(storage, hashPath, skip, limit, seq))
	}

	resp := s.lister.List(ctx, storage, hashPath, skip, limit, sort)
	if resp == nil {
		log.Warn().Str("storage", storage).Msg("Listing returned no data, keeping the displayed page")
		if s.eventBus != nil {
			s.eventBus.Publish(NewListingErrorEvent(storage, hashPath, seq))
		}
		return nil
	}

	s.mu.Lock()
	stale := seq < s.issued
	s.response = resp
	s.requestedSize = limit
	s.mu.Unlock()

	if stale {
		log.Warn().Msg("Applied a listing response older than the newest request")
	}
	if s.eventBus != nil {
		s.eventBus.Publish(NewListingChangedEvent(storage, hashPath, seq, stale, resp))
	}
	return resp
}
