// Package state provides observable state containers for the navigator and
// the search page. Containers publish events on the shared bus after every
// change so any frontend can re-render from them.
package state

import (
	"time"

	"github.com/mexm/mydmam-browser/internal/events"
	"github.com/mexm/mydmam-browser/internal/models"
	"github.com/mexm/mydmam-browser/internal/sorting"
)

// State event types
const (
	EventListingChanged     events.EventType = "listing_changed"
	EventListingLoading     events.EventType = "listing_loading"
	EventListingError       events.EventType = "listing_error"
	EventSortChanged        events.EventType = "sort_changed"
	EventSearchChanged      events.EventType = "search_changed"
	EventSearchError        events.EventType = "search_error"
	EventConstraintsChanged events.EventType = "constraints_changed"
)

// ListingChangedEvent is published when a listing response is applied.
type ListingChangedEvent struct {
	events.BaseEvent
	Storage  string
	HashPath string
	Seq      int64
	Stale    bool // an older request than the newest one issued
	Response *models.FileResponse
}

// ListingLoadingEvent is published when a listing fetch starts.
type ListingLoadingEvent struct {
	events.BaseEvent
	Storage  string
	HashPath string
	Skip     int
	Limit    int
	Seq      int64
}

// ListingErrorEvent is published when a listing fetch returned no data.
type ListingErrorEvent struct {
	events.BaseEvent
	Storage  string
	HashPath string
	Seq      int64
}

// SortChangedEvent is published when a column sort order changes.
type SortChangedEvent struct {
	events.BaseEvent
	Column sorting.Column
	Order  models.SortOrder
	Sort   models.FileSort
}

// SearchChangedEvent is published when a search response is applied.
type SearchChangedEvent struct {
	events.BaseEvent
	Q           string
	Constrained bool
	Seq         int64
	Stale       bool
	Response    *models.OpenSearchResponse
}

// SearchErrorEvent is published when a search returned no data.
type SearchErrorEvent struct {
	events.BaseEvent
	Q   string
	Seq int64
}

// ConstraintsChangedEvent is published after every effective constraint
// edit. Constraints is nil when advanced filters are off.
type ConstraintsChangedEvent struct {
	events.BaseEvent
	Constraints *models.FileSearchConstraints
}

// NewListingChangedEvent creates a new ListingChangedEvent.
func NewListingChangedEvent(storage, hashPath string, seq int64, stale bool, resp *models.FileResponse) *ListingChangedEvent {
	return &ListingChangedEvent{
		BaseEvent: events.BaseEvent{
			EventType: EventListingChanged,
			Time:      time.Now(),
		},
		Storage:  storage,
		HashPath: hashPath,
		Seq:      seq,
		Stale:    stale,
		Response: resp,
	}
}

// NewListingLoadingEvent creates a new ListingLoadingEvent.
func NewListingLoadingEvent(storage, hashPath string, skip, limit int, seq int64) *ListingLoadingEvent {
	return &ListingLoadingEvent{
		BaseEvent: events.BaseEvent{
			EventType: EventListingLoading,
			Time:      time.Now(),
		},
		Storage:  storage,
		HashPath: hashPath,
		Skip:     skip,
		Limit:    limit,
		Seq:      seq,
	}
}

// NewListingErrorEvent creates a new ListingErrorEvent.
func NewListingErrorEvent(storage, hashPath string, seq int64) *ListingErrorEvent {
	return &ListingErrorEvent{
		BaseEvent: events.BaseEvent{
			EventType: EventListingError,
			Time:      time.Now(),
		},
		Storage:  storage,
		HashPath: hashPath,
		Seq:      seq,
	}
}

// NewSortChangedEvent creates a new SortChangedEvent.
func NewSortChangedEvent(col sorting.Column, order models.SortOrder, sort models.FileSort) *SortChangedEvent {
	return &SortChangedEvent{
		BaseEvent: events.BaseEvent{
			EventType: EventSortChanged,
			Time:      time.Now(),
		},
		Column: col,
		Order:  order,
		Sort:   sort,
	}
}

// NewSearchChangedEvent creates a new SearchChangedEvent.
func NewSearchChangedEvent(q string, constrained bool, seq int64, stale bool, resp *models.OpenSearchResponse) *SearchChangedEvent {
	return &SearchChangedEvent{
		BaseEvent: events.BaseEvent{
			EventType: EventSearchChanged,
			Time:      time.Now(),
		},
		Q:           q,
		Constrained: constrained,
		Seq:         seq,
		Stale:       stale,
		Response:    resp,
	}
}

// NewSearchErrorEvent creates a new SearchErrorEvent.
func NewSearchErrorEvent(q string, seq int64) *SearchErrorEvent {
	return &SearchErrorEvent{
		BaseEvent: events.BaseEvent{
			EventType: EventSearchError,
			Time:      time.Now(),
		},
		Q:   q,
		Seq: seq,
	}
}

// NewConstraintsChangedEvent creates a new ConstraintsChangedEvent.
func NewConstraintsChangedEvent(c *models.FileSearchConstraints) *ConstraintsChangedEvent {
	return &ConstraintsChangedEvent{
		BaseEvent: events.BaseEvent{
			EventType: EventConstraintsChanged,
			Time:      time.Now(),
		},
		Constraints: c,
	}
}
