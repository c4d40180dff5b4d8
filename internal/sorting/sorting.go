// Package sorting implements the per-column tri-state sort used by directory
// listings.
package sorting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mexm/mydmam-browser/internal/models"
)

// ErrUnknownColumn is returned for a column name outside name/type/date/size.
var ErrUnknownColumn = errors.New("unknown sort column")

// Column names a sortable listing column.
type Column string

const (
	ColumnName Column = "name"
	ColumnType Column = "type"
	ColumnDate Column = "date"
	ColumnSize Column = "size"
)

// Columns lists every sortable column in display order.
var Columns = []Column{ColumnName, ColumnType, ColumnSize, ColumnDate}

// ParseColumn validates a column name.
func ParseColumn(s string) (Column, error) {
	c := Column(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case ColumnName, ColumnType, ColumnDate, ColumnSize:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownColumn, s)
}

// Cycle returns the order that follows current: none, asc, desc, none.
func Cycle(current models.SortOrder) models.SortOrder {
	switch current {
	case models.SortNone:
		return models.SortAscending
	case models.SortAscending:
		return models.SortDescending
	default:
		return models.SortNone
	}
}

// Label renders the header text for a column.
func Label(name string, order models.SortOrder) string {
	switch order {
	case models.SortAscending:
		return "Sorted by " + strings.ToLower(name)
	case models.SortDescending:
		return "Reverse sort by " + strings.ToLower(name)
	default:
		return name
	}
}

// State holds one order per column. Columns are independent: activating one
// does not reset the others.
type State struct {
	sort models.FileSort
}

// NewState starts from an existing set of orders.
func NewState(fs models.FileSort) State {
	return State{sort: fs}
}

// Get returns the order of col.
func (s State) Get(col Column) models.SortOrder {
	if p := s.field(col); p != nil {
		return *p
	}
	return models.SortNone
}

// Set assigns the order of col.
func (s *State) Set(col Column, order models.SortOrder) error {
	p := s.field(col)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, col)
	}
	*p = order
	return nil
}

// Cycle advances col to its next order and returns it.
func (s *State) Cycle(col Column) (models.SortOrder, error) {
	next := Cycle(s.Get(col))
	if err := s.Set(col, next); err != nil {
		return models.SortNone, err
	}
	return next, nil
}

// FileSort returns the orders in wire form.
func (s State) FileSort() models.FileSort {
	return s.sort
}

func (s *State) field(col Column) *models.SortOrder {
	switch col {
	case ColumnName:
		return &s.sort.Name
	case ColumnType:
		return &s.sort.Type
	case ColumnDate:
		return &s.sort.Date
	case ColumnSize:
		return &s.sort.Size
	}
	return nil
}

// ParseSpec reads "name=asc,date=desc" into a FileSort. Unlisted columns stay
// unsorted.
func ParseSpec(spec string) (models.FileSort, error) {
	var st State
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			value = "asc"
		}
		col, err := ParseColumn(key)
		if err != nil {
			return models.FileSort{}, err
		}
		order, err := models.ParseSortOrder(value)
		if err != nil {
			return models.FileSort{}, err
		}
		_ = st.Set(col, order)
	}
	return st.FileSort(), nil
}
