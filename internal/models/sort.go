package models

import (
	"fmt"
	"strings"
)

// SortOrder is the direction applied to one listing column.
// The zero value is SortNone.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortAscending
	SortDescending
)

func (o SortOrder) String() string {
	switch o {
	case SortAscending:
		return "asc"
	case SortDescending:
		return "desc"
	default:
		return "none"
	}
}

// ParseSortOrder accepts the wire names (none, asc, desc) case-insensitively.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return SortNone, nil
	case "asc", "ascending":
		return SortAscending, nil
	case "desc", "descending":
		return SortDescending, nil
	default:
		return SortNone, fmt.Errorf("unknown sort order %q", s)
	}
}

func (o SortOrder) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *SortOrder) UnmarshalText(b []byte) error {
	v, err := ParseSortOrder(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// FileSort carries one SortOrder per sortable column.
// Several columns may be active at once; the server composes them.
type FileSort struct {
	Name SortOrder `json:"name"`
	Type SortOrder `json:"type"`
	Date SortOrder `json:"date"`
	Size SortOrder `json:"size"`
}
