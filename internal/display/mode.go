package display

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects how timestamps are rendered. It is persisted as its integer
// value.
type Mode int

const (
	Simplified Mode = iota
	Relative
	FullDateTime
)

// Next returns the following mode, wrapping after FullDateTime.
func (m Mode) Next() Mode {
	if m >= FullDateTime || m < Simplified {
		return Simplified
	}
	return m + 1
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m >= Simplified && m <= FullDateTime
}

func (m Mode) String() string {
	switch m {
	case Simplified:
		return "simplified"
	case Relative:
		return "relative"
	case FullDateTime:
		return "full"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMode accepts a mode name or its persisted integer.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "simplified", "simple":
		return Simplified, nil
	case "relative":
		return Relative, nil
	case "full", "full-datetime", "full_date_time":
		return FullDateTime, nil
	}
	if n, err := strconv.Atoi(s); err == nil && Mode(n).Valid() {
		return Mode(n), nil
	}
	return Simplified, fmt.Errorf("unknown date display mode %q", s)
}
