// Package display renders timestamps and sizes for listings and search hits.
package display

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// NoDate is shown for a missing or non-positive timestamp.
const NoDate = "(no date to display)"

// JustNow is shown when the instant equals now.
const JustNow = "Just now"

// Durations in milliseconds. Month and year use mean lunar and sidereal
// lengths so that they never align with calendar boundaries.
const (
	msSecond = 1000.0
	msMinute = msSecond * 60
	msHour   = msMinute * 60
	msDay    = msHour * 24
	msMonth  = msDay * 29.53059
	msYear   = msDay * 365.259636
)

const (
	layoutFull      = "Mon, Jan 02, 2006, 15:04:05"
	layoutDateTime  = "Mon, Jan 02, 2006, 15:04"
	layoutDate      = "Mon, Jan 02, 2006"
	layoutMonthYear = "Jan 2006"
)

// Formatter renders timestamps in a fixed location.
type Formatter struct {
	Location *time.Location
}

// NewFormatter returns a Formatter for loc; nil means time.Local.
func NewFormatter(loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.Local
	}
	return &Formatter{Location: loc}
}

// Format renders instantMs (epoch milliseconds) relative to nowMs.
func (f *Formatter) Format(instantMs, nowMs int64, mode Mode) string {
	if instantMs <= 0 {
		return NoDate
	}
	if mode == Relative {
		return RelativePhrase(instantMs, nowMs)
	}

	t := time.UnixMilli(instantMs).In(f.location())
	if mode == FullDateTime || instantMs >= nowMs {
		return t.Format(layoutFull)
	}

	age := float64(nowMs - instantMs)
	switch {
	case age < msDay:
		return t.Format(layoutDateTime)
	case age < msMonth:
		return t.Format(layoutFull)
	case age < msYear:
		return t.Format(layoutDate)
	default:
		return t.Format(layoutMonthYear)
	}
}

func (f *Formatter) location() *time.Location {
	if f == nil || f.Location == nil {
		return time.Local
	}
	return f.Location
}

// RelativePhrase renders the distance between instantMs and nowMs as the two
// largest units, e.g. "In 2 days 3 hours" or "5 minutes 0 second ago".
// Milliseconds are shown alone when nothing larger is set.
func RelativePhrase(instantMs, nowMs int64) string {
	diff := instantMs - nowMs
	delta := math.Abs(float64(diff))
	if math.Round(delta) == 0 {
		return JustNow
	}

	rest := delta
	take := func(unit float64) int64 {
		n := math.Floor(rest / unit)
		rest -= n * unit
		return int64(n)
	}
	years := take(msYear)
	months := take(msMonth)
	days := take(msDay)
	hours := take(msHour)
	minutes := take(msMinute)
	seconds := take(msSecond)
	millis := int64(math.Round(rest))

	parts := make([]string, 0, 4)
	if diff > 0 {
		parts = append(parts, "In")
	}
	switch {
	case years > 0:
		parts = append(parts, unit(years, "year"), unit(months, "month"))
	case months > 0:
		parts = append(parts, unit(months, "month"), unit(days, "day"))
	case days > 0:
		parts = append(parts, unit(days, "day"), unit(hours, "hour"))
	case hours > 0:
		parts = append(parts, unit(hours, "hour"), unit(minutes, "minute"))
	case minutes > 0:
		parts = append(parts, unit(minutes, "minute"), unit(seconds, "second"))
	case seconds > 0:
		parts = append(parts, unit(seconds, "second"), unit(millis, "millisecond"))
	default:
		parts = append(parts, unit(millis, "millisecond"))
	}
	if diff < 0 {
		parts = append(parts, "ago")
	}
	return strings.Join(parts, " ")
}

// unit pluralizes only above one, so zero reads "0 minute".
func unit(n int64, label string) string {
	if n > 1 {
		return strconv.FormatInt(n, 10) + " " + label + "s"
	}
	return strconv.FormatInt(n, 10) + " " + label
}
