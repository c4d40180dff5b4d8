package display

import (
	"testing"
	"time"
)

const (
	minuteMs = int64(60 * 1000)
	hourMs   = 60 * minuteMs
	dayMs    = 24 * hourMs
)

func toMs(f float64) int64 { return int64(f) }

// Fri, Mar 15, 2024 12:00:00 UTC
var refNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC).UnixMilli()

func TestFormatNoDate(t *testing.T) {
	f := NewFormatter(time.UTC)
	for _, mode := range []Mode{Simplified, Relative, FullDateTime} {
		for _, ms := range []int64{0, -10} {
			if got := f.Format(ms, refNow, mode); got != NoDate {
				t.Errorf("Format(%d, mode=%v) = %q, want %q", ms, mode, got, NoDate)
			}
		}
	}
}

func TestRelativePhrase(t *testing.T) {
	tests := []struct {
		name  string
		delta int64
		want  string
	}{
		{"ninety minutes ago", -90 * minuteMs, "1 hour 30 minutes ago"},
		{"ninety minutes ahead", 90 * minuteMs, "In 1 hour 30 minutes"},
		{"zero second unit stays singular", -3*dayMs - 10*minuteMs, "3 days 0 hour ago"},
		{"seconds and millis", -2500, "2 seconds 500 milliseconds ago"},
		{"millis only", -500, "500 milliseconds ago"},
		{"single milli", 1, "In 1 millisecond"},
		{"minutes and seconds", -(2*minuteMs + 1000), "2 minutes 1 second ago"},
		{"days and hours", -(1*dayMs + 5*hourMs), "1 day 5 hours ago"},
		{"months and days", -toMs(2*msMonth + 4*msDay + msHour), "2 months 4 days ago"},
		{"years and months", -toMs(2*msYear + 3*msMonth + msHour), "2 years 3 months ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativePhrase(refNow+tt.delta, refNow); got != tt.want {
				t.Errorf("RelativePhrase() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRelativePhraseJustNow(t *testing.T) {
	if got := RelativePhrase(refNow, refNow); got != JustNow {
		t.Errorf("RelativePhrase() = %q, want %q", got, JustNow)
	}
	if got := NewFormatter(time.UTC).Format(refNow, refNow, Relative); got != JustNow {
		t.Errorf("Format(Relative) = %q, want %q", got, JustNow)
	}
}

func TestFormatSimplifiedTiers(t *testing.T) {
	f := NewFormatter(time.UTC)

	tests := []struct {
		name string
		age  int64
		want string
	}{
		{"under a day", 2 * hourMs, "Fri, Mar 15, 2024, 10:00"},
		{"under a month", 3 * dayMs, "Tue, Mar 12, 2024, 12:00:00"},
		{"under a year", 60 * dayMs, "Mon, Jan 15, 2024"},
		{"over a year", 400 * dayMs, "Feb 2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Format(refNow-tt.age, refNow, Simplified); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatSimplifiedFutureIsFull(t *testing.T) {
	f := NewFormatter(time.UTC)

	tests := []struct {
		at   int64
		want string
	}{
		{refNow + hourMs, "Fri, Mar 15, 2024, 13:00:00"},
		{refNow, "Fri, Mar 15, 2024, 12:00:00"},
	}
	for _, tt := range tests {
		if got := f.Format(tt.at, refNow, Simplified); got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.at, got, tt.want)
		}
	}
}

func TestFormatFullDateTime(t *testing.T) {
	f := NewFormatter(time.UTC)

	want := "Thu, Feb 09, 2023, 12:00:00"
	if got := f.Format(refNow-400*dayMs, refNow, FullDateTime); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatUsesLocation(t *testing.T) {
	f := NewFormatter(time.FixedZone("UTC+2", 2*3600))

	want := "Fri, Mar 15, 2024, 14:00:00"
	if got := f.Format(refNow, refNow, FullDateTime); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{-3, "0 byte"},
		{0, "0 byte"},
		{1, "1 byte"},
		{2, "2 bytes"},
		{1234, "1,234 bytes"},
		{50000000000, "50,000,000,000 bytes"},
	}
	for _, tt := range tests {
		if got := FormatSize(tt.in); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
