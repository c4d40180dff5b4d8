package constraints

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/mexm/mydmam-browser/internal/constants"
	"github.com/mexm/mydmam-browser/internal/display"
	"github.com/mexm/mydmam-browser/internal/models"
)

var conditionLabels = map[ConditionField][3]string{
	FieldDirectory: {"Files and directories", "Directories only", "Files only"},
	FieldHidden:    {"Hidden or visible", "Hidden only", "Visible only"},
	FieldLink:      {"Links or regular entries", "Links only", "No links"},
	FieldSpecial:   {"Special or regular files", "Special files only", "No special files"},
}

// DescribeCondition renders the label of a tri-state attribute.
func DescribeCondition(field ConditionField, c models.SearchConstraintCondition) string {
	labels, ok := conditionLabels[field]
	if !ok || c < models.ConditionIgnore || c > models.ConditionMustNot {
		return "(?)"
	}
	return labels[c]
}

// StoragesToAdd lists the storages of all that are not yet selected, in the
// order of all.
func StoragesToAdd(all, selected []string) []string {
	out := make([]string, 0, len(all))
	for _, s := range all {
		if !slices.Contains(selected, s) {
			out = append(out, s)
		}
	}
	return out
}

// StoragesToRemove lists the storages of all that are selected, in the order
// of all.
func StoragesToRemove(all, selected []string) []string {
	out := make([]string, 0, len(selected))
	for _, s := range all {
		if slices.Contains(selected, s) {
			out = append(out, s)
		}
	}
	return out
}

func DescribeStorages(selected []string) string {
	switch len(selected) {
	case 0:
		return "No storages restricted."
	case 1:
		return "Limit search to " + selected[0] + " storage."
	default:
		return "Limit search to these storages: " + strings.Join(selected, ", ") + "."
	}
}

func DescribeParentPath(p string) string {
	if p == "" {
		return "No parent path restricted."
	}
	return "Only files on based on " + p + " directory and sub-directories."
}

func DescribeSizeRange(r models.SearchConstraintRange) string {
	if !r.Restricted {
		return "No file size restricted."
	}
	return fmt.Sprintf("File size restricted, minimum to %s, and maximum to %s.",
		display.FormatSize(r.Min), display.FormatSize(r.Max))
}

func DescribeDateRange(r models.SearchConstraintRange, f *display.Formatter, nowMs int64, mode display.Mode) string {
	if !r.Restricted {
		return "No date restricted."
	}
	return fmt.Sprintf("Date restricted, from %s to %s.",
		f.Format(r.Min, nowMs, mode), f.Format(r.Max, nowMs, mode))
}

// Describe summarizes a full constraint set, one line per attribute.
func Describe(c models.FileSearchConstraints, f *display.Formatter, nowMs int64, mode display.Mode) []string {
	lines := make([]string, 0, 8)
	for _, field := range ConditionFields {
		var v models.SearchConstraintCondition
		switch field {
		case FieldDirectory:
			v = c.Directory
		case FieldHidden:
			v = c.Hidden
		case FieldLink:
			v = c.Link
		case FieldSpecial:
			v = c.Special
		}
		lines = append(lines, string(field)+": "+DescribeCondition(field, v))
	}
	lines = append(lines,
		DescribeDateRange(c.Date, f, nowMs, mode),
		DescribeSizeRange(c.Size),
		DescribeStorages(c.Storages),
		DescribeParentPath(c.ParentPath),
	)
	return lines
}

// SizeEditorMax is the upper bound an editor should offer for r.
func SizeEditorMax(r models.SearchConstraintRange) int64 {
	if r.Max <= 0 {
		return constants.SizeEditorDefaultMax
	}
	return r.Max
}

// DateEditorBounds are the bounds an editor should offer for r, in epoch
// milliseconds. Unset bounds default to the year before now.
func DateEditorBounds(r models.SearchConstraintRange, now time.Time) (minMs, maxMs int64) {
	minMs, maxMs = r.Min, r.Max
	if minMs <= 0 {
		minMs = now.AddDate(-1, 0, 0).UnixMilli()
	}
	if maxMs <= 0 {
		maxMs = now.UnixMilli()
	}
	return minMs, maxMs
}
