package models

import (
	"fmt"
	"strings"
)

// SearchConstraintCondition is a tri-state filter on a boolean file attribute.
// The zero value is ConditionIgnore.
type SearchConstraintCondition int

const (
	ConditionIgnore SearchConstraintCondition = iota
	ConditionMust
	ConditionMustNot
)

func (c SearchConstraintCondition) String() string {
	switch c {
	case ConditionMust:
		return "MUST"
	case ConditionMustNot:
		return "MUST_NOT"
	default:
		return "IGNORE"
	}
}

// ParseCondition accepts IGNORE, MUST and MUST_NOT, case-insensitively.
// Dashes are read as underscores so "must-not" works on a command line.
func ParseCondition(s string) (SearchConstraintCondition, error) {
	switch strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_") {
	case "IGNORE", "":
		return ConditionIgnore, nil
	case "MUST":
		return ConditionMust, nil
	case "MUST_NOT":
		return ConditionMustNot, nil
	default:
		return ConditionIgnore, fmt.Errorf("unknown constraint condition %q", s)
	}
}

func (c SearchConstraintCondition) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *SearchConstraintCondition) UnmarshalText(b []byte) error {
	v, err := ParseCondition(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// SearchConstraintRange bounds a numeric attribute. Min and Max only seed an
// editor unless Restricted is set.
type SearchConstraintRange struct {
	Restricted bool  `json:"restricted"`
	Min        int64 `json:"min"`
	Max        int64 `json:"max"`
}

// NoRange is the unrestricted range.
var NoRange = SearchConstraintRange{}

// FileSearchConstraints is the advanced filter set attached to a search.
type FileSearchConstraints struct {
	Directory      SearchConstraintCondition `json:"directory"`
	Hidden         SearchConstraintCondition `json:"hidden"`
	Link           SearchConstraintCondition `json:"link"`
	Special        SearchConstraintCondition `json:"special"`
	Date           SearchConstraintRange     `json:"date"`
	Size           SearchConstraintRange     `json:"size"`
	Storages       []string                  `json:"storages"`
	ParentPath     string                    `json:"parentPath"`
	ParentHashPath string                    `json:"parentHashPath"`
}

// Clone returns a deep copy.
func (c FileSearchConstraints) Clone() FileSearchConstraints {
	out := c
	out.Storages = make([]string, len(c.Storages))
	copy(out.Storages, c.Storages)
	return out
}

// SearchConstraintsRequest is the PUT body of a constrained search.
type SearchConstraintsRequest struct {
	FileConstraints FileSearchConstraints `json:"fileConstraints"`
}

// FileSearchResult is one hit.
type FileSearchResult struct {
	HashPath   string  `json:"hashPath"`
	Storage    string  `json:"storage"`
	Name       string  `json:"name"`
	ParentPath string  `json:"parentPath"`
	Score      float32 `json:"score"`
	Explain    string  `json:"explain"`
}

// SearchResult groups the hits of one query.
type SearchResult struct {
	FoundedFiles []FileSearchResult `json:"foundedFiles"`
	TotalFounded int                `json:"totalFounded"`
}

// OpenSearchResponse is returned by /search/{realm}.
type OpenSearchResponse struct {
	Result       SearchResult                `json:"result"`
	Q            string                      `json:"q"`
	Limit        int                         `json:"limit"`
	RelatedFiles map[string]FileItemResponse `json:"relatedFiles"`
	Constraints  *SearchConstraintsRequest   `json:"constraints"`
}
