package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFileResponseDecode(t *testing.T) {
	raw := `{
		"realm": "media",
		"storage": "archive",
		"currentItem": {"directory": true, "path": "/shows/s01", "hashPath": "abc", "modified": 1700000000000, "length": 0},
		"path": "/shows/s01",
		"parentHashPath": "def",
		"listSize": 2,
		"skipCount": 40,
		"total": 42,
		"sort": {"name": "asc", "type": "none", "date": "desc", "size": "none"},
		"list": [
			{"directory": false, "path": "/shows/s01/e01.mxf", "hashPath": "h1", "modified": 1700000000000, "length": 1024},
			{"directory": false, "path": "/shows/s01/e02.mxf", "hashPath": "h2", "modified": 0, "length": 2048}
		]
	}`

	var resp FileResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if resp.SkipCount != 40 || resp.Total != 42 || resp.ListSize != 2 {
		t.Errorf("paging = (%d, %d, %d), want (40, 42, 2)", resp.SkipCount, resp.Total, resp.ListSize)
	}
	if resp.CurrentItem == nil || resp.CurrentItem.HashPath != "abc" {
		t.Errorf("CurrentItem = %+v, want hashPath abc", resp.CurrentItem)
	}
	if resp.Sort == nil || resp.Sort.Name != SortAscending || resp.Sort.Date != SortDescending {
		t.Errorf("Sort = %+v, want name asc, date desc", resp.Sort)
	}
	if got := resp.List[0].Name(); got != "e01.mxf" {
		t.Errorf("Name() = %q, want %q", got, "e01.mxf")
	}
	if !resp.List[1].ModTime().IsZero() {
		t.Errorf("ModTime() for missing date = %v, want zero", resp.List[1].ModTime())
	}
}

func TestFileResponseNullCurrentItem(t *testing.T) {
	var resp FileResponse
	if err := json.Unmarshal([]byte(`{"currentItem": null, "list": []}`), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if resp.CurrentItem != nil {
		t.Errorf("CurrentItem = %+v, want nil", resp.CurrentItem)
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    SortOrder
		wantErr bool
	}{
		{"none", SortNone, false},
		{"", SortNone, false},
		{"ASC", SortAscending, false},
		{"descending", SortDescending, false},
		{"sideways", SortNone, true},
	}
	for _, tt := range tests {
		got, err := ParseSortOrder(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSortOrder(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSortOrder(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseCondition(t *testing.T) {
	tests := []struct {
		in      string
		want    SearchConstraintCondition
		wantErr bool
	}{
		{"IGNORE", ConditionIgnore, false},
		{"must", ConditionMust, false},
		{"must-not", ConditionMustNot, false},
		{"MUST_NOT", ConditionMustNot, false},
		{"maybe", ConditionIgnore, true},
	}
	for _, tt := range tests {
		got, err := ParseCondition(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCondition(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCondition(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSearchConstraintsRequestEncoding(t *testing.T) {
	req := SearchConstraintsRequest{FileConstraints: FileSearchConstraints{
		Directory: ConditionMustNot,
		Size:      SearchConstraintRange{Restricted: true, Min: 1, Max: 10},
		Storages:  []string{"archive"},
	}}

	b, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	s := string(b)
	for _, want := range []string{
		`"fileConstraints":{`,
		`"directory":"MUST_NOT"`,
		`"hidden":"IGNORE"`,
		`"size":{"restricted":true,"min":1,"max":10}`,
		`"storages":["archive"]`,
		`"parentPath":""`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("Marshal() = %s, missing %s", s, want)
		}
	}
}

func TestFileSearchConstraintsCloneIsDeep(t *testing.T) {
	orig := FileSearchConstraints{Storages: []string{"a", "b"}}
	clone := orig.Clone()
	clone.Storages[0] = "z"

	if orig.Storages[0] != "a" {
		t.Errorf("Clone() shares storages: orig = %v", orig.Storages)
	}
}
