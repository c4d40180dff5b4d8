// Package constraints holds the advanced filter set of a search session.
//
// A Model is either absent (unconstrained search) or present. Every mutator
// requires a present model and returns ErrConstraintsAbsent otherwise.
package constraints

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mexm/mydmam-browser/internal/models"
)

var (
	// ErrConstraintsAbsent is returned when editing before EnableAdvancedFilters.
	ErrConstraintsAbsent = errors.New("search constraints are absent")

	// ErrUnknownField is returned for a field name outside the known set.
	ErrUnknownField = errors.New("unknown constraint field")
)

// ConditionField names a tri-state attribute.
type ConditionField string

const (
	FieldDirectory ConditionField = "directory"
	FieldHidden    ConditionField = "hidden"
	FieldLink      ConditionField = "link"
	FieldSpecial   ConditionField = "special"
)

// ConditionFields lists the tri-state attributes in display order.
var ConditionFields = []ConditionField{FieldDirectory, FieldHidden, FieldLink, FieldSpecial}

// RangeField names a ranged attribute.
type RangeField string

const (
	FieldDate RangeField = "date"
	FieldSize RangeField = "size"
)

// Model is the Absent | Present constraint state.
type Model struct {
	present *models.FileSearchConstraints
}

// Empty returns the defaults used when advanced filters are switched on.
func Empty() models.FileSearchConstraints {
	return models.FileSearchConstraints{
		Directory: models.ConditionIgnore,
		Hidden:    models.ConditionIgnore,
		Link:      models.ConditionIgnore,
		Special:   models.ConditionIgnore,
		Date:      models.NoRange,
		Size:      models.NoRange,
		Storages:  []string{},
	}
}

// Present reports whether advanced filters are active.
func (m *Model) Present() bool {
	return m.present != nil
}

// Constraints returns a copy of the current set. ok is false when absent.
func (m *Model) Constraints() (c models.FileSearchConstraints, ok bool) {
	if m.present == nil {
		return models.FileSearchConstraints{}, false
	}
	return m.present.Clone(), true
}

// Clone returns an independent copy of the model.
func (m *Model) Clone() Model {
	if m.present == nil {
		return Model{}
	}
	c := m.present.Clone()
	return Model{present: &c}
}

// Request returns the PUT body for a constrained search, or nil when absent.
func (m *Model) Request() *models.SearchConstraintsRequest {
	if m.present == nil {
		return nil
	}
	return &models.SearchConstraintsRequest{FileConstraints: m.present.Clone()}
}

// EnableAdvancedFilters switches an absent model to the empty constraint set.
// It returns false when filters were already present, leaving them unchanged.
func (m *Model) EnableAdvancedFilters() bool {
	if m.present != nil {
		return false
	}
	c := Empty()
	m.present = &c
	return true
}

// DisableAdvancedFilters drops all constraints. It returns false when they
// were already absent.
func (m *Model) DisableAdvancedFilters() bool {
	if m.present == nil {
		return false
	}
	m.present = nil
	return true
}

// SetCondition sets a tri-state attribute. Any directory or special value
// other than MUST_NOT clears the size restriction.
func (m *Model) SetCondition(field ConditionField, value models.SearchConstraintCondition) error {
	c, err := m.mustBePresent()
	if err != nil {
		return err
	}
	switch field {
	case FieldDirectory:
		c.Directory = value
	case FieldHidden:
		c.Hidden = value
	case FieldLink:
		c.Link = value
	case FieldSpecial:
		c.Special = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if (field == FieldDirectory || field == FieldSpecial) && value != models.ConditionMustNot {
		c.Size.Restricted = false
	}
	return nil
}

// SetRange sets a ranged attribute. A restricted size forces directory to
// MUST_NOT.
func (m *Model) SetRange(field RangeField, r models.SearchConstraintRange) error {
	c, err := m.mustBePresent()
	if err != nil {
		return err
	}
	switch field {
	case FieldDate:
		c.Date = r
	case FieldSize:
		c.Size = r
		if r.Restricted {
			c.Directory = models.ConditionMustNot
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// SetStorages replaces the storage allow-list. Duplicates and blanks are
// dropped; first occurrence order is kept.
func (m *Model) SetStorages(list []string) error {
	c, err := m.mustBePresent()
	if err != nil {
		return err
	}
	c.Storages = dedupe(list)
	return nil
}

// AddStorage appends name to the allow-list. changed is false when it was
// already there.
func (m *Model) AddStorage(name string) (changed bool, err error) {
	c, err := m.mustBePresent()
	if err != nil {
		return false, err
	}
	if name == "" || slices.Contains(c.Storages, name) {
		return false, nil
	}
	c.Storages = append(c.Storages, name)
	return true, nil
}

// RemoveStorage removes name from the allow-list. changed is false when it
// was not there.
func (m *Model) RemoveStorage(name string) (changed bool, err error) {
	c, err := m.mustBePresent()
	if err != nil {
		return false, err
	}
	for i, s := range c.Storages {
		if s == name {
			c.Storages = append(c.Storages[:i:i], c.Storages[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// SetParentPath restricts results to a directory subtree. An empty path
// removes the restriction; anything else gets a leading slash if missing.
func (m *Model) SetParentPath(p string) error {
	c, err := m.mustBePresent()
	if err != nil {
		return err
	}
	c.ParentPath = NormalizeParentPath(p)
	if c.ParentPath == "" {
		c.ParentHashPath = ""
	}
	return nil
}

// SetParentHashPath pins the subtree by hash path, as resolved by the caller.
func (m *Model) SetParentHashPath(hashPath string) error {
	c, err := m.mustBePresent()
	if err != nil {
		return err
	}
	c.ParentHashPath = hashPath
	return nil
}

// NormalizeParentPath applies the leading-slash rule.
func NormalizeParentPath(p string) string {
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		return "/" + p
	}
	return p
}

func (m *Model) mustBePresent() (*models.FileSearchConstraints, error) {
	if m.present == nil {
		return nil, ErrConstraintsAbsent
	}
	return m.present, nil
}

func dedupe(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s != "" && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
