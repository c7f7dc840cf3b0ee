package framework

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory is returned when a stored relationship label is not one of the known categories.
var ErrUnknownCategory = errors.New("unknown relationship category")

// Category is the relationship of a rater to the leader being assessed.
type Category int

const (
	Self Category = iota
	Boss
	Peers
	DirectReports
	Others
)

var allCategories = []Category{Self, Boss, Peers, DirectReports, Others}

type categoryInfo struct {
	key   string
	label string
}

var categoryTable = map[Category]categoryInfo{
	Self:          {key: "Self", label: "Self"},
	Boss:          {key: "Boss", label: "Line Manager"},
	Peers:         {key: "Peers", label: "Peers"},
	DirectReports: {key: "DRs", label: "Direct Reports"},
	Others:        {key: "Others", label: "Others"},
}

// Categories returns every category in report order.
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// ParseCategory maps a stored relationship key ("Self", "Boss", "Peers", "DRs", "Others").
func ParseCategory(s string) (Category, error) {
	for _, c := range allCategories {
		if categoryTable[c].key == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	_, ok := categoryTable[c]
	return ok
}

// String returns the storage key of the category.
func (c Category) String() string {
	if info, ok := categoryTable[c]; ok {
		return info.key
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Label returns the human readable name used in reports.
func (c Category) Label() string {
	if info, ok := categoryTable[c]; ok {
		return info.label
	}
	return c.String()
}

// ThresholdExempt reports whether the category is always shown regardless of response count.
func (c Category) ThresholdExempt() bool {
	return c == Self || c == Boss
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
