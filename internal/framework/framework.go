package framework

import (
	"errors"
	"fmt"
	"sort"
)

const (
	SectionStrengths   = "strengths"
	SectionDevelopment = "development"
)

var ErrInvalidFramework = errors.New("invalid framework")

// Dimension is a named, contiguous range of item numbers.
type Dimension struct {
	Name        string
	Description string
	First       int
	Last        int
}

// Contains reports whether item falls inside the dimension's range.
func (d Dimension) Contains(item int) bool {
	return item >= d.First && item <= d.Last
}

// Items returns the dimension's item numbers in order.
func (d Dimension) Items() []int {
	out := make([]int, 0, d.Last-d.First+1)
	for i := d.First; i <= d.Last; i++ {
		out = append(out, i)
	}
	return out
}

// Framework is the fixed behavioral framework raters answer against.
// Build it with New or Default; it is never mutated afterwards.
type Framework struct {
	dimensions []Dimension
	items      map[int]string
	overall    []int
}

// New validates and builds a framework. The inputs are copied.
func New(dimensions []Dimension, items map[int]string, overall []int) (*Framework, error) {
	fw := &Framework{
		dimensions: append([]Dimension(nil), dimensions...),
		items:      make(map[int]string, len(items)),
		overall:    append([]int(nil), overall...),
	}
	for k, v := range items {
		fw.items[k] = v
	}
	if err := fw.Validate(); err != nil {
		return nil, err
	}
	return fw, nil
}

// Validate checks that dimensions are ordered, contiguous ranges that do not overlap,
// that overall items sit outside every dimension, and that every item has text.
func (f *Framework) Validate() error {
	if len(f.dimensions) == 0 {
		return fmt.Errorf("%w: no dimensions", ErrInvalidFramework)
	}

	seenNames := make(map[string]bool, len(f.dimensions))
	prevLast := 0
	for _, d := range f.dimensions {
		if d.Name == "" {
			return fmt.Errorf("%w: dimension without a name", ErrInvalidFramework)
		}
		if seenNames[d.Name] {
			return fmt.Errorf("%w: duplicate dimension %q", ErrInvalidFramework, d.Name)
		}
		seenNames[d.Name] = true
		if d.Name == SectionStrengths || d.Name == SectionDevelopment {
			return fmt.Errorf("%w: dimension name %q collides with a comment section", ErrInvalidFramework, d.Name)
		}
		if d.First < 1 || d.Last < d.First {
			return fmt.Errorf("%w: dimension %q has range %d-%d", ErrInvalidFramework, d.Name, d.First, d.Last)
		}
		if d.First <= prevLast {
			return fmt.Errorf("%w: dimension %q overlaps or is out of order", ErrInvalidFramework, d.Name)
		}
		prevLast = d.Last
		for _, item := range d.Items() {
			if _, ok := f.items[item]; !ok {
				return fmt.Errorf("%w: item %d has no text", ErrInvalidFramework, item)
			}
		}
	}

	for _, item := range f.overall {
		if _, ok := f.items[item]; !ok {
			return fmt.Errorf("%w: overall item %d has no text", ErrInvalidFramework, item)
		}
		if _, ok := f.DimensionFor(item); ok {
			return fmt.Errorf("%w: overall item %d is inside a dimension", ErrInvalidFramework, item)
		}
	}
	return nil
}

// Dimensions returns the dimensions in report order.
func (f *Framework) Dimensions() []Dimension {
	return append([]Dimension(nil), f.dimensions...)
}

// DimensionFor returns the dimension containing item.
func (f *Framework) DimensionFor(item int) (Dimension, bool) {
	for _, d := range f.dimensions {
		if d.Contains(item) {
			return d, true
		}
	}
	return Dimension{}, false
}

// Dimension looks a dimension up by name.
func (f *Framework) Dimension(name string) (Dimension, bool) {
	for _, d := range f.dimensions {
		if d.Name == name {
			return d, true
		}
	}
	return Dimension{}, false
}

func (f *Framework) HasItem(item int) bool {
	_, ok := f.items[item]
	return ok
}

func (f *Framework) ItemText(item int) string {
	return f.items[item]
}

// Items returns every item number in ascending order.
func (f *Framework) Items() []int {
	out := make([]int, 0, len(f.items))
	for k := range f.items {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// OverallItems returns the overall-effectiveness items, reported apart from dimensions.
func (f *Framework) OverallItems() []int {
	return append([]int(nil), f.overall...)
}

func (f *Framework) IsOverall(item int) bool {
	for _, o := range f.overall {
		if o == item {
			return true
		}
	}
	return false
}

// CommentSections lists the valid comment keys: every dimension plus strengths and development.
func (f *Framework) CommentSections() []string {
	out := make([]string, 0, len(f.dimensions)+2)
	for _, d := range f.dimensions {
		out = append(out, d.Name)
	}
	return append(out, SectionStrengths, SectionDevelopment)
}

func (f *Framework) IsCommentSection(section string) bool {
	if section == SectionStrengths || section == SectionDevelopment {
		return true
	}
	_, ok := f.Dimension(section)
	return ok
}
