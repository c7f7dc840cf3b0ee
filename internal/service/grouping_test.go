package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/godilite/catalyst360/internal/framework"
)

func TestGroup(t *testing.T) {
	cases := []struct {
		name       string
		raw        map[framework.Category]int
		threshold  int
		visible    []framework.Category
		hidden     []framework.Category
		counts     map[framework.Category]int
		anonymized bool
	}{
		{
			name:      "small peers group folds into others",
			raw:       map[framework.Category]int{framework.Self: 1, framework.Boss: 1, framework.Peers: 2, framework.DirectReports: 4, framework.Others: 1},
			threshold: 3,
			visible:   []framework.Category{framework.Self, framework.Boss, framework.DirectReports, framework.Others},
			hidden:    []framework.Category{framework.Peers, framework.Others},
			counts: map[framework.Category]int{
				framework.Self: 1, framework.Boss: 1, framework.DirectReports: 4, framework.Others: 3,
			},
			anonymized: true,
		},
		{
			name:      "small others group alone is hidden",
			raw:       map[framework.Category]int{framework.Self: 1, framework.Boss: 1, framework.Peers: 3, framework.DirectReports: 3, framework.Others: 1},
			threshold: 3,
			visible:   []framework.Category{framework.Self, framework.Boss, framework.Peers, framework.DirectReports, framework.Others},
			hidden:    []framework.Category{framework.Others},
			counts: map[framework.Category]int{
				framework.Self: 1, framework.Boss: 1, framework.Peers: 3, framework.DirectReports: 3, framework.Others: 1,
			},
			anonymized: true,
		},
		{
			name:      "others at the threshold is not hidden",
			raw:       map[framework.Category]int{framework.Self: 1, framework.Others: 3},
			threshold: 3,
			visible:   []framework.Category{framework.Self, framework.Boss, framework.Others},
			hidden:    nil,
			counts:    map[framework.Category]int{framework.Self: 1, framework.Boss: 0, framework.Others: 3},
		},
		{
			name:      "others appears when only folded raters exist",
			raw:       map[framework.Category]int{framework.Self: 1, framework.Peers: 1, framework.DirectReports: 2},
			threshold: 3,
			visible:   []framework.Category{framework.Self, framework.Boss, framework.Others},
			hidden:    []framework.Category{framework.Peers, framework.DirectReports},
			counts: map[framework.Category]int{
				framework.Self: 1, framework.Boss: 0, framework.Others: 3,
			},
			anonymized: true,
		},
		{
			name:      "groups at the threshold stay visible",
			raw:       map[framework.Category]int{framework.Self: 1, framework.Boss: 1, framework.Peers: 3, framework.DirectReports: 5},
			threshold: 3,
			visible:   []framework.Category{framework.Self, framework.Boss, framework.Peers, framework.DirectReports},
			hidden:    nil,
			counts: map[framework.Category]int{
				framework.Self: 1, framework.Boss: 1, framework.Peers: 3, framework.DirectReports: 5,
			},
		},
		{
			name:      "a single boss is always visible",
			raw:       map[framework.Category]int{framework.Boss: 1},
			threshold: 5,
			visible:   []framework.Category{framework.Self, framework.Boss},
			counts:    map[framework.Category]int{framework.Self: 0, framework.Boss: 1},
		},
		{
			name:      "no responses",
			raw:       map[framework.Category]int{},
			threshold: 3,
			visible:   []framework.Category{framework.Self, framework.Boss},
			counts:    map[framework.Category]int{framework.Self: 0, framework.Boss: 0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := Group(tc.raw, tc.threshold)

			assert.Equal(t, tc.visible, g.Visible)
			assert.Equal(t, tc.hidden, g.Hidden)
			assert.Equal(t, tc.counts, g.Counts)
			assert.Equal(t, tc.anonymized, g.AnonymityApplied())

			rawTotal, reported := 0, 0
			for _, n := range tc.raw {
				rawTotal += n
			}
			for _, n := range g.Counts {
				reported += n
			}
			assert.Equal(t, rawTotal, reported, "every completed rater is counted exactly once")
		})
	}
}

func TestGrouping_Map(t *testing.T) {
	g := Group(map[framework.Category]int{framework.Self: 1, framework.Peers: 2, framework.DirectReports: 3}, 3)

	assert.Equal(t, framework.Others, g.Map(framework.Peers))
	assert.Equal(t, framework.DirectReports, g.Map(framework.DirectReports))
	assert.Equal(t, framework.Self, g.Map(framework.Self))
	assert.Equal(t, framework.Others, g.Map(framework.Others))

	assert.True(t, g.IsVisible(framework.Others))
	assert.False(t, g.IsVisible(framework.Peers))
}

func TestGroup_DoesNotAliasInput(t *testing.T) {
	raw := map[framework.Category]int{framework.Self: 1}
	g := Group(raw, 3)
	raw[framework.Self] = 9

	assert.Equal(t, 1, g.Raw[framework.Self])
}
