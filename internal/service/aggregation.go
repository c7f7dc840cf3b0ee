package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/godilite/catalyst360/internal/framework"
	"github.com/godilite/catalyst360/internal/repository/models"
)

// Responses is the typed form of everything stored for a leader's completed raters.
type Responses struct {
	Counts   map[framework.Category]int
	Values   []ItemValue
	Comments []RaterComment
}

type ItemValue struct {
	Item     int
	Category framework.Category
	Answer   framework.Answer
}

type RaterComment struct {
	Section  string
	Category framework.Category
	Text     string
}

// ParseResponses converts stored rows into typed responses. Any row with an
// unknown category, an unknown item or an impossible value fails the whole parse.
func ParseResponses(fw *framework.Framework, rows models.CompletedResponses) (Responses, error) {
	out := Responses{
		Counts:   make(map[framework.Category]int, len(rows.Counts)),
		Values:   make([]ItemValue, 0, len(rows.Values)),
		Comments: make([]RaterComment, 0, len(rows.Comments)),
	}

	for _, rc := range rows.Counts {
		c, err := framework.ParseCategory(rc.Relationship)
		if err != nil {
			return Responses{}, fmt.Errorf("%w: response count: %v", ErrMalformedResponse, err)
		}
		out.Counts[c] += rc.Count
	}

	for _, v := range rows.Values {
		c, err := framework.ParseCategory(v.Relationship)
		if err != nil {
			return Responses{}, fmt.Errorf("%w: item %d: %v", ErrMalformedResponse, v.ItemNumber, err)
		}
		if !fw.HasItem(v.ItemNumber) {
			return Responses{}, fmt.Errorf("%w: item %d is not in the framework", ErrMalformedResponse, v.ItemNumber)
		}
		a, err := framework.AnswerFromStored(v.Score, v.NoOpportunity, v.NotApplicable)
		if err != nil {
			return Responses{}, fmt.Errorf("%w: item %d (%s): %v", ErrMalformedResponse, v.ItemNumber, c, err)
		}
		out.Values = append(out.Values, ItemValue{Item: v.ItemNumber, Category: c, Answer: a})
	}

	for _, cm := range rows.Comments {
		c, err := framework.ParseCategory(cm.Relationship)
		if err != nil {
			return Responses{}, fmt.Errorf("%w: comment in %q: %v", ErrMalformedResponse, cm.Section, err)
		}
		out.Comments = append(out.Comments, RaterComment{Section: cm.Section, Category: c, Text: cm.Text})
	}

	return out, nil
}

type scoreAcc struct {
	sum   int
	count int
}

// Aggregate computes the anonymized per-item, per-dimension and overall results.
// It performs no I/O and returns identical output for identical input.
func Aggregate(fw *framework.Framework, policy framework.Policy, leaderID int64, in Responses) (Result, Comments, error) {
	grouping := Group(in.Counts, policy.AnonymityThreshold)

	scores := make(map[int]map[framework.Category]*scoreAcc)
	noOpp := make(map[int]map[framework.Category]int)

	for _, v := range in.Values {
		if !fw.HasItem(v.Item) {
			return Result{}, Comments{}, fmt.Errorf("%w: item %d is not in the framework", ErrMalformedResponse, v.Item)
		}
		if !v.Answer.Valid() {
			return Result{}, Comments{}, fmt.Errorf("%w: item %d has no answer", ErrMalformedResponse, v.Item)
		}
		group, err := mapCategory(grouping, v.Category)
		if err != nil {
			return Result{}, Comments{}, fmt.Errorf("item %d: %w", v.Item, err)
		}

		switch {
		case v.Answer.IsNotApplicable():
			continue
		case v.Answer.IsNoOpportunity():
			if noOpp[v.Item] == nil {
				noOpp[v.Item] = make(map[framework.Category]int)
			}
			noOpp[v.Item][group]++
		default:
			n, _ := v.Answer.Value()
			if scores[v.Item] == nil {
				scores[v.Item] = make(map[framework.Category]*scoreAcc)
			}
			acc := scores[v.Item][group]
			if acc == nil {
				acc = &scoreAcc{}
				scores[v.Item][group] = acc
			}
			acc.sum += n
			acc.count++
		}
	}

	result := Result{
		LeaderID:          leaderID,
		ByItem:            make(map[int]ItemResult, len(fw.Items())),
		ByDimension:       make(map[string]DimensionResult, len(fw.Dimensions())),
		Overall:           make(map[int]ItemResult, len(fw.OverallItems())),
		ResponseCounts:    grouping.Counts,
		RawResponseCounts: grouping.Raw,
		NoOpportunity:     make(map[int]NoOpportunitySummary),
		VisibleGroups:     nonNil(grouping.Visible),
		HiddenGroups:      nonNil(grouping.Hidden),
		AnonymityApplied:  grouping.AnonymityApplied(),
	}

	for _, n := range fw.Items() {
		item := ItemResult{
			Number: n,
			Text:   fw.ItemText(n),
			Scores: make(map[framework.Category]float64),
		}
		for c, acc := range scores[n] {
			item.Scores[c] = round(float64(acc.sum)/float64(acc.count), 1)
		}
		item.Combined, item.Gap = combine(grouping, item.Scores)
		result.ByItem[n] = item

		if counts := noOpp[n]; len(counts) > 0 {
			summary := NoOpportunitySummary{Text: item.Text, Groups: []framework.Category{}}
			for _, c := range framework.Categories() {
				for i := 0; i < counts[c]; i++ {
					summary.Groups = append(summary.Groups, c)
				}
				summary.Count += counts[c]
			}
			result.NoOpportunity[n] = summary
		}
	}

	for _, d := range fw.Dimensions() {
		result.ByDimension[d.Name] = rollUp(d, result.ByItem)
	}
	for _, n := range fw.OverallItems() {
		result.Overall[n] = result.ByItem[n]
	}

	comments, err := attributeComments(grouping, in.Comments)
	if err != nil {
		return Result{}, Comments{}, err
	}
	return result, comments, nil
}

// mapCategory applies the anonymity mapping and refuses answers from a category
// that the completed counts do not account for.
func mapCategory(g Grouping, c framework.Category) (framework.Category, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %v", ErrMalformedResponse, framework.ErrUnknownCategory)
	}
	mapped := g.Map(c)
	if !g.IsVisible(mapped) {
		return 0, fmt.Errorf("%w: %s answer without a completed %s rater", ErrMalformedResponse, c, c)
	}
	return mapped, nil
}

// combine returns the mean of the visible non-Self scores and Self minus that mean.
func combine(g Grouping, scores map[framework.Category]float64) (*float64, *float64) {
	var others []float64
	for _, c := range framework.Categories() {
		if c == framework.Self || !g.IsVisible(c) {
			continue
		}
		if v, ok := scores[c]; ok {
			others = append(others, v)
		}
	}
	if len(others) == 0 {
		return nil, nil
	}

	combined := round(mean(others), 2)
	self, ok := scores[framework.Self]
	if !ok {
		return &combined, nil
	}
	gap := round(self-combined, 2)
	return &combined, &gap
}

func rollUp(d framework.Dimension, items map[int]ItemResult) DimensionResult {
	out := DimensionResult{Name: d.Name, Scores: make(map[framework.Category]float64)}

	for _, c := range framework.Categories() {
		var vals []float64
		for _, n := range d.Items() {
			if v, ok := items[n].Scores[c]; ok {
				vals = append(vals, v)
			}
		}
		if len(vals) > 0 {
			out.Scores[c] = round(mean(vals), 2)
		}
	}

	var combined []float64
	for _, n := range d.Items() {
		if v := items[n].Combined; v != nil {
			combined = append(combined, *v)
		}
	}
	if len(combined) > 0 {
		c := round(mean(combined), 2)
		out.Combined = &c
		if self, ok := out.Scores[framework.Self]; ok {
			gap := round(self-c, 2)
			out.Gap = &gap
		}
	}
	return out
}

func attributeComments(g Grouping, in []RaterComment) (Comments, error) {
	out := Comments{
		ByDimension: make(map[string][]Comment),
		Strengths:   []Comment{},
		Development: []Comment{},
	}

	for _, rc := range in {
		group, err := mapCategory(g, rc.Category)
		if err != nil {
			return Comments{}, fmt.Errorf("comment in %q: %w", rc.Section, err)
		}
		c := Comment{Category: group, Text: rc.Text}

		switch rc.Section {
		case framework.SectionStrengths:
			out.Strengths = append(out.Strengths, c)
		case framework.SectionDevelopment:
			out.Development = append(out.Development, c)
		default:
			// Sections outside the framework are kept under their own key.
			out.ByDimension[rc.Section] = append(out.ByDimension[rc.Section], c)
		}
	}

	for _, list := range out.ByDimension {
		sortComments(list)
	}
	sortComments(out.Strengths)
	sortComments(out.Development)
	return out, nil
}

// sortComments groups comments by reported category in report order.
func sortComments(list []Comment) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Category < list[j].Category
	})
}

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

func nonNil(cs []framework.Category) []framework.Category {
	if cs == nil {
		return []framework.Category{}
	}
	return cs
}
