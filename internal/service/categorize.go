package service

import (
	"sort"

	"github.com/godilite/catalyst360/internal/framework"
)

// Classify places one item into a PAPU-NANU quadrant. Branches are evaluated in
// order and the first match wins; a low combined score with a large negative gap
// falls through to DevelopmentAreas.
func Classify(combined float64, gap *float64, policy framework.Policy) Quadrant {
	overRated := gap != nil && *gap > policy.SignificantGap
	underRated := gap != nil && *gap < -policy.SignificantGap

	if combined >= policy.HighScoreThreshold {
		switch {
		case underRated:
			return GoodNews
		case overRated:
			return HiddenTalents
		default:
			return AgreedStrengths
		}
	}
	if overRated {
		return HiddenTalents
	}
	return DevelopmentAreas
}

// Categorize classifies every regular item that has both a Self and a Combined
// score. Overall-effectiveness items are never categorized.
func Categorize(fw *framework.Framework, policy framework.Policy, result Result) Categories {
	out := Categories{
		AgreedStrengths:  []ItemSummary{},
		GoodNews:         []ItemSummary{},
		DevelopmentAreas: []ItemSummary{},
		HiddenTalents:    []ItemSummary{},
	}

	for _, n := range fw.Items() {
		if fw.IsOverall(n) {
			continue
		}
		item, ok := result.ByItem[n]
		if !ok || item.Combined == nil {
			continue
		}
		self, ok := item.Scores[framework.Self]
		if !ok {
			continue
		}

		summary := ItemSummary{
			Item:          n,
			Text:          item.Text,
			Self:          self,
			Combined:      *item.Combined,
			Gap:           item.Gap,
			NoOpportunity: result.NoOpportunity[n].Count,
		}

		switch Classify(summary.Combined, summary.Gap, policy) {
		case AgreedStrengths:
			out.AgreedStrengths = append(out.AgreedStrengths, summary)
		case GoodNews:
			out.GoodNews = append(out.GoodNews, summary)
		case DevelopmentAreas:
			out.DevelopmentAreas = append(out.DevelopmentAreas, summary)
		case HiddenTalents:
			out.HiddenTalents = append(out.HiddenTalents, summary)
		}
	}

	// strongest first
	sortByCombined(out.AgreedStrengths, true)
	sortByCombined(out.GoodNews, true)
	// weakest first
	sortByCombined(out.DevelopmentAreas, false)
	sortByCombined(out.HiddenTalents, false)

	return out
}

// Ties keep ascending item order.
func sortByCombined(items []ItemSummary, descending bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if descending {
			return items[i].Combined > items[j].Combined
		}
		return items[i].Combined < items[j].Combined
	})
}

// Quadrant returns which list an item was placed in, or false if it was not categorized.
func (c Categories) Quadrant(item int) (Quadrant, bool) {
	lists := []struct {
		q     Quadrant
		items []ItemSummary
	}{
		{AgreedStrengths, c.AgreedStrengths},
		{GoodNews, c.GoodNews},
		{DevelopmentAreas, c.DevelopmentAreas},
		{HiddenTalents, c.HiddenTalents},
	}
	for _, l := range lists {
		for _, s := range l.items {
			if s.Item == item {
				return l.q, true
			}
		}
	}
	return 0, false
}
