package service

import (
	"github.com/godilite/catalyst360/internal/framework"
	"github.com/godilite/catalyst360/internal/repository/models"
)

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func mustScore(v int) framework.Answer {
	a, err := framework.Score(v)
	if err != nil {
		panic(err)
	}
	return a
}

// testRater is one completed rater. Items not listed in answers are rated score.
type testRater struct {
	category framework.Category
	score    int
	answers  map[int]framework.Answer
	comments map[string]string
}

// responsesOf builds typed responses where every rater answers every framework item.
func responsesOf(fw *framework.Framework, raters ...testRater) Responses {
	in := Responses{Counts: make(map[framework.Category]int)}
	for _, r := range raters {
		in.Counts[r.category]++
		for _, n := range fw.Items() {
			a, ok := r.answers[n]
			if !ok {
				if r.score == 0 {
					continue
				}
				a = mustScore(r.score)
			}
			in.Values = append(in.Values, ItemValue{Item: n, Category: r.category, Answer: a})
		}
		for _, section := range fw.CommentSections() {
			if text, ok := r.comments[section]; ok {
				in.Comments = append(in.Comments, RaterComment{Section: section, Category: r.category, Text: text})
			}
		}
	}
	return in
}

// storedRowsOf is responsesOf in the column form the repository returns.
func storedRowsOf(fw *framework.Framework, raters ...testRater) models.CompletedResponses {
	in := responsesOf(fw, raters...)

	var rows models.CompletedResponses
	for _, c := range framework.Categories() {
		if n := in.Counts[c]; n > 0 {
			rows.Counts = append(rows.Counts, models.RelationshipCount{Relationship: c.String(), Count: n})
		}
	}
	for _, v := range in.Values {
		row := models.ItemValue{
			ItemNumber:    v.Item,
			Relationship:  v.Category.String(),
			NoOpportunity: v.Answer.IsNoOpportunity(),
			NotApplicable: v.Answer.IsNotApplicable(),
		}
		if s, ok := v.Answer.Value(); ok {
			row.Score = intp(s)
		}
		rows.Values = append(rows.Values, row)
	}
	for _, c := range in.Comments {
		rows.Comments = append(rows.Comments, models.CommentRow{Section: c.Section, Relationship: c.Category.String(), Text: c.Text})
	}
	return rows
}

func ratersOf(c framework.Category, n, score int) []testRater {
	out := make([]testRater, n)
	for i := range out {
		out[i] = testRater{category: c, score: score}
	}
	return out
}
