package service

import (
	"encoding/json"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godilite/catalyst360/internal/framework"
	"github.com/godilite/catalyst360/internal/repository/models"
)

func TestAggregate_CombinedAndGap(t *testing.T) {
	fw := framework.Default()
	policy := framework.DefaultPolicy()

	rs := append([]testRater{
		{category: framework.Self, score: 5},
		{category: framework.Boss, score: 4},
	}, ratersOf(framework.Peers, 3, 3)...)

	result, _, err := Aggregate(fw, policy, 7, responsesOf(fw, rs...))
	require.NoError(t, err)

	item := result.ByItem[1]
	assert.Equal(t, fw.ItemText(1), item.Text)
	assert.Equal(t, map[framework.Category]float64{
		framework.Self:  5,
		framework.Boss:  4,
		framework.Peers: 3,
	}, item.Scores)
	require.NotNil(t, item.Combined)
	require.NotNil(t, item.Gap)
	assert.Equal(t, 3.5, *item.Combined)
	assert.Equal(t, 1.5, *item.Gap)

	dim := result.ByDimension["Leading Self"]
	assert.Equal(t, 5.0, dim.Scores[framework.Self])
	assert.Equal(t, 3.5, *dim.Combined)
	assert.Equal(t, 1.5, *dim.Gap)

	assert.Equal(t, int64(7), result.LeaderID)
	assert.False(t, result.AnonymityApplied)
	assert.Equal(t, 5, result.CompletedRaters())

	categories := Categorize(fw, policy, result)
	q, ok := categories.Quadrant(1)
	require.True(t, ok)
	assert.Equal(t, HiddenTalents, q)
}

func TestAggregate_ThresholdFolding(t *testing.T) {
	fw := framework.Default()
	policy := framework.DefaultPolicy()

	rs := []testRater{
		{category: framework.Self, score: 5, comments: map[string]string{framework.SectionStrengths: "self"}},
		{category: framework.Boss, score: 3},
		{category: framework.Others, score: 5},
	}
	rs = append(rs, ratersOf(framework.Peers, 2, 2)...)
	rs = append(rs, ratersOf(framework.DirectReports, 4, 4)...)
	rs[3].comments = map[string]string{framework.SectionStrengths: "peer"}
	rs[4].comments = map[string]string{framework.SectionDevelopment: "peer dev"}
	rs[5].comments = map[string]string{framework.SectionStrengths: "dr"}

	result, comments, err := Aggregate(fw, policy, 1, responsesOf(fw, rs...))
	require.NoError(t, err)

	assert.Equal(t, []framework.Category{framework.Self, framework.Boss, framework.DirectReports, framework.Others}, result.VisibleGroups)
	assert.Equal(t, []framework.Category{framework.Peers, framework.Others}, result.HiddenGroups)
	assert.True(t, result.AnonymityApplied)
	assert.Equal(t, 3, result.ResponseCounts[framework.Others])
	assert.Equal(t, 2, result.RawResponseCounts[framework.Peers])
	_, peersReported := result.ResponseCounts[framework.Peers]
	assert.False(t, peersReported)

	item := result.ByItem[1]
	assert.NotContains(t, item.Scores, framework.Peers)
	assert.Equal(t, 3.0, item.Scores[framework.Others])
	assert.Equal(t, 4.0, item.Scores[framework.DirectReports])
	assert.InDelta(t, 3.33, *item.Combined, 1e-9)
	assert.InDelta(t, 1.67, *item.Gap, 1e-9)

	assert.Equal(t, []Comment{
		{Category: framework.Self, Text: "self"},
		{Category: framework.DirectReports, Text: "dr"},
		{Category: framework.Others, Text: "peer"},
	}, comments.Strengths)
	assert.Equal(t, []Comment{{Category: framework.Others, Text: "peer dev"}}, comments.Development)
}

func TestAggregate_NoOpportunityExcludedFromMean(t *testing.T) {
	fw := framework.Default()
	policy := framework.DefaultPolicy()

	rs := []testRater{
		{category: framework.Self, score: 4},
		{category: framework.Peers, score: 4, answers: map[int]framework.Answer{1: mustScore(4)}},
		{category: framework.Peers, score: 4, answers: map[int]framework.Answer{1: mustScore(5)}},
		{category: framework.Peers, score: 4, answers: map[int]framework.Answer{1: framework.NoOpportunity()}},
	}

	result, _, err := Aggregate(fw, policy, 1, responsesOf(fw, rs...))
	require.NoError(t, err)

	assert.Equal(t, 4.5, result.ByItem[1].Scores[framework.Peers])
	assert.Equal(t, NoOpportunitySummary{
		Text:   fw.ItemText(1),
		Count:  1,
		Groups: []framework.Category{framework.Peers},
	}, result.NoOpportunity[1])
	assert.NotContains(t, result.NoOpportunity, 2)
}

func TestAggregate_NoOpportunityFromHiddenGroupReportsOthers(t *testing.T) {
	fw := framework.Default()
	policy := framework.DefaultPolicy()

	rs := []testRater{
		{category: framework.Self, score: 4},
		{category: framework.DirectReports, score: 3, answers: map[int]framework.Answer{2: framework.NoOpportunity()}},
		{category: framework.Boss, score: 3, answers: map[int]framework.Answer{2: framework.NoOpportunity()}},
	}

	result, _, err := Aggregate(fw, policy, 1, responsesOf(fw, rs...))
	require.NoError(t, err)

	assert.Equal(t, 2, result.NoOpportunity[2].Count)
	assert.Equal(t, []framework.Category{framework.Boss, framework.Others}, result.NoOpportunity[2].Groups)
}

func TestAggregate_NotApplicableIsIgnored(t *testing.T) {
	fw := framework.Default()
	policy := framework.DefaultPolicy()

	rs := []testRater{
		{category: framework.Self, score: 4, answers: map[int]framework.Answer{1: framework.NotApplicable()}},
		{category: framework.Boss, score: 2},
	}

	result, _, err := Aggregate(fw, policy, 1, responsesOf(fw, rs...))
	require.NoError(t, err)

	item := result.ByItem[1]
	assert.NotContains(t, item.Scores, framework.Self)
	require.NotNil(t, item.Combined)
	assert.Equal(t, 2.0, *item.Combined)
	assert.Nil(t, item.Gap)
	assert.Empty(t, result.NoOpportunity)

	// the dimension still has Self scores from items 2-5
	assert.Equal(t, 4.0, result.ByDimension["Leading Self"].Scores[framework.Self])
}

func TestAggregate_NoResponses(t *testing.T) {
	fw := framework.Default()
	policy := framework.DefaultPolicy()

	result, comments, err := Aggregate(fw, policy, 1, Responses{})
	require.NoError(t, err)

	assert.Len(t, result.ByItem, len(fw.Items()))
	for _, item := range result.ByItem {
		assert.Empty(t, item.Scores)
		assert.Nil(t, item.Combined)
		assert.Nil(t, item.Gap)
	}
	for _, d := range fw.Dimensions() {
		assert.Nil(t, result.ByDimension[d.Name].Combined)
	}
	assert.Equal(t, 0, result.CompletedRaters())
	assert.Equal(t, []framework.Category{framework.Self, framework.Boss}, result.VisibleGroups)
	assert.Empty(t, result.HiddenGroups)
	assert.Empty(t, comments.Strengths)
	assert.Empty(t, comments.Development)

	categories := Categorize(fw, policy, result)
	assert.Empty(t, categories.AgreedStrengths)
	assert.Empty(t, categories.GoodNews)
	assert.Empty(t, categories.DevelopmentAreas)
	assert.Empty(t, categories.HiddenTalents)
}

func TestAggregate_SelfOnly(t *testing.T) {
	fw := framework.Default()

	result, _, err := Aggregate(fw, framework.DefaultPolicy(), 1, responsesOf(fw, testRater{category: framework.Self, score: 3}))
	require.NoError(t, err)

	item := result.ByItem[10]
	assert.Equal(t, 3.0, item.Scores[framework.Self])
	assert.Nil(t, item.Combined)
	assert.Nil(t, item.Gap)
}

func TestAggregate_OverallItems(t *testing.T) {
	fw := framework.Default()

	rs := []testRater{
		{category: framework.Self, score: 4},
		{category: framework.Boss, score: 5},
	}
	result, _, err := Aggregate(fw, framework.DefaultPolicy(), 1, responsesOf(fw, rs...))
	require.NoError(t, err)

	assert.Len(t, result.Overall, 2)
	for _, n := range fw.OverallItems() {
		assert.Equal(t, result.ByItem[n], result.Overall[n])
	}
	for _, d := range fw.Dimensions() {
		for _, n := range fw.OverallItems() {
			assert.False(t, d.Contains(n))
		}
	}
}

func TestAggregate_CommentSections(t *testing.T) {
	fw := framework.Default()

	rs := []testRater{
		{category: framework.Self, score: 4, comments: map[string]string{"Building Trust": "keeps promises"}},
		{category: framework.Boss, score: 4, comments: map[string]string{"Building Trust": "reliable"}},
	}
	_, comments, err := Aggregate(fw, framework.DefaultPolicy(), 1, responsesOf(fw, rs...))
	require.NoError(t, err)

	assert.Equal(t, []Comment{
		{Category: framework.Self, Text: "keeps promises"},
		{Category: framework.Boss, Text: "reliable"},
	}, comments.ByDimension["Building Trust"])
}

func TestAggregate_Malformed(t *testing.T) {
	fw := framework.Default()
	policy := framework.DefaultPolicy()

	t.Run("answer from a category without completed raters", func(t *testing.T) {
		in := responsesOf(fw, testRater{category: framework.Self, score: 4})
		in.Values = append(in.Values, ItemValue{Item: 1, Category: framework.Peers, Answer: mustScore(2)})

		_, _, err := Aggregate(fw, policy, 1, in)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("comment from a category without completed raters", func(t *testing.T) {
		in := responsesOf(fw, testRater{category: framework.Self, score: 4})
		in.Comments = append(in.Comments, RaterComment{Section: framework.SectionStrengths, Category: framework.Boss, Text: "x"})

		_, _, err := Aggregate(fw, policy, 1, in)
		assert.NoError(t, err, "boss is always visible")

		in.Comments = append(in.Comments, RaterComment{Section: framework.SectionStrengths, Category: framework.DirectReports, Text: "x"})
		_, _, err = Aggregate(fw, policy, 1, in)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("unknown item", func(t *testing.T) {
		in := responsesOf(fw, testRater{category: framework.Self, score: 4})
		in.Values = append(in.Values, ItemValue{Item: 99, Category: framework.Self, Answer: mustScore(2)})

		_, _, err := Aggregate(fw, policy, 1, in)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("missing answer", func(t *testing.T) {
		in := responsesOf(fw, testRater{category: framework.Self, score: 4})
		in.Values = append(in.Values, ItemValue{Item: 1, Category: framework.Self})

		_, _, err := Aggregate(fw, policy, 1, in)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("unknown category", func(t *testing.T) {
		in := responsesOf(fw, testRater{category: framework.Self, score: 4})
		in.Values = append(in.Values, ItemValue{Item: 1, Category: framework.Category(42), Answer: mustScore(2)})

		_, _, err := Aggregate(fw, policy, 1, in)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}

func TestParseResponses(t *testing.T) {
	fw := framework.Default()

	t.Run("valid rows", func(t *testing.T) {
		rows := storedRowsOf(fw,
			testRater{category: framework.Self, score: 5, answers: map[int]framework.Answer{3: framework.NotApplicable()}},
			testRater{category: framework.DirectReports, score: 2, answers: map[int]framework.Answer{4: framework.NoOpportunity()}},
		)
		in, err := ParseResponses(fw, rows)
		require.NoError(t, err)

		assert.Equal(t, map[framework.Category]int{framework.Self: 1, framework.DirectReports: 1}, in.Counts)
		assert.Len(t, in.Values, 2*len(fw.Items()))
	})

	cases := []struct {
		name string
		rows models.CompletedResponses
	}{
		{
			name: "score out of range",
			rows: models.CompletedResponses{
				Counts: []models.RelationshipCount{{Relationship: "Self", Count: 1}},
				Values: []models.ItemValue{{ItemNumber: 1, Relationship: "Self", Score: intp(7)}},
			},
		},
		{
			name: "score and sentinel both set",
			rows: models.CompletedResponses{
				Counts: []models.RelationshipCount{{Relationship: "Self", Count: 1}},
				Values: []models.ItemValue{{ItemNumber: 1, Relationship: "Self", Score: intp(3), NoOpportunity: true}},
			},
		},
		{
			name: "nothing set",
			rows: models.CompletedResponses{
				Counts: []models.RelationshipCount{{Relationship: "Self", Count: 1}},
				Values: []models.ItemValue{{ItemNumber: 1, Relationship: "Self"}},
			},
		},
		{
			name: "unknown relationship in counts",
			rows: models.CompletedResponses{
				Counts: []models.RelationshipCount{{Relationship: "Friend", Count: 1}},
			},
		},
		{
			name: "unknown relationship on a value",
			rows: models.CompletedResponses{
				Values: []models.ItemValue{{ItemNumber: 1, Relationship: "Friend", Score: intp(3)}},
			},
		},
		{
			name: "unknown item",
			rows: models.CompletedResponses{
				Values: []models.ItemValue{{ItemNumber: 48, Relationship: "Self", Score: intp(3)}},
			},
		},
		{
			name: "unknown relationship on a comment",
			rows: models.CompletedResponses{
				Comments: []models.CommentRow{{Section: framework.SectionStrengths, Relationship: "", Text: "x"}},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseResponses(fw, tc.rows)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

// variedRater answers every item with a score derived from the item and seed,
// sprinkling in no-opportunity and not-applicable answers.
func variedRater(c framework.Category, seed int) testRater {
	fw := framework.Default()
	r := testRater{category: c, answers: make(map[int]framework.Answer)}
	for _, n := range fw.Items() {
		switch {
		case (n+seed)%11 == 0:
			r.answers[n] = framework.NotApplicable()
		case (n*seed)%7 == 3:
			r.answers[n] = framework.NoOpportunity()
		default:
			r.answers[n] = mustScore(1 + (n*seed+seed)%5)
		}
	}
	r.comments = map[string]string{
		framework.SectionStrengths:   fmt.Sprintf("%s strength %d", c, seed),
		framework.SectionDevelopment: fmt.Sprintf("%s development %d", c, seed),
	}
	return r
}

func invariantScenarios() map[string][]testRater {
	build := func(counts map[framework.Category]int) []testRater {
		var out []testRater
		seed := 1
		for _, c := range framework.Categories() {
			for i := 0; i < counts[c]; i++ {
				out = append(out, variedRater(c, seed))
				seed++
			}
		}
		return out
	}
	return map[string][]testRater{
		"full panel":        build(map[framework.Category]int{framework.Self: 1, framework.Boss: 1, framework.Peers: 4, framework.DirectReports: 6, framework.Others: 2}),
		"small peers":       build(map[framework.Category]int{framework.Self: 1, framework.Boss: 1, framework.Peers: 2, framework.DirectReports: 3}),
		"everything folded": build(map[framework.Category]int{framework.Self: 1, framework.Peers: 1, framework.DirectReports: 2}),
		"no self":           build(map[framework.Category]int{framework.Boss: 1, framework.Peers: 3}),
		"self only":         build(map[framework.Category]int{framework.Self: 1}),
	}
}

func TestAggregate_Invariants(t *testing.T) {
	fw := framework.Default()
	policy := framework.DefaultPolicy()

	for name, rs := range invariantScenarios() {
		t.Run(name, func(t *testing.T) {
			in := responsesOf(fw, rs...)
			result, comments, err := Aggregate(fw, policy, 1, in)
			require.NoError(t, err)

			// Others stays reported as the fold bucket even when it is hidden itself.
			hidden := make(map[framework.Category]bool)
			for _, c := range result.HiddenGroups {
				assert.Less(t, in.Counts[c], policy.AnonymityThreshold)
				assert.Greater(t, in.Counts[c], 0)
				if c != framework.Others {
					hidden[c] = true
				}
			}
			for _, c := range []framework.Category{framework.Peers, framework.DirectReports, framework.Others} {
				small := in.Counts[c] > 0 && in.Counts[c] < policy.AnonymityThreshold
				assert.Equal(t, small, slices.Contains(result.HiddenGroups, c), "%s hidden", c)
			}

			// anonymity
			for _, c := range result.VisibleGroups {
				assert.False(t, hidden[c])
			}
			for _, item := range result.ByItem {
				for c := range item.Scores {
					assert.False(t, hidden[c], "item %d reports hidden %s", item.Number, c)
				}
			}
			for _, dim := range result.ByDimension {
				for c := range dim.Scores {
					assert.False(t, hidden[c], "dimension %s reports hidden %s", dim.Name, c)
				}
			}
			for _, summary := range result.NoOpportunity {
				for _, c := range summary.Groups {
					assert.False(t, hidden[c])
				}
			}
			for _, list := range [][]Comment{comments.Strengths, comments.Development} {
				for _, cm := range list {
					assert.False(t, hidden[cm.Category])
				}
			}
			for c := range result.ResponseCounts {
				assert.False(t, hidden[c])
			}

			// count conservation
			raw, reported := 0, 0
			for _, n := range in.Counts {
				raw += n
			}
			for _, n := range result.ResponseCounts {
				reported += n
			}
			assert.Equal(t, raw, reported)
			assert.Len(t, comments.Strengths, raw)

			// score bounds and gap symmetry
			for n, item := range result.ByItem {
				for _, v := range item.Scores {
					assert.GreaterOrEqual(t, v, 1.0)
					assert.LessOrEqual(t, v, 5.0)
				}
				if item.Combined != nil {
					assert.GreaterOrEqual(t, *item.Combined, 1.0)
					assert.LessOrEqual(t, *item.Combined, 5.0)
				}
				self, hasSelf := item.Scores[framework.Self]
				if hasSelf && item.Combined != nil {
					require.NotNil(t, item.Gap, "item %d", n)
					assert.InDelta(t, round(self-*item.Combined, 2), *item.Gap, 1e-9)
				} else {
					assert.Nil(t, item.Gap, "item %d", n)
				}
			}

			// categorization covers every eligible item exactly once
			categories := Categorize(fw, policy, result)
			for _, n := range fw.Items() {
				item := result.ByItem[n]
				_, hasSelf := item.Scores[framework.Self]
				eligible := !fw.IsOverall(n) && hasSelf && item.Combined != nil

				found := 0
				for _, list := range [][]ItemSummary{categories.AgreedStrengths, categories.GoodNews, categories.DevelopmentAreas, categories.HiddenTalents} {
					for _, s := range list {
						if s.Item == n {
							found++
						}
					}
				}
				if eligible {
					assert.Equal(t, 1, found, "item %d", n)
				} else {
					assert.Equal(t, 0, found, "item %d", n)
				}
			}

			// determinism
			again, againComments, err := Aggregate(fw, policy, 1, in)
			require.NoError(t, err)
			assert.Equal(t, result, again)
			assert.Equal(t, comments, againComments)

			first, err := json.Marshal(result)
			require.NoError(t, err)
			var decoded Result
			require.NoError(t, json.Unmarshal(first, &decoded))
			second, err := json.Marshal(decoded)
			require.NoError(t, err)
			assert.JSONEq(t, string(first), string(second))
		})
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3.3, round(3.33, 1))
	assert.Equal(t, 3.67, round(11.0/3.0, 2))
	assert.Equal(t, -0.5, round(-0.5, 2))

	// halves round away from zero, not to even
	assert.Equal(t, 2.3, round(2.25, 1))
	assert.Equal(t, 0.3, round(0.25, 1))
	assert.Equal(t, -2.3, round(-2.25, 1))
	assert.Equal(t, 1.13, round(1.125, 2))
}

func TestAggregate_GroupMeanRoundsHalfUp(t *testing.T) {
	fw := framework.Default()
	policy := framework.DefaultPolicy()

	// four peer scores summing to 9 give a mean of exactly 2.25
	peers := []testRater{
		{category: framework.Peers, score: 3},
		{category: framework.Peers, score: 2},
		{category: framework.Peers, score: 2},
		{category: framework.Peers, score: 2},
	}
	rs := append([]testRater{{category: framework.Self, score: 4}}, peers...)

	result, _, err := Aggregate(fw, policy, 1, responsesOf(fw, rs...))
	require.NoError(t, err)

	assert.Equal(t, 2.3, result.ByItem[1].Scores[framework.Peers])
}
