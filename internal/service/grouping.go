package service

import "github.com/godilite/catalyst360/internal/framework"

// Grouping decides which categories are reported on their own and which are
// folded into Others. Map must be applied to every score, count and comment.
type Grouping struct {
	Visible []framework.Category
	Hidden  []framework.Category
	Counts  map[framework.Category]int
	Raw     map[framework.Category]int
}

// Group applies the anonymity threshold to completed counts per category.
// Self and Boss are always visible. Peers and DRs below the threshold are folded
// into Others. Others below the threshold is recorded as hidden too, but it is
// still reported as the fold bucket whenever its folded total is above zero.
func Group(raw map[framework.Category]int, threshold int) Grouping {
	g := Grouping{
		Counts: make(map[framework.Category]int),
		Raw:    make(map[framework.Category]int, len(raw)),
	}
	for c, n := range raw {
		g.Raw[c] = n
	}

	othersTotal := raw[framework.Others]
	for _, c := range framework.Categories() {
		n := raw[c]
		switch {
		case c.ThresholdExempt():
			g.Visible = append(g.Visible, c)
			g.Counts[c] = n
		case c == framework.Others:
			// fold target, reported after the loop
			if n > 0 && n < threshold {
				g.Hidden = append(g.Hidden, c)
			}
		case n >= threshold:
			g.Visible = append(g.Visible, c)
			g.Counts[c] = n
		case n > 0:
			g.Hidden = append(g.Hidden, c)
			othersTotal += n
		}
	}

	if othersTotal > 0 {
		g.Visible = append(g.Visible, framework.Others)
		g.Counts[framework.Others] = othersTotal
	}
	return g
}

// Map returns the category a rater's answers are reported under.
func (g Grouping) Map(c framework.Category) framework.Category {
	if c == framework.Others {
		return c
	}
	for _, h := range g.Hidden {
		if h == c {
			return framework.Others
		}
	}
	return c
}

func (g Grouping) IsVisible(c framework.Category) bool {
	for _, v := range g.Visible {
		if v == c {
			return true
		}
	}
	return false
}

// AnonymityApplied reports whether any category was folded.
func (g Grouping) AnonymityApplied() bool {
	return len(g.Hidden) > 0
}
