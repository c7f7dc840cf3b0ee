package framework

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	MinScore = 1
	MaxScore = 5

	noOpportunityToken = "NO"
	notApplicableToken = "NA"
)

// ErrInvalidAnswer is returned for values that are neither a 1-5 score nor a sentinel.
var ErrInvalidAnswer = errors.New("invalid answer")

type AnswerKind int

const (
	KindScore AnswerKind = iota + 1
	KindNoOpportunity
	KindNotApplicable
)

// Answer is one rater's response to one item. The zero value is not a valid answer.
type Answer struct {
	kind  AnswerKind
	score int
}

// Score builds a numeric answer.
func Score(v int) (Answer, error) {
	if v < MinScore || v > MaxScore {
		return Answer{}, fmt.Errorf("%w: score %d outside %d-%d", ErrInvalidAnswer, v, MinScore, MaxScore)
	}
	return Answer{kind: KindScore, score: v}, nil
}

func NoOpportunity() Answer { return Answer{kind: KindNoOpportunity} }

func NotApplicable() Answer { return Answer{kind: KindNotApplicable} }

// ParseAnswer accepts the form values "1".."5", "NO" and "NA".
func ParseAnswer(s string) (Answer, error) {
	s = strings.TrimSpace(s)
	switch strings.ToUpper(s) {
	case noOpportunityToken:
		return NoOpportunity(), nil
	case notApplicableToken:
		return NotApplicable(), nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Answer{}, fmt.Errorf("%w: %q", ErrInvalidAnswer, s)
	}
	return Score(v)
}

// AnswerFromStored rebuilds an answer from its stored columns.
// Rows that set more than one variant, or none, are rejected.
func AnswerFromStored(score *int, noOpportunity, notApplicable bool) (Answer, error) {
	set := 0
	if score != nil {
		set++
	}
	if noOpportunity {
		set++
	}
	if notApplicable {
		set++
	}
	if set != 1 {
		return Answer{}, fmt.Errorf("%w: stored row has %d variants set", ErrInvalidAnswer, set)
	}

	switch {
	case noOpportunity:
		return NoOpportunity(), nil
	case notApplicable:
		return NotApplicable(), nil
	default:
		return Score(*score)
	}
}

func (a Answer) Kind() AnswerKind { return a.kind }

func (a Answer) Valid() bool { return a.kind != 0 }

// Value returns the numeric score and true for score answers.
func (a Answer) Value() (int, bool) {
	if a.kind != KindScore {
		return 0, false
	}
	return a.score, true
}

func (a Answer) IsNoOpportunity() bool { return a.kind == KindNoOpportunity }

func (a Answer) IsNotApplicable() bool { return a.kind == KindNotApplicable }

func (a Answer) String() string {
	switch a.kind {
	case KindScore:
		return strconv.Itoa(a.score)
	case KindNoOpportunity:
		return noOpportunityToken
	case KindNotApplicable:
		return notApplicableToken
	default:
		return "invalid"
	}
}
