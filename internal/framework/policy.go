package framework

import (
	"errors"
	"fmt"
)

var ErrInvalidPolicy = errors.New("invalid policy")

// Policy holds the thresholds applied during aggregation and reporting.
type Policy struct {
	// AnonymityThreshold is the minimum completed count for Peers, DRs or Others
	// to be reported as their own group.
	AnonymityThreshold    int
	HighScoreThreshold    float64
	SignificantGap        float64
	MinResponsesForReport int
}

func DefaultPolicy() Policy {
	return Policy{
		AnonymityThreshold:    3,
		HighScoreThreshold:    4.0,
		SignificantGap:        0.5,
		MinResponsesForReport: 5,
	}
}

func (p Policy) Validate() error {
	if p.AnonymityThreshold <= 0 {
		return fmt.Errorf("%w: anonymity threshold must be positive, got %d", ErrInvalidPolicy, p.AnonymityThreshold)
	}
	if p.HighScoreThreshold < MinScore || p.HighScoreThreshold > MaxScore {
		return fmt.Errorf("%w: high score threshold %.2f outside %d-%d", ErrInvalidPolicy, p.HighScoreThreshold, MinScore, MaxScore)
	}
	if p.SignificantGap < 0 {
		return fmt.Errorf("%w: significant gap must not be negative, got %.2f", ErrInvalidPolicy, p.SignificantGap)
	}
	if p.MinResponsesForReport < 1 {
		return fmt.Errorf("%w: minimum responses for report must be at least 1, got %d", ErrInvalidPolicy, p.MinResponsesForReport)
	}
	return nil
}
