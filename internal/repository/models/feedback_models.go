package models

import "time"

type Leader struct {
	ID             int64
	Name           string
	Email          string
	Dealership     string
	Cohort         string
	AssessmentYear int
	Status         string
	CreatedAt      time.Time
}

type LeaderSummary struct {
	Leader
	TotalRaters     int
	CompletedRaters int
	SelfCompleted   int
}

type Rater struct {
	ID           int64
	LeaderID     int64
	LeaderName   string
	Name         string
	Email        string
	Relationship string
	Token        string
	CreatedAt    time.Time
	CompletedAt  *time.Time
}

func (r Rater) Completed() bool {
	return r.CompletedAt != nil
}

type RelationshipCount struct {
	Relationship string
	Count        int
}

// ItemValue is one stored rating row belonging to a completed rater.
type ItemValue struct {
	ItemNumber    int
	Relationship  string
	Score         *int
	NoOpportunity bool
	NotApplicable bool
}

type CommentRow struct {
	Section      string
	Relationship string
	Text         string
}

// CompletedResponses is everything stored for one leader's completed raters,
// read from a single transaction.
type CompletedResponses struct {
	Counts   []RelationshipCount
	Values   []ItemValue
	Comments []CommentRow
}

// StoredAnswer is the column form of one item answer. Exactly one of Score,
// NoOpportunity or NotApplicable is set.
type StoredAnswer struct {
	ItemNumber    int
	Score         *int
	NoOpportunity bool
	NotApplicable bool
}

type CommentInput struct {
	Section string
	Text    string
}

// LeaderUpdate carries the leader columns to change. Nil fields are left as stored.
type LeaderUpdate struct {
	ID             int64
	Name           *string
	Email          *string
	Dealership     *string
	Cohort         *string
	AssessmentYear *int
	Status         *string
}

type Cohort struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

type DashboardStats struct {
	TotalLeaders       int
	TotalRaters        int
	CompletedResponses int
	ReadyForReport     int
}
