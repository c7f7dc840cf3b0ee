package grpc

import (
	"context"
	"time"

	"github.com/godilite/catalyst360/internal/service"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type FeedbackService interface {
	GetLeaderFeedback(ctx context.Context, leaderID int64) (service.Result, service.Comments, error)
	GetDevelopmentCategories(ctx context.Context, leaderID int64) (service.Categories, error)
	SubmitFeedback(ctx context.Context, sub service.RawSubmission) (int64, error)
	SaveDraft(ctx context.Context, sub service.RawSubmission) error
	SaveSnapshot(ctx context.Context, leaderID int64, year int) (int, error)
	GetSnapshot(ctx context.Context, leaderID int64, year int) (service.Result, error)
}

type ReportService interface {
	Prepare(ctx context.Context, leaderID int64, reportType service.ReportType) (service.ReportInput, error)
}

type AdminService interface {
	AddCohort(ctx context.Context, name string) (int64, error)
	ListCohorts(ctx context.Context) ([]service.Cohort, error)
	DeleteCohort(ctx context.Context, cohortID int64) error
	AddLeader(ctx context.Context, l service.NewLeader) (int64, error)
	UpdateLeader(ctx context.Context, leaderID int64, c service.LeaderChanges) error
	DeleteLeader(ctx context.Context, leaderID int64) error
	ListLeaders(ctx context.Context, cohort string) ([]service.LeaderSummary, error)
	AddRater(ctx context.Context, r service.NewRater) (service.Nomination, error)
	ListRaters(ctx context.Context, leaderID int64) ([]service.RaterInfo, error)
	DeleteRater(ctx context.Context, raterID int64) (int64, error)
	DashboardStats(ctx context.Context) (service.DashboardStats, error)
}
