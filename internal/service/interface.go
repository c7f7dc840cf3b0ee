package service

import (
	"context"

	"github.com/godilite/catalyst360/internal/repository/models"
)

// FeedbackRepository defines the Response Store operations the service needs.
type FeedbackRepository interface {
	CompletedResponses(ctx context.Context, leaderID int64) (models.CompletedResponses, error)
	GetLeader(ctx context.Context, leaderID int64) (models.Leader, error)
	GetRaterByToken(ctx context.Context, token string) (models.Rater, error)
	Submit(ctx context.Context, raterID int64, answers []models.StoredAnswer, comments []models.CommentInput) error
	SaveDraft(ctx context.Context, raterID int64, answers []models.StoredAnswer, comments []models.CommentInput) error
	SaveSnapshot(ctx context.Context, leaderID int64, year int, data []byte) error
	GetSnapshot(ctx context.Context, leaderID int64, year int) ([]byte, error)
}

// AdminRepository defines the roster operations behind leader and rater management.
type AdminRepository interface {
	AddLeader(ctx context.Context, l models.Leader) (int64, error)
	GetLeader(ctx context.Context, leaderID int64) (models.Leader, error)
	UpdateLeader(ctx context.Context, u models.LeaderUpdate) error
	DeleteLeader(ctx context.Context, leaderID int64) error
	ListLeaders(ctx context.Context) ([]models.LeaderSummary, error)
	ListLeadersByCohort(ctx context.Context, cohort string) ([]models.LeaderSummary, error)
	AddRater(ctx context.Context, r models.Rater) (int64, string, error)
	ListRaters(ctx context.Context, leaderID int64) ([]models.Rater, error)
	DeleteRater(ctx context.Context, raterID int64) (int64, error)
	AddCohort(ctx context.Context, name string) (int64, error)
	ListCohorts(ctx context.Context) ([]models.Cohort, error)
	DeleteCohort(ctx context.Context, cohortID int64) error
	DashboardStats(ctx context.Context, minCompleted int) (models.DashboardStats, error)
}
