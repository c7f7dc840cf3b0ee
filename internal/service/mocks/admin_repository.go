package mocks

import (
	"context"
	"errors"

	"github.com/godilite/catalyst360/internal/repository/models"
)

// MockAdminRepository is a mock implementation of the AdminRepository interface.
type MockAdminRepository struct {
	AddLeaderFunc           func(ctx context.Context, l models.Leader) (int64, error)
	GetLeaderFunc           func(ctx context.Context, leaderID int64) (models.Leader, error)
	UpdateLeaderFunc        func(ctx context.Context, u models.LeaderUpdate) error
	DeleteLeaderFunc        func(ctx context.Context, leaderID int64) error
	ListLeadersFunc         func(ctx context.Context) ([]models.LeaderSummary, error)
	ListLeadersByCohortFunc func(ctx context.Context, cohort string) ([]models.LeaderSummary, error)
	AddRaterFunc            func(ctx context.Context, r models.Rater) (int64, string, error)
	ListRatersFunc          func(ctx context.Context, leaderID int64) ([]models.Rater, error)
	DeleteRaterFunc         func(ctx context.Context, raterID int64) (int64, error)
	AddCohortFunc           func(ctx context.Context, name string) (int64, error)
	ListCohortsFunc         func(ctx context.Context) ([]models.Cohort, error)
	DeleteCohortFunc        func(ctx context.Context, cohortID int64) error
	DashboardStatsFunc      func(ctx context.Context, minCompleted int) (models.DashboardStats, error)
}

// AddLeader implements the AdminRepository interface
func (m *MockAdminRepository) AddLeader(ctx context.Context, l models.Leader) (int64, error) {
	if m.AddLeaderFunc != nil {
		return m.AddLeaderFunc(ctx, l)
	}
	return 0, errors.New("AddLeaderFunc not implemented")
}

// GetLeader implements the AdminRepository interface
func (m *MockAdminRepository) GetLeader(ctx context.Context, leaderID int64) (models.Leader, error) {
	if m.GetLeaderFunc != nil {
		return m.GetLeaderFunc(ctx, leaderID)
	}
	return models.Leader{}, errors.New("GetLeaderFunc not implemented")
}

// UpdateLeader implements the AdminRepository interface
func (m *MockAdminRepository) UpdateLeader(ctx context.Context, u models.LeaderUpdate) error {
	if m.UpdateLeaderFunc != nil {
		return m.UpdateLeaderFunc(ctx, u)
	}
	return errors.New("UpdateLeaderFunc not implemented")
}

// DeleteLeader implements the AdminRepository interface
func (m *MockAdminRepository) DeleteLeader(ctx context.Context, leaderID int64) error {
	if m.DeleteLeaderFunc != nil {
		return m.DeleteLeaderFunc(ctx, leaderID)
	}
	return errors.New("DeleteLeaderFunc not implemented")
}

// ListLeaders implements the AdminRepository interface
func (m *MockAdminRepository) ListLeaders(ctx context.Context) ([]models.LeaderSummary, error) {
	if m.ListLeadersFunc != nil {
		return m.ListLeadersFunc(ctx)
	}
	return nil, errors.New("ListLeadersFunc not implemented")
}

// ListLeadersByCohort implements the AdminRepository interface
func (m *MockAdminRepository) ListLeadersByCohort(ctx context.Context, cohort string) ([]models.LeaderSummary, error) {
	if m.ListLeadersByCohortFunc != nil {
		return m.ListLeadersByCohortFunc(ctx, cohort)
	}
	return nil, errors.New("ListLeadersByCohortFunc not implemented")
}

// AddRater implements the AdminRepository interface
func (m *MockAdminRepository) AddRater(ctx context.Context, r models.Rater) (int64, string, error) {
	if m.AddRaterFunc != nil {
		return m.AddRaterFunc(ctx, r)
	}
	return 0, "", errors.New("AddRaterFunc not implemented")
}

// ListRaters implements the AdminRepository interface
func (m *MockAdminRepository) ListRaters(ctx context.Context, leaderID int64) ([]models.Rater, error) {
	if m.ListRatersFunc != nil {
		return m.ListRatersFunc(ctx, leaderID)
	}
	return nil, errors.New("ListRatersFunc not implemented")
}

// DeleteRater implements the AdminRepository interface
func (m *MockAdminRepository) DeleteRater(ctx context.Context, raterID int64) (int64, error) {
	if m.DeleteRaterFunc != nil {
		return m.DeleteRaterFunc(ctx, raterID)
	}
	return 0, errors.New("DeleteRaterFunc not implemented")
}

// AddCohort implements the AdminRepository interface
func (m *MockAdminRepository) AddCohort(ctx context.Context, name string) (int64, error) {
	if m.AddCohortFunc != nil {
		return m.AddCohortFunc(ctx, name)
	}
	return 0, errors.New("AddCohortFunc not implemented")
}

// ListCohorts implements the AdminRepository interface
func (m *MockAdminRepository) ListCohorts(ctx context.Context) ([]models.Cohort, error) {
	if m.ListCohortsFunc != nil {
		return m.ListCohortsFunc(ctx)
	}
	return nil, errors.New("ListCohortsFunc not implemented")
}

// DeleteCohort implements the AdminRepository interface
func (m *MockAdminRepository) DeleteCohort(ctx context.Context, cohortID int64) error {
	if m.DeleteCohortFunc != nil {
		return m.DeleteCohortFunc(ctx, cohortID)
	}
	return errors.New("DeleteCohortFunc not implemented")
}

// DashboardStats implements the AdminRepository interface
func (m *MockAdminRepository) DashboardStats(ctx context.Context, minCompleted int) (models.DashboardStats, error) {
	if m.DashboardStatsFunc != nil {
		return m.DashboardStatsFunc(ctx, minCompleted)
	}
	return models.DashboardStats{}, errors.New("DashboardStatsFunc not implemented")
}
