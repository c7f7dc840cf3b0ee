package mocks

import (
	"context"
	"errors"

	"github.com/godilite/catalyst360/internal/service"
)

// MockFeedbackService is a mock implementation of the FeedbackService interface
// for testing the handler layer. It uses function-based mocking for flexibility.
type MockFeedbackService struct {
	GetLeaderFeedbackFunc        func(ctx context.Context, leaderID int64) (service.Result, service.Comments, error)
	GetDevelopmentCategoriesFunc func(ctx context.Context, leaderID int64) (service.Categories, error)
	SubmitFeedbackFunc           func(ctx context.Context, sub service.RawSubmission) (int64, error)
	SaveDraftFunc                func(ctx context.Context, sub service.RawSubmission) error
	SaveSnapshotFunc             func(ctx context.Context, leaderID int64, year int) (int, error)
	GetSnapshotFunc              func(ctx context.Context, leaderID int64, year int) (service.Result, error)
}

// GetLeaderFeedback implements the FeedbackService interface
func (m *MockFeedbackService) GetLeaderFeedback(ctx context.Context, leaderID int64) (service.Result, service.Comments, error) {
	if m.GetLeaderFeedbackFunc != nil {
		return m.GetLeaderFeedbackFunc(ctx, leaderID)
	}
	return service.Result{}, service.Comments{}, errors.New("GetLeaderFeedbackFunc not implemented")
}

// GetDevelopmentCategories implements the FeedbackService interface
func (m *MockFeedbackService) GetDevelopmentCategories(ctx context.Context, leaderID int64) (service.Categories, error) {
	if m.GetDevelopmentCategoriesFunc != nil {
		return m.GetDevelopmentCategoriesFunc(ctx, leaderID)
	}
	return service.Categories{}, errors.New("GetDevelopmentCategoriesFunc not implemented")
}

// SubmitFeedback implements the FeedbackService interface
func (m *MockFeedbackService) SubmitFeedback(ctx context.Context, sub service.RawSubmission) (int64, error) {
	if m.SubmitFeedbackFunc != nil {
		return m.SubmitFeedbackFunc(ctx, sub)
	}
	return 0, errors.New("SubmitFeedbackFunc not implemented")
}

// SaveDraft implements the FeedbackService interface
func (m *MockFeedbackService) SaveDraft(ctx context.Context, sub service.RawSubmission) error {
	if m.SaveDraftFunc != nil {
		return m.SaveDraftFunc(ctx, sub)
	}
	return errors.New("SaveDraftFunc not implemented")
}

// SaveSnapshot implements the FeedbackService interface
func (m *MockFeedbackService) SaveSnapshot(ctx context.Context, leaderID int64, year int) (int, error) {
	if m.SaveSnapshotFunc != nil {
		return m.SaveSnapshotFunc(ctx, leaderID, year)
	}
	return 0, errors.New("SaveSnapshotFunc not implemented")
}

// GetSnapshot implements the FeedbackService interface
func (m *MockFeedbackService) GetSnapshot(ctx context.Context, leaderID int64, year int) (service.Result, error) {
	if m.GetSnapshotFunc != nil {
		return m.GetSnapshotFunc(ctx, leaderID, year)
	}
	return service.Result{}, errors.New("GetSnapshotFunc not implemented")
}

// MockReportService is a mock implementation of the ReportService interface.
type MockReportService struct {
	PrepareFunc func(ctx context.Context, leaderID int64, reportType service.ReportType) (service.ReportInput, error)
}

// Prepare implements the ReportService interface
func (m *MockReportService) Prepare(ctx context.Context, leaderID int64, reportType service.ReportType) (service.ReportInput, error) {
	if m.PrepareFunc != nil {
		return m.PrepareFunc(ctx, leaderID, reportType)
	}
	return service.ReportInput{}, errors.New("PrepareFunc not implemented")
}

// MockAdminService is a mock implementation of the AdminService interface.
type MockAdminService struct {
	AddCohortFunc      func(ctx context.Context, name string) (int64, error)
	ListCohortsFunc    func(ctx context.Context) ([]service.Cohort, error)
	DeleteCohortFunc   func(ctx context.Context, cohortID int64) error
	AddLeaderFunc      func(ctx context.Context, l service.NewLeader) (int64, error)
	UpdateLeaderFunc   func(ctx context.Context, leaderID int64, c service.LeaderChanges) error
	DeleteLeaderFunc   func(ctx context.Context, leaderID int64) error
	ListLeadersFunc    func(ctx context.Context, cohort string) ([]service.LeaderSummary, error)
	AddRaterFunc       func(ctx context.Context, r service.NewRater) (service.Nomination, error)
	ListRatersFunc     func(ctx context.Context, leaderID int64) ([]service.RaterInfo, error)
	DeleteRaterFunc    func(ctx context.Context, raterID int64) (int64, error)
	DashboardStatsFunc func(ctx context.Context) (service.DashboardStats, error)
}

// AddCohort implements the AdminService interface
func (m *MockAdminService) AddCohort(ctx context.Context, name string) (int64, error) {
	if m.AddCohortFunc != nil {
		return m.AddCohortFunc(ctx, name)
	}
	return 0, errors.New("AddCohortFunc not implemented")
}

// ListCohorts implements the AdminService interface
func (m *MockAdminService) ListCohorts(ctx context.Context) ([]service.Cohort, error) {
	if m.ListCohortsFunc != nil {
		return m.ListCohortsFunc(ctx)
	}
	return nil, errors.New("ListCohortsFunc not implemented")
}

// DeleteCohort implements the AdminService interface
func (m *MockAdminService) DeleteCohort(ctx context.Context, cohortID int64) error {
	if m.DeleteCohortFunc != nil {
		return m.DeleteCohortFunc(ctx, cohortID)
	}
	return errors.New("DeleteCohortFunc not implemented")
}

// AddLeader implements the AdminService interface
func (m *MockAdminService) AddLeader(ctx context.Context, l service.NewLeader) (int64, error) {
	if m.AddLeaderFunc != nil {
		return m.AddLeaderFunc(ctx, l)
	}
	return 0, errors.New("AddLeaderFunc not implemented")
}

// UpdateLeader implements the AdminService interface
func (m *MockAdminService) UpdateLeader(ctx context.Context, leaderID int64, c service.LeaderChanges) error {
	if m.UpdateLeaderFunc != nil {
		return m.UpdateLeaderFunc(ctx, leaderID, c)
	}
	return errors.New("UpdateLeaderFunc not implemented")
}

// DeleteLeader implements the AdminService interface
func (m *MockAdminService) DeleteLeader(ctx context.Context, leaderID int64) error {
	if m.DeleteLeaderFunc != nil {
		return m.DeleteLeaderFunc(ctx, leaderID)
	}
	return errors.New("DeleteLeaderFunc not implemented")
}

// ListLeaders implements the AdminService interface
func (m *MockAdminService) ListLeaders(ctx context.Context, cohort string) ([]service.LeaderSummary, error) {
	if m.ListLeadersFunc != nil {
		return m.ListLeadersFunc(ctx, cohort)
	}
	return nil, errors.New("ListLeadersFunc not implemented")
}

// AddRater implements the AdminService interface
func (m *MockAdminService) AddRater(ctx context.Context, r service.NewRater) (service.Nomination, error) {
	if m.AddRaterFunc != nil {
		return m.AddRaterFunc(ctx, r)
	}
	return service.Nomination{}, errors.New("AddRaterFunc not implemented")
}

// ListRaters implements the AdminService interface
func (m *MockAdminService) ListRaters(ctx context.Context, leaderID int64) ([]service.RaterInfo, error) {
	if m.ListRatersFunc != nil {
		return m.ListRatersFunc(ctx, leaderID)
	}
	return nil, errors.New("ListRatersFunc not implemented")
}

// DeleteRater implements the AdminService interface
func (m *MockAdminService) DeleteRater(ctx context.Context, raterID int64) (int64, error) {
	if m.DeleteRaterFunc != nil {
		return m.DeleteRaterFunc(ctx, raterID)
	}
	return 0, errors.New("DeleteRaterFunc not implemented")
}

// DashboardStats implements the AdminService interface
func (m *MockAdminService) DashboardStats(ctx context.Context) (service.DashboardStats, error) {
	if m.DashboardStatsFunc != nil {
		return m.DashboardStatsFunc(ctx)
	}
	return service.DashboardStats{}, errors.New("DashboardStatsFunc not implemented")
}
