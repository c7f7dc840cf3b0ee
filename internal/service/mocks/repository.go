package mocks

import (
	"context"
	"errors"

	"github.com/godilite/catalyst360/internal/repository/models"
)

// MockFeedbackRepository is a mock implementation of the FeedbackRepository interface
// for testing the service layer.
type MockFeedbackRepository struct {
	CompletedResponsesFunc func(ctx context.Context, leaderID int64) (models.CompletedResponses, error)
	GetLeaderFunc          func(ctx context.Context, leaderID int64) (models.Leader, error)
	GetRaterByTokenFunc    func(ctx context.Context, token string) (models.Rater, error)
	SubmitFunc             func(ctx context.Context, raterID int64, answers []models.StoredAnswer, comments []models.CommentInput) error
	SaveDraftFunc          func(ctx context.Context, raterID int64, answers []models.StoredAnswer, comments []models.CommentInput) error
	SaveSnapshotFunc       func(ctx context.Context, leaderID int64, year int, data []byte) error
	GetSnapshotFunc        func(ctx context.Context, leaderID int64, year int) ([]byte, error)
}

// CompletedResponses implements the FeedbackRepository interface
func (m *MockFeedbackRepository) CompletedResponses(ctx context.Context, leaderID int64) (models.CompletedResponses, error) {
	if m.CompletedResponsesFunc != nil {
		return m.CompletedResponsesFunc(ctx, leaderID)
	}
	return models.CompletedResponses{}, errors.New("CompletedResponsesFunc not implemented")
}

// GetLeader implements the FeedbackRepository interface
func (m *MockFeedbackRepository) GetLeader(ctx context.Context, leaderID int64) (models.Leader, error) {
	if m.GetLeaderFunc != nil {
		return m.GetLeaderFunc(ctx, leaderID)
	}
	return models.Leader{}, errors.New("GetLeaderFunc not implemented")
}

// GetRaterByToken implements the FeedbackRepository interface
func (m *MockFeedbackRepository) GetRaterByToken(ctx context.Context, token string) (models.Rater, error) {
	if m.GetRaterByTokenFunc != nil {
		return m.GetRaterByTokenFunc(ctx, token)
	}
	return models.Rater{}, errors.New("GetRaterByTokenFunc not implemented")
}

// Submit implements the FeedbackRepository interface
func (m *MockFeedbackRepository) Submit(ctx context.Context, raterID int64, answers []models.StoredAnswer, comments []models.CommentInput) error {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, raterID, answers, comments)
	}
	return errors.New("SubmitFunc not implemented")
}

// SaveDraft implements the FeedbackRepository interface
func (m *MockFeedbackRepository) SaveDraft(ctx context.Context, raterID int64, answers []models.StoredAnswer, comments []models.CommentInput) error {
	if m.SaveDraftFunc != nil {
		return m.SaveDraftFunc(ctx, raterID, answers, comments)
	}
	return errors.New("SaveDraftFunc not implemented")
}

// SaveSnapshot implements the FeedbackRepository interface
func (m *MockFeedbackRepository) SaveSnapshot(ctx context.Context, leaderID int64, year int, data []byte) error {
	if m.SaveSnapshotFunc != nil {
		return m.SaveSnapshotFunc(ctx, leaderID, year, data)
	}
	return errors.New("SaveSnapshotFunc not implemented")
}

// GetSnapshot implements the FeedbackRepository interface
func (m *MockFeedbackRepository) GetSnapshot(ctx context.Context, leaderID int64, year int) ([]byte, error) {
	if m.GetSnapshotFunc != nil {
		return m.GetSnapshotFunc(ctx, leaderID, year)
	}
	return nil, errors.New("GetSnapshotFunc not implemented")
}
