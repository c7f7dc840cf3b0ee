package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/godilite/catalyst360/internal/framework"
	"github.com/godilite/catalyst360/internal/repository"
	"github.com/godilite/catalyst360/internal/repository/models"
	"go.uber.org/zap"
)

const (
	dbTimeout = 2 * time.Second

	maxMissingReported = 5
)

// FeedbackService reads stored responses and runs the aggregation engine.
type FeedbackService struct {
	storage   FeedbackRepository
	framework *framework.Framework
	policy    framework.Policy
	logger    *zap.Logger
}

// NewFeedbackService creates a new FeedbackService instance.
func NewFeedbackService(storage FeedbackRepository, fw *framework.Framework, policy framework.Policy, logger *zap.Logger) *FeedbackService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if fw == nil {
		panic("framework must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &FeedbackService{
		storage:   storage,
		framework: fw,
		policy:    policy,
		logger:    logger.Named("feedback"),
	}
}

func (s *FeedbackService) Framework() *framework.Framework { return s.framework }

func (s *FeedbackService) Policy() framework.Policy { return s.policy }

// GetLeaderFeedback aggregates every completed rater of the leader.
// A leader without completed raters yields an empty, valid result.
func (s *FeedbackService) GetLeaderFeedback(ctx context.Context, leaderID int64) (Result, Comments, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if _, err := s.storage.GetLeader(dbCtx, leaderID); err != nil {
		return Result{}, Comments{}, s.storageError(err, ErrLeaderNotFound)
	}

	rows, err := s.storage.CompletedResponses(dbCtx, leaderID)
	if err != nil {
		return Result{}, Comments{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	responses, err := ParseResponses(s.framework, rows)
	if err != nil {
		s.logger.Error("stored responses failed validation", zap.Int64("leader_id", leaderID), zap.Error(err))
		return Result{}, Comments{}, err
	}

	result, comments, err := Aggregate(s.framework, s.policy, leaderID, responses)
	if err != nil {
		s.logger.Error("aggregation rejected stored data", zap.Int64("leader_id", leaderID), zap.Error(err))
		return Result{}, Comments{}, err
	}

	s.logger.Info("aggregated leader feedback",
		zap.Int64("leader_id", leaderID),
		zap.Int("completed_raters", result.CompletedRaters()),
		zap.Bool("anonymity_applied", result.AnonymityApplied))

	return result, comments, nil
}

// GetDevelopmentCategories returns the PAPU-NANU classification for a leader.
func (s *FeedbackService) GetDevelopmentCategories(ctx context.Context, leaderID int64) (Categories, error) {
	result, _, err := s.GetLeaderFeedback(ctx, leaderID)
	if err != nil {
		return Categories{}, err
	}
	return Categorize(s.framework, s.policy, result), nil
}

// SubmitFeedback validates a complete form submission and stores it atomically.
// It returns the leader the rater belongs to.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, sub RawSubmission) (int64, error) {
	rater, answers, comments, err := s.prepareSubmission(ctx, sub)
	if err != nil {
		return 0, err
	}

	if missing := s.missingItems(answers); len(missing) > 0 {
		return 0, fmt.Errorf("%w: %s", ErrIncompleteSubmission, describeMissing(missing))
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := s.storage.Submit(dbCtx, rater.ID, answers, comments); err != nil {
		return 0, s.writeError(err)
	}

	s.logger.Info("feedback submitted",
		zap.Int64("leader_id", rater.LeaderID),
		zap.Int64("rater_id", rater.ID),
		zap.Int("answers", len(answers)),
		zap.Int("comments", len(comments)))

	return rater.LeaderID, nil
}

// SaveDraft stores partial answers and comments for a rater without completing them.
func (s *FeedbackService) SaveDraft(ctx context.Context, sub RawSubmission) error {
	rater, answers, comments, err := s.prepareSubmission(ctx, sub)
	if err != nil {
		return err
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := s.storage.SaveDraft(dbCtx, rater.ID, answers, comments); err != nil {
		return s.writeError(err)
	}
	return nil
}

func (s *FeedbackService) prepareSubmission(ctx context.Context, sub RawSubmission) (models.Rater, []models.StoredAnswer, []models.CommentInput, error) {
	token := strings.TrimSpace(sub.Token)
	if token == "" {
		return models.Rater{}, nil, nil, fmt.Errorf("%w: token is required", ErrInvalidSubmission)
	}

	answers, err := s.parseRatings(sub.Ratings)
	if err != nil {
		return models.Rater{}, nil, nil, err
	}
	comments, err := s.parseComments(sub.Comments)
	if err != nil {
		return models.Rater{}, nil, nil, err
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rater, err := s.storage.GetRaterByToken(dbCtx, token)
	if err != nil {
		return models.Rater{}, nil, nil, s.storageError(err, ErrRaterNotFound)
	}
	if rater.Completed() {
		return models.Rater{}, nil, nil, ErrAlreadyCompleted
	}
	return rater, answers, comments, nil
}

func (s *FeedbackService) parseRatings(ratings map[int]string) ([]models.StoredAnswer, error) {
	items := make([]int, 0, len(ratings))
	for n := range ratings {
		items = append(items, n)
	}
	sort.Ints(items)

	out := make([]models.StoredAnswer, 0, len(items))
	for _, n := range items {
		if !s.framework.HasItem(n) {
			return nil, fmt.Errorf("%w: unknown item %d", ErrInvalidSubmission, n)
		}
		a, err := framework.ParseAnswer(ratings[n])
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrInvalidSubmission, n, err)
		}
		out = append(out, toStored(n, a))
	}
	return out, nil
}

func (s *FeedbackService) parseComments(comments map[string]string) ([]models.CommentInput, error) {
	out := make([]models.CommentInput, 0, len(comments))
	for _, section := range s.framework.CommentSections() {
		text, ok := comments[section]
		if !ok || strings.TrimSpace(text) == "" {
			continue
		}
		out = append(out, models.CommentInput{Section: section, Text: text})
	}
	for section := range comments {
		if !s.framework.IsCommentSection(section) {
			return nil, fmt.Errorf("%w: unknown comment section %q", ErrInvalidSubmission, section)
		}
	}
	return out, nil
}

func (s *FeedbackService) missingItems(answers []models.StoredAnswer) []int {
	answered := make(map[int]bool, len(answers))
	for _, a := range answers {
		answered[a.ItemNumber] = true
	}
	var missing []int
	for _, n := range s.framework.Items() {
		if !answered[n] {
			missing = append(missing, n)
		}
	}
	return missing
}

func describeMissing(missing []int) string {
	shown := missing
	if len(shown) > maxMissingReported {
		shown = shown[:maxMissingReported]
	}
	parts := make([]string, len(shown))
	for i, n := range shown {
		parts[i] = fmt.Sprintf("Q%d", n)
	}
	out := strings.Join(parts, ", ")
	if len(missing) > maxMissingReported {
		out += fmt.Sprintf(" and %d more", len(missing)-maxMissingReported)
	}
	return out
}

func toStored(item int, a framework.Answer) models.StoredAnswer {
	sa := models.StoredAnswer{
		ItemNumber:    item,
		NoOpportunity: a.IsNoOpportunity(),
		NotApplicable: a.IsNotApplicable(),
	}
	if v, ok := a.Value(); ok {
		sa.Score = &v
	}
	return sa
}

// SaveSnapshot stores the current aggregate so later years can be compared with it.
// A year of zero uses the leader's current assessment year.
func (s *FeedbackService) SaveSnapshot(ctx context.Context, leaderID int64, year int) (int, error) {
	if year <= 0 {
		leader, err := s.leader(ctx, leaderID)
		if err != nil {
			return 0, err
		}
		year = leader.AssessmentYear
	}

	result, _, err := s.GetLeaderFeedback(ctx, leaderID)
	if err != nil {
		return 0, err
	}

	data, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("encode snapshot: %w", err)
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := s.storage.SaveSnapshot(dbCtx, leaderID, year, data); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("snapshot saved", zap.Int64("leader_id", leaderID), zap.Int("year", year))
	return year, nil
}

// GetSnapshot loads the most recent snapshot stored for the leader and year.
func (s *FeedbackService) GetSnapshot(ctx context.Context, leaderID int64, year int) (Result, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	data, err := s.storage.GetSnapshot(dbCtx, leaderID, year)
	if err != nil {
		return Result{}, s.storageError(err, ErrSnapshotNotFound)
	}

	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return Result{}, fmt.Errorf("%w: snapshot for leader %d year %d: %v", ErrMalformedResponse, leaderID, year, err)
	}
	return result, nil
}

func (s *FeedbackService) leader(ctx context.Context, leaderID int64) (models.Leader, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	leader, err := s.storage.GetLeader(dbCtx, leaderID)
	if err != nil {
		return models.Leader{}, s.storageError(err, ErrLeaderNotFound)
	}
	return leader, nil
}

// storageError maps repository.ErrNotFound to notFound and everything else to ErrStorageFailure.
func (s *FeedbackService) storageError(err, notFound error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound
	}
	return fmt.Errorf("%w: %v", ErrStorageFailure, err)
}

func (s *FeedbackService) writeError(err error) error {
	switch {
	case errors.Is(err, repository.ErrAlreadyCompleted):
		return ErrAlreadyCompleted
	case errors.Is(err, repository.ErrNotFound):
		return ErrRaterNotFound
	default:
		s.logger.Error("failed to store feedback", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
}
