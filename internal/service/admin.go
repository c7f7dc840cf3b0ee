package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/godilite/catalyst360/internal/framework"
	"github.com/godilite/catalyst360/internal/repository"
	"github.com/godilite/catalyst360/internal/repository/models"
	"go.uber.org/zap"
)

const (
	leaderActive   = "active"
	leaderInactive = "inactive"
)

// AdminService manages cohorts, leaders and rater nominations.
type AdminService struct {
	storage AdminRepository
	policy  framework.Policy
	logger  *zap.Logger
}

func NewAdminService(storage AdminRepository, policy framework.Policy, logger *zap.Logger) *AdminService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &AdminService{
		storage: storage,
		policy:  policy,
		logger:  logger.Named("admin"),
	}
}

func (s *AdminService) AddCohort(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: cohort name is required", ErrInvalidRequest)
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	id, err := s.storage.AddCohort(dbCtx, name)
	if errors.Is(err, repository.ErrAlreadyExists) {
		return 0, fmt.Errorf("%w: %q", ErrCohortExists, name)
	}
	if err != nil {
		return 0, s.storageError(err, ErrCohortNotFound)
	}
	s.logger.Info("cohort added", zap.Int64("cohort_id", id), zap.String("name", name))
	return id, nil
}

func (s *AdminService) ListCohorts(ctx context.Context) ([]Cohort, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.storage.ListCohorts(dbCtx)
	if err != nil {
		return nil, s.storageError(err, ErrCohortNotFound)
	}
	out := make([]Cohort, 0, len(rows))
	for _, c := range rows {
		out = append(out, Cohort{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt})
	}
	return out, nil
}

// DeleteCohort removes a cohort. Leaders assigned to it keep the name.
func (s *AdminService) DeleteCohort(ctx context.Context, cohortID int64) error {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := s.storage.DeleteCohort(dbCtx, cohortID); err != nil {
		return s.storageError(err, ErrCohortNotFound)
	}
	s.logger.Info("cohort deleted", zap.Int64("cohort_id", cohortID))
	return nil
}

func (s *AdminService) AddLeader(ctx context.Context, l NewLeader) (int64, error) {
	name := strings.TrimSpace(l.Name)
	if name == "" {
		return 0, fmt.Errorf("%w: leader name is required", ErrInvalidRequest)
	}
	if l.AssessmentYear < 0 {
		return 0, fmt.Errorf("%w: assessment year must not be negative", ErrInvalidRequest)
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	id, err := s.storage.AddLeader(dbCtx, models.Leader{
		Name:           name,
		Email:          strings.TrimSpace(l.Email),
		Dealership:     strings.TrimSpace(l.Dealership),
		Cohort:         strings.TrimSpace(l.Cohort),
		AssessmentYear: l.AssessmentYear,
	})
	if err != nil {
		return 0, s.storageError(err, ErrLeaderNotFound)
	}
	s.logger.Info("leader added", zap.Int64("leader_id", id))
	return id, nil
}

func (s *AdminService) UpdateLeader(ctx context.Context, leaderID int64, c LeaderChanges) error {
	u := models.LeaderUpdate{
		ID:             leaderID,
		Email:          trimmed(c.Email),
		Dealership:     trimmed(c.Dealership),
		Cohort:         trimmed(c.Cohort),
		AssessmentYear: c.AssessmentYear,
	}
	if c.Name != nil {
		u.Name = trimmed(c.Name)
		if *u.Name == "" {
			return fmt.Errorf("%w: leader name must not be empty", ErrInvalidRequest)
		}
	}
	if c.AssessmentYear != nil && *c.AssessmentYear <= 0 {
		return fmt.Errorf("%w: assessment year must be positive", ErrInvalidRequest)
	}
	if c.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*c.Status))
		if status != leaderActive && status != leaderInactive {
			return fmt.Errorf("%w: status must be %q or %q", ErrInvalidRequest, leaderActive, leaderInactive)
		}
		u.Status = &status
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := s.storage.UpdateLeader(dbCtx, u); err != nil {
		return s.storageError(err, ErrLeaderNotFound)
	}
	return nil
}

// DeleteLeader deactivates a leader. Raters and stored responses are kept.
func (s *AdminService) DeleteLeader(ctx context.Context, leaderID int64) error {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := s.storage.DeleteLeader(dbCtx, leaderID); err != nil {
		return s.storageError(err, ErrLeaderNotFound)
	}
	s.logger.Info("leader deactivated", zap.Int64("leader_id", leaderID))
	return nil
}

// ListLeaders returns active leaders, optionally only those of one cohort.
func (s *AdminService) ListLeaders(ctx context.Context, cohort string) ([]LeaderSummary, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	var (
		rows []models.LeaderSummary
		err  error
	)
	if cohort = strings.TrimSpace(cohort); cohort != "" {
		rows, err = s.storage.ListLeadersByCohort(dbCtx, cohort)
	} else {
		rows, err = s.storage.ListLeaders(dbCtx)
	}
	if err != nil {
		return nil, s.storageError(err, ErrLeaderNotFound)
	}

	out := make([]LeaderSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, LeaderSummary{
			ID:              r.ID,
			Name:            r.Name,
			Email:           r.Email,
			Dealership:      r.Dealership,
			Cohort:          r.Cohort,
			AssessmentYear:  r.AssessmentYear,
			Status:          r.Status,
			CreatedAt:       r.CreatedAt,
			TotalRaters:     r.TotalRaters,
			CompletedRaters: r.CompletedRaters,
			SelfCompleted:   r.SelfCompleted > 0,
			ReadyForReport:  r.CompletedRaters >= s.policy.MinResponsesForReport,
		})
	}
	return out, nil
}

// AddRater nominates a rater for a leader and returns the form token.
func (s *AdminService) AddRater(ctx context.Context, r NewRater) (Nomination, error) {
	category, err := framework.ParseCategory(strings.TrimSpace(r.Relationship))
	if err != nil {
		return Nomination{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	leader, err := s.storage.GetLeader(dbCtx, r.LeaderID)
	if err != nil {
		return Nomination{}, s.storageError(err, ErrLeaderNotFound)
	}
	if leader.Status == leaderInactive {
		return Nomination{}, fmt.Errorf("%w: leader %d is inactive", ErrLeaderNotFound, r.LeaderID)
	}

	id, token, err := s.storage.AddRater(dbCtx, models.Rater{
		LeaderID:     r.LeaderID,
		Name:         strings.TrimSpace(r.Name),
		Email:        strings.TrimSpace(r.Email),
		Relationship: category.String(),
	})
	if err != nil {
		return Nomination{}, s.storageError(err, ErrRaterNotFound)
	}

	s.logger.Info("rater nominated",
		zap.Int64("leader_id", r.LeaderID),
		zap.Int64("rater_id", id),
		zap.Stringer("relationship", category))
	return Nomination{RaterID: id, Token: token}, nil
}

func (s *AdminService) ListRaters(ctx context.Context, leaderID int64) ([]RaterInfo, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if _, err := s.storage.GetLeader(dbCtx, leaderID); err != nil {
		return nil, s.storageError(err, ErrLeaderNotFound)
	}
	rows, err := s.storage.ListRaters(dbCtx, leaderID)
	if err != nil {
		return nil, s.storageError(err, ErrRaterNotFound)
	}

	out := make([]RaterInfo, 0, len(rows))
	for _, r := range rows {
		category, err := framework.ParseCategory(r.Relationship)
		if err != nil {
			return nil, fmt.Errorf("%w: rater %d: %v", ErrMalformedResponse, r.ID, err)
		}
		out = append(out, RaterInfo{
			ID:           r.ID,
			LeaderID:     r.LeaderID,
			Name:         r.Name,
			Email:        r.Email,
			Relationship: category,
			Token:        r.Token,
			CreatedAt:    r.CreatedAt,
			CompletedAt:  r.CompletedAt,
		})
	}
	return out, nil
}

// DeleteRater removes a rater with their answers and returns the affected leader.
func (s *AdminService) DeleteRater(ctx context.Context, raterID int64) (int64, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	leaderID, err := s.storage.DeleteRater(dbCtx, raterID)
	if err != nil {
		return 0, s.storageError(err, ErrRaterNotFound)
	}
	s.logger.Info("rater deleted", zap.Int64("leader_id", leaderID), zap.Int64("rater_id", raterID))
	return leaderID, nil
}

// DashboardStats counts roster progress. A leader is ready for a report once
// MinResponsesForReport raters have completed.
func (s *AdminService) DashboardStats(ctx context.Context) (DashboardStats, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	st, err := s.storage.DashboardStats(dbCtx, s.policy.MinResponsesForReport)
	if err != nil {
		return DashboardStats{}, s.storageError(err, ErrLeaderNotFound)
	}

	out := DashboardStats{
		TotalLeaders:       st.TotalLeaders,
		TotalRaters:        st.TotalRaters,
		CompletedResponses: st.CompletedResponses,
		ReadyForReport:     st.ReadyForReport,
	}
	if st.TotalRaters > 0 {
		out.CompletionRate = round(100*float64(st.CompletedResponses)/float64(st.TotalRaters), 1)
	}
	return out, nil
}

func (s *AdminService) storageError(err, notFound error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound
	}
	s.logger.Error("roster storage failure", zap.Error(err))
	return fmt.Errorf("%w: %v", ErrStorageFailure, err)
}

func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}
