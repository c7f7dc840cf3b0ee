package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/godilite/catalyst360/internal/repository/models"
)

// UpdateLeader changes the non-nil columns of u. Nothing to change is not an error.
func (s *FeedbackRepository) UpdateLeader(ctx context.Context, u models.LeaderUpdate) error {
	var (
		sets []string
		args []any
	)
	add := func(column string, v any) {
		sets = append(sets, column+" = ?")
		args = append(args, v)
	}
	if u.Name != nil {
		add("name", *u.Name)
	}
	if u.Email != nil {
		add("email", nullString(*u.Email))
	}
	if u.Dealership != nil {
		add("dealership", nullString(*u.Dealership))
	}
	if u.Cohort != nil {
		add("cohort", nullString(*u.Cohort))
	}
	if u.AssessmentYear != nil {
		add("assessment_year", *u.AssessmentYear)
	}
	if u.Status != nil {
		add("status", *u.Status)
	}

	if len(sets) == 0 {
		var id int64
		err := s.db.QueryRowContext(ctx, `SELECT id FROM leaders WHERE id = ?`, u.ID).Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("query UpdateLeader: %w", err)
		}
		return nil
	}

	args = append(args, u.ID)
	res, err := s.db.ExecContext(ctx, `UPDATE leaders SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("update leader: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteLeader marks a leader inactive. Raters and responses are kept.
func (s *FeedbackRepository) DeleteLeader(ctx context.Context, leaderID int64) error {
	inactive := "inactive"
	return s.UpdateLeader(ctx, models.LeaderUpdate{ID: leaderID, Status: &inactive})
}

func (s *FeedbackRepository) AddCohort(ctx context.Context, name string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO cohorts (name) VALUES (?)`, name)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: cohorts.name") {
			return 0, ErrAlreadyExists
		}
		return 0, fmt.Errorf("insert cohort: %w", err)
	}
	return res.LastInsertId()
}

func (s *FeedbackRepository) ListCohorts(ctx context.Context) ([]models.Cohort, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, created_at FROM cohorts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query ListCohorts: %w", err)
	}
	defer rows.Close()

	var results []models.Cohort
	for rows.Next() {
		var c models.Cohort
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ListCohorts row: %w", err)
		}
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListCohorts: %w", err)
	}
	return results, nil
}

// DeleteCohort removes the cohort name only; leaders keep their cohort column.
func (s *FeedbackRepository) DeleteCohort(ctx context.Context, cohortID int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM cohorts WHERE id = ?`, cohortID)
	if err != nil {
		return fmt.Errorf("delete cohort: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// DashboardStats counts active leaders, all raters, completed raters and the
// leaders with at least minCompleted completed raters.
func (s *FeedbackRepository) DashboardStats(ctx context.Context, minCompleted int) (models.DashboardStats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM leaders WHERE status = 'active'),
			(SELECT COUNT(*) FROM raters),
			(SELECT COUNT(*) FROM raters WHERE completed_at IS NOT NULL),
			(SELECT COUNT(*) FROM (
				SELECT leader_id FROM raters
				WHERE completed_at IS NOT NULL
				GROUP BY leader_id
				HAVING COUNT(*) >= ?
			))
	`

	var st models.DashboardStats
	if err := s.db.QueryRowContext(ctx, query, minCompleted).Scan(
		&st.TotalLeaders, &st.TotalRaters, &st.CompletedResponses, &st.ReadyForReport); err != nil {
		return models.DashboardStats{}, fmt.Errorf("query DashboardStats: %w", err)
	}
	return st, nil
}
