package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godilite/catalyst360/internal/repository"
	"github.com/godilite/catalyst360/internal/repository/models"
)

func strPtr(s string) *string { return &s }

func TestRosterRepository_Cohorts(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewFeedbackRepository(setupTestDB(t))

	spring, err := repo.AddCohort(ctx, "Spring 2026")
	require.NoError(t, err)
	_, err = repo.AddCohort(ctx, "Autumn 2026")
	require.NoError(t, err)

	_, err = repo.AddCohort(ctx, "Spring 2026")
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	cohorts, err := repo.ListCohorts(ctx)
	require.NoError(t, err)
	require.Len(t, cohorts, 2)
	assert.Equal(t, "Autumn 2026", cohorts[0].Name)
	assert.Equal(t, "Spring 2026", cohorts[1].Name)
	assert.False(t, cohorts[0].CreatedAt.IsZero())

	leaderID, err := repo.AddLeader(ctx, models.Leader{Name: "Alex Morgan", Cohort: "Spring 2026"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteCohort(ctx, spring))
	assert.ErrorIs(t, repo.DeleteCohort(ctx, spring), repository.ErrNotFound)

	// leaders keep the name of a deleted cohort
	leaders, err := repo.ListLeadersByCohort(ctx, "Spring 2026")
	require.NoError(t, err)
	require.Len(t, leaders, 1)
	assert.Equal(t, leaderID, leaders[0].ID)
}

func TestRosterRepository_Leaders(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewFeedbackRepository(setupTestDB(t))

	alex, err := repo.AddLeader(ctx, models.Leader{Name: "Alex Morgan", Email: "alex@example.com", Cohort: "Spring"})
	require.NoError(t, err)
	blair, err := repo.AddLeader(ctx, models.Leader{Name: "Blair Chen", Cohort: "Autumn"})
	require.NoError(t, err)
	_, err = repo.AddLeader(ctx, models.Leader{Name: "Casey Diaz"})
	require.NoError(t, err)

	t.Run("filter by cohort", func(t *testing.T) {
		leaders, err := repo.ListLeadersByCohort(ctx, "Spring")
		require.NoError(t, err)
		require.Len(t, leaders, 1)
		assert.Equal(t, "Alex Morgan", leaders[0].Name)

		leaders, err = repo.ListLeadersByCohort(ctx, "Winter")
		require.NoError(t, err)
		assert.Empty(t, leaders)
	})

	t.Run("update changes only given columns", func(t *testing.T) {
		year := 2
		require.NoError(t, repo.UpdateLeader(ctx, models.LeaderUpdate{
			ID:             alex,
			Name:           strPtr("Alexandra Morgan"),
			Email:          strPtr(""),
			Cohort:         strPtr("Autumn"),
			AssessmentYear: &year,
		}))

		l, err := repo.GetLeader(ctx, alex)
		require.NoError(t, err)
		assert.Equal(t, "Alexandra Morgan", l.Name)
		assert.Equal(t, "", l.Email)
		assert.Equal(t, "Autumn", l.Cohort)
		assert.Equal(t, 2, l.AssessmentYear)
		assert.Equal(t, "active", l.Status)

		leaders, err := repo.ListLeadersByCohort(ctx, "Autumn")
		require.NoError(t, err)
		require.Len(t, leaders, 2)
		assert.Equal(t, "Alexandra Morgan", leaders[0].Name)
		assert.Equal(t, "Blair Chen", leaders[1].Name)
	})

	t.Run("update unknown leader", func(t *testing.T) {
		assert.ErrorIs(t, repo.UpdateLeader(ctx, models.LeaderUpdate{ID: 999, Name: strPtr("x")}), repository.ErrNotFound)
		assert.ErrorIs(t, repo.UpdateLeader(ctx, models.LeaderUpdate{ID: 999}), repository.ErrNotFound)
		assert.NoError(t, repo.UpdateLeader(ctx, models.LeaderUpdate{ID: blair}))
	})

	t.Run("delete is a soft delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteLeader(ctx, blair))

		leaders, err := repo.ListLeaders(ctx)
		require.NoError(t, err)
		require.Len(t, leaders, 2)
		for _, l := range leaders {
			assert.NotEqual(t, blair, l.ID)
		}

		l, err := repo.GetLeader(ctx, blair)
		require.NoError(t, err)
		assert.Equal(t, "inactive", l.Status)

		assert.ErrorIs(t, repo.DeleteLeader(ctx, 999), repository.ErrNotFound)
	})
}

func TestRosterRepository_DashboardStats(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewFeedbackRepository(setupTestDB(t))

	st, err := repo.DashboardStats(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, models.DashboardStats{}, st)

	ready, err := repo.AddLeader(ctx, models.Leader{Name: "Ready"})
	require.NoError(t, err)
	partial, err := repo.AddLeader(ctx, models.Leader{Name: "Partial"})
	require.NoError(t, err)
	gone, err := repo.AddLeader(ctx, models.Leader{Name: "Gone"})
	require.NoError(t, err)
	require.NoError(t, repo.DeleteLeader(ctx, gone))

	submit := func(leaderID int64, rel string) {
		id := addRater(t, repo, leaderID, rel)
		require.NoError(t, repo.Submit(ctx, id, []models.StoredAnswer{{ItemNumber: 1, Score: score(4)}}, nil))
	}
	for _, rel := range []string{"Self", "Boss", "Peers", "Peers", "Peers"} {
		submit(ready, rel)
	}
	addRater(t, repo, ready, "DRs")
	submit(partial, "Self")
	submit(partial, "Boss")

	st, err = repo.DashboardStats(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, models.DashboardStats{
		TotalLeaders:       2,
		TotalRaters:        8,
		CompletedResponses: 7,
		ReadyForReport:     1,
	}, st)

	st, err = repo.DashboardStats(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, st.ReadyForReport)
}

func TestRosterRepository_DeleteRaterRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT leader_id FROM raters").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"leader_id"}).AddRow(9))
	mock.ExpectExec("DELETE FROM ratings").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("DELETE FROM comments").
		WithArgs(int64(3)).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	repo := repository.NewFeedbackRepository(db)
	_, err = repo.DeleteRater(context.Background(), 3)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}
