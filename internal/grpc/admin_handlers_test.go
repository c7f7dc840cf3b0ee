package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/godilite/catalyst360/internal/framework"
	"github.com/godilite/catalyst360/internal/grpc/mocks"
	"github.com/godilite/catalyst360/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func newAdminHandlers(admin *mocks.MockAdminService, cache Cacher) *GRPCHandlers {
	return NewGRPCHandlers(&mocks.MockFeedbackService{}, &mocks.MockReportService{}, admin, cache, zap.NewNop(), time.Minute)
}

// deletedKeys returns a cache that records every Delete call.
func deletedKeys() (*mocks.MockCacher, *[]string) {
	var keys []string
	return &mocks.MockCacher{
		DeleteFunc: func(ctx context.Context, k ...string) error {
			keys = append(keys, k...)
			return nil
		},
	}, &keys
}

func TestCohortHandlers(t *testing.T) {
	ctx := context.Background()

	t.Run("add", func(t *testing.T) {
		admin := &mocks.MockAdminService{
			AddCohortFunc: func(_ context.Context, name string) (int64, error) {
				assert.Equal(t, "Spring 2026", name)
				return 2, nil
			},
		}
		resp, err := newAdminHandlers(admin, nil).AddCohort(ctx, mustStruct(t, map[string]any{"name": "Spring 2026"}))
		require.NoError(t, err)
		assert.Equal(t, int64(2), resp.GetValue())
	})

	t.Run("add duplicate", func(t *testing.T) {
		admin := &mocks.MockAdminService{
			AddCohortFunc: func(context.Context, string) (int64, error) { return 0, service.ErrCohortExists },
		}
		_, err := newAdminHandlers(admin, nil).AddCohort(ctx, mustStruct(t, map[string]any{"name": "Spring"}))
		assert.Equal(t, codes.AlreadyExists, status.Code(err))
	})

	t.Run("list", func(t *testing.T) {
		admin := &mocks.MockAdminService{
			ListCohortsFunc: func(context.Context) ([]service.Cohort, error) {
				return []service.Cohort{{ID: 1, Name: "Autumn"}, {ID: 2, Name: "Spring"}}, nil
			},
		}
		resp, err := newAdminHandlers(admin, nil).ListCohorts(ctx, &emptypb.Empty{})
		require.NoError(t, err)
		cohorts := resp.GetFields()["cohorts"].GetListValue().GetValues()
		require.Len(t, cohorts, 2)
		assert.Equal(t, "Autumn", cohorts[0].GetStructValue().GetFields()["name"].GetStringValue())
	})

	t.Run("delete", func(t *testing.T) {
		admin := &mocks.MockAdminService{
			DeleteCohortFunc: func(_ context.Context, id int64) error {
				if id != 2 {
					return service.ErrCohortNotFound
				}
				return nil
			},
		}
		h := newAdminHandlers(admin, nil)
		_, err := h.DeleteCohort(ctx, wrapperspb.Int64(2))
		require.NoError(t, err)

		_, err = h.DeleteCohort(ctx, wrapperspb.Int64(3))
		assert.Equal(t, codes.NotFound, status.Code(err))

		_, err = h.DeleteCohort(ctx, wrapperspb.Int64(0))
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestLeaderHandlers(t *testing.T) {
	ctx := context.Background()

	t.Run("add", func(t *testing.T) {
		var got service.NewLeader
		admin := &mocks.MockAdminService{
			AddLeaderFunc: func(_ context.Context, l service.NewLeader) (int64, error) {
				got = l
				return 8, nil
			},
		}
		resp, err := newAdminHandlers(admin, nil).AddLeader(ctx, mustStruct(t, map[string]any{
			"name":            "Alex Morgan",
			"dealership":      "North",
			"cohort":          "Spring",
			"assessment_year": 2,
		}))
		require.NoError(t, err)
		assert.Equal(t, int64(8), resp.GetValue())
		assert.Equal(t, service.NewLeader{Name: "Alex Morgan", Dealership: "North", Cohort: "Spring", AssessmentYear: 2}, got)
	})

	t.Run("add with bad field type", func(t *testing.T) {
		_, err := newAdminHandlers(&mocks.MockAdminService{}, nil).AddLeader(ctx, mustStruct(t, map[string]any{"name": 5}))
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("update sends present fields and invalidates", func(t *testing.T) {
		var got service.LeaderChanges
		admin := &mocks.MockAdminService{
			UpdateLeaderFunc: func(_ context.Context, leaderID int64, c service.LeaderChanges) error {
				assert.Equal(t, int64(4), leaderID)
				got = c
				return nil
			},
		}
		cache, deleted := deletedKeys()
		_, err := newAdminHandlers(admin, cache).UpdateLeader(ctx, mustStruct(t, map[string]any{
			"leader_id": 4,
			"email":     "",
			"status":    "inactive",
		}))
		require.NoError(t, err)

		require.NotNil(t, got.Email)
		assert.Equal(t, "", *got.Email)
		require.NotNil(t, got.Status)
		assert.Equal(t, "inactive", *got.Status)
		assert.Nil(t, got.Name)
		assert.Nil(t, got.AssessmentYear)
		assert.Equal(t, leaderKeys(4), *deleted)
	})

	t.Run("update requires leader id", func(t *testing.T) {
		_, err := newAdminHandlers(&mocks.MockAdminService{}, nil).UpdateLeader(ctx, mustStruct(t, map[string]any{"name": "x"}))
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("failed update keeps the cache", func(t *testing.T) {
		admin := &mocks.MockAdminService{
			UpdateLeaderFunc: func(context.Context, int64, service.LeaderChanges) error { return service.ErrLeaderNotFound },
		}
		cache, deleted := deletedKeys()
		_, err := newAdminHandlers(admin, cache).UpdateLeader(ctx, mustStruct(t, map[string]any{"leader_id": 4, "name": "x"}))
		assert.Equal(t, codes.NotFound, status.Code(err))
		assert.Empty(t, *deleted)
	})

	t.Run("delete invalidates", func(t *testing.T) {
		admin := &mocks.MockAdminService{
			DeleteLeaderFunc: func(context.Context, int64) error { return nil },
		}
		cache, deleted := deletedKeys()
		_, err := newAdminHandlers(admin, cache).DeleteLeader(ctx, wrapperspb.Int64(6))
		require.NoError(t, err)
		assert.Equal(t, leaderKeys(6), *deleted)
	})

	t.Run("list with cohort filter", func(t *testing.T) {
		admin := &mocks.MockAdminService{
			ListLeadersFunc: func(_ context.Context, cohort string) ([]service.LeaderSummary, error) {
				assert.Equal(t, "Spring", cohort)
				return []service.LeaderSummary{{ID: 1, Name: "Alex", TotalRaters: 6, CompletedRaters: 5, ReadyForReport: true}}, nil
			},
		}
		resp, err := newAdminHandlers(admin, nil).ListLeaders(ctx, mustStruct(t, map[string]any{"cohort": "Spring"}))
		require.NoError(t, err)
		leaders := resp.GetFields()["leaders"].GetListValue().GetValues()
		require.Len(t, leaders, 1)
		fields := leaders[0].GetStructValue().GetFields()
		assert.Equal(t, "Alex", fields["name"].GetStringValue())
		assert.Equal(t, 5.0, fields["completed_raters"].GetNumberValue())
		assert.True(t, fields["ready_for_report"].GetBoolValue())
	})
}

func TestRaterHandlers(t *testing.T) {
	ctx := context.Background()

	t.Run("nominate returns the token", func(t *testing.T) {
		admin := &mocks.MockAdminService{
			AddRaterFunc: func(_ context.Context, r service.NewRater) (service.Nomination, error) {
				assert.Equal(t, service.NewRater{LeaderID: 3, Relationship: "Peers", Name: "Pat"}, r)
				return service.Nomination{RaterID: 10, Token: "abc123def456"}, nil
			},
		}
		resp, err := newAdminHandlers(admin, nil).AddRater(ctx, mustStruct(t, map[string]any{
			"leader_id":    3,
			"relationship": "Peers",
			"name":         "Pat",
		}))
		require.NoError(t, err)
		assert.Equal(t, 10.0, resp.GetFields()["rater_id"].GetNumberValue())
		assert.Equal(t, "abc123def456", resp.GetFields()["token"].GetStringValue())
	})

	t.Run("nominate requires relationship", func(t *testing.T) {
		_, err := newAdminHandlers(&mocks.MockAdminService{}, nil).AddRater(ctx, mustStruct(t, map[string]any{"leader_id": 3}))
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("nominate unknown relationship", func(t *testing.T) {
		admin := &mocks.MockAdminService{
			AddRaterFunc: func(context.Context, service.NewRater) (service.Nomination, error) {
				return service.Nomination{}, service.ErrInvalidRequest
			},
		}
		_, err := newAdminHandlers(admin, nil).AddRater(ctx, mustStruct(t, map[string]any{"leader_id": 3, "relationship": "Friend"}))
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("list", func(t *testing.T) {
		admin := &mocks.MockAdminService{
			ListRatersFunc: func(_ context.Context, leaderID int64) ([]service.RaterInfo, error) {
				return []service.RaterInfo{{ID: 1, LeaderID: leaderID, Relationship: framework.DirectReports, Token: "t1"}}, nil
			},
		}
		resp, err := newAdminHandlers(admin, nil).ListRaters(ctx, wrapperspb.Int64(3))
		require.NoError(t, err)
		raters := resp.GetFields()["raters"].GetListValue().GetValues()
		require.Len(t, raters, 1)
		assert.Equal(t, "DRs", raters[0].GetStructValue().GetFields()["relationship"].GetStringValue())
	})

	t.Run("delete invalidates the owning leader", func(t *testing.T) {
		admin := &mocks.MockAdminService{
			DeleteRaterFunc: func(_ context.Context, raterID int64) (int64, error) {
				assert.Equal(t, int64(10), raterID)
				return 3, nil
			},
		}
		cache, deleted := deletedKeys()
		_, err := newAdminHandlers(admin, cache).DeleteRater(ctx, wrapperspb.Int64(10))
		require.NoError(t, err)
		assert.Equal(t, leaderKeys(3), *deleted)
	})

	t.Run("delete missing rater", func(t *testing.T) {
		admin := &mocks.MockAdminService{
			DeleteRaterFunc: func(context.Context, int64) (int64, error) { return 0, service.ErrRaterNotFound },
		}
		_, err := newAdminHandlers(admin, nil).DeleteRater(ctx, wrapperspb.Int64(10))
		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}

func TestGetDashboardStats(t *testing.T) {
	admin := &mocks.MockAdminService{
		DashboardStatsFunc: func(context.Context) (service.DashboardStats, error) {
			return service.DashboardStats{TotalLeaders: 2, TotalRaters: 4, CompletedResponses: 3, ReadyForReport: 1, CompletionRate: 75}, nil
		},
	}
	resp, err := newAdminHandlers(admin, nil).GetDashboardStats(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, 2.0, resp.GetFields()["total_leaders"].GetNumberValue())
	assert.Equal(t, 75.0, resp.GetFields()["completion_rate"].GetNumberValue())
}
