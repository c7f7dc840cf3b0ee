package grpc

import (
	"context"

	"github.com/godilite/catalyst360/internal/service"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func (s *GRPCHandlers) AddCohort(ctx context.Context, req *structpb.Struct) (*wrapperspb.Int64Value, error) {
	name, err := stringField(req, "name")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	id, err := s.admin.AddCohort(ctx, name)
	if err != nil {
		return nil, s.handleError(ctx, "AddCohort", err)
	}
	return wrapperspb.Int64(id), nil
}

func (s *GRPCHandlers) ListCohorts(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cohorts, err := s.admin.ListCohorts(ctx)
	if err != nil {
		return nil, s.handleError(ctx, "ListCohorts", err)
	}
	return s.respond(ctx, "ListCohorts", struct {
		Cohorts []service.Cohort `json:"cohorts"`
	}{cohorts})
}

func (s *GRPCHandlers) DeleteCohort(ctx context.Context, req *wrapperspb.Int64Value) (*emptypb.Empty, error) {
	cohortID, err := parseID(req.GetValue(), "cohort_id")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	if err := s.admin.DeleteCohort(ctx, cohortID); err != nil {
		return nil, s.handleError(ctx, "DeleteCohort", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCHandlers) AddLeader(ctx context.Context, req *structpb.Struct) (*wrapperspb.Int64Value, error) {
	l, err := parseNewLeader(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	id, err := s.admin.AddLeader(ctx, l)
	if err != nil {
		return nil, s.handleError(ctx, "AddLeader", err)
	}
	return wrapperspb.Int64(id), nil
}

// UpdateLeader changes leader details. Reports embed them, so the leader's
// cached aggregates are dropped.
func (s *GRPCHandlers) UpdateLeader(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	leaderID, err := leaderIDField(req)
	if err != nil {
		return nil, err
	}
	changes, err := parseLeaderChanges(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	if err := s.admin.UpdateLeader(ctx, leaderID, changes); err != nil {
		return nil, s.handleError(ctx, "UpdateLeader", err)
	}

	s.reads.invalidate(ctx, leaderKeys(leaderID)...)
	return &emptypb.Empty{}, nil
}

func (s *GRPCHandlers) DeleteLeader(ctx context.Context, req *wrapperspb.Int64Value) (*emptypb.Empty, error) {
	leaderID, err := parseLeaderID(req.GetValue())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	if err := s.admin.DeleteLeader(ctx, leaderID); err != nil {
		return nil, s.handleError(ctx, "DeleteLeader", err)
	}

	s.reads.invalidate(ctx, leaderKeys(leaderID)...)
	return &emptypb.Empty{}, nil
}

func (s *GRPCHandlers) ListLeaders(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	cohort, err := stringField(req, "cohort")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	leaders, err := s.admin.ListLeaders(ctx, cohort)
	if err != nil {
		return nil, s.handleError(ctx, "ListLeaders", err)
	}
	return s.respond(ctx, "ListLeaders", struct {
		Leaders []service.LeaderSummary `json:"leaders"`
	}{leaders})
}

// AddRater nominates a rater. The response carries the token for the form link.
func (s *GRPCHandlers) AddRater(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r, err := parseNewRater(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	n, err := s.admin.AddRater(ctx, r)
	if err != nil {
		return nil, s.handleError(ctx, "AddRater", err)
	}
	return s.respond(ctx, "AddRater", n)
}

func (s *GRPCHandlers) ListRaters(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	leaderID, err := parseLeaderID(req.GetValue())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	raters, err := s.admin.ListRaters(ctx, leaderID)
	if err != nil {
		return nil, s.handleError(ctx, "ListRaters", err)
	}
	return s.respond(ctx, "ListRaters", struct {
		Raters []service.RaterInfo `json:"raters"`
	}{raters})
}

// DeleteRater removes a rater and their answers, then drops the leader's cached aggregates.
func (s *GRPCHandlers) DeleteRater(ctx context.Context, req *wrapperspb.Int64Value) (*emptypb.Empty, error) {
	raterID, err := parseID(req.GetValue(), "rater_id")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	leaderID, err := s.admin.DeleteRater(ctx, raterID)
	if err != nil {
		return nil, s.handleError(ctx, "DeleteRater", err)
	}

	s.reads.invalidate(ctx, leaderKeys(leaderID)...)
	return &emptypb.Empty{}, nil
}

func (s *GRPCHandlers) GetDashboardStats(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	st, err := s.admin.DashboardStats(ctx)
	if err != nil {
		return nil, s.handleError(ctx, "GetDashboardStats", err)
	}
	return s.respond(ctx, "GetDashboardStats", st)
}
