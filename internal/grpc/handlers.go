package grpc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	pb "github.com/godilite/catalyst360/api/v1"
	"github.com/godilite/catalyst360/internal/service"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultGRPCTimeout   = 10 * time.Second
)

type CacheKeyType string

const (
	cacheKeyLeaderFeedback CacheKeyType = "grpc:leader_feedback"
	cacheKeyCategories     CacheKeyType = "grpc:development_categories"
	cacheKeyReport         CacheKeyType = "grpc:report"
)

var reportTypes = []service.ReportType{service.ReportSelfAssessment, service.ReportFull360, service.ReportProgress}

// leaderFeedback is the cached form of one GetLeaderFeedback answer.
type leaderFeedback struct {
	Result   service.Result   `json:"result"`
	Comments service.Comments `json:"comments"`
}

type GRPCHandlers struct {
	pb.UnimplementedFeedbackServer
	feedback FeedbackService
	reports  ReportService
	admin    AdminService
	logger   *zap.Logger
	reads    readThrough
}

// NewGRPCHandlers initializes the gRPC handlers. A nil cache serves every read from storage.
func NewGRPCHandlers(feedback FeedbackService, reports ReportService, admin AdminService, cache Cacher, logger *zap.Logger, ttl time.Duration) *GRPCHandlers {
	if feedback == nil {
		panic("nil FeedbackService provided to NewGRPCHandlers")
	}
	if reports == nil {
		panic("nil ReportService provided to NewGRPCHandlers")
	}
	if admin == nil {
		panic("nil AdminService provided to NewGRPCHandlers")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	logger = logger.Named("grpc-handler")
	return &GRPCHandlers{
		feedback: feedback,
		reports:  reports,
		admin:    admin,
		logger:   logger,
		reads: readThrough{
			cache:  cache,
			ttl:    ttl,
			logger: logger,
		},
	}
}

func normalizeKey(prefix CacheKeyType, leaderID int64, parts ...string) string {
	key := fmt.Sprintf("%s:%d", prefix, leaderID)
	for _, p := range parts {
		key += ":" + strings.ReplaceAll(strings.ToLower(strings.TrimSpace(p)), " ", "-")
	}
	return key
}

// leaderKeys lists every cached key derived from a leader's completed responses.
func leaderKeys(leaderID int64) []string {
	keys := []string{
		normalizeKey(cacheKeyLeaderFeedback, leaderID),
		normalizeKey(cacheKeyCategories, leaderID),
	}
	for _, rt := range reportTypes {
		keys = append(keys, normalizeKey(cacheKeyReport, leaderID, string(rt)))
	}
	return keys
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, service.ErrLeaderNotFound),
		errors.Is(err, service.ErrRaterNotFound),
		errors.Is(err, service.ErrSnapshotNotFound),
		errors.Is(err, service.ErrCohortNotFound):
		s.logger.Info("not found", zap.String("op", op), zap.Error(err))
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrInvalidSubmission),
		errors.Is(err, service.ErrIncompleteSubmission),
		errors.Is(err, service.ErrUnknownReportType),
		errors.Is(err, service.ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrCohortExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, service.ErrAlreadyCompleted),
		errors.Is(err, service.ErrInsufficientResponses):
		s.logger.Info("precondition failed", zap.String("op", op), zap.Error(err))
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, service.ErrMalformedResponse):
		s.logger.Error("stored feedback failed validation", zap.String("op", op), zap.Error(err))
		return status.Error(codes.DataLoss, "stored feedback failed validation")
	case errors.Is(err, service.ErrStorageFailure):
		s.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "database error")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) respond(ctx context.Context, op string, v any) (*structpb.Struct, error) {
	out, err := toStruct(v)
	if err != nil {
		return nil, s.handleError(ctx, op, err)
	}
	return out, nil
}

func (s *GRPCHandlers) GetLeaderFeedback(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	leaderID, err := parseLeaderID(req.GetValue())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := normalizeKey(cacheKeyLeaderFeedback, leaderID)

	fb, err := FindAndCache(ctx, &s.reads, cacheKey, func(fetchCtx context.Context) (leaderFeedback, error) {
		result, comments, err := s.feedback.GetLeaderFeedback(fetchCtx, leaderID)
		return leaderFeedback{Result: result, Comments: comments}, err
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetLeaderFeedback", err)
	}

	return s.respond(ctx, "GetLeaderFeedback", fb)
}

func (s *GRPCHandlers) GetDevelopmentCategories(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	leaderID, err := parseLeaderID(req.GetValue())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := normalizeKey(cacheKeyCategories, leaderID)

	categories, err := FindAndCache(ctx, &s.reads, cacheKey, func(fetchCtx context.Context) (service.Categories, error) {
		return s.feedback.GetDevelopmentCategories(fetchCtx, leaderID)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetDevelopmentCategories", err)
	}

	return s.respond(ctx, "GetDevelopmentCategories", categories)
}

func (s *GRPCHandlers) PrepareReport(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	leaderID, err := leaderIDField(req)
	if err != nil {
		return nil, err
	}
	raw, err := stringField(req, "report_type")
	if err != nil {
		return nil, err
	}
	if raw == "" {
		raw = string(service.ReportFull360)
	}
	reportType, ok := service.ParseReportType(raw)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown report type %q", raw)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := normalizeKey(cacheKeyReport, leaderID, string(reportType))

	input, err := FindAndCache(ctx, &s.reads, cacheKey, func(fetchCtx context.Context) (service.ReportInput, error) {
		return s.reports.Prepare(fetchCtx, leaderID, reportType)
	})
	if err != nil {
		return nil, s.handleError(ctx, "PrepareReport", err)
	}

	return s.respond(ctx, "PrepareReport", input)
}

// SubmitFeedback stores a completed form and drops the leader's cached aggregates.
func (s *GRPCHandlers) SubmitFeedback(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	sub, err := parseSubmission(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	leaderID, err := s.feedback.SubmitFeedback(ctx, sub)
	if err != nil {
		return nil, s.handleError(ctx, "SubmitFeedback", err)
	}

	s.reads.invalidate(ctx, leaderKeys(leaderID)...)
	return &emptypb.Empty{}, nil
}

func (s *GRPCHandlers) SaveDraft(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	sub, err := parseSubmission(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	if err := s.feedback.SaveDraft(ctx, sub); err != nil {
		return nil, s.handleError(ctx, "SaveDraft", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCHandlers) SaveSnapshot(ctx context.Context, req *structpb.Struct) (*wrapperspb.Int64Value, error) {
	leaderID, err := leaderIDField(req)
	if err != nil {
		return nil, err
	}
	year, _, err := intField(req, "year")
	if err != nil {
		return nil, err
	}
	if year < 0 {
		return nil, status.Error(codes.InvalidArgument, "year must not be negative")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	saved, err := s.feedback.SaveSnapshot(ctx, leaderID, int(year))
	if err != nil {
		return nil, s.handleError(ctx, "SaveSnapshot", err)
	}

	// progress reports read snapshots
	s.reads.invalidate(ctx, normalizeKey(cacheKeyReport, leaderID, string(service.ReportProgress)))
	return wrapperspb.Int64(int64(saved)), nil
}

func (s *GRPCHandlers) GetSnapshot(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	leaderID, err := leaderIDField(req)
	if err != nil {
		return nil, err
	}
	year, ok, err := intField(req, "year")
	if err != nil {
		return nil, err
	}
	if !ok || year <= 0 {
		return nil, status.Error(codes.InvalidArgument, "year is required")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	result, err := s.feedback.GetSnapshot(ctx, leaderID, int(year))
	if err != nil {
		return nil, s.handleError(ctx, "GetSnapshot", err)
	}

	return s.respond(ctx, "GetSnapshot", result)
}
