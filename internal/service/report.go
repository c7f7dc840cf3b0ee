package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/godilite/catalyst360/internal/framework"
	"go.uber.org/zap"
)

// ReportService builds the input a document renderer consumes and refuses
// reports that do not have enough completed feedback behind them.
type ReportService struct {
	feedback *FeedbackService
	logger   *zap.Logger
}

func NewReportService(feedback *FeedbackService, logger *zap.Logger) *ReportService {
	if feedback == nil {
		panic("feedback service must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		feedback: feedback,
		logger:   logger.Named("report"),
	}
}

// Prepare returns the report input for the leader and report type.
func (s *ReportService) Prepare(ctx context.Context, leaderID int64, reportType ReportType) (ReportInput, error) {
	if _, ok := ParseReportType(string(reportType)); !ok {
		return ReportInput{}, fmt.Errorf("%w: %q", ErrUnknownReportType, reportType)
	}

	leader, err := s.feedback.leader(ctx, leaderID)
	if err != nil {
		return ReportInput{}, err
	}

	result, comments, err := s.feedback.GetLeaderFeedback(ctx, leaderID)
	if err != nil {
		return ReportInput{}, err
	}

	fw := s.feedback.Framework()
	policy := s.feedback.Policy()

	input := ReportInput{
		LeaderID:   leader.ID,
		LeaderName: leader.Name,
		Dealership: leader.Dealership,
		Cohort:     leader.Cohort,
		Type:       reportType,
		Result:     result,
		Comments:   comments,
	}

	switch reportType {
	case ReportSelfAssessment:
		if result.RawResponseCounts[framework.Self] == 0 {
			return ReportInput{}, fmt.Errorf("%w: self-assessment not completed", ErrInsufficientResponses)
		}
		input.ExecutiveSummary = ExecutiveSummary(fw, policy, result)

	case ReportFull360, ReportProgress:
		if n := result.CompletedRaters(); n < policy.MinResponsesForReport {
			s.logger.Info("report refused",
				zap.Int64("leader_id", leaderID),
				zap.String("type", string(reportType)),
				zap.Int("completed", n),
				zap.Int("required", policy.MinResponsesForReport))
			return ReportInput{}, fmt.Errorf("%w: %d completed, %d required", ErrInsufficientResponses, n, policy.MinResponsesForReport)
		}
		categories := Categorize(fw, policy, result)
		input.Categories = &categories
		input.ExecutiveSummary = ExecutiveSummary(fw, policy, result)

		if reportType == ReportProgress {
			previous, err := s.feedback.GetSnapshot(ctx, leaderID, leader.AssessmentYear-1)
			if err != nil {
				if errors.Is(err, ErrSnapshotNotFound) {
					return ReportInput{}, fmt.Errorf("%w: no year %d data for progress report", ErrSnapshotNotFound, leader.AssessmentYear-1)
				}
				return ReportInput{}, err
			}
			input.Progress = Progress(fw, previous, result)
		}
	}

	return input, nil
}

// ExecutiveSummary lists Self, Combined and Gap per dimension in framework order,
// flagging gaps larger than the significant gap.
func ExecutiveSummary(fw *framework.Framework, policy framework.Policy, result Result) []SummaryRow {
	rows := make([]SummaryRow, 0, len(fw.Dimensions()))
	for _, d := range fw.Dimensions() {
		dim := result.ByDimension[d.Name]
		row := SummaryRow{Dimension: d.Name, Combined: dim.Combined, Gap: dim.Gap}
		if v, ok := dim.Scores[framework.Self]; ok {
			self := v
			row.Self = &self
		}
		if dim.Gap != nil {
			switch {
			case *dim.Gap > policy.SignificantGap:
				row.Flag = GapOverRating
			case *dim.Gap < -policy.SignificantGap:
				row.Flag = GapUnderRating
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Progress compares dimension Combined scores between two results.
func Progress(fw *framework.Framework, previous, current Result) []ProgressRow {
	rows := make([]ProgressRow, 0, len(fw.Dimensions()))
	for _, d := range fw.Dimensions() {
		row := ProgressRow{
			Dimension: d.Name,
			Previous:  previous.ByDimension[d.Name].Combined,
			Current:   current.ByDimension[d.Name].Combined,
		}
		if row.Previous != nil && row.Current != nil {
			change := round(*row.Current-*row.Previous, 2)
			row.Change = &change
		}
		rows = append(rows, row)
	}
	return rows
}
