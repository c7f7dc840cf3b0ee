package service

import "errors"

var (
	ErrStorageFailure        = errors.New("storage failure")
	ErrMalformedResponse     = errors.New("malformed stored response")
	ErrLeaderNotFound        = errors.New("leader not found")
	ErrRaterNotFound         = errors.New("rater not found")
	ErrAlreadyCompleted      = errors.New("feedback already submitted")
	ErrInvalidSubmission     = errors.New("invalid submission")
	ErrIncompleteSubmission  = errors.New("submission is missing ratings")
	ErrInsufficientResponses = errors.New("not enough completed responses for report")
	ErrSnapshotNotFound      = errors.New("snapshot not found")
	ErrUnknownReportType     = errors.New("unknown report type")
	ErrCohortNotFound        = errors.New("cohort not found")
	ErrCohortExists          = errors.New("cohort already exists")
	ErrInvalidRequest        = errors.New("invalid request")
)
