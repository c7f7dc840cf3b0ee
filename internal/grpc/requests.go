package grpc

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/godilite/catalyst360/internal/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func parseLeaderID(id int64) (int64, error) {
	if id <= 0 {
		return 0, status.Error(codes.InvalidArgument, "leader_id must be a positive integer")
	}
	return id, nil
}

// intField reads a whole number from a Struct request. Missing fields return ok=false.
func intField(req *structpb.Struct, name string) (n int64, ok bool, err error) {
	v, found := req.GetFields()[name]
	if !found {
		return 0, false, nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		f := k.NumberValue
		if f != math.Trunc(f) || math.IsInf(f, 0) || math.Abs(f) > 1<<53 {
			return 0, false, status.Errorf(codes.InvalidArgument, "%s must be an integer", name)
		}
		return int64(f), true, nil
	case *structpb.Value_StringValue:
		n, err := strconv.ParseInt(strings.TrimSpace(k.StringValue), 10, 64)
		if err != nil {
			return 0, false, status.Errorf(codes.InvalidArgument, "%s must be an integer", name)
		}
		return n, true, nil
	default:
		return 0, false, status.Errorf(codes.InvalidArgument, "%s must be an integer", name)
	}
}

func leaderIDField(req *structpb.Struct) (int64, error) {
	id, ok, err := intField(req, "leader_id")
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, status.Error(codes.InvalidArgument, "leader_id is required")
	}
	return parseLeaderID(id)
}

func stringField(req *structpb.Struct, name string) (string, error) {
	v, found := req.GetFields()[name]
	if !found {
		return "", nil
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "%s must be a string", name)
	}
	return s.StringValue, nil
}

// optionalString distinguishes a missing field (nil) from an empty one.
func optionalString(req *structpb.Struct, name string) (*string, error) {
	if _, found := req.GetFields()[name]; !found {
		return nil, nil
	}
	v, err := stringField(req, name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseID(id int64, name string) (int64, error) {
	if id <= 0 {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be a positive integer", name)
	}
	return id, nil
}

// parseNewLeader reads {name, email, dealership, cohort, assessment_year}.
func parseNewLeader(req *structpb.Struct) (service.NewLeader, error) {
	var (
		l   service.NewLeader
		err error
	)
	for name, dst := range map[string]*string{
		"name":       &l.Name,
		"email":      &l.Email,
		"dealership": &l.Dealership,
		"cohort":     &l.Cohort,
	} {
		if *dst, err = stringField(req, name); err != nil {
			return service.NewLeader{}, err
		}
	}
	year, _, err := intField(req, "assessment_year")
	if err != nil {
		return service.NewLeader{}, err
	}
	l.AssessmentYear = int(year)
	return l, nil
}

// parseLeaderChanges reads the fields of an UpdateLeader request that are present.
func parseLeaderChanges(req *structpb.Struct) (service.LeaderChanges, error) {
	var (
		c   service.LeaderChanges
		err error
	)
	for name, dst := range map[string]**string{
		"name":       &c.Name,
		"email":      &c.Email,
		"dealership": &c.Dealership,
		"cohort":     &c.Cohort,
		"status":     &c.Status,
	} {
		if *dst, err = optionalString(req, name); err != nil {
			return service.LeaderChanges{}, err
		}
	}
	year, ok, err := intField(req, "assessment_year")
	if err != nil {
		return service.LeaderChanges{}, err
	}
	if ok {
		y := int(year)
		c.AssessmentYear = &y
	}
	return c, nil
}

// parseNewRater reads {leader_id, relationship, name, email}.
func parseNewRater(req *structpb.Struct) (service.NewRater, error) {
	leaderID, err := leaderIDField(req)
	if err != nil {
		return service.NewRater{}, err
	}
	r := service.NewRater{LeaderID: leaderID}
	for name, dst := range map[string]*string{
		"relationship": &r.Relationship,
		"name":         &r.Name,
		"email":        &r.Email,
	} {
		if *dst, err = stringField(req, name); err != nil {
			return service.NewRater{}, err
		}
	}
	if r.Relationship == "" {
		return service.NewRater{}, status.Error(codes.InvalidArgument, "relationship is required")
	}
	return r, nil
}

// parseSubmission reads {token, ratings: {item: value}, comments: {section: text}}.
// Numeric rating values are passed through as text so the service rejects
// anything that is not a whole 1-5 score.
func parseSubmission(req *structpb.Struct) (service.RawSubmission, error) {
	token, err := stringField(req, "token")
	if err != nil {
		return service.RawSubmission{}, err
	}
	sub := service.RawSubmission{
		Token:    token,
		Ratings:  make(map[int]string),
		Comments: make(map[string]string),
	}

	ratings := req.GetFields()["ratings"].GetStructValue()
	for key, v := range ratings.GetFields() {
		item, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(key), "Q"))
		if err != nil {
			return service.RawSubmission{}, status.Errorf(codes.InvalidArgument, "rating key %q is not an item number", key)
		}
		if _, dup := sub.Ratings[item]; dup {
			return service.RawSubmission{}, status.Errorf(codes.InvalidArgument, "duplicate rating for item %d", item)
		}
		switch k := v.GetKind().(type) {
		case *structpb.Value_StringValue:
			sub.Ratings[item] = k.StringValue
		case *structpb.Value_NumberValue:
			sub.Ratings[item] = strconv.FormatFloat(k.NumberValue, 'f', -1, 64)
		default:
			return service.RawSubmission{}, status.Errorf(codes.InvalidArgument, "rating for item %d must be a string or number", item)
		}
	}

	comments := req.GetFields()["comments"].GetStructValue()
	for section, v := range comments.GetFields() {
		text, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return service.RawSubmission{}, status.Errorf(codes.InvalidArgument, "comment for %q must be a string", section)
		}
		sub.Comments[section] = text.StringValue
	}

	return sub, nil
}

// toStruct converts a JSON-tagged value into a protobuf Struct.
func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	return structpb.NewStruct(m)
}
