package service

import (
	"time"

	"github.com/godilite/catalyst360/internal/framework"
)

// Result is the anonymized aggregate for one leader. Absent scores are left
// out of the maps rather than stored as zero.
type Result struct {
	LeaderID          int64                        `json:"leader_id"`
	ByItem            map[int]ItemResult           `json:"by_item"`
	ByDimension       map[string]DimensionResult   `json:"by_dimension"`
	Overall           map[int]ItemResult           `json:"overall"`
	ResponseCounts    map[framework.Category]int   `json:"response_counts"`
	RawResponseCounts map[framework.Category]int   `json:"raw_response_counts"`
	NoOpportunity     map[int]NoOpportunitySummary `json:"no_opportunity"`
	VisibleGroups     []framework.Category         `json:"visible_groups"`
	HiddenGroups      []framework.Category         `json:"hidden_groups"`
	AnonymityApplied  bool                         `json:"anonymity_applied"`
}

// CompletedRaters is the total number of completed raters across all categories.
func (r Result) CompletedRaters() int {
	total := 0
	for _, n := range r.RawResponseCounts {
		total += n
	}
	return total
}

type ItemResult struct {
	Number   int                            `json:"number"`
	Text     string                         `json:"text"`
	Scores   map[framework.Category]float64 `json:"scores"`
	Combined *float64                       `json:"combined,omitempty"`
	Gap      *float64                       `json:"gap,omitempty"`
}

type DimensionResult struct {
	Name     string                         `json:"name"`
	Scores   map[framework.Category]float64 `json:"scores"`
	Combined *float64                       `json:"combined,omitempty"`
	Gap      *float64                       `json:"gap,omitempty"`
}

// NoOpportunitySummary lists one entry in Groups per "no opportunity" answer.
type NoOpportunitySummary struct {
	Text   string               `json:"text"`
	Count  int                  `json:"count"`
	Groups []framework.Category `json:"groups"`
}

type Comment struct {
	Category framework.Category `json:"group"`
	Text     string             `json:"text"`
}

type Comments struct {
	ByDimension map[string][]Comment `json:"by_section"`
	Strengths   []Comment            `json:"strengths"`
	Development []Comment            `json:"development"`
}

type Quadrant int

const (
	AgreedStrengths Quadrant = iota + 1
	GoodNews
	DevelopmentAreas
	HiddenTalents
)

func (q Quadrant) String() string {
	switch q {
	case AgreedStrengths:
		return "agreed_strengths"
	case GoodNews:
		return "good_news"
	case DevelopmentAreas:
		return "development_areas"
	case HiddenTalents:
		return "hidden_talents"
	default:
		return "unknown"
	}
}

type ItemSummary struct {
	Item          int      `json:"item_num"`
	Text          string   `json:"text"`
	Self          float64  `json:"self"`
	Combined      float64  `json:"combined"`
	Gap           *float64 `json:"gap,omitempty"`
	NoOpportunity int      `json:"no_opp_count"`
}

// Categories is the PAPU-NANU classification of regular items.
type Categories struct {
	AgreedStrengths  []ItemSummary `json:"agreed_strengths"`
	GoodNews         []ItemSummary `json:"good_news"`
	DevelopmentAreas []ItemSummary `json:"development_areas"`
	HiddenTalents    []ItemSummary `json:"hidden_talents"`
}

type ReportType string

const (
	ReportSelfAssessment ReportType = "Self-Assessment"
	ReportFull360        ReportType = "Full 360"
	ReportProgress       ReportType = "Progress Report"
)

func ParseReportType(s string) (ReportType, bool) {
	switch ReportType(s) {
	case ReportSelfAssessment, ReportFull360, ReportProgress:
		return ReportType(s), true
	}
	return "", false
}

type GapFlag string

const (
	GapNone        GapFlag = ""
	GapOverRating  GapFlag = "over_rating"
	GapUnderRating GapFlag = "under_rating"
)

// SummaryRow is one dimension line of the executive summary.
type SummaryRow struct {
	Dimension string   `json:"dimension"`
	Self      *float64 `json:"self,omitempty"`
	Combined  *float64 `json:"combined,omitempty"`
	Gap       *float64 `json:"gap,omitempty"`
	Flag      GapFlag  `json:"flag,omitempty"`
}

// ProgressRow compares one dimension's combined score with the previous year.
type ProgressRow struct {
	Dimension string   `json:"dimension"`
	Previous  *float64 `json:"previous,omitempty"`
	Current   *float64 `json:"current,omitempty"`
	Change    *float64 `json:"change,omitempty"`
}

// ReportInput is everything a document renderer needs for one leader.
type ReportInput struct {
	LeaderID         int64         `json:"leader_id"`
	LeaderName       string        `json:"leader_name"`
	Dealership       string        `json:"dealership,omitempty"`
	Cohort           string        `json:"cohort,omitempty"`
	Type             ReportType    `json:"report_type"`
	Result           Result        `json:"data"`
	Comments         Comments      `json:"comments"`
	Categories       *Categories   `json:"categories,omitempty"`
	ExecutiveSummary []SummaryRow  `json:"executive_summary"`
	Progress         []ProgressRow `json:"progress,omitempty"`
}

// RawSubmission is a form submission before answers are parsed.
type RawSubmission struct {
	Token    string
	Ratings  map[int]string
	Comments map[string]string
}

type Cohort struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// LeaderSummary is one roster line with rater progress.
type LeaderSummary struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email,omitempty"`
	Dealership      string    `json:"dealership,omitempty"`
	Cohort          string    `json:"cohort,omitempty"`
	AssessmentYear  int       `json:"assessment_year"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	TotalRaters     int       `json:"total_raters"`
	CompletedRaters int       `json:"completed_raters"`
	SelfCompleted   bool      `json:"self_completed"`
	ReadyForReport  bool      `json:"ready_for_report"`
}

type RaterInfo struct {
	ID           int64              `json:"id"`
	LeaderID     int64              `json:"leader_id"`
	Name         string             `json:"name,omitempty"`
	Email        string             `json:"email,omitempty"`
	Relationship framework.Category `json:"relationship"`
	Token        string             `json:"token"`
	CreatedAt    time.Time          `json:"created_at"`
	CompletedAt  *time.Time         `json:"completed_at,omitempty"`
}

// Nomination is a newly added rater and the token for their form link.
type Nomination struct {
	RaterID int64  `json:"rater_id"`
	Token   string `json:"token"`
}

type DashboardStats struct {
	TotalLeaders       int     `json:"total_leaders"`
	TotalRaters        int     `json:"total_raters"`
	CompletedResponses int     `json:"completed_responses"`
	ReadyForReport     int     `json:"ready_for_report"`
	CompletionRate     float64 `json:"completion_rate"`
}

type NewLeader struct {
	Name           string
	Email          string
	Dealership     string
	Cohort         string
	AssessmentYear int
}

// LeaderChanges lists the leader fields to change. Nil fields are kept.
type LeaderChanges struct {
	Name           *string
	Email          *string
	Dealership     *string
	Cohort         *string
	AssessmentYear *int
	Status         *string
}

type NewRater struct {
	LeaderID     int64
	Relationship string
	Name         string
	Email        string
}
