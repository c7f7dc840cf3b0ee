package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/godilite/catalyst360/internal/repository/models"
	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrAlreadyCompleted  = errors.New("rater already completed")
	ErrDuplicateTokenGen = errors.New("could not generate a unique token")
	ErrAlreadyExists     = errors.New("record already exists")
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type FeedbackRepository struct {
	db *sql.DB
}

func NewFeedbackRepository(db *sql.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// CompletedResponses reads counts, item values and comments for a leader inside one
// transaction so a concurrent submission is seen either entirely or not at all.
func (s *FeedbackRepository) CompletedResponses(ctx context.Context, leaderID int64) (models.CompletedResponses, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.CompletedResponses{}, fmt.Errorf("begin CompletedResponses: %w", err)
	}
	defer tx.Rollback()

	counts, err := completedResponseCounts(ctx, tx, leaderID)
	if err != nil {
		return models.CompletedResponses{}, err
	}
	values, err := completedItemValues(ctx, tx, leaderID)
	if err != nil {
		return models.CompletedResponses{}, err
	}
	comments, err := completedComments(ctx, tx, leaderID)
	if err != nil {
		return models.CompletedResponses{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.CompletedResponses{}, fmt.Errorf("commit CompletedResponses: %w", err)
	}

	return models.CompletedResponses{
		Counts:   counts,
		Values:   values,
		Comments: comments,
	}, nil
}

// CompletedResponseCounts counts completed raters per relationship.
func (s *FeedbackRepository) CompletedResponseCounts(ctx context.Context, leaderID int64) ([]models.RelationshipCount, error) {
	return completedResponseCounts(ctx, s.db, leaderID)
}

// CompletedItemValues returns every rating row of the leader's completed raters.
func (s *FeedbackRepository) CompletedItemValues(ctx context.Context, leaderID int64) ([]models.ItemValue, error) {
	return completedItemValues(ctx, s.db, leaderID)
}

// CompletedComments returns every comment of the leader's completed raters.
func (s *FeedbackRepository) CompletedComments(ctx context.Context, leaderID int64) ([]models.CommentRow, error) {
	return completedComments(ctx, s.db, leaderID)
}

func completedResponseCounts(ctx context.Context, q queryer, leaderID int64) ([]models.RelationshipCount, error) {
	const query = `
		SELECT relationship, COUNT(*) AS count
		FROM raters
		WHERE leader_id = ? AND completed_at IS NOT NULL
		GROUP BY relationship
		ORDER BY relationship
	`

	rows, err := q.QueryContext(ctx, query, leaderID)
	if err != nil {
		return nil, fmt.Errorf("query CompletedResponseCounts: %w", err)
	}
	defer rows.Close()

	var results []models.RelationshipCount
	for rows.Next() {
		var rc models.RelationshipCount
		if err := rows.Scan(&rc.Relationship, &rc.Count); err != nil {
			return nil, fmt.Errorf("scan CompletedResponseCounts row: %w", err)
		}
		results = append(results, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate CompletedResponseCounts: %w", err)
	}
	return results, nil
}

func completedItemValues(ctx context.Context, q queryer, leaderID int64) ([]models.ItemValue, error) {
	const query = `
		SELECT
			rt.item_number,
			r.relationship,
			rt.score,
			rt.no_opportunity,
			rt.not_applicable
		FROM ratings AS rt
		JOIN raters AS r ON rt.rater_id = r.id
		WHERE r.leader_id = ? AND r.completed_at IS NOT NULL
		ORDER BY rt.item_number, r.id
	`

	rows, err := q.QueryContext(ctx, query, leaderID)
	if err != nil {
		return nil, fmt.Errorf("query CompletedItemValues: %w", err)
	}
	defer rows.Close()

	var results []models.ItemValue
	for rows.Next() {
		var (
			v     models.ItemValue
			score sql.NullInt64
		)
		if err := rows.Scan(&v.ItemNumber, &v.Relationship, &score, &v.NoOpportunity, &v.NotApplicable); err != nil {
			return nil, fmt.Errorf("scan CompletedItemValues row: %w", err)
		}
		if score.Valid {
			n := int(score.Int64)
			v.Score = &n
		}
		results = append(results, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate CompletedItemValues: %w", err)
	}
	return results, nil
}

func completedComments(ctx context.Context, q queryer, leaderID int64) ([]models.CommentRow, error) {
	const query = `
		SELECT c.section, r.relationship, COALESCE(c.comment_text, '')
		FROM comments AS c
		JOIN raters AS r ON c.rater_id = r.id
		WHERE r.leader_id = ? AND r.completed_at IS NOT NULL
		ORDER BY c.id
	`

	rows, err := q.QueryContext(ctx, query, leaderID)
	if err != nil {
		return nil, fmt.Errorf("query CompletedComments: %w", err)
	}
	defer rows.Close()

	var results []models.CommentRow
	for rows.Next() {
		var c models.CommentRow
		if err := rows.Scan(&c.Section, &c.Relationship, &c.Text); err != nil {
			return nil, fmt.Errorf("scan CompletedComments row: %w", err)
		}
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate CompletedComments: %w", err)
	}
	return results, nil
}

// Submit stores all answers and comments for a rater and marks them complete,
// as one transaction. A rater that is already complete is refused.
func (s *FeedbackRepository) Submit(ctx context.Context, raterID int64, answers []models.StoredAnswer, comments []models.CommentInput) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin Submit: %w", err)
	}
	defer tx.Rollback()

	if err := ensurePending(ctx, tx, raterID); err != nil {
		return err
	}
	if err := upsertAnswers(ctx, tx, raterID, answers); err != nil {
		return err
	}
	if err := replaceComments(ctx, tx, raterID, comments); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE raters SET completed_at = CURRENT_TIMESTAMP
		WHERE id = ? AND completed_at IS NULL
	`, raterID)
	if err != nil {
		return fmt.Errorf("mark rater complete: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n != 1 {
		return ErrAlreadyCompleted
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit Submit: %w", err)
	}
	return nil
}

// SaveDraft overwrites answers and the given comment sections for a pending
// rater without completing them.
func (s *FeedbackRepository) SaveDraft(ctx context.Context, raterID int64, answers []models.StoredAnswer, comments []models.CommentInput) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin SaveDraft: %w", err)
	}
	defer tx.Rollback()

	if err := ensurePending(ctx, tx, raterID); err != nil {
		return err
	}
	if err := upsertAnswers(ctx, tx, raterID, answers); err != nil {
		return err
	}
	if err := replaceComments(ctx, tx, raterID, comments); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit SaveDraft: %w", err)
	}
	return nil
}

func ensurePending(ctx context.Context, tx *sql.Tx, raterID int64) error {
	var completedAt sql.NullTime
	err := tx.QueryRowContext(ctx, `SELECT completed_at FROM raters WHERE id = ?`, raterID).Scan(&completedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("query rater state: %w", err)
	}
	if completedAt.Valid {
		return ErrAlreadyCompleted
	}
	return nil
}

func upsertAnswers(ctx context.Context, tx *sql.Tx, raterID int64, answers []models.StoredAnswer) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO ratings (rater_id, item_number, score, no_opportunity, not_applicable)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare rating upsert: %w", err)
	}
	defer stmt.Close()

	for _, a := range answers {
		var score sql.NullInt64
		if a.Score != nil {
			score = sql.NullInt64{Int64: int64(*a.Score), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, raterID, a.ItemNumber, score, a.NoOpportunity, a.NotApplicable); err != nil {
			return fmt.Errorf("upsert rating for item %d: %w", a.ItemNumber, err)
		}
	}
	return nil
}

// replaceComments keeps at most one comment per rater and section. Sections not
// in comments are left as they are; blank text clears the section.
func replaceComments(ctx context.Context, tx *sql.Tx, raterID int64, comments []models.CommentInput) error {
	for _, c := range comments {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM comments WHERE rater_id = ? AND section = ?
		`, raterID, c.Section); err != nil {
			return fmt.Errorf("clear comment: %w", err)
		}
		text := strings.TrimSpace(c.Text)
		if text == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO comments (rater_id, section, comment_text)
			VALUES (?, ?, ?)
		`, raterID, c.Section, text); err != nil {
			return fmt.Errorf("insert comment: %w", err)
		}
	}
	return nil
}

// AddLeader creates an active leader. A zero AssessmentYear is stored as 1.
func (s *FeedbackRepository) AddLeader(ctx context.Context, l models.Leader) (int64, error) {
	year := l.AssessmentYear
	if year <= 0 {
		year = 1
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO leaders (name, email, dealership, cohort, assessment_year)
		VALUES (?, ?, ?, ?, ?)
	`, l.Name, nullString(l.Email), nullString(l.Dealership), nullString(l.Cohort), year)
	if err != nil {
		return 0, fmt.Errorf("insert leader: %w", err)
	}
	return res.LastInsertId()
}

func (s *FeedbackRepository) GetLeader(ctx context.Context, leaderID int64) (models.Leader, error) {
	const query = `
		SELECT id, name, COALESCE(email, ''), COALESCE(dealership, ''), COALESCE(cohort, ''),
		       COALESCE(assessment_year, 1), COALESCE(status, 'active'), created_at
		FROM leaders
		WHERE id = ?
	`

	var l models.Leader
	err := s.db.QueryRowContext(ctx, query, leaderID).Scan(
		&l.ID, &l.Name, &l.Email, &l.Dealership, &l.Cohort, &l.AssessmentYear, &l.Status, &l.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Leader{}, ErrNotFound
	}
	if err != nil {
		return models.Leader{}, fmt.Errorf("query GetLeader: %w", err)
	}
	return l, nil
}

// ListLeaders returns active leaders with their rater progress counts.
func (s *FeedbackRepository) ListLeaders(ctx context.Context) ([]models.LeaderSummary, error) {
	return s.listLeaders(ctx, "ListLeaders", "")
}

// ListLeadersByCohort is ListLeaders restricted to one cohort name.
func (s *FeedbackRepository) ListLeadersByCohort(ctx context.Context, cohort string) ([]models.LeaderSummary, error) {
	return s.listLeaders(ctx, "ListLeadersByCohort", "AND l.cohort = ?", cohort)
}

func (s *FeedbackRepository) listLeaders(ctx context.Context, op, filter string, args ...any) ([]models.LeaderSummary, error) {
	query := `
		SELECT
			l.id, l.name, COALESCE(l.email, ''), COALESCE(l.dealership, ''), COALESCE(l.cohort, ''),
			COALESCE(l.assessment_year, 1), COALESCE(l.status, 'active'), l.created_at,
			COUNT(DISTINCT r.id) AS total_raters,
			COUNT(DISTINCT CASE WHEN r.completed_at IS NOT NULL THEN r.id END) AS completed_raters,
			COUNT(DISTINCT CASE WHEN r.relationship = 'Self' AND r.completed_at IS NOT NULL THEN r.id END) AS self_completed
		FROM leaders AS l
		LEFT JOIN raters AS r ON l.id = r.leader_id
		WHERE l.status = 'active' ` + filter + `
		GROUP BY l.id
		ORDER BY l.name
	`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", op, err)
	}
	defer rows.Close()

	var results []models.LeaderSummary
	for rows.Next() {
		var ls models.LeaderSummary
		if err := rows.Scan(&ls.ID, &ls.Name, &ls.Email, &ls.Dealership, &ls.Cohort, &ls.AssessmentYear,
			&ls.Status, &ls.CreatedAt, &ls.TotalRaters, &ls.CompletedRaters, &ls.SelfCompleted); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", op, err)
		}
		results = append(results, ls)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", op, err)
	}
	return results, nil
}

// AddRater nominates a rater and returns its id and access token.
func (s *FeedbackRepository) AddRater(ctx context.Context, r models.Rater) (int64, string, error) {
	const attempts = 3
	for i := 0; i < attempts; i++ {
		token := newToken()
		res, err := s.db.ExecContext(ctx, `
			INSERT INTO raters (leader_id, name, email, relationship, token)
			VALUES (?, ?, ?, ?, ?)
		`, r.LeaderID, nullString(r.Name), nullString(r.Email), r.Relationship, token)
		if err != nil {
			if strings.Contains(err.Error(), "UNIQUE constraint failed: raters.token") {
				continue
			}
			return 0, "", fmt.Errorf("insert rater: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, "", fmt.Errorf("rater id: %w", err)
		}
		return id, token, nil
	}
	return 0, "", ErrDuplicateTokenGen
}

const raterColumns = `
	r.id, r.leader_id, l.name, COALESCE(r.name, ''), COALESCE(r.email, ''),
	r.relationship, r.token, r.created_at, r.completed_at
`

func scanRater(scan func(dest ...any) error) (models.Rater, error) {
	var (
		r           models.Rater
		completedAt sql.NullTime
	)
	if err := scan(&r.ID, &r.LeaderID, &r.LeaderName, &r.Name, &r.Email,
		&r.Relationship, &r.Token, &r.CreatedAt, &completedAt); err != nil {
		return models.Rater{}, err
	}
	if completedAt.Valid {
		t := completedAt.Time
		r.CompletedAt = &t
	}
	return r, nil
}

func (s *FeedbackRepository) GetRaterByToken(ctx context.Context, token string) (models.Rater, error) {
	query := `SELECT ` + raterColumns + `
		FROM raters AS r
		JOIN leaders AS l ON r.leader_id = l.id
		WHERE r.token = ?`

	r, err := scanRater(s.db.QueryRowContext(ctx, query, token).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Rater{}, ErrNotFound
	}
	if err != nil {
		return models.Rater{}, fmt.Errorf("query GetRaterByToken: %w", err)
	}
	return r, nil
}

// ListRaters returns a leader's raters ordered Self, Boss, Peers, DRs, then the rest.
func (s *FeedbackRepository) ListRaters(ctx context.Context, leaderID int64) ([]models.Rater, error) {
	query := `SELECT ` + raterColumns + `
		FROM raters AS r
		JOIN leaders AS l ON r.leader_id = l.id
		WHERE r.leader_id = ?
		ORDER BY
			CASE r.relationship
				WHEN 'Self' THEN 1
				WHEN 'Boss' THEN 2
				WHEN 'Peers' THEN 3
				WHEN 'DRs' THEN 4
				ELSE 5
			END,
			r.id`

	rows, err := s.db.QueryContext(ctx, query, leaderID)
	if err != nil {
		return nil, fmt.Errorf("query ListRaters: %w", err)
	}
	defer rows.Close()

	var results []models.Rater
	for rows.Next() {
		r, err := scanRater(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan ListRaters row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListRaters: %w", err)
	}
	return results, nil
}

// DeleteRater removes a rater together with any stored ratings and comments
// and returns the leader the rater belonged to.
func (s *FeedbackRepository) DeleteRater(ctx context.Context, raterID int64) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin DeleteRater: %w", err)
	}
	defer tx.Rollback()

	var leaderID int64
	err = tx.QueryRowContext(ctx, `SELECT leader_id FROM raters WHERE id = ?`, raterID).Scan(&leaderID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("query rater leader: %w", err)
	}

	for _, stmt := range []string{
		`DELETE FROM ratings WHERE rater_id = ?`,
		`DELETE FROM comments WHERE rater_id = ?`,
		`DELETE FROM raters WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, raterID); err != nil {
			return 0, fmt.Errorf("delete rater: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit DeleteRater: %w", err)
	}
	return leaderID, nil
}

// SaveSnapshot stores an aggregated result for later year-on-year comparison.
func (s *FeedbackRepository) SaveSnapshot(ctx context.Context, leaderID int64, year int, data []byte) error {
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO historical_scores (leader_id, assessment_year, data_json)
		VALUES (?, ?, ?)
	`, leaderID, year, string(data)); err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// GetSnapshot returns the most recent snapshot for the leader and year.
func (s *FeedbackRepository) GetSnapshot(ctx context.Context, leaderID int64, year int) ([]byte, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `
		SELECT data_json FROM historical_scores
		WHERE leader_id = ? AND assessment_year = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, leaderID, year).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query GetSnapshot: %w", err)
	}
	return []byte(data), nil
}

func newToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
