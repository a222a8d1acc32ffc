package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/adishm/hackarena/internal/models"
)

// Repository provides data access methods
type Repository struct {
	db *sql.DB
}

// New creates a new Repository
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(1) // SQLite works best with single connection
	db.SetMaxIdleConns(1)

	repo := &Repository{db: db}

	// Run migrations
	if err := repo.migrate(); err != nil {
		return nil, err
	}

	return repo, nil
}

// DB returns the underlying database connection (for transactions)
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// migrate runs database migrations
func (r *Repository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS teams (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL,
			leader_id INTEGER NOT NULL,
			payment_status TEXT NOT NULL DEFAULT 'pending',
			transaction_id TEXT,
			payment_proof TEXT,
			round1_final_score REAL NOT NULL DEFAULT 0,
			round1_avg_submission_time REAL NOT NULL DEFAULT 0,
			round2_status TEXT NOT NULL DEFAULT 'not_started',
			is_finalist BOOLEAN NOT NULL DEFAULT 0,
			check_in_code TEXT UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			name TEXT NOT NULL,
			college TEXT,
			phone TEXT,
			role TEXT NOT NULL DEFAULT 'participant',
			team_id INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (team_id) REFERENCES teams(id) ON DELETE SET NULL
		)`,
		`CREATE TABLE IF NOT EXISTS questions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round INTEGER NOT NULL,
			title TEXT NOT NULL,
			options TEXT,
			correct_option INTEGER,
			description TEXT,
			deadline DATETIME,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS submissions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			team_id INTEGER NOT NULL,
			round INTEGER NOT NULL,
			answers TEXT,
			score INTEGER NOT NULL DEFAULT 0,
			start_time DATETIME,
			end_time DATETIME,
			project_file TEXT,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS hackathon_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			round1_status TEXT NOT NULL DEFAULT 'Pending',
			round1_deadline DATETIME,
			round2_status TEXT NOT NULL DEFAULT 'Pending',
			round2_deadline DATETIME,
			round1_certificate_path TEXT,
			round2_certificate_path TEXT
		)`,
		// The at-most-one rules: one quiz attempt per user, one project per
		// team. Partial unique indexes make the check-and-insert atomic.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_submissions_quiz_user
			ON submissions(user_id) WHERE round = 1`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_submissions_project_team
			ON submissions(team_id) WHERE round = 2`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_team ON submissions(team_id)`,
		`CREATE INDEX IF NOT EXISTS idx_users_team ON users(team_id)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_round ON questions(round)`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}

// isUniqueViolation reports whether err is a sqlite uniqueness-constraint error
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if stderrors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// ==================== User Methods ====================

// CreateUser creates a new user account
func (r *Repository) CreateUser(ctx context.Context, email, passwordHash, name, college, phone string, role models.Role) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO users (email, password_hash, name, college, phone, role)
		VALUES (?, ?, ?, ?, ?, ?)
	`, email, passwordHash, name, college, phone, string(role))
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	return result.LastInsertId()
}

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	var u models.User
	var college, phone sql.NullString
	var teamID sql.NullInt64
	var role string
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &college, &phone, &role, &teamID); err != nil {
		return nil, err
	}
	u.College = college.String
	u.Phone = phone.String
	u.Role = models.Role(role)
	if teamID.Valid {
		id := int(teamID.Int64)
		u.TeamID = &id
	}
	return &u, nil
}

// GetUser retrieves a user by ID
func (r *Repository) GetUser(ctx context.Context, id int) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, college, phone, role, team_id FROM users WHERE id = ?
	`, id)
	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return user, err
}

// GetUserByEmail retrieves a user by email address
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, college, phone, role, team_id FROM users WHERE email = ?
	`, email)
	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return user, err
}

// GetCredentials returns the user ID and password hash for an email
func (r *Repository) GetCredentials(ctx context.Context, email string) (int, string, error) {
	var id int
	var hash string
	err := r.db.QueryRowContext(ctx, `SELECT id, password_hash FROM users WHERE email = ?`, email).Scan(&id, &hash)
	if err == sql.ErrNoRows {
		return 0, "", ErrNotFound
	}
	return id, hash, err
}

// ListParticipants returns all non-admin users
func (r *Repository) ListParticipants(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, email, name, college, phone, role, team_id
		FROM users WHERE role = 'participant' ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// SetUserTeam updates a user's team link (nil clears it)
func (r *Repository) SetUserTeam(ctx context.Context, userID int, teamID *int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET team_id = ? WHERE id = ?`, teamID, userID)
	return err
}

// DeleteUser deletes a user. Team membership is carried on the user row,
// so no separate unlink step is needed.
func (r *Repository) DeleteUser(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	return err
}

// ==================== Team Methods ====================

// CreateTeam creates a new team
func (r *Repository) CreateTeam(ctx context.Context, name string, leaderID int, checkInCode string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO teams (name, leader_id, check_in_code) VALUES (?, ?, ?)
	`, name, leaderID, checkInCode)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	return result.LastInsertId()
}

func scanTeam(row interface{ Scan(...interface{}) error }) (*models.Team, error) {
	var t models.Team
	var transactionID, paymentProof, checkInCode sql.NullString
	var paymentStatus, round2Status string
	if err := row.Scan(&t.ID, &t.Name, &t.LeaderID, &paymentStatus, &transactionID, &paymentProof,
		&t.Round1FinalScore, &t.Round1AvgSubmissionTime, &round2Status, &t.IsFinalist, &checkInCode); err != nil {
		return nil, err
	}
	t.PaymentStatus = models.PaymentStatus(paymentStatus)
	t.Round2Status = models.Round2Status(round2Status)
	t.TransactionID = transactionID.String
	t.PaymentProof = paymentProof.String
	t.CheckInCode = checkInCode.String
	return &t, nil
}

const teamColumns = `id, name, leader_id, payment_status, transaction_id, payment_proof,
	round1_final_score, round1_avg_submission_time, round2_status, is_finalist, check_in_code`

// GetTeam retrieves a team by ID with its members populated
func (r *Repository) GetTeam(ctx context.Context, id int) (*models.Team, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = ?`, id)
	team, err := scanTeam(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	members, err := r.listMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	team.Members = members
	return team, nil
}

// listMembers returns all users belonging to a team
func (r *Repository) listMembers(ctx context.Context, teamID int) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, email, name, college, phone, role, team_id
		FROM users WHERE team_id = ? ORDER BY id
	`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *user)
	}
	return members, rows.Err()
}

func (r *Repository) listTeams(ctx context.Context, query string, args ...interface{}) ([]models.Team, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *team)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range teams {
		members, err := r.listMembers(ctx, teams[i].ID)
		if err != nil {
			return nil, err
		}
		teams[i].Members = members
	}
	return teams, nil
}

// ListTeams returns all teams with members populated
func (r *Repository) ListTeams(ctx context.Context) ([]models.Team, error) {
	return r.listTeams(ctx, `SELECT `+teamColumns+` FROM teams ORDER BY created_at`)
}

// ListTeamsByPayment returns all teams with the given payment status
func (r *Repository) ListTeamsByPayment(ctx context.Context, status models.PaymentStatus) ([]models.Team, error) {
	return r.listTeams(ctx, `SELECT `+teamColumns+` FROM teams WHERE payment_status = ? ORDER BY created_at`, string(status))
}

// TeamExists checks if a team with the given name exists
func (r *Repository) TeamExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM teams WHERE name = ?)`, name).Scan(&exists)
	return exists, err
}

// CountMembers returns the number of users on a team
func (r *Repository) CountMembers(ctx context.Context, teamID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE team_id = ?`, teamID).Scan(&count)
	return count, err
}

// SetPaymentStatus updates a team's payment status
func (r *Repository) SetPaymentStatus(ctx context.Context, teamID int, status models.PaymentStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE teams SET payment_status = ? WHERE id = ?`, string(status), teamID)
	return err
}

// SetPaymentProof records the payment proof reference for a team
func (r *Repository) SetPaymentProof(ctx context.Context, teamID int, transactionID, proofPath string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE teams SET transaction_id = ?, payment_proof = ? WHERE id = ?
	`, transactionID, proofPath, teamID)
	return err
}

// SetRound1Aggregate writes a team's aggregated quiz score and time
func (r *Repository) SetRound1Aggregate(ctx context.Context, teamID int, score, avgTime float64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE teams SET round1_final_score = ?, round1_avg_submission_time = ? WHERE id = ?
	`, score, avgTime, teamID)
	return err
}

// SetRound2Status updates a team's round-2 progress flag
func (r *Repository) SetRound2Status(ctx context.Context, teamID int, status models.Round2Status) error {
	_, err := r.db.ExecContext(ctx, `UPDATE teams SET round2_status = ? WHERE id = ?`, string(status), teamID)
	return err
}

// SetFinalist flips a team's finalist flag
func (r *Repository) SetFinalist(ctx context.Context, teamID int, finalist bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE teams SET is_finalist = ? WHERE id = ?`, finalist, teamID)
	return err
}

// DeleteTeamWithMembers deletes a team and every user belonging to it
func (r *Repository) DeleteTeamWithMembers(ctx context.Context, teamID int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE team_id = ?`, teamID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM submissions WHERE team_id = ?`, teamID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, teamID); err != nil {
		return err
	}
	return tx.Commit()
}

// ==================== Question Methods ====================

// CreateQuestion creates a new question
func (r *Repository) CreateQuestion(ctx context.Context, q models.Question) (int64, error) {
	var optionsJSON sql.NullString
	if len(q.Options) > 0 {
		data, _ := json.Marshal(q.Options) // Marshal on []string never fails
		optionsJSON = sql.NullString{String: string(data), Valid: true}
	}

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO questions (round, title, options, correct_option, description, deadline)
		VALUES (?, ?, ?, ?, ?, ?)
	`, q.Round, q.Title, optionsJSON, q.CorrectOption, q.Description, q.Deadline)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func scanQuestion(row interface{ Scan(...interface{}) error }) (*models.Question, error) {
	var q models.Question
	var optionsJSON, description sql.NullString
	var correctOption sql.NullInt64
	var deadline sql.NullTime
	if err := row.Scan(&q.ID, &q.Round, &q.Title, &optionsJSON, &correctOption, &description, &deadline); err != nil {
		return nil, err
	}
	if optionsJSON.Valid && optionsJSON.String != "" {
		if err := json.Unmarshal([]byte(optionsJSON.String), &q.Options); err != nil {
			return nil, err
		}
	}
	if correctOption.Valid {
		opt := int(correctOption.Int64)
		q.CorrectOption = &opt
	}
	q.Description = description.String
	if deadline.Valid {
		d := deadline.Time
		q.Deadline = &d
	}
	return &q, nil
}

// GetQuestion retrieves a question by ID
func (r *Repository) GetQuestion(ctx context.Context, id int) (*models.Question, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, round, title, options, correct_option, description, deadline
		FROM questions WHERE id = ?
	`, id)
	q, err := scanQuestion(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return q, err
}

// ListQuestions returns all questions for a round
func (r *Repository) ListQuestions(ctx context.Context, round int) ([]models.Question, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, round, title, options, correct_option, description, deadline
		FROM questions WHERE round = ? ORDER BY id
	`, round)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}
	return questions, rows.Err()
}

// UpdateQuestion updates a question
func (r *Repository) UpdateQuestion(ctx context.Context, q models.Question) error {
	var optionsJSON sql.NullString
	if len(q.Options) > 0 {
		data, _ := json.Marshal(q.Options)
		optionsJSON = sql.NullString{String: string(data), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		UPDATE questions SET title = ?, options = ?, correct_option = ?, description = ?, deadline = ?
		WHERE id = ?
	`, q.Title, optionsJSON, q.CorrectOption, q.Description, q.Deadline, q.ID)
	return err
}

// DeleteQuestion deletes a question
func (r *Repository) DeleteQuestion(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	return err
}

// CountQuestions returns the number of questions in a round
func (r *Repository) CountQuestions(ctx context.Context, round int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions WHERE round = ?`, round).Scan(&count)
	return count, err
}

// AnswerKey returns the questionID -> correctOption map for a round in one pass
func (r *Repository) AnswerKey(ctx context.Context, round int) (map[int]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, correct_option FROM questions WHERE round = ? AND correct_option IS NOT NULL
	`, round)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	key := make(map[int]int)
	for rows.Next() {
		var id, correct int
		if err := rows.Scan(&id, &correct); err != nil {
			return nil, err
		}
		key[id] = correct
	}
	return key, rows.Err()
}

// ==================== Submission Methods ====================

// CreateQuizAttempt creates an empty round-1 submission for a user.
// Returns ErrDuplicate if the user already has an attempt; the partial
// unique index on (user_id) WHERE round = 1 makes this check atomic.
func (r *Repository) CreateQuizAttempt(ctx context.Context, userID, teamID int, startTime time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO submissions (user_id, team_id, round, start_time) VALUES (?, ?, 1, ?)
	`, userID, teamID, startTime)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	return result.LastInsertId()
}

func scanSubmission(row interface{ Scan(...interface{}) error }) (*models.Submission, error) {
	var s models.Submission
	var answersJSON, projectFile, notes sql.NullString
	var startTime, endTime sql.NullTime
	if err := row.Scan(&s.ID, &s.UserID, &s.TeamID, &s.Round, &answersJSON, &s.Score,
		&startTime, &endTime, &projectFile, &notes); err != nil {
		return nil, err
	}
	if answersJSON.Valid && answersJSON.String != "" {
		if err := json.Unmarshal([]byte(answersJSON.String), &s.Answers); err != nil {
			return nil, err
		}
	}
	if startTime.Valid {
		t := startTime.Time
		s.StartTime = &t
	}
	if endTime.Valid {
		t := endTime.Time
		s.EndTime = &t
	}
	s.ProjectFile = projectFile.String
	s.Notes = notes.String
	return &s, nil
}

const submissionColumns = `id, user_id, team_id, round, answers, score, start_time, end_time, project_file, notes`

// GetSubmission retrieves a submission by ID
func (r *Repository) GetSubmission(ctx context.Context, id int) (*models.Submission, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE id = ?`, id)
	s, err := scanSubmission(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return s, err
}

// GetQuizSubmission retrieves a user's round-1 submission
func (r *Repository) GetQuizSubmission(ctx context.Context, userID int) (*models.Submission, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+submissionColumns+` FROM submissions WHERE user_id = ? AND round = 1
	`, userID)
	s, err := scanSubmission(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return s, err
}

// CompleteQuizAttempt writes answers, score and end time onto an open
// attempt. The end_time IS NULL guard makes the write once-only: a second
// submit matches zero rows and returns false instead of re-scoring.
func (r *Repository) CompleteQuizAttempt(ctx context.Context, id int, answers []models.Answer, score int, endTime time.Time) (bool, error) {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return false, err
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE submissions SET answers = ?, score = ?, end_time = ?
		WHERE id = ? AND round = 1 AND end_time IS NULL
	`, string(answersJSON), score, endTime, id)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteQuizSubmission removes a user's round-1 submission and returns the
// team it belonged to, so the caller can recompute the team aggregate
func (r *Repository) DeleteQuizSubmission(ctx context.Context, userID int) (int, error) {
	var id, teamID int
	err := r.db.QueryRowContext(ctx, `
		SELECT id, team_id FROM submissions WHERE user_id = ? AND round = 1
	`, userID).Scan(&id, &teamID)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM submissions WHERE id = ?`, id); err != nil {
		return 0, err
	}
	return teamID, nil
}

// ListCompletedQuizSubmissions returns every finished round-1 submission for
// a team's members
func (r *Repository) ListCompletedQuizSubmissions(ctx context.Context, teamID int) ([]models.Submission, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+submissionColumns+` FROM submissions
		WHERE team_id = ? AND round = 1 AND end_time IS NOT NULL
		ORDER BY id
	`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []models.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, *s)
	}
	return subs, rows.Err()
}

// CreateProjectSubmission creates a team's round-2 submission.
// Returns ErrDuplicate if the team already submitted; the partial unique
// index on (team_id) WHERE round = 2 makes this check atomic.
func (r *Repository) CreateProjectSubmission(ctx context.Context, userID, teamID int, filePath, notes string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO submissions (user_id, team_id, round, project_file, notes) VALUES (?, ?, 2, ?, ?)
	`, userID, teamID, filePath, notes)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	return result.LastInsertId()
}

// GetProjectSubmission retrieves a team's round-2 submission
func (r *Repository) GetProjectSubmission(ctx context.Context, teamID int) (*models.Submission, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+submissionColumns+` FROM submissions WHERE team_id = ? AND round = 2
	`, teamID)
	s, err := scanSubmission(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return s, err
}

// ListProjectSubmissions returns all round-2 submissions
func (r *Repository) ListProjectSubmissions(ctx context.Context) ([]models.Submission, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+submissionColumns+` FROM submissions WHERE round = 2 ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []models.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, *s)
	}
	return subs, rows.Err()
}

// ==================== State Methods ====================

// GetState returns the hackathon state singleton, creating it on first access
func (r *Repository) GetState(ctx context.Context) (*models.HackathonState, error) {
	if _, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO hackathon_state (id) VALUES (1)`); err != nil {
		return nil, err
	}

	var st models.HackathonState
	var r1Status, r2Status string
	var r1Deadline, r2Deadline sql.NullTime
	var r1Cert, r2Cert sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT round1_status, round1_deadline, round2_status, round2_deadline,
		       round1_certificate_path, round2_certificate_path
		FROM hackathon_state WHERE id = 1
	`).Scan(&r1Status, &r1Deadline, &r2Status, &r2Deadline, &r1Cert, &r2Cert)
	if err != nil {
		return nil, err
	}

	st.Round1Status = models.RoundStatus(r1Status)
	st.Round2Status = models.RoundStatus(r2Status)
	if r1Deadline.Valid {
		d := r1Deadline.Time
		st.Round1Deadline = &d
	}
	if r2Deadline.Valid {
		d := r2Deadline.Time
		st.Round2Deadline = &d
	}
	st.Round1CertificatePath = r1Cert.String
	st.Round2CertificatePath = r2Cert.String
	return &st, nil
}

// SetRoundStatus updates a round's status and deadline on the singleton
func (r *Repository) SetRoundStatus(ctx context.Context, round int, status models.RoundStatus, deadline *time.Time) error {
	if _, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO hackathon_state (id) VALUES (1)`); err != nil {
		return err
	}

	var query string
	switch round {
	case 1:
		query = `UPDATE hackathon_state SET round1_status = ?, round1_deadline = ? WHERE id = 1`
	case 2:
		query = `UPDATE hackathon_state SET round2_status = ?, round2_deadline = ? WHERE id = 1`
	default:
		return ErrNotFound
	}
	_, err := r.db.ExecContext(ctx, query, string(status), deadline)
	return err
}

// SetCertificatePath records the uploaded certificate template for a round
func (r *Repository) SetCertificatePath(ctx context.Context, round int, path string) error {
	if _, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO hackathon_state (id) VALUES (1)`); err != nil {
		return err
	}

	var query string
	switch round {
	case 1:
		query = `UPDATE hackathon_state SET round1_certificate_path = ? WHERE id = 1`
	case 2:
		query = `UPDATE hackathon_state SET round2_certificate_path = ? WHERE id = 1`
	default:
		return ErrNotFound
	}
	_, err := r.db.ExecContext(ctx, query, path)
	return err
}
