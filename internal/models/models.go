package models

import "time"

// Role is the closed set of account roles
type Role string

const (
	RoleParticipant Role = "participant"
	RoleAdmin       Role = "admin"
)

// Valid reports whether the role is one of the known values
func (r Role) Valid() bool {
	return r == RoleParticipant || r == RoleAdmin
}

// RoundStatus is the lifecycle state of a competition round
type RoundStatus string

const (
	RoundPending   RoundStatus = "Pending"
	RoundActive    RoundStatus = "Active"
	RoundCompleted RoundStatus = "Completed"
)

// Valid reports whether the status is one of the known values
func (s RoundStatus) Valid() bool {
	return s == RoundPending || s == RoundActive || s == RoundCompleted
}

// PaymentStatus is a team's registration-fee state
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// Round2Status tracks a team's progress through the project round
type Round2Status string

const (
	Round2NotStarted Round2Status = "not_started"
	Round2InProgress Round2Status = "in_progress"
	Round2Submitted  Round2Status = "submitted"
	Round2Completed  Round2Status = "completed"
)

// User represents a registered account
type User struct {
	ID      int    `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	College string `json:"college,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Role    Role   `json:"role"`
	TeamID  *int   `json:"team_id,omitempty"`
}

// Team represents a hackathon team of 1-3 members led by one of them
type Team struct {
	ID                      int           `json:"id"`
	Name                    string        `json:"name"`
	LeaderID                int           `json:"leader_id"`
	Members                 []User        `json:"members,omitempty"`
	PaymentStatus           PaymentStatus `json:"payment_status"`
	TransactionID           string        `json:"transaction_id,omitempty"`
	PaymentProof            string        `json:"payment_proof,omitempty"`
	Round1FinalScore        float64       `json:"round1_final_score"`
	Round1AvgSubmissionTime float64       `json:"round1_avg_submission_time"` // seconds
	Round2Status            Round2Status  `json:"round2_status"`
	IsFinalist              bool          `json:"is_finalist"`
	CheckInCode             string        `json:"check_in_code,omitempty"`
}

// Question is a quiz question (round 1) or problem statement (round 2).
// Round determines which fields are meaningful: round-1 questions carry
// exactly 4 options and a correct-option index, round-2 questions carry
// a description and an optional deadline.
type Question struct {
	ID            int        `json:"id"`
	Round         int        `json:"round"`
	Title         string     `json:"title"`
	Options       []string   `json:"options,omitempty"`
	CorrectOption *int       `json:"correct_option,omitempty"`
	Description   string     `json:"description,omitempty"`
	Deadline      *time.Time `json:"deadline,omitempty"`
}

// Answer is a single selected option for a quiz question
type Answer struct {
	QuestionID     int `json:"question_id"`
	SelectedOption int `json:"selected_option"`
}

// Submission is a per-user quiz attempt (round 1) or per-team project
// upload (round 2)
type Submission struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id"`
	TeamID      int        `json:"team_id"`
	Round       int        `json:"round"`
	Answers     []Answer   `json:"answers,omitempty"`
	Score       int        `json:"score"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	ProjectFile string     `json:"project_file,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// Completed reports whether a round-1 attempt has been submitted
func (s *Submission) Completed() bool {
	return s.EndTime != nil
}

// HackathonState is the singleton record holding the global phase flags.
// It is lazily created on first access and mutated only by admin actions.
type HackathonState struct {
	Round1Status          RoundStatus `json:"round1_status"`
	Round1Deadline        *time.Time  `json:"round1_deadline,omitempty"`
	Round2Status          RoundStatus `json:"round2_status"`
	Round2Deadline        *time.Time  `json:"round2_deadline,omitempty"`
	Round1CertificatePath string      `json:"round1_certificate_path,omitempty"`
	Round2CertificatePath string      `json:"round2_certificate_path,omitempty"`
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
