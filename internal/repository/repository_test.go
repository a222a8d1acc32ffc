package repository

import (
	"context"
	"testing"
	"time"

	"github.com/adishm/hackarena/internal/models"
)

// newTestRepo creates a new in-memory repository for testing.
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}
	return repo
}

func seedUser(t *testing.T, repo *Repository, email string) int {
	t.Helper()
	id, err := repo.CreateUser(context.Background(), email, "hash", "Test User", "Test College", "1234567890", models.RoleParticipant)
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return int(id)
}

func seedTeam(t *testing.T, repo *Repository, name string, leaderID int) int {
	t.Helper()
	ctx := context.Background()
	id, err := repo.CreateTeam(ctx, name, leaderID, "code-"+name)
	if err != nil {
		t.Fatalf("CreateTeam failed: %v", err)
	}
	teamID := int(id)
	if err := repo.SetUserTeam(ctx, leaderID, &teamID); err != nil {
		t.Fatalf("SetUserTeam failed: %v", err)
	}
	return teamID
}

// ==================== User Tests ====================

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.CreateUser(ctx, "a@example.com", "h", "A", "", "", models.RoleParticipant); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	_, err := repo.CreateUser(ctx, "a@example.com", "h", "B", "", "", models.RoleParticipant)
	if err != ErrDuplicate {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestGetUser_NonExistent(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetUser(context.Background(), 999)
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetUserByEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id := seedUser(t, repo, "find@example.com")

	user, err := repo.GetUserByEmail(ctx, "find@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if user.ID != id {
		t.Errorf("expected user ID %d, got %d", id, user.ID)
	}
	if user.Role != models.RoleParticipant {
		t.Errorf("expected participant role, got %q", user.Role)
	}
	if user.TeamID != nil {
		t.Errorf("expected no team, got %v", *user.TeamID)
	}
}

func TestGetCredentials(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	wantID := seedUser(t, repo, "creds@example.com")

	id, hash, err := repo.GetCredentials(ctx, "creds@example.com")
	if err != nil {
		t.Fatalf("GetCredentials failed: %v", err)
	}
	if id != wantID || hash != "hash" {
		t.Errorf("got id=%d hash=%q", id, hash)
	}

	if _, _, err := repo.GetCredentials(ctx, "nobody@example.com"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListParticipants_ExcludesAdmins(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seedUser(t, repo, "p1@example.com")
	if _, err := repo.CreateUser(ctx, "admin@example.com", "h", "Admin", "", "", models.RoleAdmin); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	users, err := repo.ListParticipants(ctx)
	if err != nil {
		t.Fatalf("ListParticipants failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 participant, got %d", len(users))
	}
	if users[0].Email != "p1@example.com" {
		t.Errorf("unexpected participant %q", users[0].Email)
	}
}

func TestSetUserTeam_ClearWithNil(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	userID := seedUser(t, repo, "member@example.com")
	teamID := seedTeam(t, repo, "Clearers", userID)

	user, err := repo.GetUser(ctx, userID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if user.TeamID == nil || *user.TeamID != teamID {
		t.Fatalf("expected team %d, got %v", teamID, user.TeamID)
	}

	if err := repo.SetUserTeam(ctx, userID, nil); err != nil {
		t.Fatalf("SetUserTeam failed: %v", err)
	}
	user, _ = repo.GetUser(ctx, userID)
	if user.TeamID != nil {
		t.Errorf("expected team cleared, got %v", *user.TeamID)
	}
}

// ==================== Team Tests ====================

func TestCreateTeam_DuplicateName(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	leader := seedUser(t, repo, "lead@example.com")
	if _, err := repo.CreateTeam(ctx, "Uniques", leader, "c1"); err != nil {
		t.Fatalf("CreateTeam failed: %v", err)
	}

	_, err := repo.CreateTeam(ctx, "Uniques", leader, "c2")
	if err != ErrDuplicate {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestGetTeam_PopulatesMembers(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	leader := seedUser(t, repo, "lead2@example.com")
	teamID := seedTeam(t, repo, "Rosters", leader)
	member := seedUser(t, repo, "mate@example.com")
	if err := repo.SetUserTeam(ctx, member, &teamID); err != nil {
		t.Fatalf("SetUserTeam failed: %v", err)
	}

	team, err := repo.GetTeam(ctx, teamID)
	if err != nil {
		t.Fatalf("GetTeam failed: %v", err)
	}
	if team.LeaderID != leader {
		t.Errorf("expected leader %d, got %d", leader, team.LeaderID)
	}
	if len(team.Members) != 2 {
		t.Errorf("expected 2 members, got %d", len(team.Members))
	}
	if team.PaymentStatus != models.PaymentPending {
		t.Errorf("expected pending payment, got %q", team.PaymentStatus)
	}
	if team.Round2Status != models.Round2NotStarted {
		t.Errorf("expected not_started, got %q", team.Round2Status)
	}

	count, err := repo.CountMembers(ctx, teamID)
	if err != nil {
		t.Fatalf("CountMembers failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 members, got %d", count)
	}
}

func TestListTeamsByPayment(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	l1 := seedUser(t, repo, "l1@example.com")
	l2 := seedUser(t, repo, "l2@example.com")
	t1 := seedTeam(t, repo, "Paid", l1)
	seedTeam(t, repo, "Unpaid", l2)

	if err := repo.SetPaymentStatus(ctx, t1, models.PaymentCompleted); err != nil {
		t.Fatalf("SetPaymentStatus failed: %v", err)
	}

	teams, err := repo.ListTeamsByPayment(ctx, models.PaymentCompleted)
	if err != nil {
		t.Fatalf("ListTeamsByPayment failed: %v", err)
	}
	if len(teams) != 1 || teams[0].Name != "Paid" {
		t.Errorf("unexpected teams: %+v", teams)
	}
}

func TestSetPaymentProof(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	leader := seedUser(t, repo, "pay@example.com")
	teamID := seedTeam(t, repo, "Payers", leader)

	if err := repo.SetPaymentProof(ctx, teamID, "TXN-42", "payments/proof.png"); err != nil {
		t.Fatalf("SetPaymentProof failed: %v", err)
	}

	team, _ := repo.GetTeam(ctx, teamID)
	if team.TransactionID != "TXN-42" || team.PaymentProof != "payments/proof.png" {
		t.Errorf("got txn=%q proof=%q", team.TransactionID, team.PaymentProof)
	}
}

func TestSetRound1Aggregate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	leader := seedUser(t, repo, "agg@example.com")
	teamID := seedTeam(t, repo, "Aggregates", leader)

	if err := repo.SetRound1Aggregate(ctx, teamID, 7.5, 843.2); err != nil {
		t.Fatalf("SetRound1Aggregate failed: %v", err)
	}

	team, _ := repo.GetTeam(ctx, teamID)
	if team.Round1FinalScore != 7.5 {
		t.Errorf("expected score 7.5, got %v", team.Round1FinalScore)
	}
	if team.Round1AvgSubmissionTime != 843.2 {
		t.Errorf("expected time 843.2, got %v", team.Round1AvgSubmissionTime)
	}
}

func TestSetFinalistAndRound2Status(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	leader := seedUser(t, repo, "fin@example.com")
	teamID := seedTeam(t, repo, "Finalists", leader)

	if err := repo.SetFinalist(ctx, teamID, true); err != nil {
		t.Fatalf("SetFinalist failed: %v", err)
	}
	if err := repo.SetRound2Status(ctx, teamID, models.Round2Submitted); err != nil {
		t.Fatalf("SetRound2Status failed: %v", err)
	}

	team, _ := repo.GetTeam(ctx, teamID)
	if !team.IsFinalist {
		t.Error("expected finalist flag set")
	}
	if team.Round2Status != models.Round2Submitted {
		t.Errorf("expected submitted, got %q", team.Round2Status)
	}
}

func TestDeleteTeamWithMembers(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	leader := seedUser(t, repo, "gone@example.com")
	teamID := seedTeam(t, repo, "Goners", leader)
	if _, err := repo.CreateQuizAttempt(ctx, leader, teamID, time.Now()); err != nil {
		t.Fatalf("CreateQuizAttempt failed: %v", err)
	}

	if err := repo.DeleteTeamWithMembers(ctx, teamID); err != nil {
		t.Fatalf("DeleteTeamWithMembers failed: %v", err)
	}

	if _, err := repo.GetTeam(ctx, teamID); err != ErrNotFound {
		t.Errorf("expected team gone, got %v", err)
	}
	if _, err := repo.GetUser(ctx, leader); err != ErrNotFound {
		t.Errorf("expected user gone, got %v", err)
	}
	if _, err := repo.GetQuizSubmission(ctx, leader); err != ErrNotFound {
		t.Errorf("expected submission gone, got %v", err)
	}
}

// ==================== Question Tests ====================

func TestQuestionLifecycle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	correct := 2
	id, err := repo.CreateQuestion(ctx, models.Question{
		Round:         1,
		Title:         "What is 2+2?",
		Options:       []string{"3", "4", "5", "22"},
		CorrectOption: &correct,
	})
	if err != nil {
		t.Fatalf("CreateQuestion failed: %v", err)
	}

	q, err := repo.GetQuestion(ctx, int(id))
	if err != nil {
		t.Fatalf("GetQuestion failed: %v", err)
	}
	if len(q.Options) != 4 || q.Options[1] != "4" {
		t.Errorf("unexpected options: %v", q.Options)
	}
	if q.CorrectOption == nil || *q.CorrectOption != 2 {
		t.Errorf("unexpected correct option: %v", q.CorrectOption)
	}

	q.Title = "What is 2+2 really?"
	if err := repo.UpdateQuestion(ctx, *q); err != nil {
		t.Fatalf("UpdateQuestion failed: %v", err)
	}
	q2, _ := repo.GetQuestion(ctx, int(id))
	if q2.Title != "What is 2+2 really?" {
		t.Errorf("update not applied: %q", q2.Title)
	}

	count, err := repo.CountQuestions(ctx, 1)
	if err != nil || count != 1 {
		t.Errorf("expected 1 question, got %d (err %v)", count, err)
	}

	if err := repo.DeleteQuestion(ctx, int(id)); err != nil {
		t.Fatalf("DeleteQuestion failed: %v", err)
	}
	if _, err := repo.GetQuestion(ctx, int(id)); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestQuestionRound2_NullableFields(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	deadline := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	id, err := repo.CreateQuestion(ctx, models.Question{
		Round:       2,
		Title:       "Build a thing",
		Description: "A long problem statement",
		Deadline:    &deadline,
	})
	if err != nil {
		t.Fatalf("CreateQuestion failed: %v", err)
	}

	q, err := repo.GetQuestion(ctx, int(id))
	if err != nil {
		t.Fatalf("GetQuestion failed: %v", err)
	}
	if q.Options != nil {
		t.Errorf("expected no options, got %v", q.Options)
	}
	if q.CorrectOption != nil {
		t.Errorf("expected no correct option, got %v", *q.CorrectOption)
	}
	if q.Description != "A long problem statement" {
		t.Errorf("unexpected description %q", q.Description)
	}
	if q.Deadline == nil || !q.Deadline.Equal(deadline) {
		t.Errorf("expected deadline %v, got %v", deadline, q.Deadline)
	}
}

func TestAnswerKey(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	want := map[int]int{}
	for i, correct := range []int{0, 1, 3} {
		c := correct
		id, err := repo.CreateQuestion(ctx, models.Question{
			Round:         1,
			Title:         "Q",
			Options:       []string{"a", "b", "c", "d"},
			CorrectOption: &c,
		})
		if err != nil {
			t.Fatalf("CreateQuestion %d failed: %v", i, err)
		}
		want[int(id)] = correct
	}

	key, err := repo.AnswerKey(ctx, 1)
	if err != nil {
		t.Fatalf("AnswerKey failed: %v", err)
	}
	if len(key) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(key))
	}
	for id, correct := range want {
		if key[id] != correct {
			t.Errorf("question %d: expected %d, got %d", id, correct, key[id])
		}
	}
}

// ==================== Submission Tests ====================

func TestCreateQuizAttempt_OnePerUser(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := seedUser(t, repo, "quiz@example.com")
	teamID := seedTeam(t, repo, "Quizzers", user)

	if _, err := repo.CreateQuizAttempt(ctx, user, teamID, time.Now()); err != nil {
		t.Fatalf("CreateQuizAttempt failed: %v", err)
	}

	_, err := repo.CreateQuizAttempt(ctx, user, teamID, time.Now())
	if err != ErrDuplicate {
		t.Errorf("expected ErrDuplicate on second attempt, got %v", err)
	}
}

func TestCreateQuizAttempt_TeammatesIndependent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	u1 := seedUser(t, repo, "m1@example.com")
	teamID := seedTeam(t, repo, "Mates", u1)
	u2 := seedUser(t, repo, "m2@example.com")
	if err := repo.SetUserTeam(ctx, u2, &teamID); err != nil {
		t.Fatalf("SetUserTeam failed: %v", err)
	}

	if _, err := repo.CreateQuizAttempt(ctx, u1, teamID, time.Now()); err != nil {
		t.Fatalf("first attempt failed: %v", err)
	}
	if _, err := repo.CreateQuizAttempt(ctx, u2, teamID, time.Now()); err != nil {
		t.Errorf("teammate attempt should not conflict, got %v", err)
	}
}

func TestCompleteQuizAttempt_OnceOnly(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := seedUser(t, repo, "once@example.com")
	teamID := seedTeam(t, repo, "Oncers", user)

	id, err := repo.CreateQuizAttempt(ctx, user, teamID, time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("CreateQuizAttempt failed: %v", err)
	}

	answers := []models.Answer{{QuestionID: 1, SelectedOption: 2}}
	completed, err := repo.CompleteQuizAttempt(ctx, int(id), answers, 1, time.Now())
	if err != nil {
		t.Fatalf("CompleteQuizAttempt failed: %v", err)
	}
	if !completed {
		t.Fatal("expected first completion to succeed")
	}

	completed, err = repo.CompleteQuizAttempt(ctx, int(id), answers, 5, time.Now())
	if err != nil {
		t.Fatalf("second CompleteQuizAttempt failed: %v", err)
	}
	if completed {
		t.Error("expected second completion to be a no-op")
	}

	// First score must survive the second attempt
	sub, err := repo.GetQuizSubmission(ctx, user)
	if err != nil {
		t.Fatalf("GetQuizSubmission failed: %v", err)
	}
	if sub.Score != 1 {
		t.Errorf("expected score 1, got %d", sub.Score)
	}
	if !sub.Completed() {
		t.Error("expected submission to be completed")
	}
	if len(sub.Answers) != 1 || sub.Answers[0].SelectedOption != 2 {
		t.Errorf("unexpected answers: %+v", sub.Answers)
	}
}

func TestDeleteQuizSubmission_ReturnsTeam(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := seedUser(t, repo, "reset@example.com")
	teamID := seedTeam(t, repo, "Resets", user)
	if _, err := repo.CreateQuizAttempt(ctx, user, teamID, time.Now()); err != nil {
		t.Fatalf("CreateQuizAttempt failed: %v", err)
	}

	got, err := repo.DeleteQuizSubmission(ctx, user)
	if err != nil {
		t.Fatalf("DeleteQuizSubmission failed: %v", err)
	}
	if got != teamID {
		t.Errorf("expected team %d, got %d", teamID, got)
	}

	// A second attempt is allowed after the delete
	if _, err := repo.CreateQuizAttempt(ctx, user, teamID, time.Now()); err != nil {
		t.Errorf("expected retake to be allowed, got %v", err)
	}

	if _, err := repo.DeleteQuizSubmission(ctx, 999); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for unknown user, got %v", err)
	}
}

func TestListCompletedQuizSubmissions_SkipsOpen(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	u1 := seedUser(t, repo, "c1@example.com")
	teamID := seedTeam(t, repo, "Completers", u1)
	u2 := seedUser(t, repo, "c2@example.com")
	if err := repo.SetUserTeam(ctx, u2, &teamID); err != nil {
		t.Fatalf("SetUserTeam failed: %v", err)
	}

	id1, _ := repo.CreateQuizAttempt(ctx, u1, teamID, time.Now().Add(-10*time.Minute))
	if _, err := repo.CreateQuizAttempt(ctx, u2, teamID, time.Now()); err != nil {
		t.Fatalf("CreateQuizAttempt failed: %v", err)
	}
	if _, err := repo.CompleteQuizAttempt(ctx, int(id1), nil, 3, time.Now()); err != nil {
		t.Fatalf("CompleteQuizAttempt failed: %v", err)
	}

	subs, err := repo.ListCompletedQuizSubmissions(ctx, teamID)
	if err != nil {
		t.Fatalf("ListCompletedQuizSubmissions failed: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("expected 1 completed submission, got %d", len(subs))
	}
	if subs[0].UserID != u1 || subs[0].Score != 3 {
		t.Errorf("unexpected submission: %+v", subs[0])
	}
}

func TestCreateProjectSubmission_OnePerTeam(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	leader := seedUser(t, repo, "proj@example.com")
	teamID := seedTeam(t, repo, "Projects", leader)

	if _, err := repo.CreateProjectSubmission(ctx, leader, teamID, "projects/x.zip", "notes"); err != nil {
		t.Fatalf("CreateProjectSubmission failed: %v", err)
	}

	_, err := repo.CreateProjectSubmission(ctx, leader, teamID, "projects/y.zip", "")
	if err != ErrDuplicate {
		t.Errorf("expected ErrDuplicate on second project, got %v", err)
	}

	sub, err := repo.GetProjectSubmission(ctx, teamID)
	if err != nil {
		t.Fatalf("GetProjectSubmission failed: %v", err)
	}
	if sub.ProjectFile != "projects/x.zip" || sub.Notes != "notes" || sub.Round != 2 {
		t.Errorf("unexpected submission: %+v", sub)
	}
}

func TestQuizAndProjectIndexesIndependent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	leader := seedUser(t, repo, "both@example.com")
	teamID := seedTeam(t, repo, "Both", leader)

	if _, err := repo.CreateQuizAttempt(ctx, leader, teamID, time.Now()); err != nil {
		t.Fatalf("CreateQuizAttempt failed: %v", err)
	}
	// The quiz attempt must not block the team's project submission
	if _, err := repo.CreateProjectSubmission(ctx, leader, teamID, "projects/z.zip", ""); err != nil {
		t.Errorf("expected project submission to succeed, got %v", err)
	}
}

func TestListProjectSubmissions(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	l1 := seedUser(t, repo, "s1@example.com")
	l2 := seedUser(t, repo, "s2@example.com")
	t1 := seedTeam(t, repo, "S1", l1)
	t2 := seedTeam(t, repo, "S2", l2)

	repo.CreateProjectSubmission(ctx, l1, t1, "projects/a.zip", "")
	repo.CreateProjectSubmission(ctx, l2, t2, "projects/b.zip", "")

	subs, err := repo.ListProjectSubmissions(ctx)
	if err != nil {
		t.Fatalf("ListProjectSubmissions failed: %v", err)
	}
	if len(subs) != 2 {
		t.Errorf("expected 2 submissions, got %d", len(subs))
	}
}

// ==================== State Tests ====================

func TestGetState_LazyCreate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	state, err := repo.GetState(ctx)
	if err != nil {
		t.Fatalf("GetState failed: %v", err)
	}
	if state.Round1Status != models.RoundPending || state.Round2Status != models.RoundPending {
		t.Errorf("expected pending rounds, got %+v", state)
	}
	if state.Round1Deadline != nil || state.Round2Deadline != nil {
		t.Error("expected no deadlines on fresh state")
	}

	// Second read returns the same singleton
	if _, err := repo.GetState(ctx); err != nil {
		t.Fatalf("second GetState failed: %v", err)
	}
}

func TestSetRoundStatus(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	deadline := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	if err := repo.SetRoundStatus(ctx, 1, models.RoundActive, &deadline); err != nil {
		t.Fatalf("SetRoundStatus failed: %v", err)
	}

	state, _ := repo.GetState(ctx)
	if state.Round1Status != models.RoundActive {
		t.Errorf("expected Active, got %q", state.Round1Status)
	}
	if state.Round1Deadline == nil || !state.Round1Deadline.Equal(deadline) {
		t.Errorf("expected deadline %v, got %v", deadline, state.Round1Deadline)
	}
	if state.Round2Status != models.RoundPending {
		t.Errorf("round 2 must be untouched, got %q", state.Round2Status)
	}

	if err := repo.SetRoundStatus(ctx, 2, models.RoundCompleted, nil); err != nil {
		t.Fatalf("SetRoundStatus round 2 failed: %v", err)
	}
	state, _ = repo.GetState(ctx)
	if state.Round2Status != models.RoundCompleted {
		t.Errorf("expected Completed, got %q", state.Round2Status)
	}
}

func TestSetCertificatePath(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.SetCertificatePath(ctx, 1, "certificates/r1.pdf"); err != nil {
		t.Fatalf("SetCertificatePath failed: %v", err)
	}

	state, _ := repo.GetState(ctx)
	if state.Round1CertificatePath != "certificates/r1.pdf" {
		t.Errorf("unexpected path %q", state.Round1CertificatePath)
	}
	if state.Round2CertificatePath != "" {
		t.Errorf("round 2 path must be empty, got %q", state.Round2CertificatePath)
	}
}
