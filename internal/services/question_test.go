package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/adishm/hackarena/internal/logger"
	"github.com/adishm/hackarena/internal/repository"
	"github.com/adishm/hackarena/internal/services"
	"github.com/adishm/hackarena/internal/testutil"
)

func setupQuestionService(t *testing.T) (*services.QuestionService, *repository.Repository) {
	t.Helper()
	repo := testutil.NewTestRepository(t)
	return services.NewQuestionService(logger.New(), repo), repo
}

func intPtr(v int) *int { return &v }

func TestQuestionCreate_Round1(t *testing.T) {
	svc, _ := setupQuestionService(t)
	ctx := context.Background()

	q, err := svc.Create(ctx, services.QuestionInput{
		Round:         1,
		Title:         "Pick b",
		Options:       []string{"a", "b", "c", "d"},
		CorrectOption: intPtr(1),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if q.ID <= 0 || len(q.Options) != 4 {
		t.Errorf("unexpected question: %+v", q)
	}
}

func TestQuestionCreate_Round1Validation(t *testing.T) {
	svc, _ := setupQuestionService(t)
	ctx := context.Background()

	cases := []services.QuestionInput{
		{Round: 1, Title: "", Options: []string{"a", "b", "c", "d"}, CorrectOption: intPtr(0)},
		{Round: 1, Title: "Q", Options: []string{"a", "b"}, CorrectOption: intPtr(0)},
		{Round: 1, Title: "Q", Options: []string{"a", "b", "c", "d"}},
		{Round: 1, Title: "Q", Options: []string{"a", "b", "c", "d"}, CorrectOption: intPtr(4)},
		{Round: 3, Title: "Q", Options: []string{"a", "b", "c", "d"}, CorrectOption: intPtr(0)},
	}
	for i, in := range cases {
		if _, err := svc.Create(ctx, in); err == nil {
			t.Errorf("case %d: expected validation error, got nil", i)
		}
	}
}

func TestQuestionCreate_Round2(t *testing.T) {
	svc, _ := setupQuestionService(t)
	ctx := context.Background()

	deadline := time.Now().Add(72 * time.Hour)
	q, err := svc.Create(ctx, services.QuestionInput{
		Round:       2,
		Title:       "Build something",
		Description: "Full problem statement here",
		Deadline:    &deadline,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if q.Options != nil || q.CorrectOption != nil {
		t.Errorf("round-2 question must have no MCQ fields: %+v", q)
	}

	// Missing description is rejected
	if _, err := svc.Create(ctx, services.QuestionInput{Round: 2, Title: "Bare"}); err == nil {
		t.Error("expected validation error for missing description, got nil")
	}
}

func TestQuestionList_StripsAnswers(t *testing.T) {
	svc, _ := setupQuestionService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, services.QuestionInput{
		Round: 1, Title: "Q", Options: []string{"a", "b", "c", "d"}, CorrectOption: intPtr(2),
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	questions, err := svc.List(ctx, 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].CorrectOption != nil {
		t.Error("participant view leaked the correct option")
	}

	admin, err := svc.ListWithAnswers(ctx, 1)
	if err != nil {
		t.Fatalf("ListWithAnswers failed: %v", err)
	}
	if admin[0].CorrectOption == nil || *admin[0].CorrectOption != 2 {
		t.Errorf("admin view must include the answer, got %v", admin[0].CorrectOption)
	}
}

func TestQuestionUpdate_KeepsRound(t *testing.T) {
	svc, _ := setupQuestionService(t)
	ctx := context.Background()

	q, err := svc.Create(ctx, services.QuestionInput{
		Round: 1, Title: "Old", Options: []string{"a", "b", "c", "d"}, CorrectOption: intPtr(0),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Round in the update payload is ignored; the stored round rules apply
	updated, err := svc.Update(ctx, q.ID, services.QuestionInput{
		Round: 2, Title: "New", Options: []string{"w", "x", "y", "z"}, CorrectOption: intPtr(3),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Round != 1 {
		t.Errorf("round changed on update: %d", updated.Round)
	}
	if updated.Title != "New" || *updated.CorrectOption != 3 {
		t.Errorf("update not applied: %+v", updated)
	}
}

func TestQuestionUpdateDelete_NotFound(t *testing.T) {
	svc, _ := setupQuestionService(t)
	ctx := context.Background()

	if _, err := svc.Update(ctx, 999, services.QuestionInput{Title: "X"}); err == nil {
		t.Error("expected not-found error on update, got nil")
	}
	if err := svc.Delete(ctx, 999); err == nil {
		t.Error("expected not-found error on delete, got nil")
	}
}
