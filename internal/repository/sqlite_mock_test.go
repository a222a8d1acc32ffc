package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

// TestListTeams_QueryError tests query failure propagation
func TestListTeams_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	repo := &Repository{db: db}
	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM teams").WillReturnError(errors.New("disk I/O error"))

	if _, err := repo.ListTeams(ctx); err == nil {
		t.Error("expected error from query failure, got nil")
	}
}

// TestListQuestions_ScanError tests row scanning error
func TestListQuestions_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	repo := &Repository{db: db}
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "round", "title", "options", "correct_option", "description", "deadline"}).
		AddRow("bad-id", 1, "Q", nil, nil, nil, nil) // id should be int, not string

	mock.ExpectQuery("SELECT (.+) FROM questions").WillReturnRows(rows)

	if _, err := repo.ListQuestions(ctx, 1); err == nil {
		t.Error("expected error from scan failure, got nil")
	}
}

// TestListQuestions_BadOptionsJSON tests corrupt stored options
func TestListQuestions_BadOptionsJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	repo := &Repository{db: db}
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "round", "title", "options", "correct_option", "description", "deadline"}).
		AddRow(1, 1, "Q", "{not json", nil, nil, nil)

	mock.ExpectQuery("SELECT (.+) FROM questions").WillReturnRows(rows)

	if _, err := repo.ListQuestions(ctx, 1); err == nil {
		t.Error("expected error from corrupt options JSON, got nil")
	}
}

// TestCompleteQuizAttempt_ExecError tests update failure propagation
func TestCompleteQuizAttempt_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	repo := &Repository{db: db}
	ctx := context.Background()

	mock.ExpectExec("UPDATE submissions").WillReturnError(errors.New("database is locked"))

	if _, err := repo.CompleteQuizAttempt(ctx, 1, nil, 0, time.Now()); err == nil {
		t.Error("expected error from exec failure, got nil")
	}
}

// TestListProjectSubmissions_RowsError tests iteration error propagation
func TestListProjectSubmissions_RowsError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	repo := &Repository{db: db}
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "user_id", "team_id", "round", "answers", "score", "start_time", "end_time", "project_file", "notes"}).
		AddRow(1, 1, 1, 2, nil, 0, nil, nil, "projects/a.zip", nil).
		RowError(0, errors.New("row read failed"))

	mock.ExpectQuery("SELECT (.+) FROM submissions").WillReturnRows(rows)

	if _, err := repo.ListProjectSubmissions(ctx); err == nil {
		t.Error("expected error from row iteration failure, got nil")
	}
}
