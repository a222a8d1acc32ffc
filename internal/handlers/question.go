package handlers

import (
	"net/http"

	"github.com/adishm/hackarena/internal/services"
)

func questionInput(req QuestionRequest) services.QuestionInput {
	return services.QuestionInput{
		Round:         req.Round,
		Title:         req.Title,
		Options:       req.Options,
		CorrectOption: req.CorrectOption,
		Description:   req.Description,
		Deadline:      req.Deadline,
	}
}

// handleListQuestions returns the questions for a round without answers
func (h *Handlers) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	round, err := parseIntParam(r, "round")
	if err != nil {
		respondError(w, err)
		return
	}

	questions, err := h.Question.List(r.Context(), round)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, questions)
}

// handleListQuestionsAdmin returns the questions for a round with answers
func (h *Handlers) handleListQuestionsAdmin(w http.ResponseWriter, r *http.Request) {
	round, err := parseIntParam(r, "round")
	if err != nil {
		respondError(w, err)
		return
	}

	questions, err := h.Question.ListWithAnswers(r.Context(), round)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, questions)
}

// handleCreateQuestion adds a question to the bank
func (h *Handlers) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req QuestionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	question, err := h.Question.Create(r.Context(), questionInput(req))
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, question)
}

// handleUpdateQuestion replaces a question's editable fields
func (h *Handlers) handleUpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req QuestionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	question, err := h.Question.Update(r.Context(), id, questionInput(req))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, question)
}

// handleDeleteQuestion removes a question
func (h *Handlers) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Question.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}
