package handlers

import (
	"net/http"

	"github.com/adishm/hackarena/internal/auth"
)

// handleSubmitProject accepts a multipart upload with the project archive
// and optional notes
func (h *Handlers) handleSubmitProject(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFrom(r.Context())

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, BadRequest("Invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("project")
	if err != nil {
		respondError(w, BadRequest("Project file is required"))
		return
	}
	defer file.Close()

	notes := r.FormValue("notes")

	submission, err := h.Round2.SubmitProject(r.Context(), user, notes, header.Filename, file)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, submission)
}

// handleTeamProjectSubmission returns the team's project submission
func (h *Handlers) handleTeamProjectSubmission(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFrom(r.Context())

	submission, err := h.Round2.TeamSubmission(r.Context(), user)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, submission)
}

// handleListProjectSubmissions returns every project submission
func (h *Handlers) handleListProjectSubmissions(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.Round2.ListSubmissions(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, submissions)
}

// handleAdvanceToFinale promotes a team to the finale
func (h *Handlers) handleAdvanceToFinale(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	team, err := h.Round2.AdvanceToFinale(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, team)
}
