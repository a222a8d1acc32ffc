package handlers

import (
	"net/http"

	"github.com/adishm/hackarena/internal/models"
)

// handleGetState returns the current round statuses and deadlines
func (h *Handlers) handleGetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.State.State(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, state)
}

// handleSetRoundStatus transitions a round to a new status
func (h *Handlers) handleSetRoundStatus(w http.ResponseWriter, r *http.Request) {
	round, err := parseIntParam(r, "round")
	if err != nil {
		respondError(w, err)
		return
	}

	var req RoundStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	state, err := h.State.SetRoundStatus(r.Context(), round, models.RoundStatus(req.Status), req.Deadline)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, state)
}

// handleUploadCertificate accepts a multipart upload with a certificate
// template for a round
func (h *Handlers) handleUploadCertificate(w http.ResponseWriter, r *http.Request) {
	round, err := parseIntParam(r, "round")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, BadRequest("Invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("certificate")
	if err != nil {
		respondError(w, BadRequest("Certificate file is required"))
		return
	}
	defer file.Close()

	state, err := h.State.UploadCertificate(r.Context(), round, header.Filename, file)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, state)
}
