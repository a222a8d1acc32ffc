package handlers

import (
	"net/http"

	"github.com/adishm/hackarena/internal/auth"
)

// maxUploadSize bounds multipart uploads (payment proofs, project archives)
const maxUploadSize = 20 << 20 // 20 MB

// handleCreateTeam creates a team led by the authenticated user
func (h *Handlers) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFrom(r.Context())

	var req TeamCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	team, err := h.Team.CreateTeam(r.Context(), user, req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, team)
}

// handleMyTeam returns the authenticated user's team
func (h *Handlers) handleMyTeam(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFrom(r.Context())

	team, err := h.Team.MyTeam(r.Context(), user)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, team)
}

// handleGetTeam returns a team by ID
func (h *Handlers) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	team, err := h.Team.GetTeam(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, team)
}

// handleAddMember adds a user to the team by email
func (h *Handlers) handleAddMember(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFrom(r.Context())

	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req AddMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	team, err := h.Team.AddMember(r.Context(), user, id, req.Email)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, team)
}

// handleListTeams returns all teams
func (h *Handlers) handleListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.Team.ListTeams(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, teams)
}

// handleDeleteTeam removes a team and its members
func (h *Handlers) handleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Team.DeleteTeam(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}

// handleVerifyPayment marks a team's payment as completed
func (h *Handlers) handleVerifyPayment(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	team, err := h.Team.VerifyPayment(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, team)
}

// handleSubmitPaymentProof accepts a multipart upload with the payment
// screenshot and transaction ID
func (h *Handlers) handleSubmitPaymentProof(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFrom(r.Context())

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, BadRequest("Invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("proof")
	if err != nil {
		respondError(w, BadRequest("Payment proof file is required"))
		return
	}
	defer file.Close()

	transactionID := r.FormValue("transaction_id")

	team, err := h.Team.SubmitPaymentProof(r.Context(), user, transactionID, header.Filename, file)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, team)
}

// handleCheckInQR serves the team's check-in code as a PNG
func (h *Handlers) handleCheckInQR(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	png, err := h.Team.CheckInQR(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
