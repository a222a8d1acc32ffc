package handlers

import (
	"io"
	"net/http"
	"os"
	"path"

	"github.com/go-chi/chi/v5"
)

// handleDownload streams a stored upload back to an admin. The storage
// layer rejects paths that escape the upload directory.
func (h *Handlers) handleDownload(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	file := chi.URLParam(r, "file")
	if category == "" || file == "" {
		respondError(w, BadRequest("Missing file path"))
		return
	}

	rc, err := h.Files.Open(path.Join(category, file))
	if err != nil {
		if os.IsNotExist(err) {
			respondError(w, NotFound("File not found"))
			return
		}
		respondError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Disposition", `attachment; filename="`+file+`"`)
	w.Header().Set("Content-Type", "application/octet-stream")
	io.Copy(w, rc)
}
