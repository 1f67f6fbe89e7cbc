package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ewilliams-labs/findbgm/internal/core/domain"
)

type analyzeRequest struct {
	Script string `json:"script"`
}

// Analyze handles POST /api/analyze: script analysis without the catalog
// round trip.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	analysis, err := h.svc.Analyze(r.Context(), req.Script)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeErrorWithCode(w, http.StatusBadRequest, err.Error(), errCodeInvalidInput)
			return
		}
		h.log.WithError(err).Error("Analyze request failed")
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}
