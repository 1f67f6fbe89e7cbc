package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ewilliams-labs/findbgm/internal/core/domain"
)

const errCodeInvalidInput = "INVALID_INPUT"

// Recommend handles POST /api/recommendations.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req domain.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.ApplyDefaults()

	response, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeErrorWithCode(w, http.StatusBadRequest, err.Error(), errCodeInvalidInput)
			return
		}
		h.log.WithError(err).Error("Recommendation request failed")
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, response)
}
