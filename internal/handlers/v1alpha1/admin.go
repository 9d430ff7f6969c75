package v1alpha1

import (
	"net/http"

	api "github.com/talentlink/marketplace/api/v1alpha1"
)

func (h *Handler) GetTrainingCenter(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	profile, err := h.service.GetTrainingCenter(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

func (h *Handler) SetVerification(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var update api.VerificationUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	profile, err := h.service.SetVerification(r.Context(), id, update)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}
