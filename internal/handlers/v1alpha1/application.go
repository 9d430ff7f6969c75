package v1alpha1

import (
	"net/http"

	api "github.com/talentlink/marketplace/api/v1alpha1"
)

func (h *Handler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathID(w, r)
	if !ok {
		return
	}

	application, err := h.service.CreateApplication(r.Context(), jobID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, application)
}

func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	application, err := h.service.GetApplication(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, application)
}

func (h *Handler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var update api.ApplicationStatusUpdate
	if !decodeBody(w, r, &update) {
		return
	}
	if _, ok := api.StringToApplicationStatus(string(update.Status)); !ok {
		respondError(w, r, http.StatusBadRequest, "unknown application status")
		return
	}

	application, err := h.service.UpdateApplicationStatus(r.Context(), id, update)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, application)
}
