package v1alpha1

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
)

func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var jobCreate api.JobCreate
	if !decodeBody(w, r, &jobCreate) {
		return
	}
	if jobCreate.Title == "" {
		respondError(w, r, http.StatusBadRequest, "title is required")
		return
	}
	if jobCreate.Status != "" {
		if _, ok := api.StringToJobStatus(string(jobCreate.Status)); !ok {
			respondError(w, r, http.StatusBadRequest, "unknown job status")
			return
		}
	}

	job, err := h.service.CreateJob(r.Context(), jobCreate)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, job)
}

func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	job, err := h.service.GetJob(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, job)
}

func (h *Handler) UpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var update api.JobStatusUpdate
	if !decodeBody(w, r, &update) {
		return
	}
	if _, ok := api.StringToJobStatus(string(update.Status)); !ok {
		respondError(w, r, http.StatusBadRequest, "unknown job status")
		return
	}

	job, err := h.service.UpdateJobStatus(r.Context(), id, update)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, job)
}

func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteJob(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// pathID parses the {id} route parameter, replying 400 on garbage.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "malformed id")
		return uuid.UUID{}, false
	}
	return id, true
}
