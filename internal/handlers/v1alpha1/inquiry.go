package v1alpha1

import (
	"net/http"

	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
)

func (h *Handler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var inquiryCreate api.InquiryCreate
	if !decodeBody(w, r, &inquiryCreate) {
		return
	}
	if inquiryCreate.TrainingCenterId == (uuid.UUID{}) {
		respondError(w, r, http.StatusBadRequest, "trainingCenterId is required")
		return
	}

	inquiry, err := h.service.CreateInquiry(r.Context(), inquiryCreate)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, inquiry)
}

func (h *Handler) GetInquiry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	inquiry, err := h.service.GetInquiry(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, inquiry)
}

func (h *Handler) UpdateInquiry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var update api.InquiryUpdate
	if !decodeBody(w, r, &update) {
		return
	}
	if update.Status != nil {
		if _, ok := api.StringToInquiryStatus(string(*update.Status)); !ok {
			respondError(w, r, http.StatusBadRequest, "unknown inquiry status")
			return
		}
	}

	inquiry, err := h.service.UpdateInquiry(r.Context(), id, update)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, inquiry)
}
