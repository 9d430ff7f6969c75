package v1alpha1

import (
	"net/http"
	"strconv"
)

func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(w, r, http.StatusBadRequest, "malformed limit")
			return
		}
		limit = parsed
	}

	list, err := h.service.ListNotifications(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (h *Handler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.GetUnreadCount(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, count)
}

func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.MarkNotificationRead(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarkAllNotificationsRead(r.Context()); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteNotification(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
