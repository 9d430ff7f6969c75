package v1alpha1

import (
	"net/http"

	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
)

func (h *Handler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	var request api.BookmarkToggleRequest
	if !decodeBody(w, r, &request) {
		return
	}
	if _, ok := api.StringToItemType(string(request.ItemType)); !ok {
		respondError(w, r, http.StatusBadRequest, "unknown item type")
		return
	}
	if request.ItemId == (uuid.UUID{}) {
		respondError(w, r, http.StatusBadRequest, "itemId is required")
		return
	}

	response, err := h.service.ToggleBookmark(r.Context(), request)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, response)
}

func (h *Handler) ListBookmarkIds(w http.ResponseWriter, r *http.Request) {
	itemType, ok := api.StringToItemType(r.URL.Query().Get("type"))
	if !ok {
		respondError(w, r, http.StatusBadRequest, "unknown item type")
		return
	}

	ids, err := h.service.ListBookmarkIds(r.Context(), itemType)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, ids)
}
