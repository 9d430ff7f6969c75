package v1alpha1

import (
	"encoding/json"
	"errors"
	"net/http"

	api "github.com/talentlink/marketplace/api/v1alpha1"
	"github.com/talentlink/marketplace/internal/lifecycle"
	"github.com/talentlink/marketplace/internal/service"
	"github.com/talentlink/marketplace/pkg/requestid"
	"go.uber.org/zap"
)

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.S().Named("handlers").Errorw("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, status, api.Error{
		Message:   message,
		RequestId: requestid.FromContextPtr(r.Context()),
	})
}

// respondServiceError translates the typed service errors into status
// codes. Transition rejections map to 409 except for authorization
// failures, which map to 403.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *service.ErrResourceNotFound
	var rejected *service.ErrTransitionRejected
	var unauthenticated *service.ErrUnauthenticated
	var forbidden *service.ErrForbidden
	var duplicate *service.ErrDuplicateApplication

	switch {
	case errors.As(err, &unauthenticated):
		respondError(w, r, http.StatusUnauthorized, err.Error())
	case errors.As(err, &notFound):
		respondError(w, r, http.StatusNotFound, err.Error())
	case errors.As(err, &rejected):
		if rejected.Reason == lifecycle.ReasonUnauthorized {
			respondError(w, r, http.StatusForbidden, err.Error())
			return
		}
		respondError(w, r, http.StatusConflict, err.Error())
	case errors.As(err, &forbidden):
		respondError(w, r, http.StatusForbidden, err.Error())
	case errors.As(err, &duplicate):
		respondError(w, r, http.StatusConflict, err.Error())
	default:
		zap.S().Named("handlers").Errorw("request failed", "error", err, "path", r.URL.Path)
		respondError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, into any) bool {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		respondError(w, r, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}
