// Package v1alpha1 contains the HTTP layer: request decoding, route
// registration and the mapping from service errors to status codes.
package v1alpha1

import (
	"github.com/go-chi/chi/v5"
	"github.com/talentlink/marketplace/internal/service"
)

type Handler struct {
	service *service.ServiceHandler
}

func NewHandler(service *service.ServiceHandler) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts all v1 endpoints on the given router.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/jobs", func(r chi.Router) {
			r.Post("/", h.CreateJob)
			r.Get("/{id}", h.GetJob)
			r.Delete("/{id}", h.DeleteJob)
			r.Put("/{id}/status", h.UpdateJobStatus)
			r.Post("/{id}/applications", h.CreateApplication)
		})

		r.Route("/applications", func(r chi.Router) {
			r.Get("/{id}", h.GetApplication)
			r.Put("/{id}/status", h.UpdateApplicationStatus)
		})

		r.Route("/courses/inquiries", func(r chi.Router) {
			r.Post("/", h.CreateInquiry)
			r.Get("/{id}", h.GetInquiry)
			r.Put("/{id}", h.UpdateInquiry)
		})

		r.Route("/admin/training-centers", func(r chi.Router) {
			r.Get("/{id}", h.GetTrainingCenter)
			r.Put("/{id}/verify", h.SetVerification)
		})

		r.Route("/bookmarks", func(r chi.Router) {
			r.Post("/toggle", h.ToggleBookmark)
			r.Get("/ids", h.ListBookmarkIds)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.ListNotifications)
			r.Get("/unread-count", h.GetUnreadCount)
			r.Put("/read-all", h.MarkAllNotificationsRead)
			r.Put("/{id}/read", h.MarkNotificationRead)
			r.Delete("/{id}", h.DeleteNotification)
		})
	})
}
