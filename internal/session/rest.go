package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
	"github.com/talentlink/marketplace/internal/client"
)

// restGateway talks to the marketplace API server over HTTP. It is the
// production Gateway; tests substitute a GatewayMock.
type restGateway struct {
	server string
	http   *http.Client
}

var _ Gateway = (*restGateway)(nil)

// NewGateway returns a Gateway bound to the server and identity in the
// given config.
func NewGateway(cfg *client.Config) Gateway {
	return &restGateway{
		server: cfg.Service.Server,
		http:   client.NewHTTPClientFromConfig(cfg),
	}
}

func (g *restGateway) GetJob(ctx context.Context, id uuid.UUID) (*api.Job, error) {
	job := &api.Job{}
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/jobs/%s", id), nil, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (g *restGateway) UpdateJobStatus(ctx context.Context, id uuid.UUID, update api.JobStatusUpdate) (*api.Job, error) {
	job := &api.Job{}
	if err := g.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/jobs/%s/status", id), update, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (g *restGateway) GetApplication(ctx context.Context, id uuid.UUID) (*api.Application, error) {
	application := &api.Application{}
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/applications/%s", id), nil, application); err != nil {
		return nil, err
	}
	return application, nil
}

func (g *restGateway) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, update api.ApplicationStatusUpdate) (*api.Application, error) {
	application := &api.Application{}
	if err := g.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/applications/%s/status", id), update, application); err != nil {
		return nil, err
	}
	return application, nil
}

func (g *restGateway) GetInquiry(ctx context.Context, id uuid.UUID) (*api.CourseInquiry, error) {
	inquiry := &api.CourseInquiry{}
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/courses/inquiries/%s", id), nil, inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}

func (g *restGateway) UpdateInquiry(ctx context.Context, id uuid.UUID, update api.InquiryUpdate) (*api.CourseInquiry, error) {
	inquiry := &api.CourseInquiry{}
	if err := g.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/courses/inquiries/%s", id), update, inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}

func (g *restGateway) GetTrainingCenter(ctx context.Context, id uuid.UUID) (*api.TrainingCenterProfile, error) {
	profile := &api.TrainingCenterProfile{}
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/admin/training-centers/%s", id), nil, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (g *restGateway) SetVerification(ctx context.Context, id uuid.UUID, update api.VerificationUpdate) (*api.TrainingCenterProfile, error) {
	profile := &api.TrainingCenterProfile{}
	if err := g.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/admin/training-centers/%s/verify", id), update, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (g *restGateway) ToggleBookmark(ctx context.Context, request api.BookmarkToggleRequest) (*api.BookmarkToggleResponse, error) {
	response := &api.BookmarkToggleResponse{}
	if err := g.do(ctx, http.MethodPost, "/api/v1/bookmarks/toggle", request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (g *restGateway) ListBookmarkIds(ctx context.Context, itemType api.ItemType) (*api.BookmarkIdList, error) {
	ids := &api.BookmarkIdList{}
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/bookmarks/ids?type=%s", itemType), nil, ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (g *restGateway) ListNotifications(ctx context.Context, limit int) (*api.NotificationList, error) {
	list := &api.NotificationList{}
	path := "/api/v1/notifications"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	if err := g.do(ctx, http.MethodGet, path, nil, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (g *restGateway) GetUnreadCount(ctx context.Context) (*api.UnreadCount, error) {
	count := &api.UnreadCount{}
	if err := g.do(ctx, http.MethodGet, "/api/v1/notifications/unread-count", nil, count); err != nil {
		return nil, err
	}
	return count, nil
}

func (g *restGateway) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	return g.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/notifications/%s/read", id), nil, nil)
}

func (g *restGateway) MarkAllNotificationsRead(ctx context.Context) error {
	return g.do(ctx, http.MethodPut, "/api/v1/notifications/read-all", nil, nil)
}

func (g *restGateway) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	return g.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/notifications/%s", id), nil, nil)
}

// do performs one round-trip. Non-2xx replies come back as *RemoteError
// with the server's message when one could be decoded.
func (g *restGateway) do(ctx context.Context, method, path string, body, into any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.server+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := resp.Status
		var apiError api.Error
		if err := json.NewDecoder(resp.Body).Decode(&apiError); err == nil && apiError.Message != "" {
			message = apiError.Message
		}
		return &RemoteError{StatusCode: resp.StatusCode, Message: message}
	}

	if into == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(into)
}
