package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/dobrye-dela/dobro-go/internal/api"
	"github.com/dobrye-dela/dobro-go/internal/entities"
)

// Statistics ...
func (c *Client) Statistics(ctx context.Context) (*api.Statistics, error) {
	var s api.Statistics
	if err := c.do(ctx, http.MethodGet, "/admin/statistics", nil, nil, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// UsersWithRoles ...
func (c *Client) UsersWithRoles(ctx context.Context) ([]entities.User, error) {
	var uu []entities.User
	if err := c.do(ctx, http.MethodGet, "/admin/users/with-roles", nil, nil, &uu); err != nil {
		return nil, err
	}

	return uu, nil
}

type roleUpdate struct {
	Role entities.Role `json:"role"`
}

// UpdateUserRole sets the role of the user identified by email.
func (c *Client) UpdateUserRole(ctx context.Context, email string, role entities.Role) error {
	return c.do(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(email)+"/role", nil, roleUpdate{Role: role}, nil)
}

// PendingOrganizations returns organizations waiting for moderation.
func (c *Client) PendingOrganizations(ctx context.Context) ([]entities.Organization, error) {
	var oo []entities.Organization
	if err := c.do(ctx, http.MethodGet, "/admin/nkos/pending", nil, nil, &oo); err != nil {
		return nil, err
	}

	return oo, nil
}

// ApproveOrganization ...
func (c *Client) ApproveOrganization(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/admin/nkos/"+url.PathEscape(email)+"/approve", nil, nil, nil)
}

type rejection struct {
	Reason string `json:"reason"`
}

// RejectOrganization ...
func (c *Client) RejectOrganization(ctx context.Context, email, reason string) error {
	return c.do(ctx, http.MethodPost, "/admin/nkos/"+url.PathEscape(email)+"/reject", nil, rejection{Reason: reason}, nil)
}

// PendingEvents returns events waiting for moderation.
func (c *Client) PendingEvents(ctx context.Context) ([]entities.Event, error) {
	var ee []entities.Event
	if err := c.do(ctx, http.MethodGet, "/admin/events/pending", nil, nil, &ee); err != nil {
		return nil, err
	}

	return ee, nil
}

// ApproveEvent ...
func (c *Client) ApproveEvent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/events/%d/approve", id), nil, nil, nil)
}

// RejectEvent ...
func (c *Client) RejectEvent(ctx context.Context, id int64, reason string) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/events/%d/reject", id), nil, rejection{Reason: reason}, nil)
}

type createdResponse struct {
	ID int64 `json:"id"`
}

// CreateEvent ...
func (c *Client) CreateEvent(ctx context.Context, e *entities.Event) (int64, error) {
	var resp createdResponse
	if err := c.do(ctx, http.MethodPost, "/admin/events", nil, e, &resp); err != nil {
		return 0, err
	}

	return resp.ID, nil
}

// UpdateEvent ...
func (c *Client) UpdateEvent(ctx context.Context, e *entities.Event) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/events/%d", e.ID), nil, e, nil)
}

// DeleteEvent ...
func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/events/%d", id), nil, nil, nil)
}

// CreateNews ...
func (c *Client) CreateNews(ctx context.Context, n *entities.News) (int64, error) {
	var resp createdResponse
	if err := c.do(ctx, http.MethodPost, "/admin/news", nil, n, &resp); err != nil {
		return 0, err
	}

	return resp.ID, nil
}

// UpdateNews ...
func (c *Client) UpdateNews(ctx context.Context, n *entities.News) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/news/%d", n.ID), nil, n, nil)
}

// DeleteNews ...
func (c *Client) DeleteNews(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/news/%d", id), nil, nil, nil)
}

// CreateKnowledgeBaseItem ...
func (c *Client) CreateKnowledgeBaseItem(ctx context.Context, item *entities.KnowledgeBaseItem) (int64, error) {
	var resp createdResponse
	if err := c.do(ctx, http.MethodPost, "/admin/knowledge-base", nil, item, &resp); err != nil {
		return 0, err
	}

	return resp.ID, nil
}

// UpdateKnowledgeBaseItem ...
func (c *Client) UpdateKnowledgeBaseItem(ctx context.Context, item *entities.KnowledgeBaseItem) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/knowledge-base/%d", item.ID), nil, item, nil)
}

// DeleteKnowledgeBaseItem ...
func (c *Client) DeleteKnowledgeBaseItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/knowledge-base/%d", id), nil, nil, nil)
}

type uploadResponse struct {
	Path string `json:"file_path"`
}

// UploadFile attaches a file to the given resource (events, news or
// knowledge-base) and returns the server-relative path reference.
func (c *Client) UploadFile(ctx context.Context, resource string, id int64, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finish multipart body: %w", err)
	}

	b, err := c.doRaw(ctx, http.MethodPost, fmt.Sprintf("/admin/%s/%d/files", resource, id), nil, &buf, w.FormDataContentType())
	if err != nil {
		return "", err
	}

	var resp uploadResponse
	if err := json.Unmarshal(b, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return resp.Path, nil
}
