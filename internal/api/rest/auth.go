package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/dobrye-dela/dobro-go/internal/api"
	"github.com/dobrye-dela/dobro-go/internal/entities"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for a bearer token. The token is returned,
// not stored; call SetToken to attach it to subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}

	return resp.AccessToken, nil
}

// RegisterUser ...
func (c *Client) RegisterUser(ctx context.Context, p api.RegisterUserParams) error {
	return c.do(ctx, http.MethodPost, "/auth/register/user", nil, p, nil)
}

// RegisterNKO ...
func (c *Client) RegisterNKO(ctx context.Context, p api.RegisterNKOParams) error {
	return c.do(ctx, http.MethodPost, "/auth/register/nko", nil, p, nil)
}

// RegisterRepresentative ...
func (c *Client) RegisterRepresentative(ctx context.Context, p api.RegisterRepresentativeParams) error {
	return c.do(ctx, http.MethodPost, "/auth/register/representative", nil, p, nil)
}

// SubmitNKOApplication sends the application form as multipart data with
// an optional logo file.
func (c *Client) SubmitNKOApplication(ctx context.Context, p api.NKOApplicationParams) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range p.Fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("failed to write form field: %w", err)
		}
	}

	if p.Logo != nil {
		fw, err := w.CreateFormFile("logo", p.LogoName)
		if err != nil {
			return fmt.Errorf("failed to create logo part: %w", err)
		}
		if _, err := io.Copy(fw, p.Logo); err != nil {
			return fmt.Errorf("failed to write logo: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish multipart body: %w", err)
	}

	if _, err := c.doRaw(ctx, http.MethodPost, "/auth/register/nko-application", nil, &buf, w.FormDataContentType()); err != nil {
		return err
	}

	return nil
}

// Me returns the authenticated principal.
func (c *Client) Me(ctx context.Context) (*entities.User, error) {
	var u entities.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, &u); err != nil {
		return nil, err
	}

	return &u, nil
}

type nameUpdate struct {
	Name string `json:"name"`
}

// UpdateName ...
func (c *Client) UpdateName(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPatch, "/users/me/name", nil, nameUpdate{Name: name}, nil)
}

type cityUpdate struct {
	City string `json:"city_name"`
}

// UpdateCity ...
func (c *Client) UpdateCity(ctx context.Context, city string) error {
	return c.do(ctx, http.MethodPatch, "/users/me/city", nil, cityUpdate{City: city}, nil)
}

// MyEvents returns the events the user is planning to attend.
func (c *Client) MyEvents(ctx context.Context) ([]entities.Event, error) {
	var ee []entities.Event
	if err := c.do(ctx, http.MethodGet, "/users/me/events", nil, nil, &ee); err != nil {
		return nil, err
	}

	return ee, nil
}

type eventRegistration struct {
	EventID int64 `json:"event_id"`
}

// RegisterForEvent signs the user up to attend the event. The response is
// an acknowledgement only; refetch MyEvents for the displayable list.
func (c *Client) RegisterForEvent(ctx context.Context, eventID int64) error {
	return c.do(ctx, http.MethodPost, "/users/me/events/register", nil, eventRegistration{EventID: eventID}, nil)
}

// UnregisterFromEvent ...
func (c *Client) UnregisterFromEvent(ctx context.Context, eventID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/me/events/%d", eventID), nil, nil, nil)
}
