package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dobrye-dela/dobro-go/internal/entities"
)

// NKOProfile returns the organization profile owned by the authenticated
// representative.
func (c *Client) NKOProfile(ctx context.Context) (*entities.Organization, error) {
	var o entities.Organization
	if err := c.do(ctx, http.MethodGet, "/nko/profile/me", nil, nil, &o); err != nil {
		return nil, err
	}

	return &o, nil
}

// UpdateNKOProfile ...
func (c *Client) UpdateNKOProfile(ctx context.Context, o *entities.Organization) error {
	return c.do(ctx, http.MethodPut, "/nko/profile/me", nil, o, nil)
}

// SubmitForModeration sends the profile to the moderation queue.
func (c *Client) SubmitForModeration(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/nko/profile/me/submit-moderation", nil, nil, nil)
}

// OrganizationEvents returns events created by the organization.
func (c *Client) OrganizationEvents(ctx context.Context, organizationID int64) ([]entities.Event, error) {
	var ee []entities.Event
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/nko/events/%d", organizationID), nil, nil, &ee); err != nil {
		return nil, err
	}

	return ee, nil
}
