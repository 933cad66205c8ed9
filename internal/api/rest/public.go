package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dobrye-dela/dobro-go/internal/entities"
)

// Organizations returns approved organizations; limit <= 0 means no limit.
func (c *Client) Organizations(ctx context.Context, limit int) ([]entities.Organization, error) {
	var oo []entities.Organization
	if err := c.getPublic(ctx, "/public/nkos", limitQuery(limit), &oo); err != nil {
		return nil, err
	}

	return oo, nil
}

// Organization ...
func (c *Client) Organization(ctx context.Context, id int64) (*entities.Organization, error) {
	var o entities.Organization
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/public/nkos/%d", id), nil, nil, &o); err != nil {
		return nil, err
	}

	return &o, nil
}

type membersCountResponse struct {
	Count int `json:"count"`
}

// OrganizationMembersCount ...
func (c *Client) OrganizationMembersCount(ctx context.Context, id int64) (int, error) {
	var resp membersCountResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/public/nkos/%d/members-count", id), nil, nil, &resp); err != nil {
		return 0, err
	}

	return resp.Count, nil
}

// Events ...
func (c *Client) Events(ctx context.Context, limit int) ([]entities.Event, error) {
	var ee []entities.Event
	if err := c.getPublic(ctx, "/public/events", limitQuery(limit), &ee); err != nil {
		return nil, err
	}

	return ee, nil
}

// Event ...
func (c *Client) Event(ctx context.Context, id int64) (*entities.Event, error) {
	var e entities.Event
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/public/events/%d", id), nil, nil, &e); err != nil {
		return nil, err
	}

	return &e, nil
}

// News ...
func (c *Client) News(ctx context.Context, limit int) ([]entities.News, error) {
	var nn []entities.News
	if err := c.getPublic(ctx, "/public/news", limitQuery(limit), &nn); err != nil {
		return nil, err
	}

	return nn, nil
}

// NewsItem ...
func (c *Client) NewsItem(ctx context.Context, id int64) (*entities.News, error) {
	var n entities.News
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/public/news/%d", id), nil, nil, &n); err != nil {
		return nil, err
	}

	return &n, nil
}

// KnowledgeBase ...
func (c *Client) KnowledgeBase(ctx context.Context, limit int) ([]entities.KnowledgeBaseItem, error) {
	var items []entities.KnowledgeBaseItem
	if err := c.getPublic(ctx, "/public/knowledge-base", limitQuery(limit), &items); err != nil {
		return nil, err
	}

	return items, nil
}

// KnowledgeBaseItem ...
func (c *Client) KnowledgeBaseItem(ctx context.Context, id int64) (*entities.KnowledgeBaseItem, error) {
	var item entities.KnowledgeBaseItem
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/public/knowledge-base/%d", id), nil, nil, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

// Cities ...
func (c *Client) Cities(ctx context.Context) ([]string, error) {
	var cc []string
	if err := c.getPublic(ctx, "/public/cities", nil, &cc); err != nil {
		return nil, err
	}

	return cc, nil
}

// CitiesWithOrganizations returns cities that have at least one approved
// organization.
func (c *Client) CitiesWithOrganizations(ctx context.Context) ([]string, error) {
	var cc []string
	if err := c.getPublic(ctx, "/public/cities/with-organizations", nil, &cc); err != nil {
		return nil, err
	}

	return cc, nil
}
