package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dobrye-dela/dobro-go/internal/entities"
)

// FavoriteEvents ...
func (c *Client) FavoriteEvents(ctx context.Context) ([]entities.Event, error) {
	var ee []entities.Event
	if err := c.do(ctx, http.MethodGet, "/favorites/events", nil, nil, &ee); err != nil {
		return nil, err
	}

	return ee, nil
}

// FavoriteNews ...
func (c *Client) FavoriteNews(ctx context.Context) ([]entities.News, error) {
	var nn []entities.News
	if err := c.do(ctx, http.MethodGet, "/favorites/news", nil, nil, &nn); err != nil {
		return nil, err
	}

	return nn, nil
}

// FavoriteOrganizations ...
func (c *Client) FavoriteOrganizations(ctx context.Context) ([]entities.Organization, error) {
	var oo []entities.Organization
	if err := c.do(ctx, http.MethodGet, "/favorites/nkos", nil, nil, &oo); err != nil {
		return nil, err
	}

	return oo, nil
}

// FavoriteKnowledgeBase ...
func (c *Client) FavoriteKnowledgeBase(ctx context.Context) ([]entities.KnowledgeBaseItem, error) {
	var items []entities.KnowledgeBaseItem
	if err := c.do(ctx, http.MethodGet, "/favorites/knowledge-base", nil, nil, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// AddFavorite ...
func (c *Client) AddFavorite(ctx context.Context, kind entities.FavoriteKind, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/favorites/%s/%d", kind, id), nil, nil, nil)
}

// RemoveFavorite ...
func (c *Client) RemoveFavorite(ctx context.Context, kind entities.FavoriteKind, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/favorites/%s/%d", kind, id), nil, nil, nil)
}
