package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CreateUser registers a demo identity and returns the issued user id.
func (c *Client) CreateUser(ctx context.Context, name, email string) (string, error) {
	req := map[string]string{"name": name, "email": email}
	var resp struct {
		UserID string `json:"user_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/users", req, &resp); err != nil {
		return "", err
	}
	return resp.UserID, nil
}

func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	var resp struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// GetUserInteractions returns the user's most recent events, newest first.
func (c *Client) GetUserInteractions(ctx context.Context, userID string, limit int) ([]Interaction, error) {
	path := "/users/" + url.PathEscape(userID) + "/interactions"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var resp struct {
		Interactions []Interaction `json:"interactions"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Interactions, nil
}
