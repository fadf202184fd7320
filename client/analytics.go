package client

import (
	"context"
	"net/http"
	"net/url"
)

// GetUserAnalytics fetches the per-user rollup. A brand-new user's snapshot
// (zero stats, empty breakdowns, nil prediction) is a success, distinct
// from a fetch failure.
func (c *Client) GetUserAnalytics(ctx context.Context, userID string) (*AnalyticsSnapshot, error) {
	var resp struct {
		Analytics *AnalyticsSnapshot `json:"analytics"`
	}
	path := "/users/" + url.PathEscape(userID) + "/analytics"
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Analytics, nil
}

func (c *Client) GetSystemOverview(ctx context.Context) (*SystemOverview, error) {
	var resp struct {
		Overview *SystemOverview `json:"overview"`
	}
	if err := c.do(ctx, http.MethodGet, "/analytics/overview", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Overview, nil
}

func (c *Client) GetInterestAnalytics(ctx context.Context) (*InterestAnalytics, error) {
	var resp struct {
		Analytics *InterestAnalytics `json:"analytics"`
	}
	if err := c.do(ctx, http.MethodGet, "/analytics/interests", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Analytics, nil
}

func (c *Client) GetInteractionAnalytics(ctx context.Context) (*InteractionAnalytics, error) {
	var resp struct {
		Analytics *InteractionAnalytics `json:"analytics"`
	}
	if err := c.do(ctx, http.MethodGet, "/analytics/interactions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Analytics, nil
}
