package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// PredictInterests asks the backend to recompute the user's interest
// profile. Users with no tracked behavior get a backend failure with
// a descriptive message, not an empty prediction.
func (c *Client) PredictInterests(ctx context.Context, userID string) (*InterestPrediction, error) {
	var resp struct {
		Prediction *InterestPrediction `json:"prediction"`
	}
	path := "/users/" + url.PathEscape(userID) + "/predict"
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Prediction, nil
}

// GetPersonalizedAds fetches up to limit ranked ads. limit 0 is a valid
// request for an empty list; limit < 0 asks for the server default.
func (c *Client) GetPersonalizedAds(ctx context.Context, userID string, limit int) ([]Ad, error) {
	path := "/users/" + url.PathEscape(userID) + "/ads"
	if limit >= 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var resp struct {
		Ads []Ad `json:"ads"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Ads == nil {
		resp.Ads = []Ad{}
	}
	return resp.Ads, nil
}

func (c *Client) GetAdCategories(ctx context.Context) ([]string, error) {
	var resp struct {
		Categories []string `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/ads/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

func (c *Client) GetAdsByCategory(ctx context.Context, category string) ([]Ad, error) {
	var resp struct {
		Ads []Ad `json:"ads"`
	}
	path := "/ads/categories/" + url.PathEscape(category)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Ads, nil
}

func (c *Client) GetRandomAds(ctx context.Context, limit int) ([]Ad, error) {
	path := "/ads/random"
	if limit >= 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var resp struct {
		Ads []Ad `json:"ads"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Ads, nil
}
