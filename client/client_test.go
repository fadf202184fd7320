package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeBackend(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, New(Config{BaseURL: srv.URL})
}

func TestConfigDefaults(t *testing.T) {
	c := New(Config{})
	assert.Equal(t, DefaultBaseURL, c.BaseURL())

	t.Setenv(EnvBaseURL, "http://example.test/api/")
	c = New(Config{})
	assert.Equal(t, "http://example.test/api", c.BaseURL())

	c = New(Config{BaseURL: "http://explicit.test/api"})
	assert.Equal(t, "http://explicit.test/api", c.BaseURL())
}

func TestCreateUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		_, c := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/users", r.URL.Path)
			assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"success":true,"user_id":"u-1","message":"User created successfully"}`))
		})

		id, err := c.CreateUser(context.Background(), "Demo", "demo@example.com")
		require.NoError(t, err)
		assert.Equal(t, "u-1", id)
	})

	t.Run("backend_failure_carries_message", func(t *testing.T) {
		_, c := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"success":false,"message":"Email is required"}`))
		})

		_, err := c.CreateUser(context.Background(), "Demo", "")
		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusBadRequest, se.StatusCode)
		assert.Equal(t, "Email is required", se.Message)
	})
}

func TestGetUser_NotFoundSentinel(t *testing.T) {
	_, c := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"User not found"}`))
	})

	_, err := c.GetUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "User not found", se.Message)
}

func TestTimeoutIsDistinctError(t *testing.T) {
	_, c := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"success":true}`))
	})
	c.cfg.ReadTimeout = 20 * time.Millisecond

	_, err := c.GetModelInfo(context.Background())
	assert.ErrorIs(t, err, ErrTimeout)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := New(Config{BaseURL: srv.URL})

	_, err := c.GetAdCategories(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSuccessFalseOn200(t *testing.T) {
	// older backend builds report prediction failures as 200 + success:false
	_, c := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"No interaction data available for prediction"}`))
	})

	_, err := c.PredictInterests(context.Background(), "u-1")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "No interaction data available for prediction", se.Message)
}

func TestMalformedResponse(t *testing.T) {
	_, c := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	})

	_, err := c.GetAdCategories(context.Background())
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "malformed_response", se.Code)
}

func TestGetPersonalizedAds(t *testing.T) {
	t.Run("limit_zero_is_empty_not_error", func(t *testing.T) {
		_, c := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "0", r.URL.Query().Get("limit"))
			w.Write([]byte(`{"success":true,"ads":[],"count":0,"user_id":"u-1"}`))
		})

		ads, err := c.GetPersonalizedAds(context.Background(), "u-1", 0)
		require.NoError(t, err)
		assert.NotNil(t, ads)
		assert.Empty(t, ads)
	})

	t.Run("negative_limit_uses_server_default", func(t *testing.T) {
		_, c := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.False(t, r.URL.Query().Has("limit"))
			w.Write([]byte(`{"success":true,"ads":[{"id":"tech_1"}],"count":1}`))
		})

		ads, err := c.GetPersonalizedAds(context.Background(), "u-1", -1)
		require.NoError(t, err)
		require.Len(t, ads, 1)
		assert.Equal(t, "tech_1", ads[0].ID)
	})
}

func TestTrainModel_FailureMessageVerbatim(t *testing.T) {
	_, c := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"No interaction data available for training"}`))
	})

	_, err := c.TrainModel(context.Background())
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "No interaction data available for training", se.Message)
	assert.False(t, errors.Is(err, ErrTimeout))
}
