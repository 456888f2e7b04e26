package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holoterm/holoterm/internal/errors"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestEvaluate(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/evaluate", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req evaluateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2+2", req.Expression)

		_ = json.NewEncoder(w).Encode(evaluateResponse{Success: true, Result: "4"})
	})

	c := NewClient(srv.URL, "sk-test", time.Second)
	result, err := c.Evaluate(context.Background(), "2+2")
	require.NoError(t, err)
	assert.Equal(t, "4", result)
}

func TestEvaluateEngineFailure(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(evaluateResponse{Success: false, Error: "too spicy"})
	})

	c := NewClient(srv.URL, "", time.Second)
	_, err := c.Evaluate(context.Background(), "1/0")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeEvaluation))
	assert.Contains(t, err.Error(), "too spicy")
}

func TestEvaluateUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "", 200*time.Millisecond)
	_, err := c.Evaluate(context.Background(), "2+2")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeCollaborator))
}

func TestEvaluateHTTPError(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	c := NewClient(srv.URL, "", time.Second)
	_, err := c.Evaluate(context.Background(), "2+2")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeCollaborator))
}

func TestSearchRemote(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/search", r.URL.Path)
		_ = json.NewEncoder(w).Encode(searchResponse{
			Success: true,
			Results: []string{"an answer"},
			Sources: []string{"web"},
		})
	})

	c := NewClient(srv.URL, "", time.Second)
	resp, err := c.Search(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, []string{"an answer"}, resp.Answer)
	assert.Equal(t, []string{"web"}, resp.Sources)
}

func TestSearchFallsBackToLocalDatabase(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "", 200*time.Millisecond)

	resp, err := c.Search(context.Background(), "what is the speed of light")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Answer)
	assert.Contains(t, resp.Answer[0], "299,792,458")
	assert.Equal(t, []string{"local database"}, resp.Sources)
}

func TestSearchOfflineWithNoLocalMatch(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "", 200*time.Millisecond)

	_, err := c.Search(context.Background(), "zebra stock prices")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeCollaborator))
}

func TestSearchDeclinedUsesLocalDatabase(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(searchResponse{Success: false, Error: "quota exceeded"})
	})

	c := NewClient(srv.URL, "", time.Second)
	resp, err := c.Search(context.Background(), "tell me about gravity")
	require.NoError(t, err)
	assert.Contains(t, resp.Answer[0], "9.81")
}

func TestLocalAnswerRequiresAllKeywords(t *testing.T) {
	_, ok := localAnswer("speed of sound")
	assert.False(t, ok)

	resp, ok := localAnswer("SPEED OF LIGHT please")
	require.True(t, ok)
	assert.NotEmpty(t, resp.Answer)
}
