// Package bridge implements the external collaborators behind solve
// and search: small JSON-over-HTTP clients with bounded timeouts that
// degrade to local data instead of hanging the session.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/holoterm/holoterm/internal/command"
	"github.com/holoterm/holoterm/internal/errors"
	"github.com/holoterm/holoterm/internal/logging"
)

// Client talks to the computation and search endpoints of the bridge
// service. It satisfies command.Computation and command.Searcher.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *logging.Logger
}

// NewClient builds a bridge client. The timeout bounds every call; a
// collaborator that stalls surfaces as an ordinary error result, never
// a hung session.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		logger:  logging.WithField("component", "bridge"),
	}
}

type evaluateRequest struct {
	Expression string `json:"expression"`
}

type evaluateResponse struct {
	Success bool   `json:"success"`
	Result  string `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Evaluate sends the expression to the computation endpoint.
func (c *Client) Evaluate(ctx context.Context, expression string) (string, error) {
	var resp evaluateResponse
	err := c.post(ctx, "/v1/evaluate", evaluateRequest{Expression: expression}, &resp)
	if err != nil {
		return "", err
	}
	if !resp.Success {
		return "", errors.Evaluationf("computation engine: %s", resp.Error)
	}
	return resp.Result, nil
}

type searchRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	Success bool     `json:"success"`
	Results []string `json:"results,omitempty"`
	Art     []string `json:"art,omitempty"`
	Sources []string `json:"sources,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Search asks the remote search service, falling back to the embedded
// local database when the service is unreachable or declines.
func (c *Client) Search(ctx context.Context, query string) (command.SearchResponse, error) {
	var resp searchResponse
	err := c.post(ctx, "/v1/search", searchRequest{Query: query}, &resp)
	if err == nil && resp.Success {
		return command.SearchResponse{
			Answer:  resp.Results,
			Art:     resp.Art,
			Sources: resp.Sources,
		}, nil
	}

	if err != nil {
		c.logger.Debug().Err(err).Str("query", query).Msg("Remote search unavailable, trying local database")
	} else {
		c.logger.Debug().Str("error", resp.Error).Str("query", query).Msg("Remote search declined, trying local database")
	}

	if local, ok := localAnswer(query); ok {
		return local, nil
	}

	if err != nil {
		return command.SearchResponse{}, errors.Collaborator("search", err)
	}
	return command.SearchResponse{}, errors.Collaboratorf("search", "search failed: %s", resp.Error)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeInternal, "encoding request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeInternal, "building request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return errors.Timeout(path)
		}
		return errors.Wrap(err, errors.ErrorTypeCollaborator, "calling "+path)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Newf(errors.ErrorTypeCollaborator, "%s returned HTTP %d", path, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeCollaborator, "reading response")
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, errors.ErrorTypeCollaborator, "decoding %s response", path)
	}
	return nil
}

// String identifies the client in logs.
func (c *Client) String() string {
	return fmt.Sprintf("bridge(%s)", c.baseURL)
}
