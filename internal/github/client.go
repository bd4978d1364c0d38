// Package github queries the GitHub GraphQL API for repository issues and
// their Projects v2 field values.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// DefaultEndpoint is the public GitHub GraphQL endpoint.
const DefaultEndpoint = "https://api.github.com/graphql"

// DefaultTimeout bounds a single API request.
const DefaultTimeout = 30 * time.Second

// ErrNoToken is returned when a client is created without a credential.
var ErrNoToken = errors.New("github token not set")

// StatusError is returned when the API answers with a non-success status.
// Body holds the raw response body.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, string(e.Body))
}

// GraphQLError is returned when a successful response carries query errors.
type GraphQLError struct {
	Messages []string
}

func (e *GraphQLError) Error() string {
	if len(e.Messages) == 0 {
		return "GraphQL error"
	}
	return "GraphQL error: " + e.Messages[0]
}

// Options configure a Client.
type Options struct {
	Endpoint string        // GraphQL endpoint; DefaultEndpoint if empty
	Token    string        // bearer credential, required
	Timeout  time.Duration // per-request timeout; DefaultTimeout if zero

	// HTTPClient is the base client whose transport carries requests.
	// Tests point it at an httptest server. Optional.
	HTTPClient *http.Client
}

// Client issues GraphQL queries against GitHub.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a client that authorizes every request with opts.Token.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	if opts.Token == "" {
		return nil, ErrNoToken
	}
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	if opts.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, opts.HTTPClient)
	}
	hc := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: opts.Token,
		TokenType:   "Bearer",
	}))
	hc.Timeout = timeout

	return &Client{endpoint: endpoint, http: hc}, nil
}

// Endpoint returns the GraphQL endpoint the client talks to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// FetchIssues returns the most recently created issues of owner/name.
func (c *Client) FetchIssues(ctx context.Context, owner, name string) (*IssuesData, error) {
	start := time.Now()
	data, err := c.graphqlRequest(ctx, issuesQuery, map[string]any{
		"owner": owner,
		"name":  name,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch issues: %w", err)
	}

	var result IssuesData
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse issues: %w", err)
	}
	if result.Repository == nil {
		return nil, fmt.Errorf("repository %s/%s not found", owner, name)
	}

	slog.Debug("fetched issues",
		"repo", owner+"/"+name,
		"count", len(result.Repository.Issues.Edges),
		"elapsed", time.Since(start),
	)
	return &result, nil
}

// graphqlRequest sends a GraphQL request and returns the "data" member.
func (c *Client) graphqlRequest(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	body := map[string]any{
		"query": query,
	}
	if variables != nil {
		body["variables"] = variables
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: respBody}
	}

	var result struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	if len(result.Errors) > 0 {
		gqlErr := &GraphQLError{}
		for _, e := range result.Errors {
			gqlErr.Messages = append(gqlErr.Messages, e.Message)
		}
		return nil, gqlErr
	}

	return result.Data, nil
}
