// Package client is a small GraphQL client for the storefront API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// CodeUnauthenticated is the error extension code the server attaches when a
// request needs a live session.
const CodeUnauthenticated = "UNAUTHENTICATED"

// GraphQLError is one entry of the response "errors" array.
type GraphQLError struct {
	Message    string                 `json:"message"`
	Extensions map[string]interface{} `json:"extensions"`
}

// Code returns the taxonomy code from the error extensions, if any.
func (e GraphQLError) Code() string {
	code, _ := e.Extensions["code"].(string)
	return code
}

// RequestError is returned when a request yields GraphQL errors.
type RequestError struct {
	Errors []GraphQLError
}

func (e *RequestError) Error() string {
	if len(e.Errors) == 0 {
		return "graphql request failed"
	}
	return fmt.Sprintf("graphql request failed: %s", e.Errors[0].Message)
}

// Client executes GraphQL operations against a storefront endpoint. It is
// safe for concurrent use.
type Client struct {
	endpoint string
	http     *http.Client

	mu    sync.RWMutex
	token string

	// OnAuthExpired fires when the server rejects the stored session. The
	// client clears the token before calling it.
	OnAuthExpired func()
}

// New creates a client for the given /graphql endpoint.
func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken stores the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken drops the stored session.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the stored bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// Execute runs one operation and decodes the "data" object into out. When
// the response carries errors it returns a RequestError; an unauthenticated
// error additionally clears the token and fires OnAuthExpired.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(map[string]interface{}{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if len(env.Errors) > 0 {
		c.handleAuthExpiry(env.Errors)
		return &RequestError{Errors: env.Errors}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding data: %w", err)
		}
	}
	return nil
}

func (c *Client) handleAuthExpiry(errs []GraphQLError) {
	for _, e := range errs {
		if e.Code() == CodeUnauthenticated {
			c.ClearToken()
			if c.OnAuthExpired != nil {
				c.OnAuthExpired()
			}
			return
		}
	}
}
