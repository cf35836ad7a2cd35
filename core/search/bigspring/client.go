// Package bigspring implements the HTTP client for the BigSpring
// Knowledge-to-Action Search API: login, profile lookup, one-shot search and
// the streaming search pipeline.
package bigspring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/bigspring/repsearch-go/core/search"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Client struct {
	baseURL    string
	httpClient *http.Client

	tokens         search.TokenSource
	onUnauthorized func()
}

type ClientOption func(*Client)

// WithTokenSource sets the credential source consulted before each
// authenticated request. Without one, requests go out unauthenticated.
func WithTokenSource(tokens search.TokenSource) ClientOption {
	return func(c *Client) { c.tokens = tokens }
}

// WithUnauthorizedHandler registers the hook fired when an authenticated
// request comes back 401. Callers typically clear stored credentials and
// force re-authentication; the client itself stores nothing.
func WithUnauthorizedHandler(handler func()) ClientOption {
	return func(c *Client) { c.onUnauthorized = handler }
}

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = httpClient }
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithSpanNameFormatter(func(operationName string, request *http.Request) string {
				return operationName + " " + request.URL.Path
			}),
		)},
		onUnauthorized: func() {},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Login exchanges a username and password for a bearer token. A rejected
// login returns an error; it does not fire the unauthorized handler, which
// is reserved for expired credentials on already-authenticated calls.
func (c *Client) Login(ctx context.Context, username, password string) (*search.TokenResponse, error) {
	ctx, span := tracer.Start(ctx, "login")
	defer span.End()

	body, err := json.Marshal(tokenRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("error marshalling JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/auth/token", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("error creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("error sending request: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("response.status_code", resp.StatusCode))
	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("login failed: HTTP %d", resp.StatusCode)
		span.RecordError(err)
		return nil, err
	}

	var token search.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("error unmarshalling JSON: %w", err)
	}
	return &token, nil
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*search.Profile, error) {
	ctx, span := tracer.Start(ctx, "fetch profile")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/auth/me", nil)
	if err != nil {
		return nil, fmt.Errorf("error creating HTTP request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("error sending request: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("response.status_code", resp.StatusCode))
	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized {
			c.onUnauthorized()
		}
		err := fmt.Errorf("non-OK HTTP status: %s", resp.Status)
		span.RecordError(err)
		return nil, err
	}

	var profile search.Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("error unmarshalling JSON: %w", err)
	}
	return &profile, nil
}

// Search runs a one-shot search, returning the full response in a single
// payload instead of a stream.
func (c *Client) Search(ctx context.Context, query search.Query) (*search.Response, error) {
	ctx, span := tracer.Start(ctx, "search")
	defer span.End()
	span.SetAttributes(attribute.String("request.mode", string(query.Mode)))

	resp, err := c.postQuery(ctx, "/search", query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("response.status_code", resp.StatusCode))
	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized {
			c.onUnauthorized()
		}
		if errorBody, err := io.ReadAll(resp.Body); err == nil {
			span.SetAttributes(attribute.String("response.error", string(errorBody)))
		}
		err := fmt.Errorf("non-OK HTTP status: %s", resp.Status)
		span.RecordError(err)
		return nil, err
	}

	var response search.Response
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("error unmarshalling JSON: %w", err)
	}
	return &response, nil
}

func (c *Client) postQuery(ctx context.Context, path string, query search.Query) (*http.Response, error) {
	if len(query.Text) > search.MaxQueryLength {
		return nil, search.ErrQueryTooLong
	}

	mode := query.Mode
	if mode == "" {
		mode = search.ModeAuto
	}

	body, err := json.Marshal(searchRequest{Query: query.Text, Mode: mode})
	if err != nil {
		return nil, fmt.Errorf("error marshalling JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("error creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %w", err)
	}
	return resp, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.tokens == nil {
		return
	}
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type searchRequest struct {
	Query string      `json:"query"`
	Mode  search.Mode `json:"mode"`
}
