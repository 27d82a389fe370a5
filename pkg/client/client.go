// Package client is a typed Go gateway to the wedding planner API. It keeps
// the couple's and the admin's bearer tokens in a Session and attaches the
// right one to each call.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL matches the server's default port.
const DefaultBaseURL = "http://localhost:5000/api"

// APIError is returned for every non-2xx reply.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type tokenKind int

const (
	noToken tokenKind = iota
	userToken
	adminToken
)

type Client struct {
	baseURL string
	http    *http.Client
	session *Session

	Auth         *AuthAPI
	Events       *EventsAPI
	Vendors      *VendorsAPI
	Bookings     *BookingsAPI
	Contact      *ContactAPI
	Applications *ApplicationsAPI
	Admin        *AdminAPI
}

type Option func(*Client)

// WithHTTPClient replaces the default client (15s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithSession shares a session between clients or restores a persisted one.
func WithSession(s *Session) Option {
	return func(c *Client) { c.session = s }
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.session == nil {
		c.session = NewSession(NewMemoryStore())
	}

	c.Auth = &AuthAPI{c}
	c.Events = &EventsAPI{c}
	c.Vendors = &VendorsAPI{c}
	c.Bookings = &BookingsAPI{c}
	c.Contact = &ContactAPI{c}
	c.Applications = &ApplicationsAPI{c}
	c.Admin = &AdminAPI{c}
	return c
}

func (c *Client) Session() *Session {
	return c.session
}

// do sends body as JSON and decodes a 2xx reply into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, kind tokenKind, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var token string
	switch kind {
	case userToken:
		token = c.session.UserToken()
	case adminToken:
		token = c.session.AdminToken()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(status int, raw []byte) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
		return &APIError{StatusCode: status, Message: fmt.Sprintf("HTTP error! status: %d", status)}
	}
	return &APIError{StatusCode: status, Message: body.Error}
}
