// Package client is the typed HTTP client for the onboarding API. It
// records successful logins into the session store so the route guard
// and a later process restart see the same authenticated state.
package client

import (
	"context"
	"fmt"

	"onboarding_system/internal/domain"
	"onboarding_system/internal/session"

	"github.com/go-resty/resty/v2"
)

// Client wraps the REST surface of the onboarding server.
type Client struct {
	http     *resty.Client
	sessions *session.Store
}

// apiError is the error envelope every failure response carries.
type apiError struct {
	Error string `json:"error"`
}

// loginResponse is the success envelope of both login endpoints.
type loginResponse struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    domain.Identity `json:"user"`
}

// New builds a client against the given base URL, recording sessions
// into the given store.
func New(baseURL string, sessions *session.Store) *Client {
	return &Client{
		http:     resty.New().SetBaseURL(baseURL),
		sessions: sessions,
	}
}

// asError turns a non-2xx response into an error, preferring the
// server's message when the envelope parses.
func asError(resp *resty.Response, envelope *apiError) error {
	if envelope != nil && envelope.Error != "" {
		return fmt.Errorf("%s", envelope.Error)
	}
	return fmt.Errorf("unexpected status %s", resp.Status())
}

// Register creates a new account. Registration does not establish a
// session; the caller logs in separately.
func (c *Client) Register(ctx context.Context, name, email, gstin, password string) error {
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"name": name, "email": email, "gstin": gstin, "password": password}).
		SetError(&apiErr).
		Post("/register")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return asError(resp, &apiErr)
	}
	return nil
}

// Login authenticates and records the session. On success the session
// store holds the identity, the user role and the server's token.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	var ok loginResponse
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&ok).
		SetError(&apiErr).
		Post("/login")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, asError(resp, &apiErr)
	}
	if err := c.sessions.Set(ok.User, domain.RoleUser, ok.Token); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return &ok.User, nil
}

// AdminLogin authenticates the fixed administrator pair and records an
// admin session.
func (c *Client) AdminLogin(ctx context.Context, username, password string) (*domain.Identity, error) {
	var ok loginResponse
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"username": username, "password": password}).
		SetResult(&ok).
		SetError(&apiErr).
		Post("/admin/login")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, asError(resp, &apiErr)
	}
	if err := c.sessions.Set(ok.User, domain.RoleAdmin, ok.Token); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return &ok.User, nil
}

// Logout clears the recorded session.
func (c *Client) Logout() error {
	return c.sessions.Clear()
}

// Profile fetches the most recently registered user.
func (c *Client) Profile(ctx context.Context) (*domain.Identity, error) {
	var profile domain.Identity
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&profile).
		SetError(&apiErr).
		Get("/profile")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, asError(resp, &apiErr)
	}
	return &profile, nil
}

// Users fetches the admin listing using the session's token.
func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.sessions.Current().Token).
		SetResult(&users).
		SetError(&apiErr).
		Get("/users")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, asError(resp, &apiErr)
	}
	return users, nil
}
