// Package provider talks to the Jelastic-style REST API: signin for a
// session, getenvs for the environment listing, signout to release the
// session. All calls are plain blocking GETs with query parameters.
package provider

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/WKLive/jelastic-inventory/internal/config"
)

const (
	signinPath  = "/users/authentication/rest/signin"
	signoutPath = "/users/authentication/rest/signout"
	getenvsPath = "/environment/environment/rest/getenvs"
)

// Client is the authenticated provider API client.
type Client struct {
	baseURL  string
	appID    string
	username string
	password string
	http     *http.Client
}

// NewClient builds a client from settings. Credentials come from the
// JELASTIC_USER_ID / JELASTIC_USER_PASSWORD environment via config.
func NewClient(cfg *config.Settings) *Client {
	return &Client{
		baseURL:  cfg.AppURL,
		appID:    cfg.AppID,
		username: cfg.Username,
		password: cfg.Password,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Signin authenticates and returns a session.
func (c *Client) Signin() (*Session, error) {
	if c.username == "" || c.password == "" {
		return nil, &AuthError{Op: "signin", Message: "username or password not set"}
	}

	q := url.Values{
		"appid":    {c.appID},
		"login":    {c.username},
		"password": {c.password},
	}
	var resp signinResponse
	if err := c.get("signin", signinPath, q, &resp); err != nil {
		return nil, err
	}
	if resp.Result != 0 {
		return nil, &AuthError{Op: "signin", Message: apiMessage(resp.Result, resp.Error)}
	}
	return &Session{ID: resp.Session}, nil
}

// Environments fetches the full environment listing for the session.
func (c *Client) Environments(s *Session) ([]EnvironmentInfo, error) {
	q := url.Values{
		"appid":   {c.appID},
		"session": {s.ID},
	}
	var resp envsResponse
	if err := c.get("getenvs", getenvsPath, q, &resp); err != nil {
		return nil, err
	}
	if resp.Result != 0 {
		return nil, &APIError{Op: "getenvs", Result: resp.Result, Message: resp.Error}
	}
	return resp.Infos, nil
}

// Signout releases the session.
func (c *Client) Signout(s *Session) error {
	q := url.Values{
		"appid":   {c.appID},
		"session": {s.ID},
	}
	var resp signoutResponse
	if err := c.get("signout", signoutPath, q, &resp); err != nil {
		return err
	}
	if resp.Result != 0 {
		return &AuthError{Op: "signout", Message: apiMessage(resp.Result, resp.Error)}
	}
	return nil
}

func (c *Client) get(op, path string, q url.Values, out any) error {
	resp, err := c.http.Get(c.baseURL + path + "?" + q.Encode())
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return &TransportError{Op: op, Err: fmt.Errorf("provider returned %d: %s", resp.StatusCode, body)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &ParseError{Op: op, Err: err}
	}
	return nil
}

func apiMessage(result int, message string) string {
	if message == "" {
		return fmt.Sprintf("provider result %d", result)
	}
	return message
}
