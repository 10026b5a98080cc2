// Package panel is a typed client for the Pterodactyl application API. It
// covers the three account operations the site needs and converts every
// failure (HTTP error status, network failure, malformed body) into a
// *panel.Error carrying a user-facing message, so transport details never
// leak into request handling.
package panel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/auranode/auranode/internal/model"
)

const acceptHeader = "Application/vnd.pterodactyl.v1+json"

// User-facing failure messages.
const (
	msgCreateFailed     = "An unknown error occurred creating the user."
	msgUserNotFound     = "User not found."
	msgPanelUnreachable = "Could not connect to the panel to verify user."
	msgServersFailed    = "Could not fetch server list."
)

// Client is an HTTP client for the panel's application API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a panel client bound to a base URL and application API key.
func New(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// CreateUserInput holds the fields for a new panel account.
type CreateUserInput struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

// CreateUser registers a new account on the panel. A structured rejection
// (duplicate email, invalid username) surfaces the panel's first error
// detail; anything else surfaces a generic message.
func (c *Client) CreateUser(ctx context.Context, input CreateUserInput) (*model.PanelUser, error) {
	req := createUserRequest{
		Email:     input.Email,
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Password:  input.Password,
	}

	status, body, err := c.do(ctx, http.MethodPost, "/api/application/users", req)
	if err != nil {
		c.logger.Error("panel user creation request failed", slog.String("error", err.Error()))
		return nil, &Error{Kind: KindUnavailable, Message: msgCreateFailed, cause: err}
	}
	if status >= 500 {
		c.logger.Error("panel user creation returned server error", slog.Int("status", status))
		return nil, &Error{Kind: KindUnavailable, Message: msgCreateFailed, cause: httpError(status)}
	}
	if status >= 400 {
		return nil, &Error{
			Kind:    KindRejected,
			Message: firstErrorDetail(body, msgCreateFailed),
			cause:   httpError(status),
		}
	}

	var res userResource
	if err := json.Unmarshal(body, &res); err != nil {
		c.logger.Error("panel user creation returned malformed body", slog.String("error", err.Error()))
		return nil, &Error{Kind: KindUnavailable, Message: msgCreateFailed, cause: err}
	}

	user := res.Attributes.PanelUser
	return &user, nil
}

// FindUserByEmail looks up a panel account by exact email match. An empty
// result is a KindNotFound failure, which is a normal negative outcome and
// is not logged; a failed call is KindUnavailable and is.
func (c *Client) FindUserByEmail(ctx context.Context, email string) (*model.PanelUser, error) {
	path := "/api/application/users?filter[email]=" + url.QueryEscape(email)

	status, body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		c.logger.Error("panel user lookup request failed", slog.String("error", err.Error()))
		return nil, &Error{Kind: KindUnavailable, Message: msgPanelUnreachable, cause: err}
	}
	if status >= 400 {
		c.logger.Error("panel user lookup returned error status", slog.Int("status", status))
		return nil, &Error{Kind: KindUnavailable, Message: msgPanelUnreachable, cause: httpError(status)}
	}

	var res userList
	if err := json.Unmarshal(body, &res); err != nil {
		c.logger.Error("panel user lookup returned malformed body", slog.String("error", err.Error()))
		return nil, &Error{Kind: KindUnavailable, Message: msgPanelUnreachable, cause: err}
	}

	if len(res.Data) == 0 {
		return nil, &Error{Kind: KindNotFound, Message: msgUserNotFound}
	}

	user := res.Data[0].Attributes.PanelUser
	return &user, nil
}

// ListServersForUser fetches the user resource with its servers expanded
// inline and returns the server records in panel order.
func (c *Client) ListServersForUser(ctx context.Context, userID int) ([]model.PanelServer, error) {
	path := fmt.Sprintf("/api/application/users/%d?include=servers", userID)

	status, body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		c.logger.Error("panel server list request failed",
			slog.Int("user_id", userID), slog.String("error", err.Error()))
		return nil, &Error{Kind: KindUnavailable, Message: msgServersFailed, cause: err}
	}
	if status >= 400 {
		c.logger.Error("panel server list returned error status",
			slog.Int("user_id", userID), slog.Int("status", status))
		return nil, &Error{Kind: KindUnavailable, Message: msgServersFailed, cause: httpError(status)}
	}

	var res userResource
	if err := json.Unmarshal(body, &res); err != nil {
		c.logger.Error("panel server list returned malformed body", slog.String("error", err.Error()))
		return nil, &Error{Kind: KindUnavailable, Message: msgServersFailed, cause: err}
	}

	if res.Attributes.Relationships == nil {
		return nil, nil
	}

	servers := make([]model.PanelServer, 0, len(res.Attributes.Relationships.Servers.Data))
	for _, s := range res.Attributes.Relationships.Servers.Data {
		servers = append(servers, s.Attributes)
	}
	return servers, nil
}

// do performs one request and returns the raw status and body. Transport
// failures are returned as errors; HTTP error statuses are not, since each
// operation interprets them differently.
func (c *Client) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", acceptHeader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

// firstErrorDetail extracts the first error's detail string from a panel
// error body, or returns the fallback if the body doesn't match the
// expected shape.
func firstErrorDetail(body []byte, fallback string) string {
	var res errorResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return fallback
	}
	if len(res.Errors) == 0 || res.Errors[0].Detail == "" {
		return fallback
	}
	return res.Errors[0].Detail
}

func httpError(status int) error {
	return fmt.Errorf("panel returned HTTP %d", status)
}
