package historialsdk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to one historial server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	var out Session
	if err := c.doJSON(ctx, http.MethodPost, "/v1/auth/login", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	var out Session
	if err := c.doJSON(ctx, http.MethodPost, "/v1/auth/register", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/v1/auth/logout", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Session returns the server's current session state.
func (c *Client) Session(ctx context.Context) (*SessionResponse, error) {
	var out SessionResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/session", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logs lists audit entries. An empty module or "all" disables the filter.
func (c *Client) Logs(ctx context.Context, search, module string) (*LogsResponse, error) {
	var out LogsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/logs"+logsQuery(search, module), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LogModules(ctx context.Context) ([]string, error) {
	var out ModulesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/logs/modules", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Modules, nil
}

// ExportLogs downloads the filtered log as CSV.
func (c *Client) ExportLogs(ctx context.Context, search, module string) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, "/v1/logs/export"+logsQuery(search, module), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, parseErrorResponse(resp, body)
	}
	return body, nil
}

func (c *Client) Liveness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Readiness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func logsQuery(search, module string) string {
	q := url.Values{}
	if search != "" {
		q.Set("q", search)
	}
	if module != "" {
		q.Set("module", module)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
