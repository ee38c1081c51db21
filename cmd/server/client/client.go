// Package client provides commands that exercise a running monster-codex server
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	v1 "github.com/KirkDiggler/monster-codex/internal/handlers/http/v1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	clientID   string
	jsonOutput bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the catalog API",
	Long:  `Client commands call a running server over its REST API and print the results.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "http://localhost:8080", "server base URL")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	ClientCmd.PersistentFlags().StringVar(&clientID, "client-id", "cli", "client id for stored preferences")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print the raw JSON response")

	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(searchCmd)
	ClientCmd.AddCommand(askCmd)
	ClientCmd.AddCommand(discoveredCmd)
	ClientCmd.AddCommand(themeCmd)
}

// APIError is a non-2xx answer from the server
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return fmt.Sprintf("%s (%d %s)", e.Message, e.Status, e.Code)
}

// APIClient is a small REST client for the v1 API
type APIClient struct {
	baseURL  string
	clientID string
	http     *http.Client
}

// NewAPIClient creates a client for the server at baseURL
func NewAPIClient(baseURL, clientID string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &APIClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		clientID: clientID,
		http:     httpClient,
	}
}

// ListParams are the list view query parameters
type ListParams struct {
	Page    int
	Query   string
	Element string
	Sort    string
	Narrow  bool
}

// ListMonsters fetches one list page
func (c *APIClient) ListMonsters(ctx context.Context, p ListParams) (*v1.ListMonstersResponse, []byte, error) {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", fmt.Sprint(p.Page))
	}
	if p.Query != "" {
		q.Set("q", p.Query)
	}
	if p.Element != "" {
		q.Set("element", p.Element)
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.Narrow {
		q.Set("layout", "narrow")
	}
	path := "/api/v1/monsters"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out v1.ListMonstersResponse
	raw, err := c.do(ctx, http.MethodGet, path, nil, &out)
	if err != nil {
		return nil, nil, err
	}
	return &out, raw, nil
}

// GetMonster fetches the detail view for an id or name
func (c *APIClient) GetMonster(ctx context.Context, id string) (*v1.MonsterResponse, []byte, error) {
	var out v1.MonsterResponse
	raw, err := c.do(ctx, http.MethodGet, "/api/v1/monsters/"+url.PathEscape(id), nil, &out)
	if err != nil {
		return nil, nil, err
	}
	return &out, raw, nil
}

// Search submits a header search
func (c *APIClient) Search(ctx context.Context, query string) (*v1.MonsterResponse, []byte, error) {
	var out v1.MonsterResponse
	raw, err := c.do(ctx, http.MethodPost, "/api/v1/search", &v1.SearchRequest{Query: query}, &out)
	if err != nil {
		return nil, nil, err
	}
	return &out, raw, nil
}

// Ask submits an AI dialog question
func (c *APIClient) Ask(ctx context.Context, question string) (*v1.MonsterResponse, []byte, error) {
	var out v1.MonsterResponse
	raw, err := c.do(ctx, http.MethodPost, "/api/v1/ask", &v1.AskRequest{Question: question}, &out)
	if err != nil {
		return nil, nil, err
	}
	return &out, raw, nil
}

// ListDiscovered fetches the archive of AI discoveries
func (c *APIClient) ListDiscovered(ctx context.Context, limit int) (*v1.ListDiscoveredResponse, []byte, error) {
	path := "/api/v1/discovered"
	if limit > 0 {
		path += "?limit=" + fmt.Sprint(limit)
	}

	var out v1.ListDiscoveredResponse
	raw, err := c.do(ctx, http.MethodGet, path, nil, &out)
	if err != nil {
		return nil, nil, err
	}
	return &out, raw, nil
}

// GetTheme reads the stored theme
func (c *APIClient) GetTheme(ctx context.Context) (*v1.ThemeResponse, []byte, error) {
	var out v1.ThemeResponse
	raw, err := c.do(ctx, http.MethodGet, "/api/v1/preferences/theme", nil, &out)
	if err != nil {
		return nil, nil, err
	}
	return &out, raw, nil
}

// SetTheme stores a theme
func (c *APIClient) SetTheme(ctx context.Context, theme string) (*v1.ThemeResponse, []byte, error) {
	var out v1.ThemeResponse
	raw, err := c.do(ctx, http.MethodPut, "/api/v1/preferences/theme", &v1.ThemeRequest{Theme: theme}, &out)
	if err != nil {
		return nil, nil, err
	}
	return &out, raw, nil
}

func (c *APIClient) do(ctx context.Context, method, path string, body, out any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.clientID != "" {
		req.Header.Set(v1.ClientIDHeader, c.clientID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var e v1.ErrorResponse
		if json.Unmarshal(raw, &e) == nil {
			apiErr.Code = e.Code
			apiErr.Message = e.Error
		}
		return nil, apiErr
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return raw, nil
}

func newClient() *APIClient {
	return NewAPIClient(serverAddr, clientID, &http.Client{Timeout: timeout})
}

func printJSON(raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to format JSON: %w", err)
	}
	fmt.Println(buf.String())
	return nil
}
