// Package api provides the HTTP client for the budget tracker service.
package api

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

	"github.com/google/uuid"

	"github.com/budgielabs/budgie/internal/common"
	"github.com/budgielabs/budgie/internal/model"
)

// Config holds the settings for a Client.
type Config struct {
	// BaseURL is the service root, e.g. "https://budget.example.com".
	// All request paths are relative to {BaseURL}/api.
	BaseURL string
	// Timeout bounds each request. Zero means 30 seconds.
	Timeout time.Duration
}

// Client is the HTTP implementation of Service.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for the budget tracker service.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: api base URL", common.ErrMissingConfig)
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid api base URL %q: %v", common.ErrInvalidConfig, cfg.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: api base URL %q must be http or https", common.ErrInvalidConfig, cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// do performs a single request against {base}/api{path} and decodes the JSON
// response into out when out is non-nil. Errors carry retry severity: the
// caller classifies them with common.Classify.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + "/api" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return common.Fatal(fmt.Errorf("failed to encode request: %w", err))
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return common.Fatal(fmt.Errorf("failed to create request: %w", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	slog.Debug("Calling budget service",
		"method", method,
		"path", path,
		"request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("Budget service unreachable",
			"method", method,
			"path", path,
			"request_id", requestID,
			"error", err)
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		slog.Warn("Budget service returned an error",
			"method", method,
			"path", path,
			"request_id", requestID,
			"status", resp.StatusCode)
		return statusError(resp.StatusCode, method, path, respBody)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return common.Fatal(fmt.Errorf("failed to decode response: %w", err))
	}

	return nil
}

// statusError maps a non-2xx response to a severity-tagged error.
func statusError(status int, method, path string, body []byte) error {
	detail := strings.TrimSpace(string(body))

	switch {
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s %s", common.ErrRateLimit, method, path)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", common.ErrNotFound, method, path)
	case status >= 500:
		return common.Retriable(fmt.Errorf("budget service error: %d - %s", status, detail))
	default:
		return common.Fatal(fmt.Errorf("budget service rejected request: %d - %s", status, detail))
	}
}

// Transactions fetches every transaction, newest first.
func (c *Client) Transactions(ctx context.Context) ([]model.Transaction, error) {
	var transactions []model.Transaction
	if err := c.do(ctx, http.MethodGet, "/transactions", nil, nil, &transactions); err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}
	return transactions, nil
}

// TransactionsByType fetches transactions filtered to income or expense.
func (c *Client) TransactionsByType(ctx context.Context, t model.TransactionType) ([]model.Transaction, error) {
	var transactions []model.Transaction
	if err := c.do(ctx, http.MethodGet, "/transactions/"+string(t), nil, nil, &transactions); err != nil {
		return nil, fmt.Errorf("fetching %s transactions: %w", t, err)
	}
	return transactions, nil
}

// CreateTransaction records a new transaction.
func (c *Client) CreateTransaction(ctx context.Context, req model.TransactionRequest) (model.Transaction, error) {
	var created model.Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions", nil, req, &created); err != nil {
		return model.Transaction{}, fmt.Errorf("creating transaction: %w", err)
	}
	return created, nil
}

// DeleteTransaction removes a transaction by ID.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/transactions/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return fmt.Errorf("deleting transaction %s: %w", id, err)
	}
	return nil
}

// Categories fetches every category.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &categories); err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}
	return categories, nil
}

// CategoriesByType fetches categories filtered to income or expense.
func (c *Client) CategoriesByType(ctx context.Context, t model.TransactionType) ([]model.Category, error) {
	var categories []model.Category
	if err := c.do(ctx, http.MethodGet, "/categories/"+string(t), nil, nil, &categories); err != nil {
		return nil, fmt.Errorf("fetching %s categories: %w", t, err)
	}
	return categories, nil
}

// CreateCategory adds a new category.
func (c *Client) CreateCategory(ctx context.Context, req model.CategoryRequest) (model.Category, error) {
	var created model.Category
	if err := c.do(ctx, http.MethodPost, "/categories", nil, req, &created); err != nil {
		return model.Category{}, fmt.Errorf("creating category: %w", err)
	}
	return created, nil
}

// DeleteCategory removes a category by ID.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return fmt.Errorf("deleting category %s: %w", id, err)
	}
	return nil
}

// Budgets fetches every budget.
func (c *Client) Budgets(ctx context.Context) ([]model.Budget, error) {
	var budgets []model.Budget
	if err := c.do(ctx, http.MethodGet, "/budgets", nil, nil, &budgets); err != nil {
		return nil, fmt.Errorf("fetching budgets: %w", err)
	}
	return budgets, nil
}

// BudgetsByPeriod fetches budgets for one reporting period.
func (c *Client) BudgetsByPeriod(ctx context.Context, period model.Period) ([]model.Budget, error) {
	var budgets []model.Budget
	if err := c.do(ctx, http.MethodGet, "/budgets/"+string(period), nil, nil, &budgets); err != nil {
		return nil, fmt.Errorf("fetching %s budgets: %w", period, err)
	}
	return budgets, nil
}

// CreateBudget sets a budget; the service upserts on (category, period).
func (c *Client) CreateBudget(ctx context.Context, req model.BudgetRequest) (model.Budget, error) {
	var created model.Budget
	if err := c.do(ctx, http.MethodPost, "/budgets", nil, req, &created); err != nil {
		return model.Budget{}, fmt.Errorf("creating budget: %w", err)
	}
	return created, nil
}

// DeleteBudget removes a budget by ID.
func (c *Client) DeleteBudget(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/budgets/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return fmt.Errorf("deleting budget %s: %w", id, err)
	}
	return nil
}

// BudgetOverview fetches the server-computed spend-vs-budget comparison for
// one period.
func (c *Client) BudgetOverview(ctx context.Context, period model.Period) ([]model.BudgetOverviewEntry, error) {
	var overview []model.BudgetOverviewEntry
	if err := c.do(ctx, http.MethodGet, "/budget-overview/"+string(period), nil, nil, &overview); err != nil {
		return nil, fmt.Errorf("fetching budget overview: %w", err)
	}
	return overview, nil
}

// SpendingByCategory fetches per-category expense totals for one period.
func (c *Client) SpendingByCategory(ctx context.Context, period model.Period) ([]model.SpendingEntry, error) {
	query := url.Values{}
	query.Set("period", string(period))

	var spending []model.SpendingEntry
	if err := c.do(ctx, http.MethodGet, "/analytics/spending-by-category", query, nil, &spending); err != nil {
		return nil, fmt.Errorf("fetching spending by category: %w", err)
	}
	return spending, nil
}

// Settings fetches the singleton app settings.
func (c *Client) Settings(ctx context.Context) (model.Settings, error) {
	var settings model.Settings
	if err := c.do(ctx, http.MethodGet, "/settings", nil, nil, &settings); err != nil {
		return model.Settings{}, fmt.Errorf("fetching settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings applies a partial settings update.
func (c *Client) UpdateSettings(ctx context.Context, update model.SettingsUpdate) (model.Settings, error) {
	var settings model.Settings
	if err := c.do(ctx, http.MethodPut, "/settings", nil, update, &settings); err != nil {
		return model.Settings{}, fmt.Errorf("updating settings: %w", err)
	}
	return settings, nil
}

// Ensure Client implements the Service interface.
var _ Service = (*Client)(nil)
