// Package routeplanner provides a client for the external route-planning
// provider. The provider is a data source first; both calls here are
// best-effort hooks, never authoritative.
package routeplanner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client represents a route-planning provider client.
type Client struct {
	apiURL string
	apiKey string
	client *http.Client
}

// NewClient creates a new route-planner client.
func NewClient(apiURL, apiKey string) *Client {
	return &Client{
		apiURL: strings.TrimRight(apiURL, "/"),
		apiKey: apiKey,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// RegisterPlan records a route/plan identifier for later reconciliation
// polling against the provider.
func (c *Client) RegisterPlan(ctx context.Context, planID string) error {
	payload := map[string]string{"plan_id": planID}
	return c.post(ctx, "/plans/watch", payload)
}

// UnassignedStop is a new stop pushed back to the provider after a
// confirmed reschedule.
type UnassignedStop struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Date    string `json:"date"` // YYYY-MM-DD
	Notes   string `json:"notes"`
}

// CreateUnassignedStop pushes a rescheduled stop to the provider so it can
// be assigned to a future route. The local notification row stays
// authoritative whether or not this succeeds.
func (c *Client) CreateUnassignedStop(ctx context.Context, stop UnassignedStop) error {
	return c.post(ctx, "/stops", stop)
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	if c.apiURL == "" || c.apiKey == "" {
		return fmt.Errorf("route planner is not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("route planner error: %s", resp.Status)
	}

	return nil
}
