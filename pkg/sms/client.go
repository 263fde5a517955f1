// Package sms provides a client for the outbound SMS gateway.
//
// The gateway exposes a JSON API: POST {api_url}/messages with a bearer
// token, responding with the provider's message identifier.
package sms

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

// Client represents an SMS gateway client.
type Client struct {
	apiURL string
	token  string
	from   string
	client *http.Client
}

// NewClient creates a new SMS gateway client. from is the sender number
// customers see.
func NewClient(apiURL, token, from string) *Client {
	return &Client{
		apiURL: strings.TrimRight(apiURL, "/"),
		token:  token,
		from:   from,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type sendRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Body string `json:"body"`
}

type sendResponse struct {
	MessageID string `json:"message_id"`
	Error     string `json:"error"`
}

// Send delivers one SMS to an E.164 phone number and returns the
// provider message identifier.
func (c *Client) Send(ctx context.Context, to, body string) (string, error) {
	if c.token == "" || c.apiURL == "" {
		return "", fmt.Errorf("sms gateway is not configured")
	}

	payload, err := json.Marshal(sendRequest{From: c.from, To: to, Body: body})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var sr sendResponse
	_ = json.Unmarshal(raw, &sr)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		if sr.Error != "" {
			return "", fmt.Errorf("sms gateway error %s: %s", resp.Status, sr.Error)
		}
		return "", fmt.Errorf("sms gateway error: %s", resp.Status)
	}

	if sr.MessageID == "" {
		return "", fmt.Errorf("sms gateway returned no message id")
	}

	return sr.MessageID, nil
}
