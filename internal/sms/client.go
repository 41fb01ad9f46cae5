// Package sms is the transport client for the external bulk SMS provider.
package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lic-events/vbs-api/internal/config"
)

type Client struct {
	endpoint   string
	apiKey     string
	sender     string
	httpClient *http.Client
}

func NewClient(conf *config.SMSConfig) *Client {
	return &Client{
		endpoint: conf.Endpoint,
		apiKey:   conf.APIKey,
		sender:   conf.Sender,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type sendResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Send submits one message to the provider. The provider reports delivery
// acceptance in the response body, not the HTTP status code.
func (c *Client) Send(ctx context.Context, phoneNumber, message string) error {
	form := url.Values{
		"sender":      {c.sender},
		"recipient[]": {phoneNumber},
		"message":     {message},
	}

	endpoint := fmt.Sprintf("%v?key=%v", c.endpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("c.httpClient.Do -> %w", err)
	}
	defer resp.Body.Close()

	var body sendResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("json.Decode -> %w", err)
	}

	if body.Status != "success" {
		return fmt.Errorf("provider rejected message: status=%v message=%v", body.Status, body.Message)
	}

	return nil
}
