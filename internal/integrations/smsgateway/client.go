package smsgateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Logger is the logging surface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to an Africa's-Talking-compatible SMS gateway. In demo mode it
// logs the message and reports success without calling out, which keeps
// development environments free of real SMS traffic.
type Client struct {
	baseURL    string
	username   string
	apiKey     string
	demoMode   bool
	httpClient *http.Client
	log        Logger
}

// NewClient creates a gateway client.
func NewClient(baseURL, username, apiKey string, demoMode bool, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		apiKey:   apiKey,
		demoMode: demoMode,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send delivers a single message to phoneNumber (canonical E.164 form).
// Delivery guarantees and retries are the gateway's concern; this client makes
// exactly one attempt and reports the outcome.
func (c *Client) Send(ctx context.Context, phoneNumber, message string) (*SendReport, error) {
	if c.demoMode {
		c.log.Info("SMS demo mode: to=%s message=%q", phoneNumber, message)
		return &SendReport{Success: true, Message: "SMS sent successfully"}, nil
	}

	if c.baseURL == "" || c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	form := url.Values{}
	form.Set("username", c.username)
	form.Set("to", phoneNumber)
	form.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/version1/messaging", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apiKey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrSendFailed, resp.StatusCode)
	}

	var gw gatewayResponse
	if err := json.NewDecoder(resp.Body).Decode(&gw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	for _, r := range gw.SMSMessageData.Recipients {
		// Africa's Talking uses 100-102 for accepted/queued/sent.
		if r.StatusCode >= 100 && r.StatusCode < 200 {
			return &SendReport{Success: true, Message: "SMS sent successfully"}, nil
		}
	}

	c.log.Warn("SMS gateway accepted request but no recipient succeeded: %s", gw.SMSMessageData.Message)
	return &SendReport{Success: false, Message: "Failed to send SMS"}, nil
}
