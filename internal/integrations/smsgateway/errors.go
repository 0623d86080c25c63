package smsgateway

import "errors"

var (
	// ErrNotConfigured is returned when the gateway URL or API key is missing.
	ErrNotConfigured = errors.New("smsgateway client: gateway not configured")

	// ErrSendFailed is returned when the gateway rejected the message.
	ErrSendFailed = errors.New("smsgateway client: send failed")

	// ErrInternal is returned on transport-level failures.
	ErrInternal = errors.New("smsgateway client: internal error")

	// ErrInvalidResponse is returned when the gateway answer cannot be parsed.
	ErrInvalidResponse = errors.New("smsgateway client: invalid response")
)
