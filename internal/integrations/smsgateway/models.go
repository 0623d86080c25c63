package smsgateway

// SendReport is the outcome of one send attempt, surfaced to the caller so a
// failed reminder can be reported without affecting the booking itself.
type SendReport struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// gatewayResponse mirrors the Africa's Talking messaging API response shape.
type gatewayResponse struct {
	SMSMessageData struct {
		Message    string `json:"Message"`
		Recipients []struct {
			Number     string `json:"number"`
			Status     string `json:"status"`
			StatusCode int    `json:"statusCode"`
			MessageID  string `json:"messageId"`
		} `json:"Recipients"`
	} `json:"SMSMessageData"`
}
