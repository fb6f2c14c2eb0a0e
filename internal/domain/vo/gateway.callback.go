package vo

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayout is the zone-less UTC format the gateway exchanges.
const timestampLayout = "2006-01-02T15:04:05.000000"

type GatewayError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Err converts a remote failure into an error matching ErrProviderRejected.
func (e *GatewayError) Err() error {
	if e == nil {
		return nil
	}
	return fmt.Errorf("%w: %d %s", ErrProviderRejected, e.Code, e.Message)
}

type GatewayResponse struct {
	RequestID string `json:"requestId"`
}

// CallbackHeader holds the fields common to every gateway callback.
// RequestID identifies the callback itself; Resp.RequestID is the request it answers.
type CallbackHeader struct {
	RequestID string          `json:"requestId"`
	Timestamp string          `json:"timestamp"`
	Resp      GatewayResponse `json:"resp"`
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// ParseTimestamp accepts the gateway's zone-less format, read as UTC, and RFC 3339.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if ts, err := time.Parse("2006-01-02T15:04:05.999999999", value); err == nil {
		return ts.UTC(), nil
	}
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: timestamp %q", ErrInvalidRequest, value)
	}
	return ts.UTC(), nil
}
