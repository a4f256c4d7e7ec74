package businesscomms

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrMissingCredentials is returned when no service account key or token
// source is configured. Provide a key file or set BC_CREDENTIALS_FILE.
var ErrMissingCredentials = errors.New("service account credentials are required. Provide a key file or set BC_CREDENTIALS_FILE")

// APIError represents an error returned by the Business Communications API.
type APIError struct {
	StatusCode int
	// Status is the canonical status string from the error envelope,
	// e.g. NOT_FOUND or PERMISSION_DENIED.
	Status    string
	Message   string
	Body      []byte
	RequestID string
	Details   []map[string]any
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	status := e.Status
	if status == "" {
		status = strconv.Itoa(e.StatusCode)
	}
	if e.RequestID != "" {
		return fmt.Sprintf("businesscommunications api error (%s): %s (request_id=%s)", status, e.Message, e.RequestID)
	}
	return fmt.Sprintf("businesscommunications api error (%s): %s", status, e.Message)
}

type InvalidArgumentError struct{ *APIError }
type AuthenticationError struct{ *APIError }
type PermissionDeniedError struct{ *APIError }
type NotFoundError struct{ *APIError }
type RateLimitError struct {
	*APIError
	RetryAfter *time.Duration
}
type ServerError struct{ *APIError }

// googleErrorEnvelope is the standard Google API JSON error body.
type googleErrorEnvelope struct {
	Error struct {
		Code    int              `json:"code"`
		Message string           `json:"message"`
		Status  string           `json:"status"`
		Details []map[string]any `json:"details"`
	} `json:"error"`
}

// apiErrorFromResponse maps an HTTP status code and optional JSON body to a typed error.
func apiErrorFromResponse(status int, body []byte, headers http.Header, requestIDHeader string) error {
	message, canonical, details := extractErrorDetail(status, body)
	requestID := ""
	if headers != nil && requestIDHeader != "" {
		requestID = headers.Get(requestIDHeader)
	}

	base := &APIError{
		StatusCode: status,
		Status:     canonical,
		Message:    message,
		Body:       body,
		RequestID:  requestID,
		Details:    details,
	}

	switch status {
	case http.StatusBadRequest:
		return &InvalidArgumentError{APIError: base}
	case http.StatusUnauthorized:
		return &AuthenticationError{APIError: base}
	case http.StatusForbidden:
		return &PermissionDeniedError{APIError: base}
	case http.StatusNotFound:
		return &NotFoundError{APIError: base}
	case http.StatusTooManyRequests:
		return &RateLimitError{APIError: base, RetryAfter: parseRetryAfter(headers)}
	default:
		if status >= 500 {
			return &ServerError{APIError: base}
		}
		return base
	}
}

func extractErrorDetail(status int, body []byte) (string, string, []map[string]any) {
	if len(body) == 0 {
		return fmt.Sprintf("HTTP %d", status), "", nil
	}

	var envelope googleErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message, envelope.Error.Status, envelope.Error.Details
	}

	raw := strings.TrimSpace(string(body))
	if raw != "" {
		return raw, "", nil
	}
	return fmt.Sprintf("HTTP %d", status), "", nil
}

func parseRetryAfter(headers http.Header) *time.Duration {
	if headers == nil {
		return nil
	}
	val := headers.Get("Retry-After")
	if val == "" {
		return nil
	}
	if seconds, err := strconv.Atoi(val); err == nil {
		d := time.Duration(seconds) * time.Second
		return &d
	}
	if t, err := http.ParseTime(val); err == nil {
		d := time.Until(t)
		return &d
	}
	return nil
}
