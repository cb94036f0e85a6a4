package wordpress

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx answer from the REST API
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("wordpress: %s (status %d, code %s)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("wordpress: %s (status %d)", e.Message, e.Status)
}

// IsAuth reports whether the credentials were rejected
func (e *APIError) IsAuth() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// newAPIError decodes the standard {"code","message","data":{"status"}} body
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Code = payload.Code
		apiErr.Message = payload.Message
	}

	if strings.TrimSpace(apiErr.Message) == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}
