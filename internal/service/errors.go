package service

import (
	"errors"
	"fmt"

	"github.com/wordpress-mcp-server/internal/wordpress"
)

// GatewayError is returned by every failed ContentGateway operation
type GatewayError struct {
	Op      string // e.g. "fetch posts"
	Status  int    // upstream HTTP status, 0 when no response was received
	Code    string // upstream error code, if any
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// wrapError carries the upstream message and status into a GatewayError
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}

	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return err
	}

	gwErr = &GatewayError{Op: op, Message: err.Error(), Err: err}

	var apiErr *wordpress.APIError
	if errors.As(err, &apiErr) {
		gwErr.Status = apiErr.Status
		gwErr.Code = apiErr.Code
		gwErr.Message = apiErr.Message
	}
	return gwErr
}
