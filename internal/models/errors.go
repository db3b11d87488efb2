package models

import (
	"fmt"
	"strings"
)

// APIError is the validation/business error body: {code, message, details[]}.
type APIError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}

func (e *APIError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, strings.Join(e.Details, "; "))
}

// TokenError is the authentication/authorization error body: {msg}.
// It is never merged with APIError.
type TokenError struct {
	Msg string `json:"msg"`
}
