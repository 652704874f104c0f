package graphql

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
)

// Error is one entry of a GraphQL response "errors" array.
type Error struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Code returns extensions.code, empty when the server did not send one.
func (e Error) Code() string {
	if e.Extensions == nil {
		return ""
	}
	code, _ := e.Extensions["code"].(string)
	return code
}

// Errors is returned when the response carried a non-empty "errors" array,
// regardless of the HTTP status.
type Errors []Error

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, item := range e {
		if code := item.Code(); code != "" {
			msgs = append(msgs, fmt.Sprintf("%s (%s)", item.Message, code))
			continue
		}
		msgs = append(msgs, item.Message)
	}
	return "graphql: " + strings.Join(msgs, "; ")
}

// HTTPError is returned for non-2xx responses without a GraphQL error payload.
type HTTPError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("graphql: %s: unexpected status %d", e.Operation, e.StatusCode)
}

// HasCode reports whether err carries a GraphQL error with the given extensions.code.
func HasCode(err error, code string) bool {
	var gqlErrs Errors
	if !errors.As(err, &gqlErrs) {
		return false
	}
	for _, e := range gqlErrs {
		if e.Code() == code {
			return true
		}
	}
	return false
}
