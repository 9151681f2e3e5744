package graphql

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Get-style bindings when the server resolved
// the operation but the entity does not exist (a null data field, not a
// GraphQL error).
var ErrNotFound = errors.New("graphql: entity not found")

// Error is a single entry of a GraphQL response's errors array.
type Error struct {
	Message    string                 `json:"message"`
	Path       []interface{}          `json:"path,omitempty"`
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}

func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	parts := make([]string, len(e.Path))
	for i, p := range e.Path {
		parts[i] = fmt.Sprint(p)
	}
	return fmt.Sprintf("%s (path: %s)", e.Message, strings.Join(parts, "."))
}

// ErrorList is the full errors array; it satisfies error so callers can
// surface all entries at once.
type ErrorList []*Error

func (l ErrorList) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// RequestError reports a non-OK HTTP response, before any GraphQL
// processing happened.
type RequestError struct {
	Operation  string
	StatusCode int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("operation %s: endpoint returned HTTP %d", e.Operation, e.StatusCode)
}
