// ABOUTME: Error types returned by the API client
// ABOUTME: Non-2xx responses, unparseable bodies and transport failures

package client

import (
	"fmt"
	"net/http"
)

// DefaultErrorMessage is used when a failed response carries no usable message
const DefaultErrorMessage = "Request failed"

// RequestError is returned for non-2xx responses
type RequestError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// NotFound reports whether the service answered 404
func (e *RequestError) NotFound() bool {
	return e.Status == http.StatusNotFound
}

// Unauthorized reports whether the service rejected the credentials or token
func (e *RequestError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// MalformedResponseError is returned when a response body is not valid JSON
// or does not fit the expected shape
type MalformedResponseError struct {
	Status int
	Err    error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("invalid response from backend: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// NetworkError is returned when the request never produced a response
type NetworkError struct {
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	return e.Message
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
