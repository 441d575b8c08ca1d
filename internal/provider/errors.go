package provider

import "fmt"

// AuthError means credentials are missing or the provider rejected a
// signin/signout call. Not retryable.
type AuthError struct {
	Op      string
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// TransportError wraps a network failure or an unexpected HTTP status.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is a non-zero result code from the provider on a non-auth call.
type APIError struct {
	Op      string
	Result  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: provider result %d: %s", e.Op, e.Result, e.Message)
}

// ParseError means a response body did not match the expected schema.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: parsing response: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
