package suggest

import "fmt"

// APICallError indicates the LLM provider call itself failed.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("suggestion API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("suggestion API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError indicates the provider responded but the payload did not match
// the expected suggestion structure.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("suggestion response invalid: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("suggestion response invalid: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
