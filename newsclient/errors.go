package newsclient

import (
	"fmt"
	"net/http"
)

// ConfigurationError reports a missing or unusable client setting. It is not
// recoverable without reconfiguring the client.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("news client: %s is not configured", e.Key)
}

// FetchError reports a non-2xx response from the news provider. Code and
// Message are filled from the provider's error body when it could be decoded.
type FetchError struct {
	Op         string
	StatusCode int
	Code       string
	Message    string
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("%s: provider returned %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Code != "" {
		msg += " (" + e.Code + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// ParseError reports a response body that is not the expected article envelope
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: parse response: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
