package bestiary

import (
	"errors"
	"fmt"
)

var (
	// ErrProfileNotFound means the API answered but the profile payload was null.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrUnexpectedShape means the response was valid JSON but not the batched
	// tRPC envelope we expect.
	ErrUnexpectedShape = errors.New("unexpected response structure")
)

// maxBodySnippet bounds how much of an error response body ends up in logs
const maxBodySnippet = 200

// StatusError is returned for non-2xx responses
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

// FetchError is returned once all attempts for a username have failed
type FetchError struct {
	Username string
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("all %d attempts failed for '%s': %v", e.Attempts, e.Username, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func snippet(body []byte) string {
	if len(body) <= maxBodySnippet {
		return string(body)
	}
	return string(body[:maxBodySnippet]) + "..."
}
