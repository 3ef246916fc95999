package llm

import (
	"errors"
	"fmt"
)

// LLMError is the terminal gateway failure. Status is 0 when no HTTP response was received.
type LLMError struct {
	Provider string
	Status   int
	Message  string
}

func (e *LLMError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Provider, e.Status, e.Message)
}

// IsAuthError reports whether err is an LLMError caused by rejected credentials.
func IsAuthError(err error) bool {
	var le *LLMError
	if !errors.As(err, &le) {
		return false
	}
	return le.Status == 401 || le.Status == 403
}
