package keywords

import "fmt"

// APICallError represents an error from the LLM API
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// GenerationError represents a failure to obtain usable keywords from the
// model output after both decode paths were tried.
type GenerationError struct {
	Message string
}

func (e *GenerationError) Error() string {
	return e.Message
}
