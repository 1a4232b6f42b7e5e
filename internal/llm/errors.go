package llm

import "fmt"

// AnnotationError reports a failed or unusable annotation response.
type AnnotationError struct {
	Message string
	Cause   error
}

func (e *AnnotationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AnnotationError) Unwrap() error {
	return e.Cause
}
