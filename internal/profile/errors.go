package profile

// InvalidTextError reports a job description rejected before profiling.
type InvalidTextError struct {
	Message string
}

func (e *InvalidTextError) Error() string {
	return e.Message
}
