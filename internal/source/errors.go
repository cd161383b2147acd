package source

import "fmt"

// UnavailableError means the list repository could not be obtained at all.
// It is fatal: without a source tree there is nothing to build.
type UnavailableError struct {
	Repo    string
	Message string
	Cause   error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("source unavailable (%s): %s: %v", e.Repo, e.Message, e.Cause)
	}
	return fmt.Sprintf("source unavailable (%s): %s", e.Repo, e.Message)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
