package lists

import "fmt"

// MalformedListError represents a list file that could not be parsed into
// a usable record. It is recoverable: the loader skips the file and
// continues.
type MalformedListError struct {
	Path    string
	Message string
	Cause   error
}

func (e *MalformedListError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed list %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed list %s: %s", e.Path, e.Message)
}

func (e *MalformedListError) Unwrap() error {
	return e.Cause
}
