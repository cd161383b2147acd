package bundle

import (
	"fmt"
	"strings"
)

// EmitError represents a failure producing or writing an output artifact.
type EmitError struct {
	Artifact string
	Message  string
	Cause    error
}

func (e *EmitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to emit %s: %s: %v", e.Artifact, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to emit %s: %s", e.Artifact, e.Message)
}

func (e *EmitError) Unwrap() error {
	return e.Cause
}

// VerifyError means an emitted demo page is missing pieces its renderer
// needs at load time.
type VerifyError struct {
	Missing []string
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("demo page verification failed, missing: %s", strings.Join(e.Missing, ", "))
}
