package relay

import "fmt"

// ValidationError rejects unusable user input before any transcript mutation.
// The reason is safe to show to the end user.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// RelayError wraps any failure to obtain or persist a completion: transport
// errors, non-2xx upstream statuses, malformed response bodies and storage
// faults all surface through it.
type RelayError struct {
	Err error
}

func (e *RelayError) Error() string { return fmt.Sprintf("completion relay failed: %v", e.Err) }

func (e *RelayError) Unwrap() error { return e.Err }
