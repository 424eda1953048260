package questions

import "fmt"

// GenerationError indicates the completion service could not be reached or
// failed at the transport level. Fatal for the interview-start request; a
// well-formed question set is mandatory, so there is no silent downgrade.
type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("question generation call failed: %v", e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

// MalformedResponseError indicates the service responded without a usable
// structured payload.
type MalformedResponseError struct {
	Payload string
	Cause   error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed question payload: %v", e.Cause)
}

func (e *MalformedResponseError) Unwrap() error { return e.Cause }
