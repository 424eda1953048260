package extraction

import "fmt"

// ModelCallError indicates the completion service could not be reached or
// failed at the transport level. Fatal for the current extraction request;
// the caller decides whether to retry the whole invocation.
type ModelCallError struct {
	Cause error
}

func (e *ModelCallError) Error() string {
	return fmt.Sprintf("model extraction call failed: %v", e.Cause)
}

func (e *ModelCallError) Unwrap() error { return e.Cause }

// MalformedResponseError indicates the service responded without a usable
// structured payload. Treated identically to unavailability.
type MalformedResponseError struct {
	Payload string
	Cause   error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %v", e.Cause)
}

func (e *MalformedResponseError) Unwrap() error { return e.Cause }
