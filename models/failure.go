package models

// FailureKind classifies the single user-facing error slot.
type FailureKind int

const (
	// FailureValidation is a local rejection of the form draft; no network
	// call was made.
	FailureValidation FailureKind = iota

	// FailureTransport is a subscription-level, collection-wide failure.
	FailureTransport

	// FailureWrite is an operation-specific failure of an add, update or
	// delete write. It carries the underlying service message.
	FailureWrite
)

// Failure is the value held by the error slot. At most one Failure is
// active at a time; the next failure overwrites it and any successful
// operation or snapshot clears it.
type Failure struct {
	Kind FailureKind

	// Message is the user-facing text of the failure.
	Message string

	// Err is the underlying error, kept for errors.Is inspection.
	Err error
}

func (f *Failure) Error() string {
	if f == nil {
		return ""
	}
	return f.Message
}

// Unwrap exposes the underlying error to errors.Is / errors.As.
func (f *Failure) Unwrap() error {
	if f == nil {
		return nil
	}
	return f.Err
}
