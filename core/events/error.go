package events

// Error terminates a failed stream. The message is surfaced to the caller
// verbatim; whatever answer text accumulated before the failure is kept.
type Error struct {
	Base
	Message string
}

func (e Error) String() string { return e.Message }

func NewError(message string) Error {
	return Error{Base: NewBase(KindError), Message: message}
}
