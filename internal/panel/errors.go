package panel

// ErrorKind classifies a failed panel operation.
type ErrorKind int

const (
	// KindRejected means the panel processed the request and refused it,
	// e.g. a duplicate email on user creation.
	KindRejected ErrorKind = iota
	// KindNotFound means the query succeeded but matched nothing.
	KindNotFound
	// KindUnavailable means the panel could not be reached or answered
	// with a server-side failure.
	KindUnavailable
)

// Error is the uniform failure shape for every client operation. Message is
// safe to show to an end user; the cause stays internal and is only reached
// via Unwrap or the client's own logging.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// AsError returns err as a *panel.Error if it is one.
func AsError(err error) (*Error, bool) {
	pe, ok := err.(*Error)
	return pe, ok
}
