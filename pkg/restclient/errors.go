package restclient

import "errors"

// Kind classifies a transport failure so callers can react without parsing
// message strings.
type Kind int

const (
	// KindNetwork is a transport-level failure: the request never produced
	// a usable HTTP response.
	KindNetwork Kind = iota
	// KindAuth is a missing, expired, or rejected credential. Terminal for
	// the current session; the caller must re-authenticate, not retry.
	KindAuth
	// KindValidation is a request the backend refused as malformed or
	// semantically invalid (400/422).
	KindValidation
	// KindRemote is any other backend rejection.
	KindRemote
)

// Error is the single error type produced by the transport. Message carries
// the backend envelope's message verbatim whenever one was present.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// IsAuth reports whether err is a credential failure.
func IsAuth(err error) bool {
	return hasKind(err, KindAuth)
}

// IsValidation reports whether err is a backend validation rejection.
func IsValidation(err error) bool {
	return hasKind(err, KindValidation)
}

func hasKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
