package client

// Kind identifies the failure category an API call was classified into.
// The set is closed: every failed call maps to exactly one Kind.
type Kind int

const (
	// KindAuthorization: the service rejected the credentials (401/403).
	KindAuthorization Kind = iota + 1
	// KindNetwork: no response was received at all.
	KindNetwork
	// KindServer: the service answered with status >= 500.
	KindServer
	// KindRateLimit: the service answered with status 429.
	KindRateLimit
	// KindGeneric: any other non-2xx response.
	KindGeneric
)

// User-facing messages for the fixed categories.
const (
	msgSessionExpired = "Session expired. Please login again."
	msgNetwork        = "Network error. Please check your connection."
	msgServer         = "Server error. Please try again later."
	msgRateLimit      = "Too many requests. Please wait a moment."
	msgUnknown        = "An error occurred"
)

// Error is the classified outcome of a failed API call. Message is what the
// UI shows; for the fixed categories it never carries server response detail.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// Is matches two *Error values by Kind, so callers can write
// errors.Is(err, client.ErrSessionExpired) without comparing messages.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinel values for errors.Is matching.
var (
	ErrSessionExpired = &Error{Kind: KindAuthorization, Message: msgSessionExpired}
	ErrNetwork        = &Error{Kind: KindNetwork, Message: msgNetwork}
	ErrServer         = &Error{Kind: KindServer, Message: msgServer}
	ErrRateLimit      = &Error{Kind: KindRateLimit, Message: msgRateLimit}
)

func authorizationError() *Error {
	return &Error{Kind: KindAuthorization, Message: msgSessionExpired}
}

func networkError(cause error) *Error {
	return &Error{Kind: KindNetwork, Message: msgNetwork, cause: cause}
}

func serverError() *Error {
	return &Error{Kind: KindServer, Message: msgServer}
}

func rateLimitError() *Error {
	return &Error{Kind: KindRateLimit, Message: msgRateLimit}
}

func genericError(message string) *Error {
	if message == "" {
		message = msgUnknown
	}
	return &Error{Kind: KindGeneric, Message: message}
}
