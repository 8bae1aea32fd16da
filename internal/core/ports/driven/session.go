package driven

import "net/http"

// Session provides the authenticated transport and identity of the
// current user. The authentication handshake itself happens outside the
// core; only its results are visible here.
type Session interface {
	// Client returns an HTTP client that attaches the user's credential
	// to every request. A missing or expired credential surfaces as
	// domain.ErrUnauthorized on first use, never as a crash.
	Client() *http.Client

	// WebID returns the identifier of the authenticated user.
	WebID() string

	// PodRoot returns the root URL of the user's storage.
	PodRoot() string

	// Valid reports whether the session currently holds a credential.
	Valid() bool
}
