// Package session provides the authenticated pod session. The
// authentication handshake happens elsewhere ("lomap auth" stores the
// resulting credential); this adapter turns the stored credential into
// an oauth2-backed HTTP client plus the user's identity.
package session

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/lomap-labs/lomap-cli/internal/core/ports/driven"
)

// Ensure Provider implements the driven port.
var _ driven.Session = (*Provider)(nil)

// Provider is an oauth2 token-source-backed session.
type Provider struct {
	webID   string
	podRoot string
	source  oauth2.TokenSource
	client  *http.Client
}

// New creates a session for the given identity over a token source.
// The source may refresh tokens transparently; a nil source yields an
// invalid session whose use surfaces as unauthorised, not a crash.
func New(webID, podRoot string, source oauth2.TokenSource) *Provider {
	p := &Provider{
		webID:   webID,
		podRoot: podRoot,
		source:  source,
	}
	if source != nil {
		p.client = oauth2.NewClient(context.Background(), source)
		p.client.Timeout = 30 * time.Second
	} else {
		// Unauthenticated transport: the pod server will answer 401 and
		// the pod client maps that to domain.ErrUnauthorized.
		p.client = &http.Client{Timeout: 30 * time.Second}
	}
	return p
}

// NewWithToken creates a session from a static bearer token.
func NewWithToken(webID, podRoot, token string) *Provider {
	if token == "" {
		return New(webID, podRoot, nil)
	}
	source := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	})
	return New(webID, podRoot, source)
}

// Client returns the HTTP client that attaches the session credential.
func (p *Provider) Client() *http.Client {
	return p.client
}

// WebID returns the identifier of the authenticated user.
func (p *Provider) WebID() string {
	return p.webID
}

// PodRoot returns the root URL of the user's storage.
func (p *Provider) PodRoot() string {
	return p.podRoot
}

// Valid reports whether the session holds a usable credential.
func (p *Provider) Valid() bool {
	if p.source == nil {
		return false
	}
	tok, err := p.source.Token()
	return err == nil && tok.Valid()
}
