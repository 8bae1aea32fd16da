package pod

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/lomap-labs/lomap-cli/internal/core/domain"
	"github.com/lomap-labs/lomap-cli/internal/core/ports/driven"
	"github.com/lomap-labs/lomap-cli/internal/logger"
)

// Conservative request budget against the pod server.
const (
	requestsPerSecond = 10.0
	burstSize         = 20
)

// Client performs whole-resource GET/PUT operations against the pod
// server through the session's authenticated transport.
type Client struct {
	session driven.Session
	limiter *rate.Limiter
}

// NewClient creates a pod client over the given session.
func NewClient(session driven.Session) *Client {
	return &Client{
		session: session,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
	}
}

// FetchContainer retrieves and decodes the container at locator.
func (c *Client) FetchContainer(ctx context.Context, locator string) (*domain.Container, error) {
	if !c.session.Valid() {
		return nil, fmt.Errorf("%w: no session credential", domain.ErrUnauthorized)
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", locator, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the transport can reuse the connection.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, statusError(resp.StatusCode, locator)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrNetwork, locator, err)
	}

	logger.Debug("pod: fetched %s (%d bytes)", locator, len(body))
	return UnmarshalContainer(body)
}

// SaveContainer writes the whole container to locator, replacing any
// previous content. The PUT creates the resource when it is absent.
func (c *Client) SaveContainer(ctx context.Context, locator string, container *domain.Container) error {
	if !c.session.Valid() {
		return fmt.Errorf("%w: no session credential", domain.ErrUnauthorized)
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	body, err := MarshalContainer(container)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, locator, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request for %s: %w", locator, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.session.Client().Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()
	// Drain so the transport can reuse the connection.
	_, _ = io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent, http.StatusResetContent:
		logger.Debug("pod: saved %s (%d records)", locator, container.Len())
		return nil
	default:
		return statusError(resp.StatusCode, locator)
	}
}
