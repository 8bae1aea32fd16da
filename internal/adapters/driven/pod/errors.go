package pod

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lomap-labs/lomap-cli/internal/core/domain"
)

// APIError represents an unexpected pod server response.
type APIError struct {
	StatusCode int
	Locator    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pod: server returned %d for %s", e.StatusCode, e.Locator)
}

// statusError maps an HTTP status code to the domain error taxonomy.
// Statuses without a domain meaning surface as an APIError.
func statusError(statusCode int, locator string) error {
	switch statusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, locator)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, locator)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrForbidden, locator)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", domain.ErrRateLimited, locator)
	default:
		return &APIError{StatusCode: statusCode, Locator: locator}
	}
}

// IsNotFound checks if the error indicates an absent container.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}

// IsForbidden checks if the error indicates a forbidden resource.
func IsForbidden(err error) bool {
	return errors.Is(err, domain.ErrForbidden)
}
