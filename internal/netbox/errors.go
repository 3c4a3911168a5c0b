package netbox

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/vovashkil/netbox-api-scripts/internal/nbctl"
)

var _ error = (*APIError)(nil)

// APIError represents a non-success response from the NetBox API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
}

// Unwrap ties authentication responses into the error taxonomy, so
// errors.Is(err, nbctl.ErrAuthentication) holds anywhere in a chain.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nbctl.ErrAuthentication
	}
	return nil
}

// Conflict reports whether the response indicates the resource already
// exists. NetBox reports duplicates as 400 validation errors; deployments
// fronted by other layers may answer with a plain 409.
func (e *APIError) Conflict() bool {
	if e.StatusCode == http.StatusConflict {
		return true
	}
	return e.StatusCode == http.StatusBadRequest &&
		strings.Contains(strings.ToLower(e.Body), "already exists")
}

// NotFound reports whether the requested resource was absent.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
