package nbctl

import "github.com/vovashkil/netbox-api-scripts/internal/common"

var _ error = (*Error)(nil)

// Error adds a user-friendly help message to specific errors.
type Error struct {
	help string
	msg  string
}

// Help will be displayed to the user if this specific error is ever returned.
func (e *Error) Help() string {
	return e.help
}

// Error returns the error message.
func (e *Error) Error() string {
	return e.msg
}

var (
	// ErrConfiguration is returned when the environment configuration is missing or malformed.
	ErrConfiguration = &Error{
		msg: "invalid configuration",
		help: `NETBOX_URL and NETBOX_API_TOKEN must be set before running this command:
  export NETBOX_URL=https://netbox.example.com
  export NETBOX_API_TOKEN=<token>
NETBOX_URL must be an http(s) URL. For token management see ` + common.DocsURLTokens,
	}

	// ErrAuthentication is returned when the remote rejects the API token.
	ErrAuthentication = &Error{
		msg: "authentication rejected",
		help: `NetBox rejected the API token (NETBOX_API_TOKEN).
The token may have expired, been revoked, or lack write permissions.
For token management see ` + common.DocsURLTokens,
	}

	// ErrNetwork is returned when the remote cannot be reached at all.
	ErrNetwork = &Error{
		msg: "error communicating with NetBox",
		help: `A network error occurred while communicating with NetBox.
Verify that NETBOX_URL is correct and that the deployment is reachable from this host.`,
	}

	// ErrTimeout is returned when a request exceeds the configured timeout.
	ErrTimeout = &Error{
		msg: "request timed out",
		help: `The request to NetBox did not complete within the configured timeout.
The deployment may be overloaded or unreachable. The timeout can be raised
by setting NETBOX_TIMEOUT (e.g. NETBOX_TIMEOUT=30s).`,
	}

	// ErrAmbiguous is returned when an exact-name query matches more than one site.
	ErrAmbiguous = &Error{
		msg: "ambiguous site name",
		help: `An exact-name query matched more than one site, which violates the
uniqueness this tool relies on. Resolve the duplicate names in the NetBox UI
before retrying.`,
	}

	// ErrUnexpectedResponse is returned when NetBox replies with something this tool cannot interpret.
	ErrUnexpectedResponse = &Error{
		msg: "unexpected response from NetBox",
		help: `NetBox returned a response this tool could not interpret.
Verify that NETBOX_URL points at the root of a NetBox deployment (not the /api path)
and that the deployment version supports the REST API: ` + common.DocsURLAPI,
	}

	// ErrAttributeConflict is returned when a site exists under the requested
	// name but with different attributes. The remote resource is left untouched.
	ErrAttributeConflict = &Error{
		msg: "site exists with different attributes",
		help: `A site with this name already exists but its status or tags differ from
the requested values. Nothing was changed. Compare with "nbctl list --wide",
then delete the site or adjust the requested attributes.`,
	}
)
