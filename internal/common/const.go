package common

const (
	// AppName is the binary name, used in help text and telemetry payloads.
	AppName = "nbctl"

	// DefaultStatus is the status applied to created sites when none is requested.
	DefaultStatus = "planned"
	// DefaultTag is the tag applied to created sites when none is requested.
	DefaultTag = "new_dc_buildout"

	// DocsURLAPI is the NetBox REST API documentation.
	DocsURLAPI = "https://netboxlabs.com/docs/netbox/integrations/rest-api/"
	// DocsURLTokens documents how NetBox API tokens are issued and scoped.
	DocsURLTokens = "https://netboxlabs.com/docs/netbox/administration/authentication/tokens/"
)
