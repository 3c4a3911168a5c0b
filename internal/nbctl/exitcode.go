package nbctl

import "errors"

// Exit codes distinguish the failure classes scripts care about. The
// idempotent no-ops (already exists, not found) are successes and exit 0.
const (
	// ExitOK indicates success, including no-op outcomes.
	ExitOK = 0
	// ExitFailure indicates a runtime failure: network, timeout,
	// authentication, ambiguous query, or an uninterpretable response.
	ExitFailure = 1
	// ExitConfiguration indicates missing or malformed environment
	// configuration; nothing was attempted against the remote.
	ExitConfiguration = 2
	// ExitAttributeConflict indicates the site exists with different
	// attributes; the remote was left untouched.
	ExitAttributeConflict = 3
)

// ExitCode maps an error chain to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrConfiguration):
		return ExitConfiguration
	case errors.Is(err, ErrAttributeConflict):
		return ExitAttributeConflict
	default:
		return ExitFailure
	}
}
