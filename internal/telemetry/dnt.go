package telemetry

import "os"

// envVarDNT follows the Console Do Not Track convention: any value, even an
// empty one, counts as opting out.
const envVarDNT = "DO_NOT_TRACK"

// DNT reports whether the user opted out of telemetry and tracing.
func DNT() bool {
	_, ok := os.LookupEnv(envVarDNT)
	return ok
}
