// Package constants defines shared constants and well-known element
// identifiers used throughout the sfoglia navigator.
package constants

import "os"

// DefaultMountID is the id of the element whose contents are replaced on
// each navigation when no mount id is configured.
const DefaultMountID = "app"

// CounterButtonID is the id of the click-counter demo button.
const CounterButtonID = "counter-btn"

// CounterValueID is the id of the element displaying the counter value.
const CounterValueID = "counter-value"

// LogLevelEnvVar is the environment variable name overriding the configured
// log level ("debug", "info", "warn", "error").
const LogLevelEnvVar = "SFOGLIA_LOG_LEVEL"

// Development is the environment variable value for development mode.
const Development = "DEV"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}
