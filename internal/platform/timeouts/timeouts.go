// Package timeouts defines the shutdown bounds used by the CLI.
// Calls to the companion process are deliberately unbounded; only teardown
// is capped so a stuck exporter or companion cannot hold the process open.
package timeouts

import "time"

// TelemetryShutdown caps the time spent flushing spans before exit.
const TelemetryShutdown = 5 * time.Second

// ServerTerminate limits how long closing the companion session waits for the
// process to exit after its stdin is closed, before it is signalled.
const ServerTerminate = 5 * time.Second
