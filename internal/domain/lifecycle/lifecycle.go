// Package lifecycle holds shared constants for application start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as the startup DB ping
// and the HTTP server's graceful shutdown.
const DefaultTimeout = 10 * time.Second
