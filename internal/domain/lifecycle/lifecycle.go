// Package lifecycle holds shared timing for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each shutdown step.
const DefaultTimeout = 10 * time.Second
