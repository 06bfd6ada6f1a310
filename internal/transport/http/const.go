package http

import "time"

// DefaultTimeout is the default timeout duration for HTTP requests.
// It matches the per-request timeout the mobile client uses.
const DefaultTimeout = 30 * time.Second
