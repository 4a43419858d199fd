package testing

import "time"

const (
	// DefaultWaitTimeout bounds how long tests wait for asynchronous dialog
	// results to land on the script loop.
	DefaultWaitTimeout = 5 * time.Second

	// DefaultPollInterval is the polling interval used with testify's
	// Eventually when waiting for async deliveries.
	DefaultPollInterval = 2 * time.Millisecond
)
