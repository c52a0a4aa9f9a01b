// Package dbready blocks process startup until the configured databases
// accept connections.
//
// The gate only needs to know whether a failed check is worth retrying. Data
// access layers tag temporary unavailability with serrors.ErrUnavailable;
// every other error is treated as fatal and returned to the caller untouched.
//
//go:generate mockgen -package mockdbready -source=interface.go -destination=mock/mockdbready.go *
package dbready

import "context"

// DefaultDatabase is the name of the primary database connection.
const DefaultDatabase = "default"

// Checker verifies that the named database connections are usable.
type Checker interface {
	// Check returns nil when every named connection accepts queries. Errors
	// tagged with serrors.ErrUnavailable mean "not ready yet".
	Check(ctx context.Context, databases []string) error
}

// Pinger is a single database connection that can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}
