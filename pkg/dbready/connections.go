package dbready

import (
	"context"
	"fmt"
	"recipe/pkg/serrors"
)

// ErrUnknownDatabase is returned by Connections.Check for a name that has no
// registered connection. It indicates a misconfiguration and is never retried.
var ErrUnknownDatabase = serrors.NewKind("UNKNOWN_DATABASE")

// Connections is a Checker over a set of named connections.
type Connections map[string]Pinger

// Check pings the named connections in order and stops at the first failure.
// The returned error wraps the connection's error so transient tags survive.
func (c Connections) Check(ctx context.Context, databases []string) error {
	for _, name := range databases {
		p, ok := c[name]
		if !ok || p == nil {
			return serrors.With(ErrUnknownDatabase, "no connection configured for database %q", name)
		}

		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("database %q: %w", name, err)
		}
	}

	return nil
}
