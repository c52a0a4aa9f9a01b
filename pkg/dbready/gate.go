package dbready

import (
	"context"
	"errors"
	"fmt"
	"recipe/pkg/logger"
	"recipe/pkg/serrors"
	"slices"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// DefaultInterval is the pause between two consecutive checks.
const DefaultInterval = time.Second

// State is the lifecycle state of a Gate.
type State int32

const (
	// StateWaiting means no check has succeeded yet.
	StateWaiting State = iota
	// StateReady means a check succeeded. It is terminal.
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "READY"
	}

	return "WAITING"
}

// SleepFunc pauses for d, returning early with ctx's error if ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the default SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Options configure a Gate. Zero values select the defaults.
type Options struct {
	// Databases are the connection names passed to every check. Defaults to
	// DefaultDatabase.
	Databases []string
	// Interval is the pause after each transient failure. Defaults to DefaultInterval.
	Interval time.Duration
	// Timeout bounds the whole wait. Zero waits until ctx is done.
	Timeout time.Duration
	// MaxAttempts bounds the number of checks. Zero means unlimited.
	MaxAttempts int
	// Sleep is the pause primitive. Defaults to Sleep.
	Sleep SleepFunc
}

// Gate blocks until its Checker reports the databases ready.
// A Gate is meant to be waited on once; State and Attempts may be read
// concurrently.
type Gate struct {
	checker  Checker
	options  Options
	state    atomic.Int32
	attempts atomic.Int64
}

// New creates a Gate over checker.
func New(checker Checker, options Options) *Gate {
	if len(options.Databases) == 0 {
		options.Databases = []string{DefaultDatabase}
	}
	if options.Interval <= 0 {
		options.Interval = DefaultInterval
	}
	if options.Sleep == nil {
		options.Sleep = Sleep
	}

	return &Gate{
		checker: checker,
		options: options,
	}
}

// State returns the current state of the gate.
func (g *Gate) State() State { return State(g.state.Load()) }

// Attempts returns the number of checks performed so far.
func (g *Gate) Attempts() int { return int(g.attempts.Load()) }

// Wait checks the databases until they are ready.
//
// Transient failures (serrors.IsTransient) are logged and retried after
// Options.Interval. Any other error is returned as is on its first
// occurrence. If ctx is done, Options.Timeout elapses or Options.MaxAttempts
// checks failed, Wait returns a serrors.ErrTimeout error wrapping the last
// transient failure. When the wait was interrupted by ctx, the error also
// wraps ctx's error (context.Canceled or context.DeadlineExceeded).
func (g *Gate) Wait(ctx context.Context) error {
	if g.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.options.Timeout)
		defer cancel()
	}

	ctx = logger.WithFields(ctx, zap.Strings("databases", g.options.Databases))
	logger.Info(ctx, "waiting for database...")

	for {
		attempt := g.attempts.Add(1)

		err := g.checker.Check(ctx, slices.Clone(g.options.Databases))
		if err == nil {
			g.state.Store(int32(StateReady))
			logger.Info(ctx, "database available", zap.Int64("attempts", attempt))

			return nil
		}
		if !serrors.IsTransient(err) {
			return err
		}

		if g.options.MaxAttempts > 0 && attempt >= int64(g.options.MaxAttempts) {
			return serrors.Wrap(serrors.ErrTimeout, err,
				"database still unavailable after %d attempts", attempt)
		}

		logger.Warn(ctx, "database unavailable, waiting...",
			zap.Int64("attempt", attempt),
			zap.Duration("interval", g.options.Interval),
			zap.Error(err))

		if sleepErr := g.options.Sleep(ctx, g.options.Interval); sleepErr != nil {
			return serrors.Wrap(serrors.ErrTimeout, errors.Join(sleepErr, err),
				"stopped waiting for database after %d attempts", attempt)
		}
	}
}

// WaitFor is a shorthand for New(checker, options).Wait(ctx).
func WaitFor(ctx context.Context, checker Checker, options Options) error {
	if err := New(checker, options).Wait(ctx); err != nil {
		return fmt.Errorf("could not wait for database: %w", err)
	}

	return nil
}
