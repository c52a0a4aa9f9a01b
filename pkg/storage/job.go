package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. When called on a TxStorage the job
// becomes visible only if the transaction commits.
type JobStorage interface {
	// AddJob enqueues a job and reports whether it was inserted (false when a
	// unique job with the same arguments already exists).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
