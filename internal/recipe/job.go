package recipe

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// ImageCleanupArgs are the arguments of the job removing a recipe image that
// is no longer referenced, either because it was replaced or because its
// recipe was deleted.
type ImageCleanupArgs struct {
	// Path is the media path of the image.
	Path string `json:"path" river:"unique"`

	maxAttempts int
}

func (args ImageCleanupArgs) Kind() string { return "RemoveRecipeImage" }

// InsertOpts keeps a single pending removal per path.
func (args ImageCleanupArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
