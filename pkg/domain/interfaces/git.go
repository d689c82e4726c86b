package interfaces

import (
	"context"

	"github.com/wako-dev/bumper/pkg/domain/model"
)

// GitClient defines operations for interacting with the local git repository
type GitClient interface {
	// ChangedFiles lists file paths changed between the base and head refs
	ChangedFiles(ctx context.Context, rng model.ChangeRange) ([]string, error)

	// Diff returns the raw patch text between the base and head refs
	Diff(ctx context.Context, rng model.ChangeRange) (string, error)
}
