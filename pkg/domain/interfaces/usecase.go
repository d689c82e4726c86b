package interfaces

import (
	"context"

	"github.com/wako-dev/bumper/pkg/domain/model"
)

// BumpUseCase defines the version bump workflow
type BumpUseCase interface {
	// Run classifies the change set, updates the build file and emits the
	// status record. A nil VersionInfo with a nil error means the change set
	// was empty and nothing was touched.
	Run(ctx context.Context, input *model.BumpInput) (*model.VersionInfo, error)
}
