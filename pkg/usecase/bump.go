package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/wako-dev/bumper/pkg/domain/interfaces"
	"github.com/wako-dev/bumper/pkg/domain/model"
	"github.com/wako-dev/bumper/pkg/domain/types"
)

type bumpUseCase struct {
	gitClient    interfaces.GitClient
	buildFile    interfaces.BuildFile
	statusWriter interfaces.StatusWriter
	classifier   *Classifier
}

// NewBump creates a new BumpUseCase instance
func NewBump(
	gitClient interfaces.GitClient,
	buildFile interfaces.BuildFile,
	statusWriter interfaces.StatusWriter,
	classifier *Classifier,
) interfaces.BumpUseCase {
	return &bumpUseCase{
		gitClient:    gitClient,
		buildFile:    buildFile,
		statusWriter: statusWriter,
		classifier:   classifier,
	}
}

// Run executes the full workflow: resolve range, collect changes, classify,
// bump the build file version, verify, and emit the status record.
func (uc *bumpUseCase) Run(ctx context.Context, input *model.BumpInput) (*model.VersionInfo, error) {
	logger := ctxlog.From(ctx)

	rng := input.Range()
	logger.Info("Comparing revisions",
		"event", input.Event,
		"base", rng.Base,
		"head", rng.Head,
	)

	cs := uc.collectChanges(ctx, rng)
	if cs.Empty() {
		logger.Info("No changed files, nothing to version")
		return nil, nil
	}

	kind := uc.classifier.Classify(cs)
	logger.Info("Classified change set",
		"bump", kind,
		"file_count", len(cs.Files),
	)

	current, err := uc.buildFile.ReadVersion()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read current version")
	}

	next := current.Bump(kind)
	logger.Info("Computed next version",
		"old", current.String(),
		"new", next.String(),
	)

	info := &model.VersionInfo{
		BumpKind:        kind,
		OldVersion:      current,
		NewVersion:      next,
		ChangesDetected: true,
		PRDetected:      input.Event == model.EventPullRequest,
	}

	if input.DryRun {
		logger.Info("Dry run, skipping build file and status file updates")
		return info, nil
	}

	if err := uc.buildFile.WriteVersion(next); err != nil {
		return nil, goerr.Wrap(err, "failed to update build file")
	}

	// Re-read to confirm the rewrite landed. A mismatch leaves the file as
	// written so an operator can inspect it; no rollback is attempted.
	written, err := uc.buildFile.ReadVersion()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to re-read version for verification")
	}
	if written != next {
		return nil, goerr.Wrap(types.ErrVerifyMismatch, "build file left in inconsistent state",
			goerr.V("want", next.String()),
			goerr.V("got", written.String()),
		)
	}

	if err := uc.statusWriter.Write(info); err != nil {
		return nil, err
	}

	logger.Info("Version bump completed",
		"bump", info.BumpKind,
		"old", info.OldVersion.String(),
		"new", info.NewVersion.String(),
	)

	return info, nil
}

// collectChanges fetches the change set for the range. Retrieval failures
// degrade to an empty change set: CI runs on shallow or detached checkouts
// should not hard-fail here. The warning keeps the two cases apart in logs.
func (uc *bumpUseCase) collectChanges(ctx context.Context, rng model.ChangeRange) *model.ChangeSet {
	logger := ctxlog.From(ctx)

	files, err := uc.gitClient.ChangedFiles(ctx, rng)
	if err != nil {
		logger.Warn("Failed to list changed files, treating as no changes",
			"error", err,
			"base", rng.Base,
			"head", rng.Head,
		)
		return &model.ChangeSet{}
	}
	if len(files) == 0 {
		return &model.ChangeSet{}
	}

	diff, err := uc.gitClient.Diff(ctx, rng)
	if err != nil {
		logger.Warn("Failed to read diff text, classifying on paths only", "error", err)
		diff = ""
	}

	return &model.ChangeSet{Files: files, Diff: diff}
}
