package interfaces

import "github.com/wako-dev/bumper/pkg/domain/model"

// BuildFile defines operations on the version declaration of a build file
type BuildFile interface {
	// ReadVersion parses the current version from the build file
	ReadVersion() (model.SemVer, error)

	// WriteVersion rewrites the version line in place
	WriteVersion(v model.SemVer) error
}

// StatusWriter emits the version info record for downstream CI steps
type StatusWriter interface {
	// Write overwrites the status record with the given version info
	Write(info *model.VersionInfo) error
}
