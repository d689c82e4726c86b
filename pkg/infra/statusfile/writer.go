package statusfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/wako-dev/bumper/pkg/domain/interfaces"
	"github.com/wako-dev/bumper/pkg/domain/model"
)

type writer struct {
	path string
}

// New creates a status writer bound to an output path
func New(path string) interfaces.StatusWriter {
	return &writer{path: path}
}

// Write serializes the version info record as flat key=value lines and
// overwrites any previous record. The format is consumed by downstream CI
// steps, so keys and order are part of the contract.
func (w *writer) Write(info *model.VersionInfo) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "VERSION_TYPE=%s\n", info.BumpKind)
	fmt.Fprintf(&sb, "OLD_VERSION=%s\n", info.OldVersion)
	fmt.Fprintf(&sb, "NEW_VERSION=%s\n", info.NewVersion)
	fmt.Fprintf(&sb, "CHANGES_DETECTED=%t\n", info.ChangesDetected)
	fmt.Fprintf(&sb, "PR_DETECTED=%t\n", info.PRDetected)

	if err := os.WriteFile(w.path, []byte(sb.String()), 0644); err != nil {
		return goerr.Wrap(err, "failed to write status file", goerr.V("path", w.path))
	}
	return nil
}
