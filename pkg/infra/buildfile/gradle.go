package buildfile

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/wako-dev/bumper/pkg/domain/model"
	"github.com/wako-dev/bumper/pkg/domain/types"
)

// versionLine matches the single version declaration of a Gradle build file,
// e.g. `version '1.2.3'` or `version "1.2.3"`. Leading whitespace is kept so
// a rewrite preserves indentation.
var versionLine = regexp.MustCompile(`^(\s*)version\s+['"]([^'"]*)['"]\s*$`)

// File reads and rewrites the version declaration of a Gradle build file.
// All lines other than the version line are preserved byte for byte; a CRLF
// ending on the version line survives the rewrite.
type File struct {
	path string
}

// New creates a build file accessor for the given path
func New(path string) *File {
	return &File{path: path}
}

// Path returns the underlying file path
func (f *File) Path() string {
	return f.path
}

// ReadVersion parses the current version from the build file. It fails when
// no version line exists or its value is not a plain X.Y.Z triple.
func (f *File) ReadVersion() (model.SemVer, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return model.SemVer{}, goerr.Wrap(err, "failed to read build file", goerr.V("path", f.path))
	}

	for _, line := range strings.Split(string(raw), "\n") {
		m := versionLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		v, err := model.ParseSemVer(m[2])
		if err != nil {
			return model.SemVer{}, goerr.Wrap(err, "build file version is not semver", goerr.V("path", f.path))
		}
		return v, nil
	}

	return model.SemVer{}, goerr.Wrap(types.ErrVersionNotFound, "no version declaration", goerr.V("path", f.path))
}

// WriteVersion rewrites the version line in place. Exactly one line is
// rewritten, always with single quotes regardless of the original style.
func (f *File) WriteVersion(v model.SemVer) error {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return goerr.Wrap(err, "failed to read build file", goerr.V("path", f.path))
	}

	lines := strings.Split(string(raw), "\n")
	updated := false
	for i, line := range lines {
		m := versionLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		// Splitting on LF leaves the CR of a CRLF line in place; keep it.
		eol := ""
		if strings.HasSuffix(line, "\r") {
			eol = "\r"
		}
		lines[i] = fmt.Sprintf("%sversion '%s'%s", m[1], v, eol)
		updated = true
		break
	}

	if !updated {
		return goerr.Wrap(types.ErrVersionNotFound, "no version declaration to rewrite", goerr.V("path", f.path))
	}

	if err := os.WriteFile(f.path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return goerr.Wrap(err, "failed to write build file", goerr.V("path", f.path))
	}
	return nil
}
