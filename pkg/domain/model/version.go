package model

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/mod/semver"
)

// BumpKind is the selected increment category for a change set
type BumpKind string

const (
	BumpMajor BumpKind = "MAJOR"
	BumpMinor BumpKind = "MINOR"
	BumpPatch BumpKind = "PATCH"
)

// SemVer is a three-component semantic version
type SemVer struct {
	Major int
	Minor int
	Patch int
}

var semVerPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// ParseSemVer parses "X.Y.Z" into its numeric components. Only canonical
// semver is accepted; forms like "01.2.3" are rejected rather than normalized.
func ParseSemVer(s string) (SemVer, error) {
	m := semVerPattern.FindStringSubmatch(s)
	if m == nil {
		return SemVer{}, goerr.New("unexpected version format", goerr.V("version", s))
	}
	if !semver.IsValid("v" + s) {
		return SemVer{}, goerr.New("version is not canonical semver", goerr.V("version", s))
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return SemVer{}, goerr.Wrap(err, "invalid major component", goerr.V("version", s))
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return SemVer{}, goerr.Wrap(err, "invalid minor component", goerr.V("version", s))
	}
	patch, err := strconv.Atoi(m[3])
	if err != nil {
		return SemVer{}, goerr.Wrap(err, "invalid patch component", goerr.V("version", s))
	}

	return SemVer{Major: major, Minor: minor, Patch: patch}, nil
}

// String returns the "X.Y.Z" form
func (v SemVer) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Bump returns the next version for the given bump kind. Lower components
// reset to zero when a higher component is incremented.
func (v SemVer) Bump(kind BumpKind) SemVer {
	switch kind {
	case BumpMajor:
		return SemVer{Major: v.Major + 1}
	case BumpMinor:
		return SemVer{Major: v.Major, Minor: v.Minor + 1}
	default:
		return SemVer{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	}
}

// VersionInfo is the record handed to downstream CI steps
type VersionInfo struct {
	BumpKind        BumpKind
	OldVersion      SemVer
	NewVersion      SemVer
	ChangesDetected bool
	PRDetected      bool // true for pull-request runs where no commit is expected yet
}
