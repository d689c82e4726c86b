package model

// EventKind distinguishes pull-request runs from direct-push runs
type EventKind string

const (
	EventPullRequest EventKind = "pull_request"
	EventPush        EventKind = "push"
)

// ChangeRange is the pair of git references under comparison.
// Immutable once resolved from the event context.
type ChangeRange struct {
	Base string
	Head string
}

// ChangeSet holds the changed file paths and raw diff text for a range
type ChangeSet struct {
	Files []string // Changed file paths, in git output order
	Diff  string   // Concatenated patch text, scanned for markers only
}

// Empty reports whether the change set contains no files
func (c *ChangeSet) Empty() bool {
	return len(c.Files) == 0
}

// BumpInput carries the CI event context for a single run
type BumpInput struct {
	Event   EventKind
	BaseRef string // Base branch for pull-request events
	HeadRef string // Head branch for pull-request events
	DryRun  bool
}

// Range resolves the comparison range for the event. Pull requests compare
// the supplied base/head refs; everything else compares the previous commit
// against HEAD.
func (x *BumpInput) Range() ChangeRange {
	if x.Event == EventPullRequest && x.BaseRef != "" && x.HeadRef != "" {
		return ChangeRange{Base: x.BaseRef, Head: x.HeadRef}
	}
	return ChangeRange{Base: "HEAD~1", Head: "HEAD"}
}
