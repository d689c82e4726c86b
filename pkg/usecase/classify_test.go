package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/wako-dev/bumper/pkg/domain/model"
	"github.com/wako-dev/bumper/pkg/usecase"
)

func newDefaultClassifier(t *testing.T) *usecase.Classifier {
	t.Helper()
	classifier, err := usecase.NewClassifier(usecase.DefaultRules())
	gt.NoError(t, err)
	return classifier
}

func TestClassify(t *testing.T) {
	classifier := newDefaultClassifier(t)

	tests := []struct {
		name  string
		files []string
		diff  string
		want  model.BumpKind
	}{
		{
			name:  "java file with feature marker",
			files: []string{"Foo.java"},
			diff:  "feat: add bar",
			want:  model.BumpMinor,
		},
		{
			name:  "build file with breaking bang marker",
			files: []string{"build.gradle"},
			diff:  "fix!: critical",
			want:  model.BumpMajor,
		},
		{
			name:  "breaking change phrase",
			files: []string{"src/main/java/App.java"},
			diff:  "BREAKING CHANGE: removed public API",
			want:  model.BumpMajor,
		},
		{
			name:  "scoped breaking marker",
			files: []string{"settings.gradle"},
			diff:  "feat(core)!: drop legacy mode",
			want:  model.BumpMajor,
		},
		{
			name:  "config file with feature marker",
			files: []string{"application.yml"},
			diff:  "feature: expose new toggle",
			want:  model.BumpMinor,
		},
		{
			name:  "docs file with maintenance marker",
			files: []string{"docs/guide.md"},
			diff:  "docs: clarify setup steps",
			want:  model.BumpPatch,
		},
		{
			name:  "no markers falls back to patch",
			files: []string{"README.md"},
			diff:  "updated readme",
			want:  model.BumpPatch,
		},
		{
			name:  "breaking marker without source path falls back to patch",
			files: []string{"README.md"},
			diff:  "fix!: reword warning",
			want:  model.BumpPatch,
		},
		{
			name:  "feature marker on docs-only path falls back to patch",
			files: []string{"CHANGELOG.md"},
			diff:  "feat: mention upcoming work",
			want:  model.BumpPatch,
		},
		{
			name:  "kotlin source with chore marker",
			files: []string{"src/Main.kt"},
			diff:  "chore: tidy imports",
			want:  model.BumpPatch,
		},
		{
			name:  "markers are case insensitive",
			files: []string{"Foo.java"},
			diff:  "FEAT: shout the feature",
			want:  model.BumpMinor,
		},
		{
			name:  "unclassifiable path falls back to patch",
			files: []string{"LICENSE"},
			diff:  "fix: update year",
			want:  model.BumpPatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := &model.ChangeSet{Files: tt.files, Diff: tt.diff}
			gt.Value(t, classifier.Classify(cs)).Equal(tt.want)
		})
	}
}

func TestClassifyPriority(t *testing.T) {
	classifier := newDefaultClassifier(t)

	// Evidence for every tier at once must still resolve to MAJOR.
	cs := &model.ChangeSet{
		Files: []string{"build.gradle", "Foo.java", "README.md"},
		Diff:  "BREAKING CHANGE: new wire format\nfeat: add codec\ndocs: update table",
	}
	gt.Value(t, classifier.Classify(cs)).Equal(model.BumpMajor)

	// Feature and maintenance evidence together resolves to MINOR.
	cs = &model.ChangeSet{
		Files: []string{"Foo.java", "README.md"},
		Diff:  "feat: add codec\ndocs: update table",
	}
	gt.Value(t, classifier.Classify(cs)).Equal(model.BumpMinor)
}

func TestClassifyEmptyDiff(t *testing.T) {
	classifier := newDefaultClassifier(t)

	// Paths alone never satisfy a marker rule; default applies.
	cs := &model.ChangeSet{Files: []string{"build.gradle"}, Diff: ""}
	gt.Value(t, classifier.Classify(cs)).Equal(model.BumpPatch)
}

func TestNewClassifierInvalidPattern(t *testing.T) {
	rules := usecase.DefaultRules()
	rules.SourcePaths = append(rules.SourcePaths, `([unclosed`)

	_, err := usecase.NewClassifier(rules)
	gt.Error(t, err)
}
