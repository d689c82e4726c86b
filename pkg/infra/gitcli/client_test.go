package gitcli_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/wako-dev/bumper/pkg/domain/model"
	"github.com/wako-dev/bumper/pkg/infra/gitcli"
)

// initTestRepo creates a git repository with two commits: the first adds
// README.md, the second modifies it and adds Foo.java.
func initTestRepo(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	dir := t.TempDir()
	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test",
			"GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=test",
			"GIT_COMMITTER_EMAIL=test@example.com",
		)
		out, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}

	run("init", "--initial-branch=main")
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# test\n"), 0644))
	run("add", "README.md")
	run("commit", "-m", "initial commit")

	gt.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# test\nupdated\n"), 0644))
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "Foo.java"), []byte("class Foo {}\n"), 0644))
	run("add", "README.md", "Foo.java")
	run("commit", "-m", "feat: add Foo")

	return dir
}

func TestChangedFiles(t *testing.T) {
	dir := initTestRepo(t)
	client := gitcli.New(dir)
	ctx := context.Background()

	files, err := client.ChangedFiles(ctx, model.ChangeRange{Base: "HEAD~1", Head: "HEAD"})
	gt.NoError(t, err)
	gt.Value(t, files).Equal([]string{"Foo.java", "README.md"})
}

func TestChangedFilesEmptyRange(t *testing.T) {
	dir := initTestRepo(t)
	client := gitcli.New(dir)

	files, err := client.ChangedFiles(context.Background(), model.ChangeRange{Base: "HEAD", Head: "HEAD"})
	gt.NoError(t, err)
	gt.Value(t, len(files)).Equal(0)
}

func TestDiff(t *testing.T) {
	dir := initTestRepo(t)
	client := gitcli.New(dir)

	diff, err := client.Diff(context.Background(), model.ChangeRange{Base: "HEAD~1", Head: "HEAD"})
	gt.NoError(t, err)
	gt.String(t, diff).Contains("Foo.java")
	gt.String(t, diff).Contains("class Foo {}")
}

func TestBadRevision(t *testing.T) {
	dir := initTestRepo(t)
	client := gitcli.New(dir)

	_, err := client.ChangedFiles(context.Background(), model.ChangeRange{Base: "no-such-ref", Head: "HEAD"})
	gt.Error(t, err)
}
