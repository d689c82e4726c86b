package gitcli

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/wako-dev/bumper/pkg/domain/interfaces"
	"github.com/wako-dev/bumper/pkg/domain/model"
)

type client struct {
	repoDir string
}

// New creates a git client bound to a repository directory
func New(repoDir string) interfaces.GitClient {
	return &client{repoDir: repoDir}
}

// ChangedFiles lists file paths changed between the base and head refs
func (c *client) ChangedFiles(ctx context.Context, rng model.ChangeRange) ([]string, error) {
	out, err := c.run(ctx, "diff", "--name-only", rng.Base, rng.Head)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, line := range strings.Split(string(out), "\n") {
		if path := strings.TrimSpace(line); path != "" {
			files = append(files, path)
		}
	}
	return files, nil
}

// Diff returns the raw patch text between the base and head refs
func (c *client) Diff(ctx context.Context, rng model.ChangeRange) (string, error) {
	out, err := c.run(ctx, "diff", rng.Base, rng.Head)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (c *client) run(ctx context.Context, args ...string) ([]byte, error) {
	gitArgs := append([]string{"-C", c.repoDir}, args...)
	cmd := exec.CommandContext(ctx, "git", gitArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, goerr.Wrap(err, "git command failed",
			goerr.V("args", args),
			goerr.V("stderr", strings.TrimSpace(stderr.String())),
		)
	}
	return stdout.Bytes(), nil
}
