package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/wako-dev/bumper/pkg/domain/model"
)

// Event holds the CI event context for a run. Values default to the GitHub
// Actions environment but can be overridden explicitly, keeping the
// classification flow independent from ambient CI conventions.
type Event struct {
	Name    string
	BaseRef string
	HeadRef string
}

// Flags returns CLI flags for event configuration
func (c *Event) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "event",
			Usage:       "CI event kind (pull_request or push)",
			Value:       "push",
			Destination: &c.Name,
			Sources:     cli.EnvVars("BUMPER_EVENT", "GITHUB_EVENT_NAME"),
		},
		&cli.StringFlag{
			Name:        "base-ref",
			Usage:       "Base ref of the pull request",
			Destination: &c.BaseRef,
			Sources:     cli.EnvVars("BUMPER_BASE_REF", "GITHUB_BASE_REF"),
		},
		&cli.StringFlag{
			Name:        "head-ref",
			Usage:       "Head ref of the pull request",
			Destination: &c.HeadRef,
			Sources:     cli.EnvVars("BUMPER_HEAD_REF", "GITHUB_HEAD_REF"),
		},
	}
}

// Input converts the event configuration into a bump input. Any event other
// than pull_request is treated as a direct push comparing HEAD~1 to HEAD.
func (c *Event) Input(dryRun bool) (*model.BumpInput, error) {
	kind := model.EventPush
	if c.Name == string(model.EventPullRequest) {
		kind = model.EventPullRequest
		if c.BaseRef == "" || c.HeadRef == "" {
			return nil, goerr.New("pull_request event requires base and head refs",
				goerr.V("base_ref", c.BaseRef),
				goerr.V("head_ref", c.HeadRef),
			)
		}
	}

	return &model.BumpInput{
		Event:   kind,
		BaseRef: c.BaseRef,
		HeadRef: c.HeadRef,
		DryRun:  dryRun,
	}, nil
}
