package cli

import (
	"context"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/wako-dev/bumper/pkg/cli/config"
	"github.com/wako-dev/bumper/pkg/infra/buildfile"
	"github.com/wako-dev/bumper/pkg/infra/gitcli"
	"github.com/wako-dev/bumper/pkg/infra/statusfile"
	"github.com/wako-dev/bumper/pkg/usecase"
)

func cmdBump() *cli.Command {
	var (
		eventCfg   config.Event
		projectCfg config.Project
		dryRun     bool
	)

	flags := append(eventCfg.Flags(), projectCfg.Flags()...)
	flags = append(flags, &cli.BoolFlag{
		Name:        "dry-run",
		Usage:       "Classify and compute the next version without writing any file",
		Destination: &dryRun,
		Sources:     cli.EnvVars("BUMPER_DRY_RUN"),
	})

	return &cli.Command{
		Name:    "bump",
		Aliases: []string{"b"},
		Usage:   "Classify changes and bump the build file version",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			rules := usecase.DefaultRules()
			if projectCfg.RulesFile != "" {
				var err error
				rules, err = usecase.LoadRules(projectCfg.RulesFile)
				if err != nil {
					return goerr.Wrap(err, "failed to load classification rules")
				}
				logger.Info("Loaded classification rules", "path", projectCfg.RulesFile)
			}

			classifier, err := usecase.NewClassifier(rules)
			if err != nil {
				return goerr.Wrap(err, "failed to compile classification rules")
			}

			input, err := eventCfg.Input(dryRun)
			if err != nil {
				return err
			}

			statusPath := filepath.Join(projectCfg.RepoDir, projectCfg.StatusFile)
			uc := usecase.NewBump(
				gitcli.New(projectCfg.RepoDir),
				buildfile.New(filepath.Join(projectCfg.RepoDir, projectCfg.BuildFile)),
				statusfile.New(statusPath),
				classifier,
			)

			info, err := uc.Run(ctx, input)
			if err != nil {
				return err
			}

			if info == nil {
				color.Yellow("No changes detected, version left untouched")
				return nil
			}

			if input.DryRun {
				color.Cyan("[dry-run] %s bump: %s -> %s", info.BumpKind, info.OldVersion, info.NewVersion)
				return nil
			}

			color.Green("%s bump: %s -> %s", info.BumpKind, info.OldVersion, info.NewVersion)
			color.White("Status record written to %s", statusPath)
			return nil
		},
	}
}
