package config

import "github.com/urfave/cli/v3"

// Project holds the file paths a run operates on
type Project struct {
	RepoDir    string
	BuildFile  string
	StatusFile string
	RulesFile  string
}

// Flags returns CLI flags for project configuration
func (c *Project) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repo-dir",
			Usage:       "Path to the git repository",
			Value:       ".",
			Destination: &c.RepoDir,
			Sources:     cli.EnvVars("BUMPER_REPO_DIR"),
		},
		&cli.StringFlag{
			Name:        "build-file",
			Usage:       "Build file containing the version declaration, relative to repo-dir",
			Value:       "build.gradle",
			Destination: &c.BuildFile,
			Sources:     cli.EnvVars("BUMPER_BUILD_FILE"),
		},
		&cli.StringFlag{
			Name:        "status-file",
			Usage:       "Status record output path, relative to repo-dir",
			Value:       "version.env",
			Destination: &c.StatusFile,
			Sources:     cli.EnvVars("BUMPER_STATUS_FILE"),
		},
		&cli.StringFlag{
			Name:        "rules",
			Usage:       "Optional TOML file overriding the built-in classification rules",
			Destination: &c.RulesFile,
			Sources:     cli.EnvVars("BUMPER_RULES"),
		},
	}
}
