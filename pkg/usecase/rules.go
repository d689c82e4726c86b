package usecase

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// RuleSet holds the path patterns and diff markers driving classification.
// Path tiers are cumulative: the MINOR check also accepts source paths, the
// PATCH check also accepts source and config paths.
type RuleSet struct {
	// SourcePaths match build descriptors and language sources (MAJOR tier)
	SourcePaths []string `toml:"source_paths"`
	// ConfigPaths extend the source tier with config formats (MINOR tier)
	ConfigPaths []string `toml:"config_paths"`
	// DocPaths extend the config tier with docs and text files (PATCH tier)
	DocPaths []string `toml:"doc_paths"`

	// BreakingMarkers flag incompatible changes in diff text
	BreakingMarkers []string `toml:"breaking_markers"`
	// FeatureMarkers flag new functionality in diff text
	FeatureMarkers []string `toml:"feature_markers"`
	// MaintenanceMarkers flag fixes and chores in diff text
	MaintenanceMarkers []string `toml:"maintenance_markers"`
}

// DefaultRules returns the built-in rule set used when no rules file is given
func DefaultRules() *RuleSet {
	return &RuleSet{
		SourcePaths: []string{
			`(^|/)build\.gradle(\.kts)?$`,
			`(^|/)settings\.gradle(\.kts)?$`,
			`\.java$`,
			`\.kts?$`,
			`\.groovy$`,
			`\.gradle$`,
		},
		ConfigPaths: []string{
			`\.properties$`,
			`\.ya?ml$`,
			`\.xml$`,
			`\.json$`,
			`\.toml$`,
		},
		DocPaths: []string{
			`\.md$`,
			`\.txt$`,
			`\.adoc$`,
			`(^|/)docs/`,
		},
		BreakingMarkers: []string{
			`(?i)breaking[ -]change`,
			`(?i)\b[a-z]+(\([^)]*\))?!:`,
		},
		FeatureMarkers: []string{
			`(?i)\b(feat|feature|new|add):`,
		},
		MaintenanceMarkers: []string{
			`(?i)\b(fix|bugfix|patch|docs|style|refactor|perf|test|chore):`,
		},
	}
}

// LoadRules reads a TOML rules file. Fields present in the file replace the
// corresponding built-in list; omitted fields keep their defaults.
func LoadRules(path string) (*RuleSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read rules file", goerr.V("path", path))
	}

	rules := DefaultRules()
	if err := toml.Unmarshal(raw, rules); err != nil {
		return nil, goerr.Wrap(err, "failed to parse rules file", goerr.V("path", path))
	}
	return rules, nil
}
