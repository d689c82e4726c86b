package usecase

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/wako-dev/bumper/pkg/domain/model"
)

// rule is one row of the classification cascade: a bump kind selected when
// any changed path matches the tier and any marker appears in the diff text.
type rule struct {
	kind    model.BumpKind
	paths   []*regexp.Regexp
	markers []*regexp.Regexp
}

// Classifier decides the bump kind for a change set
type Classifier struct {
	cascade []rule
}

// NewClassifier compiles the rule set into an ordered cascade
func NewClassifier(rules *RuleSet) (*Classifier, error) {
	source, err := compilePatterns(rules.SourcePaths)
	if err != nil {
		return nil, err
	}
	config, err := compilePatterns(rules.ConfigPaths)
	if err != nil {
		return nil, err
	}
	docs, err := compilePatterns(rules.DocPaths)
	if err != nil {
		return nil, err
	}

	breaking, err := compilePatterns(rules.BreakingMarkers)
	if err != nil {
		return nil, err
	}
	feature, err := compilePatterns(rules.FeatureMarkers)
	if err != nil {
		return nil, err
	}
	maintenance, err := compilePatterns(rules.MaintenanceMarkers)
	if err != nil {
		return nil, err
	}

	extended := append(append([]*regexp.Regexp{}, source...), config...)
	broad := append(append([]*regexp.Regexp{}, extended...), docs...)

	return &Classifier{
		cascade: []rule{
			{kind: model.BumpMajor, paths: source, markers: breaking},
			{kind: model.BumpMinor, paths: extended, markers: feature},
			{kind: model.BumpPatch, paths: broad, markers: maintenance},
		},
	}, nil
}

// Classify returns the bump kind for a change set. The cascade is evaluated
// top-down and the first matching rule wins; PATCH is the unconditional
// default when no rule matches. Pure function of its input.
func (c *Classifier) Classify(cs *model.ChangeSet) model.BumpKind {
	for _, r := range c.cascade {
		if matchAnyPath(r.paths, cs.Files) && matchAnyMarker(r.markers, cs.Diff) {
			return r.kind
		}
	}
	return model.BumpPatch
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid classification pattern", goerr.V("pattern", p))
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

func matchAnyPath(patterns []*regexp.Regexp, files []string) bool {
	for _, f := range files {
		for _, re := range patterns {
			if re.MatchString(f) {
				return true
			}
		}
	}
	return false
}

func matchAnyMarker(markers []*regexp.Regexp, diff string) bool {
	for _, re := range markers {
		if re.MatchString(diff) {
			return true
		}
	}
	return false
}
