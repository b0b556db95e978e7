package blueprint

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"

	"github.com/qscaffold/qscaffold/internal/answers"
	"github.com/qscaffold/qscaffold/internal/filter"
)

//go:embed app.yaml
var defaultBlueprint []byte

var (
	defaultOnce sync.Once
	defaultBP   *Blueprint
)

// Default returns the embedded app blueprint. It is parsed once; an invalid
// embedded blueprint is a build defect and panics.
func Default() *Blueprint {
	defaultOnce.Do(func() {
		bp, err := Parse(defaultBlueprint)
		if err != nil {
			panic(fmt.Sprintf("embedded blueprint: %v", err))
		}
		defaultBP = bp
	})
	return defaultBP
}

// DefaultSource returns the raw embedded blueprint document.
func DefaultSource() []byte {
	out := make([]byte, len(defaultBlueprint))
	copy(out, defaultBlueprint)
	return out
}

// LoadFile reads, validates and compiles a blueprint file.
func LoadFile(path string) (*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading blueprint %s: %w", path, err)
	}
	bp, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading blueprint %s: %w", path, err)
	}
	return bp, nil
}

// Parse validates data against the blueprint schema, decodes it and compiles
// every filter rule and prompt condition. Schema problems are returned as a
// *ValidationError, bad expressions as a *filter.ConfigError.
func Parse(data []byte) (*Blueprint, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &ValidationError{Issues: result.Issues}
	}

	var bp Blueprint
	if err := yaml.Unmarshal(data, &bp); err != nil {
		return nil, fmt.Errorf("parsing blueprint: %w", err)
	}

	if issues := checkPrompts(bp.Prompts); len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}

	rules, err := filter.Compile(bp.Filters)
	if err != nil {
		return nil, err
	}
	bp.rules = rules

	var bad []*filter.RuleError
	for i := range bp.Prompts {
		p := &bp.Prompts[i]
		if p.When == "" {
			continue
		}
		cond, err := filter.Parse(p.When)
		if err != nil {
			bad = append(bad, &filter.RuleError{Pattern: "prompt " + p.Key, Err: err})
			continue
		}
		p.cond = cond
	}
	if len(bad) > 0 {
		return nil, &filter.ConfigError{Rules: bad}
	}

	return &bp, nil
}

// checkPrompts applies the rules the schema cannot express: unique keys, and
// list defaults that name one of the choices.
func checkPrompts(prompts []Prompt) []ValidationIssue {
	var issues []ValidationIssue
	seen := make(map[string]bool)
	for i, p := range prompts {
		path := fmt.Sprintf("/prompts/%d", i)
		if seen[p.Key] {
			issues = append(issues, ValidationIssue{Path: path + "/key", Keyword: "unique", Message: fmt.Sprintf("duplicate prompt key %q", p.Key)})
		}
		seen[p.Key] = true

		if p.Type == TypeList && p.Default != nil {
			def, err := answers.FromAny(p.Default)
			if _, ok := p.ChoiceFor(def); err != nil || !ok {
				issues = append(issues, ValidationIssue{Path: path + "/default", Keyword: "enum", Message: fmt.Sprintf("default %v is not one of the choices of %q", p.Default, p.Key)})
			}
		}
		if p.Type == TypeCheckbox {
			for j, c := range p.Choices {
				if c.OptionName() == "" || strings.Contains(c.OptionName(), ".") {
					issues = append(issues, ValidationIssue{Path: fmt.Sprintf("%s/choices/%d/value", path, j), Keyword: "type", Message: "checkbox choice values must be plain strings without dots"})
				}
			}
		}
	}
	return issues
}
