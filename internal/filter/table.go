package filter

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/qscaffold/qscaffold/internal/answers"
)

// RuleSpec is the uncompiled form of a rule as it appears in configuration.
type RuleSpec struct {
	Pattern string `yaml:"path" json:"path"`
	When    string `yaml:"when" json:"when"`
}

// Rule is a compiled (pattern, expression) pair.
type Rule struct {
	Pattern string
	Expr    Expr
	Source  string
}

// Matches reports whether the rule applies to path. A path equal to the
// pattern text matches, so a rule can be queried by its own key.
func (r Rule) Matches(path string) bool {
	if path == r.Pattern {
		return true
	}
	ok, err := doublestar.Match(r.Pattern, path)
	return err == nil && ok
}

// Table is an immutable, ordered rule set.
type Table struct {
	rules []Rule
}

// Compile parses every rule and returns a Table in declaration order. All
// invalid rules are reported together in a *ConfigError.
func Compile(specs []RuleSpec) (*Table, error) {
	var bad []*RuleError
	rules := make([]Rule, 0, len(specs))
	for _, s := range specs {
		if !doublestar.ValidatePattern(s.Pattern) {
			bad = append(bad, &RuleError{Pattern: s.Pattern, Err: fmt.Errorf("invalid path pattern")})
			continue
		}
		expr, err := Parse(s.When)
		if err != nil {
			bad = append(bad, &RuleError{Pattern: s.Pattern, Err: err})
			continue
		}
		rules = append(rules, Rule{Pattern: s.Pattern, Expr: expr, Source: s.When})
	}
	if len(bad) > 0 {
		return nil, &ConfigError{Rules: bad}
	}
	return &Table{rules: rules}, nil
}

// MustCompile is like Compile but panics on error. Use it for rule sets that
// ship with the binary, where a bad rule is a build defect.
func MustCompile(specs []RuleSpec) *Table {
	t, err := Compile(specs)
	if err != nil {
		panic(err)
	}
	return t
}

// Rules returns a copy of the compiled rules.
func (t *Table) Rules() []Rule {
	if t == nil {
		return nil
	}
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Lookup returns the first rule, in declaration order, that matches path.
func (t *Table) Lookup(path string) (Rule, bool) {
	if t == nil {
		return Rule{}, false
	}
	for _, r := range t.rules {
		if r.Matches(path) {
			return r, true
		}
	}
	return Rule{}, false
}

// ShouldInclude reports whether path belongs in the generated project for the
// given answers. Paths no rule matches are always included.
func (t *Table) ShouldInclude(path string, a answers.Set) bool {
	r, ok := t.Lookup(path)
	if !ok {
		return true
	}
	return r.Expr.Eval(a)
}

// Select returns the subset of paths that should be included, keeping their
// order.
func (t *Table) Select(paths []string, a answers.Set) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if t.ShouldInclude(p, a) {
			out = append(out, p)
		}
	}
	return out
}

// Decision explains the inclusion verdict for one path.
type Decision struct {
	Path     string
	Included bool
	// Rule is the deciding rule; it is the zero Rule when Matched is false.
	Rule    Rule
	Matched bool
}

// Explain returns the decision for path together with the rule that made it.
func (t *Table) Explain(path string, a answers.Set) Decision {
	r, ok := t.Lookup(path)
	if !ok {
		return Decision{Path: path, Included: true}
	}
	return Decision{Path: path, Included: r.Expr.Eval(a), Rule: r, Matched: true}
}
