package filter

import (
	"fmt"
	"strings"
)

// SyntaxError reports a malformed expression.
type SyntaxError struct {
	Source string
	Pos    int // 1-based column in Source
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("column %d: %s in %q", e.Pos, e.Msg, e.Source)
}

// RuleError ties a syntax error to the rule pattern it belongs to.
type RuleError struct {
	Pattern string
	Err     error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %q: %v", e.Pattern, e.Err)
}

func (e *RuleError) Unwrap() error { return e.Err }

// ConfigError collects every invalid rule found while compiling a table.
type ConfigError struct {
	Rules []*RuleError
}

func (e *ConfigError) Error() string {
	msgs := make([]string, len(e.Rules))
	for i, r := range e.Rules {
		msgs[i] = r.Error()
	}
	return "invalid filter rules: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the individual rule errors to errors.Is/As.
func (e *ConfigError) Unwrap() []error {
	errs := make([]error, len(e.Rules))
	for i, r := range e.Rules {
		errs[i] = r
	}
	return errs
}
