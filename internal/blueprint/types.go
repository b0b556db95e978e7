package blueprint

import (
	"github.com/qscaffold/qscaffold/internal/answers"
	"github.com/qscaffold/qscaffold/internal/filter"
)

// Prompt types.
const (
	TypeString   = "string"
	TypeList     = "list"
	TypeCheckbox = "checkbox"
)

// Blueprint is a parsed and compiled generator description. It is not
// modified after Parse returns.
type Blueprint struct {
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Templates   string            `yaml:"templates" json:"templates"`
	Prompts     []Prompt          `yaml:"prompts" json:"prompts"`
	Filters     []filter.RuleSpec `yaml:"filters,omitempty" json:"filters,omitempty"`

	rules *filter.Table
}

// Prompt is one entry of the prompt catalog.
type Prompt struct {
	Key      string      `yaml:"key" json:"key"`
	Type     string      `yaml:"type" json:"type"`
	Message  string      `yaml:"message" json:"message"`
	Default  interface{} `yaml:"default,omitempty" json:"default,omitempty"`
	Required bool        `yaml:"required,omitempty" json:"required,omitempty"`
	When     string      `yaml:"when,omitempty" json:"when,omitempty"`
	Choices  []Choice    `yaml:"choices,omitempty" json:"choices,omitempty"`

	cond filter.Expr
}

// Choice is one option of a list or checkbox prompt.
type Choice struct {
	Name    string      `yaml:"name" json:"name"`
	Value   interface{} `yaml:"value" json:"value"`
	Short   string      `yaml:"short,omitempty" json:"short,omitempty"`
	Checked bool        `yaml:"checked,omitempty" json:"checked,omitempty"`
}

// Rules returns the compiled filter table.
func (b *Blueprint) Rules() *filter.Table { return b.rules }

// Prompt returns the prompt with the given key.
func (b *Blueprint) Prompt(key string) (Prompt, bool) {
	for _, p := range b.Prompts {
		if p.Key == key {
			return p, true
		}
	}
	return Prompt{}, false
}

// Applies reports whether the prompt should be asked given the answers
// collected so far. Prompts without a when condition always apply.
func (p Prompt) Applies(a answers.Set) bool {
	if p.cond == nil {
		return true
	}
	return p.cond.Eval(a)
}

// Label returns the short label of a choice, falling back to its name.
func (c Choice) Label() string {
	if c.Short != "" {
		return c.Short
	}
	return c.Name
}

// Answer converts the choice value into an answer value.
func (c Choice) Answer() answers.Value {
	v, err := answers.FromAny(c.Value)
	if err != nil {
		return answers.Absent()
	}
	return v
}

// OptionName returns the choice value as a flag name for checkbox prompts.
func (c Choice) OptionName() string {
	if s, ok := c.Value.(string); ok {
		return s
	}
	return ""
}

// DefaultAnswer returns the answer used when the prompt is not asked
// interactively: the default for string and list prompts, the checked
// options for checkbox prompts. Prompts with no default resolve Absent.
func (p Prompt) DefaultAnswer() answers.Value {
	switch p.Type {
	case TypeCheckbox:
		var opts []string
		for _, c := range p.Choices {
			if c.Checked {
				opts = append(opts, c.OptionName())
			}
		}
		return answers.Flags(opts...)
	case TypeList:
		if p.Default == nil {
			if len(p.Choices) > 0 {
				return p.Choices[0].Answer()
			}
			return answers.Absent()
		}
	}
	v, err := answers.FromAny(p.Default)
	if err != nil {
		return answers.Absent()
	}
	return v
}

// ChoiceFor returns the list choice whose value equals v.
func (p Prompt) ChoiceFor(v answers.Value) (Choice, bool) {
	for _, c := range p.Choices {
		if c.Answer().Equal(v) {
			return c, true
		}
	}
	return Choice{}, false
}
