package prompts

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/qscaffold/qscaffold/internal/answers"
	"github.com/qscaffold/qscaffold/internal/blueprint"
)

// Asker produces the answer to a single prompt. so carries the answers
// collected before p.
type Asker interface {
	Ask(p blueprint.Prompt, so answers.Set) (answers.Value, error)
}

// AskerFunc adapts a function to the Asker interface.
type AskerFunc func(p blueprint.Prompt, so answers.Set) (answers.Value, error)

// Ask calls f.
func (f AskerFunc) Ask(p blueprint.Prompt, so answers.Set) (answers.Value, error) {
	return f(p, so)
}

// Collect walks the prompts in catalog order. A prompt whose when condition is
// false against the answers so far is skipped and stays Absent.
func Collect(bp *blueprint.Blueprint, asker Asker) (answers.Set, error) {
	set := answers.Empty()
	for _, p := range bp.Prompts {
		if !p.Applies(set) {
			continue
		}
		v, err := asker.Ask(p, set)
		if err != nil {
			return answers.Set{}, fmt.Errorf("prompt %s: %w", p.Key, err)
		}
		set = set.With(p.Key, v)
	}
	return set, nil
}

// AnswerError reports an override that does not fit its prompt.
type AnswerError struct {
	Key string
	Msg string
}

func (e *AnswerError) Error() string {
	return fmt.Sprintf("answer %q: %s", e.Key, e.Msg)
}

// ErrRequired is wrapped by errors for required prompts left empty.
var ErrRequired = errors.New("a value is required")

// Defaults answers every prompt from its default, with overrides taking
// precedence. Use NewDefaults to check the overrides against the catalog.
type Defaults struct {
	Overrides answers.Set
}

// NewDefaults returns a non-interactive asker. Keys in overrides that name no
// prompt of bp are rejected.
func NewDefaults(bp *blueprint.Blueprint, overrides answers.Set) (*Defaults, error) {
	var unknown []string
	for _, k := range overrides.Keys() {
		if _, ok := bp.Prompt(k); !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown answer keys: %s", strings.Join(unknown, ", "))
	}
	return &Defaults{Overrides: overrides}, nil
}

// Ask returns the override for p when there is one, otherwise its default.
func (d *Defaults) Ask(p blueprint.Prompt, _ answers.Set) (answers.Value, error) {
	v, ok := d.Overrides.Get(p.Key)
	if !ok {
		v = p.DefaultAnswer()
	}
	if err := Check(p, v); err != nil {
		return answers.Value{}, err
	}
	return v, nil
}

// Check verifies that v is an acceptable answer for p.
func Check(p blueprint.Prompt, v answers.Value) error {
	switch p.Type {
	case blueprint.TypeString:
		if !v.IsAbsent() && v.Kind() != answers.KindString {
			return &AnswerError{Key: p.Key, Msg: fmt.Sprintf("expected a string, got %s", v.Kind())}
		}
		if p.Required && v.Str() == "" {
			return fmt.Errorf("%s: %w", p.Key, ErrRequired)
		}
	case blueprint.TypeList:
		if v.IsAbsent() {
			if p.Required {
				return fmt.Errorf("%s: %w", p.Key, ErrRequired)
			}
			return nil
		}
		if _, ok := p.ChoiceFor(v); !ok {
			return &AnswerError{Key: p.Key, Msg: fmt.Sprintf("%s is not one of %s", v.GoString(), choiceList(p))}
		}
	case blueprint.TypeCheckbox:
		if v.IsAbsent() {
			return nil
		}
		if v.Kind() != answers.KindFlags {
			return &AnswerError{Key: p.Key, Msg: fmt.Sprintf("expected a list of options, got %s", v.Kind())}
		}
		known := make(map[string]bool, len(p.Choices))
		for _, c := range p.Choices {
			known[c.OptionName()] = true
		}
		for _, opt := range v.Selected() {
			if !known[opt] {
				return &AnswerError{Key: p.Key, Msg: fmt.Sprintf("unknown option %q, expected one of %s", opt, choiceList(p))}
			}
		}
	}
	return nil
}

func choiceList(p blueprint.Prompt) string {
	vals := make([]string, len(p.Choices))
	for i, c := range p.Choices {
		vals[i] = c.Answer().GoString()
	}
	return strings.Join(vals, ", ")
}

// LoadAnswersFile decodes a YAML (or JSON) answers file.
func LoadAnswersFile(path string) (answers.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return answers.Set{}, fmt.Errorf("reading answers file: %w", err)
	}
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return answers.Set{}, fmt.Errorf("parsing answers file %s: %w", path, err)
	}
	set, err := answers.FromMap(raw)
	if err != nil {
		return answers.Set{}, fmt.Errorf("parsing answers file %s: %w", path, err)
	}
	return set, nil
}
