package prompts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/qscaffold/qscaffold/internal/answers"
	"github.com/qscaffold/qscaffold/internal/blueprint"
)

// ErrAborted is returned when the user cancels a form.
var ErrAborted = errors.New("aborted")

// Interactive asks each prompt with a huh form. One form is run per prompt so
// that when conditions see the answers given so far.
type Interactive struct {
	// Accessible switches huh to its line-based accessible mode.
	Accessible bool
}

// Ask runs the form for p.
func (i *Interactive) Ask(p blueprint.Prompt, _ answers.Set) (answers.Value, error) {
	field, read := buildField(p)
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(theme()).
		WithShowHelp(false).
		WithAccessible(i.Accessible)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return answers.Value{}, ErrAborted
		}
		return answers.Value{}, err
	}
	return read(), nil
}

// buildField returns the huh field for p and a function reading its result.
func buildField(p blueprint.Prompt) (huh.Field, func() answers.Value) {
	switch p.Type {
	case blueprint.TypeList:
		idx := 0
		def := p.DefaultAnswer()
		opts := make([]huh.Option[int], len(p.Choices))
		for n, c := range p.Choices {
			opts[n] = huh.NewOption(c.Name, n)
			if c.Answer().Equal(def) {
				idx = n
			}
		}
		sel := huh.NewSelect[int]().
			Title(p.Message).
			Options(opts...).
			Value(&idx)
		return sel, func() answers.Value { return p.Choices[idx].Answer() }

	case blueprint.TypeCheckbox:
		var selected []string
		opts := make([]huh.Option[string], len(p.Choices))
		for n, c := range p.Choices {
			opts[n] = huh.NewOption(c.Name, c.OptionName()).Selected(c.Checked)
		}
		ms := huh.NewMultiSelect[string]().
			Title(p.Message).
			Options(opts...).
			Value(&selected)
		return ms, func() answers.Value { return answers.Flags(selected...) }

	default:
		value := p.DefaultAnswer().Str()
		in := huh.NewInput().
			Title(p.Message).
			Placeholder(value).
			Value(&value).
			Validate(requiredInput(p))
		return in, func() answers.Value {
			v := strings.TrimSpace(value)
			if v == "" {
				return answers.Absent()
			}
			return answers.String(v)
		}
	}
}

func requiredInput(p blueprint.Prompt) func(string) error {
	return func(s string) error {
		if p.Required && strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", p.Key)
		}
		return nil
	}
}
