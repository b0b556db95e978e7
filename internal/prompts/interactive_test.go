package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qscaffold/qscaffold/internal/answers"
	"github.com/qscaffold/qscaffold/internal/blueprint"
)

// Without running the form, each field reads back its initial value.
func TestBuildField_InitialValues(t *testing.T) {
	bp := blueprint.Default()
	tests := []struct {
		key  string
		want answers.Value
	}{
		{"css", answers.String("sass")},
		{"autoInstall", answers.String("yarn")},
		{"productName", answers.String("Quasar App")},
		{"author", answers.Absent()},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p, ok := bp.Prompt(tt.key)
			require.True(t, ok)
			field, read := buildField(p)
			require.NotNil(t, field)
			assert.True(t, tt.want.Equal(read()), "got %s, want %s", read().GoString(), tt.want.GoString())
		})
	}
}

func TestRequiredInput(t *testing.T) {
	p, _ := blueprint.Default().Prompt("name")
	validate := requiredInput(p)
	assert.Error(t, validate("  "))
	assert.NoError(t, validate("demo"))

	p, _ = blueprint.Default().Prompt("author")
	assert.NoError(t, requiredInput(p)(""))
}
