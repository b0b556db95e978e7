package answers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Truthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"absent", Absent(), false},
		{"empty string", String(""), false},
		{"string", String("scss"), true},
		{"false", Bool(false), false},
		{"true", Bool(true), true},
		{"empty flags", Flags(), false},
		{"flags", Flags("lint"), true},
		{"flag map all off", FlagMap(map[string]bool{"lint": false}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Truthy())
		})
	}
}

func TestSet_Lookup(t *testing.T) {
	s := New(map[string]Value{
		"css":    String("scss"),
		"preset": FlagMap(map[string]bool{"lint": true, "typescript": false}),
	})

	assert.Equal(t, "scss", s.Lookup("css").Str())
	assert.True(t, s.Lookup("preset", "lint").BoolValue())
	assert.Equal(t, KindBool, s.Lookup("preset", "typescript").Kind())
	assert.False(t, s.Lookup("preset", "typescript").BoolValue())

	assert.True(t, s.Lookup("missing").IsAbsent())
	assert.True(t, s.Lookup("missing", "lint").IsAbsent())
	assert.True(t, s.Lookup("css", "scss").IsAbsent(), "dotted path into a string is absent")
	assert.True(t, s.Lookup().IsAbsent())
	assert.True(t, s.Lookup("preset", "lint", "extra").IsAbsent())
}

func TestSet_Immutable(t *testing.T) {
	in := map[string]Value{"css": String("sass")}
	s := New(in)
	in["css"] = String("stylus")
	assert.Equal(t, "sass", s.Lookup("css").Str())

	s2 := s.With("css", String("scss"))
	assert.Equal(t, "sass", s.Lookup("css").Str())
	assert.Equal(t, "scss", s2.Lookup("css").Str())

	data := s.Data()
	data["css"] = "none"
	assert.Equal(t, "sass", s.Lookup("css").Str())
}

func TestFromMap(t *testing.T) {
	s, err := FromMap(map[string]interface{}{
		"name":        "demo",
		"autoInstall": false,
		"preset":      []interface{}{"lint", "vuex"},
		"features":    map[string]interface{}{"ie": true, "axios": false},
		"skipped":     nil,
		"port":        8080,
	})
	require.NoError(t, err)

	assert.Equal(t, "demo", s.Lookup("name").Str())
	assert.Equal(t, KindBool, s.Lookup("autoInstall").Kind())
	assert.Equal(t, []string{"lint", "vuex"}, s.Lookup("preset").Selected())
	assert.True(t, s.Lookup("features", "ie").BoolValue())
	assert.False(t, s.Lookup("features", "axios").BoolValue())
	assert.True(t, s.Lookup("skipped").IsAbsent())
	assert.Equal(t, "8080", s.Lookup("port").Str())
	assert.Equal(t, []string{"autoInstall", "features", "name", "port", "preset"}, s.Keys())
}

func TestFromMap_Invalid(t *testing.T) {
	_, err := FromMap(map[string]interface{}{"preset": []interface{}{1}})
	assert.Error(t, err)

	_, err = FromMap(map[string]interface{}{"preset": map[string]interface{}{"lint": "yes"}})
	assert.Error(t, err)
}

func TestSet_String(t *testing.T) {
	s := New(map[string]Value{
		"css":    String("scss"),
		"preset": Flags("vuex", "lint"),
		"ok":     Bool(true),
	})
	assert.Equal(t, "{css='scss' ok=true preset={lint,vuex}}", s.String())
}
