package answers

import (
	"sort"
	"strings"
)

// Kind identifies the type held by a Value.
type Kind int

const (
	// KindAbsent marks a key whose prompt was skipped or never answered.
	KindAbsent Kind = iota
	KindString
	KindBool
	// KindFlags holds the selected options of a multi-select prompt.
	KindFlags
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindFlags:
		return "flags"
	default:
		return "absent"
	}
}

// Value is a single answer. The zero Value is Absent.
type Value struct {
	kind  Kind
	str   string
	b     bool
	flags map[string]bool
}

// Absent returns the "not applicable" value.
func Absent() Value { return Value{} }

// String returns a string answer.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool returns a boolean answer.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Flags returns a multi-select answer with the given options selected.
func Flags(selected ...string) Value {
	m := make(map[string]bool, len(selected))
	for _, s := range selected {
		m[s] = true
	}
	return Value{kind: KindFlags, flags: m}
}

// FlagMap returns a multi-select answer from an option → selected map.
// Options mapped to false are dropped.
func FlagMap(in map[string]bool) Value {
	m := make(map[string]bool, len(in))
	for k, on := range in {
		if on {
			m[k] = true
		}
	}
	return Value{kind: KindFlags, flags: m}
}

// Kind reports the kind of answer held.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v is the absent value.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Str returns the string held, or "" for non-string values.
func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// BoolValue returns the boolean held, or false for non-bool values.
func (v Value) BoolValue() bool { return v.kind == KindBool && v.b }

// Has reports whether option is selected in a flags value.
func (v Value) Has(option string) bool {
	return v.kind == KindFlags && v.flags[option]
}

// Selected returns the selected options of a flags value in sorted order.
func (v Value) Selected() []string {
	if v.kind != KindFlags {
		return nil
	}
	out := make([]string, 0, len(v.flags))
	for k := range v.flags {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Truthy reports the truthiness of the value: a non-empty string, true, or a
// non-empty flag set. Absent is always false.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindString:
		return v.str != ""
	case KindBool:
		return v.b
	case KindFlags:
		return len(v.flags) > 0
	default:
		return false
	}
}

// Equal reports whether two values hold the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindBool:
		return v.b == o.b
	case KindFlags:
		if len(v.flags) != len(o.flags) {
			return false
		}
		for k := range v.flags {
			if !o.flags[k] {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Interface converts the value into plain Go data for template rendering:
// string, bool, map[string]bool for flags, or nil when absent.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		return v.b
	case KindFlags:
		m := make(map[string]bool, len(v.flags))
		for k := range v.flags {
			m[k] = true
		}
		return m
	default:
		return nil
	}
}

// GoString renders the value for debugging output.
func (v Value) GoString() string {
	switch v.kind {
	case KindString:
		return "'" + v.str + "'"
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindFlags:
		return "{" + strings.Join(v.Selected(), ",") + "}"
	default:
		return "<absent>"
	}
}
