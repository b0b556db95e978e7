package answers

import (
	"fmt"
	"sort"
	"strings"
)

// Set maps prompt keys to answers. It is immutable once built.
type Set struct {
	values map[string]Value
}

// New builds a Set from the given values. The map is copied.
func New(values map[string]Value) Set {
	m := make(map[string]Value, len(values))
	for k, v := range values {
		if v.kind == KindFlags {
			v = FlagMap(v.flags)
		}
		m[k] = v
	}
	return Set{values: m}
}

// Empty returns a Set with no answers.
func Empty() Set { return Set{} }

// FromMap converts decoded YAML/JSON data into a Set. Strings and booleans map
// directly; a list of strings or a map of booleans becomes a flag set; nil
// becomes Absent. Numbers are kept as their decimal string form.
func FromMap(raw map[string]interface{}) (Set, error) {
	values := make(map[string]Value, len(raw))
	for k, v := range raw {
		val, err := FromAny(v)
		if err != nil {
			return Set{}, fmt.Errorf("answer %q: %w", k, err)
		}
		values[k] = val
	}
	return Set{values: values}, nil
}

// FromAny converts a single decoded value into a Value.
func FromAny(v interface{}) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Absent(), nil
	case Value:
		return val, nil
	case string:
		return String(val), nil
	case bool:
		return Bool(val), nil
	case int, int64, float64:
		return String(fmt.Sprint(val)), nil
	case []string:
		return Flags(val...), nil
	case []interface{}:
		opts := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return Value{}, fmt.Errorf("multi-select entries must be strings, got %T", item)
			}
			opts = append(opts, s)
		}
		return Flags(opts...), nil
	case map[string]bool:
		return FlagMap(val), nil
	case map[string]interface{}:
		m := make(map[string]bool, len(val))
		for opt, on := range val {
			b, ok := on.(bool)
			if !ok {
				return Value{}, fmt.Errorf("option %q must be a boolean, got %T", opt, on)
			}
			m[opt] = b
		}
		return FlagMap(m), nil
	default:
		return Value{}, fmt.Errorf("unsupported answer type %T", v)
	}
}

// Get returns the answer for key and whether it was present.
func (s Set) Get(key string) (Value, bool) {
	v, ok := s.values[key]
	if !ok || v.IsAbsent() {
		return Absent(), false
	}
	return v, true
}

// Lookup resolves a key path. A single segment returns the answer itself. Two
// segments address an option of a flag set and resolve to Bool(selected).
// Anything that cannot be resolved is Absent.
func (s Set) Lookup(path ...string) Value {
	if len(path) == 0 {
		return Absent()
	}
	v, ok := s.Get(path[0])
	if !ok {
		return Absent()
	}
	if len(path) == 1 {
		return v
	}
	if len(path) == 2 && v.kind == KindFlags {
		return Bool(v.flags[path[1]])
	}
	return Absent()
}

// Keys returns the answered keys in sorted order.
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k, v := range s.values {
		if !v.IsAbsent() {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of answered keys.
func (s Set) Len() int { return len(s.Keys()) }

// With returns a new Set with key set to v. The receiver is left unchanged.
func (s Set) With(key string, v Value) Set {
	m := make(map[string]Value, len(s.values)+1)
	for k, old := range s.values {
		m[k] = old
	}
	m[key] = v
	return New(m)
}

// Data returns the answers as plain Go data for template rendering. Absent
// keys are omitted, so templates see them as missing.
func (s Set) Data() map[string]interface{} {
	out := make(map[string]interface{}, len(s.values))
	for k, v := range s.values {
		if v.IsAbsent() {
			continue
		}
		out[k] = v.Interface()
	}
	return out
}

// String renders the set as "key=value" pairs in key order.
func (s Set) String() string {
	var parts []string
	for _, k := range s.Keys() {
		parts = append(parts, k+"="+s.values[k].GoString())
	}
	return "{" + strings.Join(parts, " ") + "}"
}
