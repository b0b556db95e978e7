package mode

import (
	"context"
	"fmt"
)

// State is the derived presence of an integration.
type State int

const (
	Absent State = iota
	Present
)

func (s State) String() string {
	if s == Present {
		return "present"
	}
	return "absent"
}

// Integration is an add/remove-able platform integration.
type Integration interface {
	// Name is the identifier used on the command line (e.g., "cordova").
	Name() string
	// IsPresent re-derives presence from the filesystem.
	IsPresent() bool
	// Add creates the integration. It warns and returns nil when already present.
	Add(ctx context.Context) error
	// Remove deletes the integration. It warns and returns nil when absent.
	Remove() error
}

// StateOf returns the current state of i.
func StateOf(i Integration) State {
	if i.IsPresent() {
		return Present
	}
	return Absent
}

// ToolError reports a failed external tool invocation during a transition.
type ToolError struct {
	Mode string
	Step string
	Err  error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s mode: %s: %v", e.Mode, e.Step, e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }
