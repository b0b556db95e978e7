package proc

import (
	"context"
	"fmt"
	"strings"
)

// Call records one invocation made through a Recorder.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// String renders the call as a command line.
func (c Call) String() string { return commandLine(c.Name, c.Args) }

// Recorder is a Runner that records calls instead of executing them. Err is
// returned from Run, Outputs maps a command line to the stdout Output
// returns, and Missing lists binaries LookPath reports as absent.
type Recorder struct {
	Calls   []Call
	Err     error
	Outputs map[string]string
	Missing []string
	// OnRun, when set, runs after a call is recorded; tests use it to
	// simulate the side effects of the real tool.
	OnRun func(c Call) error
}

// Run implements Runner.
func (r *Recorder) Run(_ context.Context, dir, name string, args ...string) error {
	c := Call{Dir: dir, Name: name, Args: append([]string(nil), args...)}
	r.Calls = append(r.Calls, c)
	if r.Err != nil {
		return r.Err
	}
	if r.OnRun != nil {
		return r.OnRun(c)
	}
	return nil
}

// Output implements Runner.
func (r *Recorder) Output(_ context.Context, dir, name string, args ...string) (string, error) {
	c := Call{Dir: dir, Name: name, Args: append([]string(nil), args...)}
	r.Calls = append(r.Calls, c)
	if r.Err != nil {
		return "", r.Err
	}
	out, ok := r.Outputs[c.String()]
	if !ok {
		return "", fmt.Errorf("no recorded output for %q", c.String())
	}
	return strings.TrimSpace(out), nil
}

// LookPath implements Runner.
func (r *Recorder) LookPath(name string) (string, error) {
	for _, m := range r.Missing {
		if m == name {
			return "", fmt.Errorf("%s: executable file not found in $PATH", name)
		}
	}
	return "/usr/bin/" + name, nil
}
