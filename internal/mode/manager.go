package mode

import "context"

// Status is the presence of one mode.
type Status struct {
	Name  string
	State State
}

// Manager drives mode transitions for one app.
type Manager struct {
	env Env
}

// NewManager returns a Manager for the app described by env.
func NewManager(env Env) *Manager {
	return &Manager{env: env}
}

// Add adds the named mode.
func (m *Manager) Add(ctx context.Context, name string) error {
	i, err := Lookup(name, m.env)
	if err != nil {
		return err
	}
	return i.Add(ctx)
}

// Remove removes the named mode.
func (m *Manager) Remove(name string) error {
	i, err := Lookup(name, m.env)
	if err != nil {
		return err
	}
	return i.Remove()
}

// Status reports every supported mode's presence, read from disk now.
func (m *Manager) Status() []Status {
	var out []Status
	for _, name := range Names() {
		i, err := Lookup(name, m.env)
		if err != nil {
			continue
		}
		out = append(out, Status{Name: name, State: StateOf(i)})
	}
	return out
}
