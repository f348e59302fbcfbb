// Package overlay tracks per-item completion and exclusion, keyed by the
// identity keys the zone merge produces.
package overlay

import "sort"

// State is the effective state of a single item.
type State int

const (
	// Open items are active and not yet done.
	Open State = iota
	// Done items are active and completed.
	Done
	// Excluded items are hidden from active views whatever their completion.
	Excluded
)

func (s State) String() string {
	switch s {
	case Done:
		return "done"
	case Excluded:
		return "excluded"
	default:
		return "open"
	}
}

// Overlay holds two independent sparse maps. Absent keys read as false. The
// maps are the persisted shape; State gives the combined view.
type Overlay struct {
	Completed map[string]bool `json:"completed"`
	Excluded  map[string]bool `json:"excluded"`
}

// New returns an empty overlay.
func New() *Overlay {
	return &Overlay{
		Completed: make(map[string]bool),
		Excluded:  make(map[string]bool),
	}
}

func (o *Overlay) ensure() {
	if o.Completed == nil {
		o.Completed = make(map[string]bool)
	}
	if o.Excluded == nil {
		o.Excluded = make(map[string]bool)
	}
}

// IsCompleted reports the completion flag for key.
func (o *Overlay) IsCompleted(key string) bool {
	return o != nil && o.Completed[key]
}

// IsExcluded reports the exclusion flag for key.
func (o *Overlay) IsExcluded(key string) bool {
	return o != nil && o.Excluded[key]
}

// State returns the combined state of key.
func (o *Overlay) State(key string) State {
	switch {
	case o.IsExcluded(key):
		return Excluded
	case o.IsCompleted(key):
		return Done
	default:
		return Open
	}
}

// ToggleCompleted flips completion for key and reports whether anything
// changed. Excluded items cannot be toggled; the call is a no-op.
func (o *Overlay) ToggleCompleted(key string) bool {
	if o.IsExcluded(key) {
		return false
	}
	o.ensure()
	set(o.Completed, key, !o.Completed[key])
	return true
}

// ToggleExcluded flips exclusion for key. Completion is left as it was.
func (o *Overlay) ToggleExcluded(key string) bool {
	o.ensure()
	set(o.Excluded, key, !o.Excluded[key])
	return true
}

func set(m map[string]bool, key string, v bool) {
	if v {
		m[key] = true
		return
	}
	delete(m, key)
}

// Clone returns a deep copy.
func (o *Overlay) Clone() *Overlay {
	c := New()
	if o == nil {
		return c
	}
	for k, v := range o.Completed {
		if v {
			c.Completed[k] = true
		}
	}
	for k, v := range o.Excluded {
		if v {
			c.Excluded[k] = true
		}
	}
	return c
}

// Rekey returns a copy in which every key accepted by move is renamed to the
// key it returns. Keys move rejects are dropped.
func (o *Overlay) Rekey(move func(key string) (string, bool)) *Overlay {
	c := New()
	if o == nil {
		return c
	}
	for k, v := range o.Completed {
		if nk, ok := move(k); ok && v {
			c.Completed[nk] = true
		}
	}
	for k, v := range o.Excluded {
		if nk, ok := move(k); ok && v {
			c.Excluded[nk] = true
		}
	}
	return c
}

// CompletedKeys lists keys marked completed, sorted.
func (o *Overlay) CompletedKeys() []string {
	if o == nil {
		return nil
	}
	return trueKeys(o.Completed)
}

// ExcludedKeys lists keys marked excluded, sorted.
func (o *Overlay) ExcludedKeys() []string {
	if o == nil {
		return nil
	}
	return trueKeys(o.Excluded)
}

func trueKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k, v := range m {
		if v {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
