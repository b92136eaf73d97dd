// Package registry stores the rotation kernel variants and selects the best
// one for a given CPU feature set.
//
// Kernel packages register themselves from init(); the rect package looks up
// an entry once per bulk call.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-rect/cpu"
)

// RotateFn rotates the four corners (x[i], y[i]) in place about the
// rectangle center by angleDeg degrees.
type RotateFn func(x, y *[4]float32, angleDeg float32)

// OpEntry is one registered rotation kernel.
type OpEntry struct {
	// Name identifies the kernel ("generic", "vec4").
	Name string

	// SIMDLevel is the instruction set the kernel is gated on.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries; higher wins.
	//   - generic: 0
	//   - vec4:    10
	Priority int

	RotateCenter RotateFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default rotation kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features,
// or nil if nothing compatible is registered.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Find returns the entry registered under name, or nil.
func (r *OpRegistry) Find(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}
	return nil
}

// sortByPriority is a stable insertion sort, descending by priority.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
