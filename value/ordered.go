// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package value

// orderedMap is a string-keyed map that preserves insertion order.
// Re-inserting an existing key overwrites its value while keeping the
// key's original position, matching the Object entry-ordering
// invariant in spec.md §3.
type orderedMap struct {
	keys []string
	pos  map[string]int
	vals []Value
}

func newOrderedMap() *orderedMap {
	return &orderedMap{pos: make(map[string]int)}
}

func (m *orderedMap) Set(key string, v Value) {
	if i, ok := m.pos[key]; ok {
		m.vals[i] = v
		return
	}
	m.pos[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, v)
}

func (m *orderedMap) Get(key string) (Value, bool) {
	i, ok := m.pos[key]
	if !ok {
		return nil, false
	}
	return m.vals[i], true
}

func (m *orderedMap) Keys() []string {
	return m.keys
}

func (m *orderedMap) Len() int {
	return len(m.keys)
}

// Flattened is the ordered mapping from dotted-path keys to leaf
// Values produced by Value.Flatten.
type Flattened struct {
	m *orderedMap
}

func newFlattened() *Flattened {
	return &Flattened{m: newOrderedMap()}
}

// Keys returns flattened paths in the order they were produced.
func (f *Flattened) Keys() []string {
	if f.m == nil {
		return nil
	}
	return f.m.Keys()
}

// Get returns the leaf Value bound to path, if any.
func (f *Flattened) Get(path string) (Value, bool) {
	if f.m == nil {
		return nil, false
	}
	return f.m.Get(path)
}

// Len reports the number of flattened leaves.
func (f *Flattened) Len() int {
	if f.m == nil {
		return 0
	}
	return f.m.Len()
}

func (f *Flattened) set(path string, v Value) {
	f.m.Set(path, v)
}

func (f *Flattened) merge(prefix string, other *Flattened) {
	for _, k := range other.Keys() {
		v, _ := other.Get(k)
		f.set(prefix+k, v)
	}
}
