// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package value

import "strings"

// Array is an ordered sequence of child Values.
type Array struct {
	items []Value
}

// NewArray returns an empty Array.
func NewArray() *Array { return &Array{} }

// Add appends a child, preserving insertion order.
func (a *Array) Add(v Value) *Array {
	a.items = append(a.items, v)
	return a
}

// Len reports the number of children.
func (a *Array) Len() int { return len(a.items) }

// At returns the child at index i.
func (a *Array) At(i int) Value { return a.items[i] }

// Items returns the children in order. The returned slice must not be
// mutated by callers.
func (a *Array) Items() []Value { return a.items }

func (*Array) Tag() Tag { return TagArray }

func (a *Array) Stringify() string {
	parts := make([]string, len(a.items))
	for i, v := range a.items {
		parts[i] = renderChild(v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (a *Array) Flatten() *Flattened {
	out := newFlattened()
	for i, child := range a.items {
		prefix := bracket(i)
		if isPrimitiveTag(child.Tag()) {
			out.set(prefix, child)
			continue
		}
		out.merge(prefix, child.Flatten())
	}
	return out
}

func (a *Array) Compare(o Value) Diff { return compare(a, o) }

func bracket(i int) string {
	return "[" + formatInt64(int64(i)) + "]"
}
