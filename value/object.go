// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package value

import "strings"

// Object is a named, ordered mapping from string keys to child Values.
// The name may be empty; duplicate inserts overwrite the prior binding
// while preserving the key's original insertion position.
type Object struct {
	name string
	m    *orderedMap
}

// NewObject returns an empty Object with the given name.
func NewObject(name string) *Object {
	return &Object{name: name, m: newOrderedMap()}
}

// Name returns the object's name, possibly empty.
func (o *Object) Name() string { return o.name }

// Add inserts or overwrites the value bound to key.
func (o *Object) Add(key string, v Value) *Object {
	o.m.Set(key, v)
	return o
}

// Get returns the value bound to key, if any.
func (o *Object) Get(key string) (Value, bool) { return o.m.Get(key) }

// Keys returns the bound keys in insertion order.
func (o *Object) Keys() []string { return o.m.Keys() }

// Len reports the number of entries.
func (o *Object) Len() int { return o.m.Len() }

func (*Object) Tag() Tag { return TagObject }

func (o *Object) Stringify() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range o.Keys() {
		if i > 0 {
			b.WriteByte(',')
		}
		v, _ := o.Get(k)
		b.WriteString(quoteJSON(k))
		b.WriteByte(':')
		b.WriteString(renderChild(v))
	}
	b.WriteByte('}')
	inner := b.String()
	if o.name == "" {
		return inner
	}
	return "{" + quoteJSON(o.name) + ":" + inner + "}"
}

func (o *Object) Flatten() *Flattened {
	out := newFlattened()
	for _, k := range o.Keys() {
		v, _ := o.Get(k)
		if isPrimitiveTag(v.Tag()) {
			out.set(k, v)
			continue
		}
		if v.Tag() == TagArray {
			out.merge(k, v.Flatten())
		} else {
			out.merge(k+".", v.Flatten())
		}
	}
	return out
}

func (o *Object) Compare(other Value) Diff { return compare(o, other) }
