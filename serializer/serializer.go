// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package serializer implements the type-indexed lowering registry
// from user types to the value package's closed tagged-variant tree
// (spec.md §4.2). A lowering function is registered once per Go type
// at process startup; looking up a type that was never registered
// yields ErrMissing rather than silently producing a zero Value.
package serializer

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/vericore/vericore/value"
)

// ErrMissing is returned when no lowering is registered for a type.
var ErrMissing = errors.New("serializer: no lowering registered for type")

// Func lowers a concrete Go value of type T into the Value Model.
type Func func(v any) (value.Value, error)

// Registry is a type-indexed lookup from a Go type to its Func.
// A Registry is safe for concurrent use: Register and Lower are
// guarded by an internal RWMutex.
type Registry struct {
	mu    sync.RWMutex
	funcs map[reflect.Type]Func
}

// New returns a Registry seeded with lowerings for every built-in
// shape named in spec.md §4.2: booleans, the signed/unsigned/float
// families, strings, and the generic pair/map/sequence/optional
// helpers exposed as Pair, Map, Sequence and Optional below.
func New() *Registry {
	r := &Registry{funcs: make(map[reflect.Type]Func)}
	r.registerBuiltins()
	return r
}

// Register binds the lowering for the Go type of sample. sample is
// only used to obtain a reflect.Type; its value is never read.
func (r *Registry) Register(sample any, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[reflect.TypeOf(sample)] = fn
}

// Lower looks up the registered Func for v's dynamic type and applies
// it. It returns ErrMissing if no lowering was registered.
func (r *Registry) Lower(v any) (value.Value, error) {
	r.mu.RLock()
	fn, ok := r.funcs[reflect.TypeOf(v)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrMissing, v)
	}
	return fn(v)
}

func (r *Registry) registerBuiltins() {
	r.Register(bool(false), func(v any) (value.Value, error) {
		return value.NewBool(v.(bool)), nil
	})
	r.Register(int64(0), func(v any) (value.Value, error) {
		return value.NewIntSigned(v.(int64)), nil
	})
	r.Register(uint64(0), func(v any) (value.Value, error) {
		return value.NewIntUnsigned(v.(uint64)), nil
	})
	for _, sample := range []any{int(0), int8(0), int16(0), int32(0)} {
		r.Register(sample, func(v any) (value.Value, error) {
			return value.NewIntSigned(reflect.ValueOf(v).Int()), nil
		})
	}
	for _, sample := range []any{uint(0), uint8(0), uint16(0), uint32(0)} {
		r.Register(sample, func(v any) (value.Value, error) {
			return value.NewIntUnsigned(reflect.ValueOf(v).Uint()), nil
		})
	}
	r.Register(float32(0), func(v any) (value.Value, error) {
		return value.NewFloat(v.(float32)), nil
	})
	r.Register(float64(0), func(v any) (value.Value, error) {
		return value.NewDouble(v.(float64)), nil
	})
	r.Register(string(""), func(v any) (value.Value, error) {
		return value.NewStr(v.(string)), nil
	})
}

// Pair lowers a (first, second) pair the way a C++ std::pair is
// lowered: Object("std::pair", {"first": ser(A), "second": ser(B)}).
func (r *Registry) Pair(first, second any) (value.Value, error) {
	sf, err := r.Lower(first)
	if err != nil {
		return nil, err
	}
	ss, err := r.Lower(second)
	if err != nil {
		return nil, err
	}
	return value.NewObject("std::pair").Add("first", sf).Add("second", ss), nil
}

// Map lowers an ordered sequence of key/value pairs into an Array of
// lowered pairs, preserving the caller's iteration order.
func (r *Registry) Map(keys, vals []any) (value.Value, error) {
	if len(keys) != len(vals) {
		return nil, fmt.Errorf("serializer: Map keys/vals length mismatch: %d != %d", len(keys), len(vals))
	}
	arr := value.NewArray()
	for i := range keys {
		pair, err := r.Pair(keys[i], vals[i])
		if err != nil {
			return nil, err
		}
		arr.Add(pair)
	}
	return arr, nil
}

// Sequence lowers a dynamic sequence of homogeneous or heterogeneous
// elements into an Array, preserving order.
func (r *Registry) Sequence(items []any) (value.Value, error) {
	arr := value.NewArray()
	for _, it := range items {
		lv, err := r.Lower(it)
		if err != nil {
			return nil, err
		}
		arr.Add(lv)
	}
	return arr, nil
}

// Optional lowers a nullable/optional handle. present=false lowers to
// an empty std::shared_ptr object; present=true lowers {"v": ser(v)}.
func (r *Registry) Optional(present bool, v any) (value.Value, error) {
	obj := value.NewObject("std::shared_ptr")
	if !present {
		return obj, nil
	}
	lv, err := r.Lower(v)
	if err != nil {
		return nil, err
	}
	return obj.Add("v", lv), nil
}
