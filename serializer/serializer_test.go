// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package serializer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vericore/vericore/serializer"
	"github.com/vericore/vericore/value"
)

func TestLowerBuiltins(t *testing.T) {
	r := serializer.New()

	v, err := r.Lower(int64(42))
	require.NoError(t, err)
	require.Equal(t, "42", v.Stringify())

	v, err = r.Lower("hello")
	require.NoError(t, err)
	require.Equal(t, "hello", v.Stringify())

	v, err = r.Lower(true)
	require.NoError(t, err)
	require.Equal(t, "true", v.Stringify())
}

func TestLowerMissingType(t *testing.T) {
	r := serializer.New()
	type custom struct{ X int }

	_, err := r.Lower(custom{X: 1})
	require.Error(t, err)
	require.True(t, errors.Is(err, serializer.ErrMissing))
}

func TestPairLowering(t *testing.T) {
	r := serializer.New()
	v, err := r.Pair(int64(1), "two")
	require.NoError(t, err)
	require.Equal(t, `{"std::pair":{"first":1,"second":"two"}}`, v.Stringify())
}

func TestMapLoweringPreservesOrder(t *testing.T) {
	r := serializer.New()
	keys := []any{"a", "b"}
	vals := []any{int64(1), int64(2)}

	v, err := r.Map(keys, vals)
	require.NoError(t, err)
	require.Equal(t, value.TagArray, v.Tag())
	require.Equal(t, `[{"std::pair":{"first":"a","second":1}},{"std::pair":{"first":"b","second":2}}]`, v.Stringify())
}

func TestSequenceLowering(t *testing.T) {
	r := serializer.New()
	v, err := r.Sequence([]any{int64(1), int64(2), int64(3)})
	require.NoError(t, err)
	require.Equal(t, "[1,2,3]", v.Stringify())
}

func TestOptionalLowering(t *testing.T) {
	r := serializer.New()

	empty, err := r.Optional(false, nil)
	require.NoError(t, err)
	require.Equal(t, `{"std::shared_ptr":{}}`, empty.Stringify())

	present, err := r.Optional(true, int64(7))
	require.NoError(t, err)
	require.Equal(t, `{"std::shared_ptr":{"v":7}}`, present.Stringify())
}

func TestCustomRegistration(t *testing.T) {
	r := serializer.New()
	type point struct{ X, Y int64 }

	r.Register(point{}, func(v any) (value.Value, error) {
		p := v.(point)
		return value.NewObject("point").
			Add("x", value.NewIntSigned(p.X)).
			Add("y", value.NewIntSigned(p.Y)), nil
	})

	v, err := r.Lower(point{X: 1, Y: 2})
	require.NoError(t, err)
	require.Equal(t, `{"point":{"x":1,"y":2}}`, v.Stringify())
}
