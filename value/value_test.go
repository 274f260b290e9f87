// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vericore/vericore/value"
)

func TestPrimitiveStringify(t *testing.T) {
	require.Equal(t, "true", value.NewBool(true).Stringify())
	require.Equal(t, "false", value.NewBool(false).Stringify())
	require.Equal(t, "{}", value.NewNull().Stringify())
	require.Equal(t, "42", value.NewIntSigned(42).Stringify())
	require.Equal(t, "-7", value.NewIntSigned(-7).Stringify())
	require.Equal(t, "18446744073709551615", value.NewIntUnsigned(18446744073709551615).Stringify())
	require.Equal(t, "1.5", value.NewDouble(1.5).Stringify())
	require.Equal(t, "2.0", value.NewDouble(2).Stringify())
	require.Equal(t, "hello", value.NewStr("hello").Stringify())
}

func TestArrayStringify(t *testing.T) {
	arr := value.NewArray().Add(value.NewIntSigned(1)).Add(value.NewIntSigned(2)).Add(value.NewStr("x"))
	require.Equal(t, `[1,2,"x"]`, arr.Stringify())
}

func TestObjectStringify(t *testing.T) {
	obj := value.NewObject("").Add("a", value.NewIntSigned(1)).Add("b", value.NewBool(true))
	require.Equal(t, `{"a":1,"b":true}`, obj.Stringify())

	named := value.NewObject("point").Add("x", value.NewIntSigned(1))
	require.Equal(t, `{"point":{"x":1}}`, named.Stringify())
}

func TestObjectFlattenNestedObject(t *testing.T) {
	eyes := value.NewObject("").Add("color", value.NewStr("brown"))
	head := value.NewObject("").Add("eyes", eyes)
	root := value.NewObject("").Add("first_head", head)

	flat := root.Flatten()
	got, ok := flat.Get("first_head.eyes.color")
	require.True(t, ok)
	require.Equal(t, "brown", got.Stringify())
}

func TestArrayFlattenOfSignedInt64(t *testing.T) {
	arr := value.NewArray().Add(value.NewIntSigned(10)).Add(value.NewIntSigned(20))
	flat := arr.Flatten()
	require.Equal(t, []string{"[0]", "[1]"}, flat.Keys())

	v0, ok := flat.Get("[0]")
	require.True(t, ok)
	require.Equal(t, "10", v0.Stringify())
}

func TestObjectOverwritePreservesPosition(t *testing.T) {
	obj := value.NewObject("").Add("a", value.NewIntSigned(1)).Add("b", value.NewIntSigned(2))
	obj.Add("a", value.NewIntSigned(99))
	require.Equal(t, []string{"a", "b"}, obj.Keys())
	v, ok := obj.Get("a")
	require.True(t, ok)
	require.Equal(t, "99", v.Stringify())
}
