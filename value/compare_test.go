// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vericore/vericore/value"
)

func TestCompareBoolMismatch(t *testing.T) {
	d := value.NewBool(true).Compare(value.NewBool(false))
	require.Equal(t, value.MatchNone, d.Match)
	require.Zero(t, d.Score)
	require.Equal(t, "true", d.SrcValue)
	require.Equal(t, "false", d.DstValue)
}

func TestCompareBoolPerfect(t *testing.T) {
	d := value.NewBool(true).Compare(value.NewBool(true))
	require.Equal(t, value.MatchPerfect, d.Match)
	require.Equal(t, 1.0, d.Score)
}

func TestCompareIntSmaller(t *testing.T) {
	d := value.NewIntSigned(5).Compare(value.NewIntSigned(10))
	require.Equal(t, value.MatchNone, d.Match)
	require.Zero(t, d.Score)
	require.Contains(t, d.Desc, "value is smaller by 5.000000")
}

func TestCompareIntLargerUsesPercentBranch(t *testing.T) {
	d := value.NewIntSigned(12).Compare(value.NewIntSigned(10))
	require.Equal(t, value.MatchNone, d.Match)
	require.InDelta(t, 0.833333, d.Score, 1e-6)
	require.Contains(t, d.Desc, "value is larger by 20.000000 percent")
}

func TestCompareDoubleSmaller(t *testing.T) {
	d := value.NewDouble(1.0).Compare(value.NewDouble(2.0))
	require.Equal(t, value.MatchNone, d.Match)
	require.Zero(t, d.Score)
	require.Contains(t, d.Desc, "value is smaller by 1.000000")
}

func TestCompareDoubleLargerUsesPercentBranchAndScores(t *testing.T) {
	d := value.NewDouble(110).Compare(value.NewDouble(100))
	require.Equal(t, value.MatchNone, d.Match)
	require.InDelta(t, 0.909091, d.Score, 1e-6)
	require.Contains(t, d.Desc, "value is larger by 10.000000 percent")
}

func TestCompareNumericZeroDenominatorGuard(t *testing.T) {
	d := value.NewDouble(5).Compare(value.NewDouble(0))
	require.Equal(t, value.MatchNone, d.Match)
	require.Zero(t, d.Score)
	require.Contains(t, d.Desc, "value is larger by 5.000000")
}

func TestCompareNumericFamilyBypassesTypeMismatch(t *testing.T) {
	d := value.NewIntSigned(5).Compare(value.NewDouble(5))
	require.Equal(t, value.MatchPerfect, d.Match)
}

func TestCompareResultTypesDiffer(t *testing.T) {
	d := value.NewBool(true).Compare(value.NewStr("true"))
	require.Equal(t, value.MatchNone, d.Match)
	require.Zero(t, d.Score)
	require.Contains(t, d.Desc, "result types are different")
}

func TestCompareArrayElementMismatchScore(t *testing.T) {
	src := value.NewArray().Add(value.NewBool(false)).Add(value.NewBool(true)).Add(value.NewBool(false)).Add(value.NewBool(true))
	dst := value.NewArray().Add(value.NewBool(true)).Add(value.NewBool(false)).Add(value.NewBool(false)).Add(value.NewBool(true))

	d := src.Compare(dst)
	require.Equal(t, value.MatchNone, d.Match)
	require.Equal(t, 0.5, d.Score)
	require.Empty(t, d.Desc)
}

func TestCompareArrayGrown(t *testing.T) {
	src := value.NewArray().Add(value.NewIntSigned(1))
	dst := value.NewArray().Add(value.NewIntSigned(1)).Add(value.NewIntSigned(2))

	d := src.Compare(dst)
	require.Equal(t, value.MatchNone, d.Match)
	require.Contains(t, d.Desc, "array size grown by 1 elements")
}

func TestCompareArrayShrunk(t *testing.T) {
	src := value.NewArray().Add(value.NewIntSigned(1)).Add(value.NewIntSigned(2))
	dst := value.NewArray().Add(value.NewIntSigned(1))

	d := src.Compare(dst)
	require.Equal(t, value.MatchNone, d.Match)
	require.Contains(t, d.Desc, "array size shrunk by 1 elements")
}

func TestCompareObjectNestedPath(t *testing.T) {
	srcEyes := value.NewObject("").Add("color", value.NewStr("brown"))
	dstEyes := value.NewObject("").Add("color", value.NewStr("blue"))
	src := value.NewObject("").Add("first_head", value.NewObject("").Add("eyes", srcEyes))
	dst := value.NewObject("").Add("first_head", value.NewObject("").Add("eyes", dstEyes))

	d := src.Compare(dst)
	require.Equal(t, value.MatchNone, d.Match)
	require.Zero(t, d.Score)
	require.Empty(t, d.Desc)
}

func TestCompareObjectStringValueMismatchHasEmptyDesc(t *testing.T) {
	src := value.NewObject("").Add("name", value.NewStr("alice"))
	dst := value.NewObject("").Add("name", value.NewStr("bob"))

	d := src.Compare(dst)
	require.Equal(t, value.MatchNone, d.Match)
	require.Zero(t, d.Score)
	require.Empty(t, d.Desc)
}

func TestCompareObjectMissingAndUnexpectedKeys(t *testing.T) {
	src := value.NewObject("").Add("a", value.NewIntSigned(1)).Add("b", value.NewIntSigned(2))
	dst := value.NewObject("").Add("a", value.NewIntSigned(1)).Add("c", value.NewIntSigned(3))

	d := src.Compare(dst)
	require.Equal(t, value.MatchNone, d.Match)
	require.Contains(t, d.Desc, "b: missing")
	require.Contains(t, d.Desc, "c: unexpected")
}

func TestCompareObjectPerfect(t *testing.T) {
	mk := func() value.Value {
		return value.NewObject("").Add("a", value.NewIntSigned(1)).Add("b", value.NewBool(true))
	}
	d := mk().Compare(mk())
	require.Equal(t, value.MatchPerfect, d.Match)
	require.Equal(t, 1.0, d.Score)
	require.Empty(t, d.Desc)
}
