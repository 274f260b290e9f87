// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package value

import (
	"fmt"
	"math"
)

// compare implements the comparison algorithm of spec.md §4.4. It is
// invoked by every concrete Value's Compare method.
func compare(src, dst Value) Diff {
	srcTag, dstTag := src.Tag(), dst.Tag()
	sameFamily := isNumericTag(srcTag) && isNumericTag(dstTag)

	// Rule 1: type mismatch, unless both sides are in the numeric family.
	if srcTag != dstTag && !sameFamily {
		return Diff{
			SrcTag:   srcTag,
			DstTag:   dstTag,
			SrcValue: src.Stringify(),
			DstValue: dst.Stringify(),
			Match:    MatchNone,
			Score:    0,
			Desc:     newDescSet("result types are different"),
		}
	}

	srcStr, dstStr := src.Stringify(), dst.Stringify()

	// Rule 2: perfect equality shortcut. Values of different numeric tags
	// are compared as float64, since their renderings differ ("5" vs "5.0").
	equal := srcStr == dstStr
	if !equal && srcTag != dstTag && sameFamily {
		a, _ := asDouble(src)
		b, _ := asDouble(dst)
		equal = a == b
	}
	if equal {
		return Diff{
			SrcTag:   srcTag,
			DstTag:   TagUnknown,
			SrcValue: srcStr,
			DstValue: "",
			Match:    MatchPerfect,
			Score:    1.0,
			Desc:     newDescSet(),
		}
	}

	switch srcTag {
	case TagArray:
		return compareArray(src.(*Array), dst.(*Array))
	case TagObject:
		return compareObject(src.(*Object), dst.(*Object))
	case TagBool, TagString, TagNull:
		// Rule 4: primitive mismatch (other).
		return Diff{
			SrcTag:   srcTag,
			DstTag:   TagUnknown,
			SrcValue: srcStr,
			DstValue: dstStr,
			Match:    MatchNone,
			Score:    0,
			Desc:     newDescSet(),
		}
	default:
		// Rule 3: primitive mismatch (numeric).
		return compareNumeric(srcTag, src, dst, srcStr, dstStr)
	}
}

// compareNumeric implements spec.md §4.4 rule 3. Branch selection
// (absolute vs percent) follows the sign of (a-b), resolved against
// the §8 scenarios rather than the literal "|a| < 1" phrasing, which
// that section's own worked example (Int(5) vs Int(10)) contradicts
// (see DESIGN.md). The score formula itself is applied uniformly
// across the numeric family, as §4.4 states it without a per-tag
// exception beyond the absolute branch always scoring 0.
func compareNumeric(srcTag Tag, src, dst Value, srcStr, dstStr string) Diff {
	a, _ := asDouble(src)
	b, _ := asDouble(dst)
	abs := math.Abs(a - b)

	var word string
	var desc string
	var percentBranch bool
	switch {
	case a < b:
		word = "smaller"
	default: // a > b (a == b already handled by the equality shortcut in compare)
		word = "larger"
		percentBranch = b != 0
	}

	if percentBranch {
		pct := 100 * abs / math.Abs(b)
		desc = fmt.Sprintf("value is %s by %.6f percent", word, pct)
	} else {
		desc = fmt.Sprintf("value is %s by %.6f", word, abs)
	}

	score := 0.0
	if percentBranch {
		score = math.Max(0, 1-abs/math.Max(math.Abs(a), math.Abs(b)))
	}

	return Diff{
		SrcTag:   srcTag,
		DstTag:   TagUnknown,
		SrcValue: srcStr,
		DstValue: dstStr,
		Match:    MatchNone,
		Score:    score,
		Desc:     newDescSet(desc),
	}
}

// compareArray implements spec.md §4.4 rule 5.
func compareArray(src, dst *Array) Diff {
	desc := newDescSet()
	if src.Len() != dst.Len() {
		// spec.md §8 scenario 4 phrases this the reverse of the natural
		// reading: a destination array with fewer elements than the
		// source is described as "shrunk", more as "grown".
		word := "grown"
		if dst.Len() < src.Len() {
			word = "shrunk"
		}
		n := abs(dst.Len() - src.Len())
		addDesc(desc, fmt.Sprintf("array size %s by %d elements", word, n))
		return Diff{
			SrcTag:   TagArray,
			DstTag:   TagUnknown,
			SrcValue: src.Stringify(),
			DstValue: dst.Stringify(),
			Match:    MatchNone,
			Score:    0,
			Desc:     desc,
		}
	}

	perfectCount := 0
	for i, s := range src.Items() {
		d := dst.At(i)
		childDiff := compare(s, d)
		if childDiff.Match == MatchPerfect {
			perfectCount++
			continue
		}
		if isPrimitiveTag(s.Tag()) {
			for cd := range childDiff.Desc {
				addDesc(desc, fmt.Sprintf("[%d]:%s", i, cd))
			}
		} else {
			for cd := range childDiff.Desc {
				addDesc(desc, fmt.Sprintf("[%d]%s", i, cd))
			}
		}
	}

	score := 0.0
	if src.Len() > 0 {
		score = float64(perfectCount) / float64(src.Len())
	} else {
		score = 1.0
	}

	match := MatchNone
	if score == 1.0 && len(desc) == 0 {
		match = MatchPerfect
	}

	return Diff{
		SrcTag:   TagArray,
		DstTag:   TagUnknown,
		SrcValue: src.Stringify(),
		DstValue: dst.Stringify(),
		Match:    match,
		Score:    score,
		Desc:     desc,
	}
}

// compareObject implements spec.md §4.4 rule 6.
func compareObject(src, dst *Object) Diff {
	desc := newDescSet()
	seen := make(map[string]struct{})
	order := append([]string{}, src.Keys()...)
	for _, k := range dst.Keys() {
		if _, ok := src.Get(k); !ok {
			order = append(order, k)
		}
	}

	var scoreSum float64
	for _, k := range order {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}

		sv, sok := src.Get(k)
		dv, dok := dst.Get(k)
		switch {
		case sok && dok:
			childDiff := compare(sv, dv)
			scoreSum += childDiff.Score
			if childDiff.Match == MatchPerfect {
				continue
			}
			switch {
			case sv.Tag() == TagArray:
				for cd := range childDiff.Desc {
					addDesc(desc, k+cd)
				}
			case isPrimitiveTag(sv.Tag()):
				for cd := range childDiff.Desc {
					addDesc(desc, k+": "+cd)
				}
			default: // nested Object
				for cd := range childDiff.Desc {
					addDesc(desc, k+"."+cd)
				}
			}
		case sok && !dok:
			addDesc(desc, k+": missing")
		default: // !sok && dok
			addDesc(desc, k+": unexpected")
		}
	}

	denom := maxInt(src.Len(), dst.Len())
	score := 1.0
	if denom > 0 {
		score = scoreSum / float64(denom)
	}

	match := MatchNone
	if score == 1.0 && len(desc) == 0 {
		match = MatchPerfect
	}

	return Diff{
		SrcTag:   TagObject,
		DstTag:   TagUnknown,
		SrcValue: src.Stringify(),
		DstValue: dst.Stringify(),
		Match:    match,
		Score:    score,
		Desc:     desc,
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
