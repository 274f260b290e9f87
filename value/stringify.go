// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package value

import (
	"strconv"
	"strings"
)

func formatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatUint64(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// formatFloat renders the shortest decimal representation that
// round-trips at the given bit size, always in fixed-point notation,
// with a trailing ".0" for integer-valued results (spec.md §3).
func formatFloat(v float64, bitSize int) string {
	s := strconv.FormatFloat(v, 'f', -1, bitSize)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// quoteJSON renders s the way a Str looks when nested inside an Array
// or Object: double-quoted and JSON-escaped.
func quoteJSON(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// renderChild renders v the way it appears as a child of an Array or
// Object: strings are quoted/escaped, everything else renders exactly
// as its own Stringify.
func renderChild(v Value) string {
	if s, ok := v.(*Str); ok {
		return quoteJSON(s.V)
	}
	return v.Stringify()
}
