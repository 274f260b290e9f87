// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package value implements the uniform, self-describing value tree used
// to erase the static type of a captured datum. A Value is a closed
// tagged variant (Null, Bool, IntSigned, IntUnsigned, Float, Double,
// Str, Array, Object); user-defined aggregates are never new variants,
// they are lowered into Array/Object by the serializer package.
//
// Every Value supports four uniform operations: Tag, Stringify,
// Flatten and Compare. Compare produces a Diff: a score in [0,1], a
// match classification, and a set of short human-readable
// discrepancy descriptions.
package value
