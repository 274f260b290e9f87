// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package codec implements the self-describing binary wire format of
// spec.md §4.3: a tagged-union TypeWrapper table with a payload schema
// fixed per tag, built and read with the real FlatBuffers Builder/Table
// primitives rather than a hand-rolled TLV format.
package codec

import (
	"math"
	"unicode/utf8"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/vericore/vericore/value"
)

// TypeWrapper field slots (vtable slot index, not byte offset).
const (
	slotTag      = 0
	slotScalar   = 1
	slotStr      = 2
	slotName     = 3
	slotChildren = 4
	slotKeys     = 5
	wrapperNumFields = 6
)

// Entry field slots (a named TypeWrapper inside a MessageBuffer).
const (
	entrySlotName    = 0
	entrySlotWrapper = 1
	entryNumFields   = 2
)

// MessageBuffer field slots.
const (
	msgSlotVersion = 0
	msgSlotEntries = 1
	msgNumFields   = 2
)

// CurrentVersion is the only schema version Decode accepts for a
// MessageBuffer, per spec.md §6.
const CurrentVersion uint16 = 1

// Encode lowers a single Value tree into a standalone FlatBuffers
// buffer whose root is a TypeWrapper (spec.md §4.3). Children are
// encoded before parents; EndObject calls happen bottom-up exactly as
// the FlatBuffers Builder requires.
func Encode(v value.Value) []byte {
	b := flatbuffers.NewBuilder(256)
	root := buildWrapper(b, v)
	b.Finish(root)
	return b.FinishedBytes()
}

// Decode reconstructs a Value from a buffer produced by Encode.
func Decode(buf []byte) (v value.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			v = nil
			err = newDecodeError(ErrBadOffset, "panic while walking buffer")
		}
	}()

	if len(buf) < 4 {
		return nil, newDecodeError(ErrTruncated, "buffer shorter than a root offset")
	}
	rootPos := flatbuffers.GetUOffsetT(buf)
	if int(rootPos) >= len(buf) {
		return nil, newDecodeError(ErrBadOffset, "root offset beyond buffer length")
	}

	tbl := &flatbuffers.Table{Bytes: buf, Pos: rootPos}
	return decodeWrapper(tbl)
}

// buildWrapper recursively encodes v bottom-up and returns the offset
// of its TypeWrapper table.
func buildWrapper(b *flatbuffers.Builder, v value.Value) flatbuffers.UOffsetT {
	switch n := v.(type) {
	case *value.Null:
		return finishScalar(b, value.TagNull, 0)
	case *value.Bool:
		var bit uint64
		if n.V {
			bit = 1
		}
		return finishScalar(b, value.TagBool, bit)
	case *value.IntSigned:
		return finishScalar(b, value.TagIntSigned, uint64(n.V))
	case *value.IntUnsigned:
		return finishScalar(b, value.TagIntUnsigned, n.V)
	case *value.Float:
		return finishScalar(b, value.TagFloat, uint64(math.Float32bits(n.V)))
	case *value.Double:
		return finishScalar(b, value.TagDouble, math.Float64bits(n.V))
	case *value.Str:
		strOff := b.CreateString(n.V)
		b.StartObject(wrapperNumFields)
		b.PrependUint8Slot(slotTag, uint8(value.TagString), 0)
		b.PrependUOffsetTSlot(slotStr, strOff, 0)
		return b.EndObject()
	case *value.Array:
		childOffs := make([]flatbuffers.UOffsetT, n.Len())
		for i, item := range n.Items() {
			childOffs[i] = buildWrapper(b, item)
		}
		childrenVec := buildOffsetVector(b, childOffs)
		b.StartObject(wrapperNumFields)
		b.PrependUint8Slot(slotTag, uint8(value.TagArray), 0)
		b.PrependUOffsetTSlot(slotChildren, childrenVec, 0)
		return b.EndObject()
	case *value.Object:
		keys := n.Keys()
		childOffs := make([]flatbuffers.UOffsetT, len(keys))
		for i, k := range keys {
			child, _ := n.Get(k)
			childOffs[i] = buildWrapper(b, child)
		}
		keyOffs := make([]flatbuffers.UOffsetT, len(keys))
		for i, k := range keys {
			keyOffs[i] = b.CreateString(k)
		}
		var nameOff flatbuffers.UOffsetT
		if n.Name() != "" {
			nameOff = b.CreateString(n.Name())
		}
		childrenVec := buildOffsetVector(b, childOffs)
		keysVec := buildOffsetVector(b, keyOffs)
		b.StartObject(wrapperNumFields)
		b.PrependUint8Slot(slotTag, uint8(value.TagObject), 0)
		if nameOff != 0 {
			b.PrependUOffsetTSlot(slotName, nameOff, 0)
		}
		b.PrependUOffsetTSlot(slotChildren, childrenVec, 0)
		b.PrependUOffsetTSlot(slotKeys, keysVec, 0)
		return b.EndObject()
	default:
		return finishScalar(b, value.TagUnknown, 0)
	}
}

func finishScalar(b *flatbuffers.Builder, tag value.Tag, bits uint64) flatbuffers.UOffsetT {
	b.StartObject(wrapperNumFields)
	b.PrependUint8Slot(slotTag, uint8(tag), 0)
	b.PrependUint64Slot(slotScalar, bits, 0)
	return b.EndObject()
}

// buildOffsetVector writes a vector of table/string offsets in the
// reverse order the Builder requires and returns the vector's offset.
func buildOffsetVector(b *flatbuffers.Builder, offs []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	b.StartVector(4, len(offs), 4)
	for i := len(offs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offs[i])
	}
	return b.EndVector(len(offs))
}

func decodeWrapper(tbl *flatbuffers.Table) (value.Value, error) {
	tagOff := tbl.Offset(4 + 2*slotTag)
	var tag value.Tag
	if tagOff != 0 {
		tag = value.Tag(tbl.GetUint8(tbl.Pos + flatbuffers.UOffsetT(tagOff)))
	}

	switch tag {
	case value.TagNull:
		return value.NewNull(), nil
	case value.TagBool:
		return value.NewBool(readScalar(tbl) == 1), nil
	case value.TagIntSigned:
		return value.NewIntSigned(int64(readScalar(tbl))), nil
	case value.TagIntUnsigned:
		return value.NewIntUnsigned(readScalar(tbl)), nil
	case value.TagFloat:
		return value.NewFloat(math.Float32frombits(uint32(readScalar(tbl)))), nil
	case value.TagDouble:
		return value.NewDouble(math.Float64frombits(readScalar(tbl))), nil
	case value.TagString:
		s, err := readString(tbl, slotStr)
		if err != nil {
			return nil, err
		}
		return value.NewStr(s), nil
	case value.TagArray:
		items, err := readChildren(tbl)
		if err != nil {
			return nil, err
		}
		arr := value.NewArray()
		for _, it := range items {
			arr.Add(it)
		}
		return arr, nil
	case value.TagObject:
		name, err := readString(tbl, slotName)
		if err != nil {
			return nil, err
		}
		keys, err := readKeys(tbl)
		if err != nil {
			return nil, err
		}
		children, err := readChildren(tbl)
		if err != nil {
			return nil, err
		}
		if len(keys) != len(children) {
			return nil, newDecodeError(ErrBadOffset, "object key/value vector length mismatch")
		}
		obj := value.NewObject(name)
		for i, k := range keys {
			obj.Add(k, children[i])
		}
		return obj, nil
	default:
		return nil, newDecodeError(ErrBadTag, "")
	}
}

func readScalar(tbl *flatbuffers.Table) uint64 {
	o := tbl.Offset(4 + 2*slotScalar)
	if o == 0 {
		return 0
	}
	return tbl.GetUint64(tbl.Pos + flatbuffers.UOffsetT(o))
}

func readString(tbl *flatbuffers.Table, slot int) (string, error) {
	o := tbl.Offset(flatbuffers.VOffsetT(4 + 2*slot))
	if o == 0 {
		return "", nil
	}
	b := tbl.ByteVector(tbl.Pos + flatbuffers.UOffsetT(o))
	if !utf8.Valid(b) {
		return "", newDecodeError(ErrBadUTF8, "")
	}
	return string(b), nil
}

func readChildren(tbl *flatbuffers.Table) ([]value.Value, error) {
	o := tbl.Offset(4 + 2*slotChildren)
	if o == 0 {
		return nil, nil
	}
	vecStart := tbl.Vector(flatbuffers.UOffsetT(o))
	n := tbl.VectorLen(flatbuffers.UOffsetT(o))

	out := make([]value.Value, n)
	for i := 0; i < n; i++ {
		elemPos := vecStart + flatbuffers.UOffsetT(i)*4
		childPos := tbl.Indirect(elemPos)
		child, err := decodeWrapper(&flatbuffers.Table{Bytes: tbl.Bytes, Pos: childPos})
		if err != nil {
			return nil, err
		}
		out[i] = child
	}
	return out, nil
}

func readKeys(tbl *flatbuffers.Table) ([]string, error) {
	o := tbl.Offset(4 + 2*slotKeys)
	if o == 0 {
		return nil, nil
	}
	vecStart := tbl.Vector(flatbuffers.UOffsetT(o))
	n := tbl.VectorLen(flatbuffers.UOffsetT(o))

	out := make([]string, n)
	for i := 0; i < n; i++ {
		s := tbl.ByteVector(vecStart + flatbuffers.UOffsetT(i)*4)
		if !utf8.Valid(s) {
			return nil, newDecodeError(ErrBadUTF8, "")
		}
		out[i] = string(s)
	}
	return out, nil
}
