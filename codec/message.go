// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/vericore/vericore/value"
)

// Entry is one named Value inside a persisted result file.
type Entry struct {
	Name  string
	Value value.Value
}

// EncodeMessage frames entries under a MessageBuffer header carrying
// CurrentVersion, matching spec.md §6's "concatenation of one or more
// (name, TypeWrapper) records" persisted artifact format.
func EncodeMessage(entries []Entry) []byte {
	b := flatbuffers.NewBuilder(512)

	entryOffs := make([]flatbuffers.UOffsetT, len(entries))
	for i, e := range entries {
		wrapperOff := buildWrapper(b, e.Value)
		nameOff := b.CreateString(e.Name)

		b.StartObject(entryNumFields)
		b.PrependUOffsetTSlot(entrySlotName, nameOff, 0)
		b.PrependUOffsetTSlot(entrySlotWrapper, wrapperOff, 0)
		entryOffs[i] = b.EndObject()
	}

	entriesVec := buildOffsetVector(b, entryOffs)

	b.StartObject(msgNumFields)
	b.PrependUint16Slot(msgSlotVersion, CurrentVersion, 0)
	b.PrependUOffsetTSlot(msgSlotEntries, entriesVec, 0)
	root := b.EndObject()

	b.Finish(root)
	return b.FinishedBytes()
}

// DecodeMessage reads back a MessageBuffer, rejecting any schema
// version other than CurrentVersion (spec.md §6).
func DecodeMessage(buf []byte) (entries []Entry, err error) {
	defer func() {
		if r := recover(); r != nil {
			entries = nil
			err = newDecodeError(ErrBadOffset, "panic while walking message buffer")
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

	version := uint16(0)
	if o := tbl.Offset(4 + 2*msgSlotVersion); o != 0 {
		version = tbl.GetUint16(tbl.Pos + flatbuffers.UOffsetT(o))
	}
	if version != CurrentVersion {
		return nil, newDecodeError(ErrBadVersion, "")
	}

	o := tbl.Offset(4 + 2*msgSlotEntries)
	if o == 0 {
		return nil, nil
	}
	vecStart := tbl.Vector(flatbuffers.UOffsetT(o))
	n := tbl.VectorLen(flatbuffers.UOffsetT(o))

	out := make([]Entry, n)
	for i := 0; i < n; i++ {
		elemPos := vecStart + flatbuffers.UOffsetT(i)*4
		entryPos := tbl.Indirect(elemPos)
		entryTbl := &flatbuffers.Table{Bytes: buf, Pos: entryPos}

		name, err := readString(entryTbl, entrySlotName)
		if err != nil {
			return nil, err
		}

		wo := entryTbl.Offset(4 + 2*entrySlotWrapper)
		if wo == 0 {
			return nil, newDecodeError(ErrBadOffset, "entry missing wrapper")
		}
		wrapperPos := entryTbl.Indirect(entryTbl.Pos + flatbuffers.UOffsetT(wo))
		v, err := decodeWrapper(&flatbuffers.Table{Bytes: buf, Pos: wrapperPos})
		if err != nil {
			return nil, err
		}

		out[i] = Entry{Name: name, Value: v}
	}
	return out, nil
}
