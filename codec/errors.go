// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

// Sentinel failure modes for Decode, matching spec.md §4.3/§7's
// DecodeError taxonomy.
var (
	ErrBadTag     = errors.New("codec: unknown type tag")
	ErrTruncated  = errors.New("codec: buffer truncated")
	ErrBadOffset  = errors.New("codec: out-of-bounds offset")
	ErrBadUTF8    = errors.New("codec: invalid utf-8 in string payload")
	ErrBadVersion = errors.New("codec: unsupported schema version")
)

// DecodeError wraps one of the sentinels above with the context that
// triggered it. errors.Is(err, codec.ErrBadTag) (etc.) still works
// because DecodeError implements Unwrap.
type DecodeError struct {
	Kind error
	Msg  string
}

func (e *DecodeError) Error() string {
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Msg
}

func (e *DecodeError) Unwrap() error { return e.Kind }

func newDecodeError(kind error, msg string) *DecodeError {
	return &DecodeError{Kind: kind, Msg: msg}
}
