// Package encoding defines the reusable columnar-encoding abstraction that
// every field encoder builds on, plus its concrete implementations: a
// generic raw word packer (used for float fields), a delta-of-delta encoder
// (used for integer and scaled-integer fields), and a length-prefixed string
// encoder.
//
// There is no decoder side here: the reader is an external collaborator
// out of scope for this module (see spec §1).
package encoding

// ColumnarEncoder accumulates a sequence of same-typed values into a single
// growing byte buffer, one column at a time. Reset does not drain the
// buffer; the concrete encoders in this package also expose TakeBytes, which
// the field encoders' RegisterFlushToOutput uses to drain it while keeping
// the encoding state.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded byte slice accumulated so far.
	// The returned slice is valid until the next call to Write, WriteSlice, or Reset.
	// The caller should not modify the returned slice.
	Bytes() []byte

	// Len returns the number of values encoded since the last Reset.
	Len() int

	// Size returns the number of bytes currently held in the internal buffer.
	Size() int

	// Reset clears the internal encoder state but keeps the accumulated data in the
	// internal buffer, allowing it to be reused for a new sequence of values.
	Reset()

	// Finish returns the internal buffer to its pool. After Finish, the encoder
	// must not be used again; create a new one to encode further data.
	Finish()

	// Write encodes a single value. For bulk writes, prefer WriteSlice.
	Write(data T)

	// WriteSlice encodes a slice of values in one batched operation.
	WriteSlice(values []T)
}
