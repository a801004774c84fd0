package encoding

import (
	"math"

	"github.com/brineflow/cvector/endian"
	"github.com/brineflow/cvector/internal/pool"
)

// rawWord is the set of fixed-width numeric types RawEncoder can pack.
// Both are 8 bytes wide on the wire, which lets one generic implementation
// replace the teacher's separate TimestampRawEncoder and NumericRawEncoder.
type rawWord interface {
	int64 | float64
}

// RawEncoder packs a column of int64 or float64 values as fixed 8-byte
// little/big-endian words, with no compression or transform. It is the
// baseline encoding used when a field's values don't benefit from delta
// encoding (FloatEncoder) or when an encoder needs a raw fallback.
//
// Adapted from the teacher's TimestampRawEncoder/NumericRawEncoder, merged
// into one generic implementation since both encoded an 8-byte word with
// only the word's semantics (time vs float) differing.
type RawEncoder[T rawWord] struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var (
	_ ColumnarEncoder[int64]   = (*RawEncoder[int64])(nil)
	_ ColumnarEncoder[float64] = (*RawEncoder[float64])(nil)
)

// NewRawEncoder creates a raw fixed-width encoder using the given byte order.
func NewRawEncoder[T rawWord](engine endian.EndianEngine) *RawEncoder[T] {
	return &RawEncoder[T]{
		engine: engine,
		buf:    pool.GetEncoderQueue(),
	}
}

func (e *RawEncoder[T]) Write(val T) {
	e.count++
	e.buf.Grow(8)
	e.appendWord(val)
}

func (e *RawEncoder[T]) WriteSlice(values []T) {
	if len(values) == 0 {
		return
	}

	e.count += len(values)
	e.buf.Grow(len(values) * 8)
	for _, v := range values {
		e.appendWord(v)
	}
}

func (e *RawEncoder[T]) appendWord(val T) {
	idx := len(e.buf.B)
	e.buf.ExtendOrGrow(8)

	switch v := any(val).(type) {
	case int64:
		e.engine.PutUint64(e.buf.B[idx:idx+8], uint64(v)) //nolint:gosec
	case float64:
		e.engine.PutUint64(e.buf.B[idx:idx+8], math.Float64bits(v))
	}
}

func (e *RawEncoder[T]) Bytes() []byte { return e.buf.Bytes() }
func (e *RawEncoder[T]) Len() int      { return e.count }
func (e *RawEncoder[T]) Size() int     { return e.buf.Len() }

// TakeBytes returns a copy of the bytes accumulated since the last TakeBytes
// (or since creation) and empties the internal buffer, leaving Len/count
// unaffected.
func (e *RawEncoder[T]) TakeBytes() []byte {
	out := make([]byte, len(e.buf.B))
	copy(out, e.buf.B)
	e.buf.B = e.buf.B[:0]

	return out
}

func (e *RawEncoder[T]) Reset() {
	e.count = 0
}

func (e *RawEncoder[T]) Finish() {
	if e.buf != nil {
		pool.PutEncoderQueue(e.buf)
		e.buf = nil
	}
	e.count = 0
}
