package encoding

import (
	"github.com/brineflow/cvector/endian"
	"github.com/brineflow/cvector/internal/pool"
)

// VarStringEncoder packs a column of string field values as a sequence of
// [Len uint16][bytes] records, one per value.
//
// Adapted from the teacher's internal/encoding.EncodeMetricNames framing,
// narrowed from "one length-prefixed list payload" to "one columnar encoder
// appending a length-prefixed record per Write/WriteSlice call", matching
// the shape every other field encoder in this package exposes.
type VarStringEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[string] = (*VarStringEncoder)(nil)

// NewVarStringEncoder creates a length-prefixed string encoder using the
// given byte order for the length field.
func NewVarStringEncoder(engine endian.EndianEngine) *VarStringEncoder {
	return &VarStringEncoder{engine: engine, buf: pool.GetEncoderQueue()}
}

func (e *VarStringEncoder) Write(val string) {
	e.writeOne(val)
}

func (e *VarStringEncoder) WriteSlice(values []string) {
	for _, v := range values {
		e.writeOne(v)
	}
}

func (e *VarStringEncoder) writeOne(val string) {
	e.count++
	e.buf.Grow(2 + len(val))

	idx := len(e.buf.B)
	e.buf.ExtendOrGrow(2)
	e.engine.PutUint16(e.buf.B[idx:idx+2], uint16(len(val))) //nolint:gosec
	e.buf.MustWrite([]byte(val))
}

func (e *VarStringEncoder) Bytes() []byte { return e.buf.Bytes() }
func (e *VarStringEncoder) Len() int      { return e.count }
func (e *VarStringEncoder) Size() int     { return e.buf.Len() }

// TakeBytes returns a copy of the bytes accumulated since the last TakeBytes
// (or since creation) and empties the internal buffer, leaving Len/count
// unaffected. Used by the encoder package to drain a raw column into its
// compressed output queue without disturbing per-value bookkeeping.
func (e *VarStringEncoder) TakeBytes() []byte {
	out := make([]byte, len(e.buf.B))
	copy(out, e.buf.B)
	e.buf.B = e.buf.B[:0]

	return out
}

func (e *VarStringEncoder) Reset() {
	e.count = 0
}

func (e *VarStringEncoder) Finish() {
	if e.buf != nil {
		pool.PutEncoderQueue(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// MaxStringLen is the largest string value VarStringEncoder can carry in one
// record, bounded by its uint16 length field.
const MaxStringLen = 65535
