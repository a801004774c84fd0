package encoding

import (
	"encoding/binary"

	"github.com/brineflow/cvector/internal/pool"
)

// DeltaEncoder packs a column of int64 field values using delta-of-delta
// encoding with zigzag and varint compression: the first value is stored in
// full, the second as a delta from the first, and every value after that as
// the difference between consecutive deltas. Regular or near-regular integer
// sequences collapse to roughly one byte per value.
//
// Adapted from the teacher's TimestampDeltaEncoder, generalized from "Unix
// microsecond timestamp" to "any int64 field value" — the algorithm is
// unchanged, only the domain label differs.
type DeltaEncoder struct {
	prevValue int64
	prevDelta int64
	temp      [binary.MaxVarintLen64]byte
	buf       *pool.ByteBuffer
	count     int
}

var _ ColumnarEncoder[int64] = (*DeltaEncoder)(nil)

// NewDeltaEncoder creates a delta-of-delta encoder for an int64 field column.
func NewDeltaEncoder() *DeltaEncoder {
	return &DeltaEncoder{buf: pool.GetEncoderQueue()}
}

func (e *DeltaEncoder) Write(value int64) {
	e.count++
	e.buf.Grow(binary.MaxVarintLen64)

	if e.count == 1 {
		n := binary.PutUvarint(e.temp[:], uint64(value)) //nolint:gosec
		e.buf.MustWrite(e.temp[:n])
		e.prevValue = value

		return
	}

	delta := value - e.prevValue

	var valToEncode int64
	if e.count == 2 {
		valToEncode = delta
	} else {
		valToEncode = delta - e.prevDelta
	}
	e.prevDelta = delta
	e.prevValue = value

	zigzag := (valToEncode << 1) ^ (valToEncode >> 63)
	n := binary.PutUvarint(e.temp[:], uint64(zigzag)) //nolint:gosec
	e.buf.MustWrite(e.temp[:n])
}

func (e *DeltaEncoder) WriteSlice(values []int64) {
	for _, v := range values {
		e.Write(v)
	}
}

func (e *DeltaEncoder) Bytes() []byte { return e.buf.Bytes() }
func (e *DeltaEncoder) Len() int      { return e.count }
func (e *DeltaEncoder) Size() int     { return e.buf.Len() }

// TakeBytes returns a copy of the bytes accumulated since the last TakeBytes
// (or since creation) and empties the internal buffer. The delta chain
// (prevValue/prevDelta) is left intact so encoding continues seamlessly
// across the flush boundary.
func (e *DeltaEncoder) TakeBytes() []byte {
	out := make([]byte, len(e.buf.B))
	copy(out, e.buf.B)
	e.buf.B = e.buf.B[:0]

	return out
}

// Reset clears the delta chain and the value count so the next Write starts
// a fresh sequence (its value stored in full), while keeping previously
// accumulated bytes in the buffer.
func (e *DeltaEncoder) Reset() {
	e.prevValue = 0
	e.prevDelta = 0
	e.count = 0
}

func (e *DeltaEncoder) Finish() {
	if e.buf != nil {
		pool.PutEncoderQueue(e.buf)
		e.buf = nil
	}
	e.prevValue = 0
	e.prevDelta = 0
	e.count = 0
}
