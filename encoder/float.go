package encoder

import (
	"fmt"
	"log/slog"

	"github.com/brineflow/cvector/compress"
	"github.com/brineflow/cvector/encoding"
	"github.com/brineflow/cvector/endian"
	"github.com/brineflow/cvector/errs"
	"github.com/brineflow/cvector/sourcebuf"
)

// FloatEncoder encodes a format.FieldFloat bytestream: raw little-endian
// float64 columnar packing (encoding.RawEncoder) piped through a
// compress.Codec.
type FloatEncoder struct {
	bytestreamNumber int
	buf              sourcebuf.FloatBuffer
	raw              *encoding.RawEncoder[float64]
	codec            compress.Codec
	queue            *outputQueue
	recordIndex      int
	totalBytes       int
}

var _ Encoder = (*FloatEncoder)(nil)

// NewFloatEncoder creates a float field encoder for bytestreamNumber,
// reading from buf and compressing with codec.
func NewFloatEncoder(bytestreamNumber int, buf sourcebuf.FloatBuffer, codec compress.Codec) *FloatEncoder {
	return &FloatEncoder{
		bytestreamNumber: bytestreamNumber,
		buf:              buf,
		raw:              encoding.NewRawEncoder[float64](endian.GetLittleEndianEngine()),
		codec:            codec,
		queue:            newOutputQueue(),
	}
}

func (e *FloatEncoder) BytestreamNumber() int   { return e.bytestreamNumber }
func (e *FloatEncoder) CurrentRecordIndex() int { return e.recordIndex }

var _ Rebindable = (*FloatEncoder)(nil)

// RebindBuffer swaps this encoder's source buffer, leaving its accumulated
// output queue intact.
func (e *FloatEncoder) RebindBuffer(buf sourcebuf.FieldBuffer) error {
	fb, ok := buf.(sourcebuf.FloatBuffer)
	if !ok {
		return fmt.Errorf("%w: bytestream %d expects a FloatBuffer", errs.ErrInternal, e.bytestreamNumber)
	}
	e.buf = fb

	return nil
}

func (e *FloatEncoder) ProcessRecords(k int) error {
	if k <= 0 {
		return nil
	}

	values := e.buf.ReadFloats(k)
	if len(values) == 0 {
		return nil
	}

	e.raw.WriteSlice(values)
	e.recordIndex += len(values)

	return nil
}

func (e *FloatEncoder) flush() error {
	raw := e.raw.TakeBytes()
	if len(raw) == 0 {
		return nil
	}

	compressed, err := e.codec.Compress(raw)
	if err != nil {
		return fmt.Errorf("compressing float bytestream %d: %w", e.bytestreamNumber, err)
	}

	e.totalBytes += len(compressed)
	e.queue.Append(compressed)

	return nil
}

func (e *FloatEncoder) OutputAvailable() int      { return e.queue.Available() }
func (e *FloatEncoder) OutputRead(dst []byte) int { return e.queue.Read(dst) }

func (e *FloatEncoder) RegisterFlushToOutput() {
	if err := e.flush(); err != nil {
		slog.Error("register flush failed", "bytestream", e.bytestreamNumber, "error", err)
	}
}

func (e *FloatEncoder) BitsPerRecord() float64 {
	if e.recordIndex == 0 {
		return 0
	}

	return float64(e.totalBytes) * 8 / float64(e.recordIndex)
}

func (e *FloatEncoder) Finish() {
	e.raw.Finish()
	e.queue.Finish()
}
