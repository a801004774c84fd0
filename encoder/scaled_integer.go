package encoder

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/brineflow/cvector/compress"
	"github.com/brineflow/cvector/encoding"
	"github.com/brineflow/cvector/errs"
	"github.com/brineflow/cvector/sourcebuf"
)

// ScaledIntegerEncoder encodes a format.FieldScaledInteger bytestream.
// Physical float64 values arrive bounded by a fixed scale/offset pair (as
// E57's scaledInteger fields define them); each value is quantized to an
// int64 via round((v-offset)/scale) before being handed to the same
// delta-of-delta core an ordinary integer bytestream uses. There is no
// teacher analog for the quantization step — it is new code layered on the
// adapted delta core.
type ScaledIntegerEncoder struct {
	bytestreamNumber int
	buf              sourcebuf.FloatBuffer
	scale            float64
	offset           float64
	raw              *encoding.DeltaEncoder
	codec            compress.Codec
	queue            *outputQueue
	recordIndex      int
	totalBytes       int
}

var _ Encoder = (*ScaledIntegerEncoder)(nil)

// NewScaledIntegerEncoder creates a scaled-integer field encoder for
// bytestreamNumber, reading physical float64 values from buf, quantizing
// them with scale and offset, and compressing the quantized column with
// codec. Returns errs.ErrBadAPIArgument if scale is zero.
func NewScaledIntegerEncoder(
	bytestreamNumber int,
	buf sourcebuf.FloatBuffer,
	scale, offset float64,
	codec compress.Codec,
) (*ScaledIntegerEncoder, error) {
	if scale == 0 {
		return nil, fmt.Errorf("%w: scale must be non-zero", errs.ErrBadAPIArgument)
	}

	return &ScaledIntegerEncoder{
		bytestreamNumber: bytestreamNumber,
		buf:              buf,
		scale:            scale,
		offset:           offset,
		raw:              encoding.NewDeltaEncoder(),
		codec:            codec,
		queue:            newOutputQueue(),
	}, nil
}

func (e *ScaledIntegerEncoder) BytestreamNumber() int   { return e.bytestreamNumber }
func (e *ScaledIntegerEncoder) CurrentRecordIndex() int { return e.recordIndex }

var _ Rebindable = (*ScaledIntegerEncoder)(nil)

// RebindBuffer swaps this encoder's source buffer, leaving its delta chain
// and output queue intact. scale and offset are unaffected.
func (e *ScaledIntegerEncoder) RebindBuffer(buf sourcebuf.FieldBuffer) error {
	fb, ok := buf.(sourcebuf.FloatBuffer)
	if !ok {
		return fmt.Errorf("%w: bytestream %d expects a FloatBuffer", errs.ErrInternal, e.bytestreamNumber)
	}
	e.buf = fb

	return nil
}

func (e *ScaledIntegerEncoder) ProcessRecords(k int) error {
	if k <= 0 {
		return nil
	}

	values := e.buf.ReadFloats(k)
	if len(values) == 0 {
		return nil
	}

	for _, v := range values {
		e.raw.Write(e.quantize(v))
	}
	e.recordIndex += len(values)

	return nil
}

func (e *ScaledIntegerEncoder) quantize(v float64) int64 {
	return int64(math.Round((v - e.offset) / e.scale))
}

func (e *ScaledIntegerEncoder) flush() error {
	raw := e.raw.TakeBytes()
	if len(raw) == 0 {
		return nil
	}

	compressed, err := e.codec.Compress(raw)
	if err != nil {
		return fmt.Errorf("compressing scaled integer bytestream %d: %w", e.bytestreamNumber, err)
	}

	e.totalBytes += len(compressed)
	e.queue.Append(compressed)

	return nil
}

func (e *ScaledIntegerEncoder) OutputAvailable() int      { return e.queue.Available() }
func (e *ScaledIntegerEncoder) OutputRead(dst []byte) int { return e.queue.Read(dst) }

func (e *ScaledIntegerEncoder) RegisterFlushToOutput() {
	if err := e.flush(); err != nil {
		slog.Error("register flush failed", "bytestream", e.bytestreamNumber, "error", err)
	}
}

func (e *ScaledIntegerEncoder) BitsPerRecord() float64 {
	if e.recordIndex == 0 {
		return 0
	}

	return float64(e.totalBytes) * 8 / float64(e.recordIndex)
}

func (e *ScaledIntegerEncoder) Finish() {
	e.raw.Finish()
	e.queue.Finish()
}
