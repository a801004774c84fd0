package encoder

import (
	"fmt"
	"log/slog"

	"github.com/brineflow/cvector/compress"
	"github.com/brineflow/cvector/encoding"
	"github.com/brineflow/cvector/errs"
	"github.com/brineflow/cvector/sourcebuf"
)

// IntegerEncoder encodes a format.FieldInteger bytestream: delta-of-delta
// columnar packing (encoding.DeltaEncoder) piped through a compress.Codec.
type IntegerEncoder struct {
	bytestreamNumber int
	buf              sourcebuf.IntBuffer
	raw              *encoding.DeltaEncoder
	codec            compress.Codec
	queue            *outputQueue
	recordIndex      int
	totalBytes       int
}

var _ Encoder = (*IntegerEncoder)(nil)

// NewIntegerEncoder creates an integer field encoder for bytestreamNumber,
// reading from buf and compressing with codec.
func NewIntegerEncoder(bytestreamNumber int, buf sourcebuf.IntBuffer, codec compress.Codec) *IntegerEncoder {
	return &IntegerEncoder{
		bytestreamNumber: bytestreamNumber,
		buf:              buf,
		raw:              encoding.NewDeltaEncoder(),
		codec:            codec,
		queue:            newOutputQueue(),
	}
}

func (e *IntegerEncoder) BytestreamNumber() int   { return e.bytestreamNumber }
func (e *IntegerEncoder) CurrentRecordIndex() int { return e.recordIndex }

var _ Rebindable = (*IntegerEncoder)(nil)

// RebindBuffer swaps this encoder's source buffer, leaving its delta chain
// and output queue intact.
func (e *IntegerEncoder) RebindBuffer(buf sourcebuf.FieldBuffer) error {
	ib, ok := buf.(sourcebuf.IntBuffer)
	if !ok {
		return fmt.Errorf("%w: bytestream %d expects an IntBuffer", errs.ErrInternal, e.bytestreamNumber)
	}
	e.buf = ib

	return nil
}

func (e *IntegerEncoder) ProcessRecords(k int) error {
	if k <= 0 {
		return nil
	}

	values := e.buf.ReadInts(k)
	if len(values) == 0 {
		return nil
	}

	e.raw.WriteSlice(values)
	e.recordIndex += len(values)

	return nil
}

func (e *IntegerEncoder) flush() error {
	raw := e.raw.TakeBytes()
	if len(raw) == 0 {
		return nil
	}

	compressed, err := e.codec.Compress(raw)
	if err != nil {
		return fmt.Errorf("compressing integer bytestream %d: %w", e.bytestreamNumber, err)
	}

	e.totalBytes += len(compressed)
	e.queue.Append(compressed)

	return nil
}

func (e *IntegerEncoder) OutputAvailable() int      { return e.queue.Available() }
func (e *IntegerEncoder) OutputRead(dst []byte) int { return e.queue.Read(dst) }

func (e *IntegerEncoder) RegisterFlushToOutput() {
	if err := e.flush(); err != nil {
		slog.Error("register flush failed", "bytestream", e.bytestreamNumber, "error", err)
	}
}

func (e *IntegerEncoder) BitsPerRecord() float64 {
	if e.recordIndex == 0 {
		return 0
	}

	return float64(e.totalBytes) * 8 / float64(e.recordIndex)
}

// Finish releases the encoder's internal buffers back to their pools. The
// encoder must not be used again afterward.
func (e *IntegerEncoder) Finish() {
	e.raw.Finish()
	e.queue.Finish()
}
