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

// StringEncoder encodes a format.FieldString bytestream: length-prefixed
// columnar packing (encoding.VarStringEncoder) piped through a
// compress.Codec.
type StringEncoder struct {
	bytestreamNumber int
	buf              sourcebuf.StringBuffer
	raw              *encoding.VarStringEncoder
	codec            compress.Codec
	queue            *outputQueue
	recordIndex      int
	totalBytes       int
}

var _ Encoder = (*StringEncoder)(nil)

// NewStringEncoder creates a string field encoder for bytestreamNumber,
// reading from buf and compressing with codec.
func NewStringEncoder(bytestreamNumber int, buf sourcebuf.StringBuffer, codec compress.Codec) *StringEncoder {
	return &StringEncoder{
		bytestreamNumber: bytestreamNumber,
		buf:              buf,
		raw:              encoding.NewVarStringEncoder(endian.GetLittleEndianEngine()),
		codec:            codec,
		queue:            newOutputQueue(),
	}
}

func (e *StringEncoder) BytestreamNumber() int   { return e.bytestreamNumber }
func (e *StringEncoder) CurrentRecordIndex() int { return e.recordIndex }

var _ Rebindable = (*StringEncoder)(nil)

// RebindBuffer swaps this encoder's source buffer, leaving its accumulated
// output queue intact.
func (e *StringEncoder) RebindBuffer(buf sourcebuf.FieldBuffer) error {
	sb, ok := buf.(sourcebuf.StringBuffer)
	if !ok {
		return fmt.Errorf("%w: bytestream %d expects a StringBuffer", errs.ErrInternal, e.bytestreamNumber)
	}
	e.buf = sb

	return nil
}

func (e *StringEncoder) ProcessRecords(k int) error {
	if k <= 0 {
		return nil
	}

	values := e.buf.ReadStrings(k)
	if len(values) == 0 {
		return nil
	}

	for _, v := range values {
		if len(v) > encoding.MaxStringLen {
			return fmt.Errorf("%w: string value of %d bytes exceeds max %d on bytestream %d",
				errs.ErrBadAPIArgument, len(v), encoding.MaxStringLen, e.bytestreamNumber)
		}
	}

	e.raw.WriteSlice(values)
	e.recordIndex += len(values)

	return nil
}

func (e *StringEncoder) flush() error {
	raw := e.raw.TakeBytes()
	if len(raw) == 0 {
		return nil
	}

	compressed, err := e.codec.Compress(raw)
	if err != nil {
		return fmt.Errorf("compressing string bytestream %d: %w", e.bytestreamNumber, err)
	}

	e.totalBytes += len(compressed)
	e.queue.Append(compressed)

	return nil
}

func (e *StringEncoder) OutputAvailable() int      { return e.queue.Available() }
func (e *StringEncoder) OutputRead(dst []byte) int { return e.queue.Read(dst) }

func (e *StringEncoder) RegisterFlushToOutput() {
	if err := e.flush(); err != nil {
		slog.Error("register flush failed", "bytestream", e.bytestreamNumber, "error", err)
	}
}

func (e *StringEncoder) BitsPerRecord() float64 {
	if e.recordIndex == 0 {
		return 0
	}

	return float64(e.totalBytes) * 8 / float64(e.recordIndex)
}

func (e *StringEncoder) Finish() {
	e.raw.Finish()
	e.queue.Finish()
}
