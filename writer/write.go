package writer

import (
	"fmt"

	"github.com/brineflow/cvector/errs"
	"github.com/brineflow/cvector/section"
	"github.com/brineflow/cvector/sourcebuf"
)

// writeBatchCap bounds how many records processRecords consumes per encoder
// between packet-size checks (§4.2's "pacing knob, not a correctness
// boundary").
const writeBatchCap = 50

// Write appends n records, driving every encoder forward and emitting data
// packets as they fill past TargetPacketSize (§4.2). n == 0 still emits a
// header-only data packet so the section always has at least one.
func (w *Writer) Write(n int64) error {
	if !w.isOpen {
		return errs.ErrWriterNotOpen
	}

	if n == 0 {
		if _, err := w.packetWriteZeroRecords(); err != nil {
			return err
		}

		return nil
	}

	if n < 0 {
		return fmt.Errorf("%w: record count must not be negative", errs.ErrBadAPIArgument)
	}

	for _, buf := range w.fieldBuffers {
		if int64(buf.Capacity()) < n {
			return fmt.Errorf("%w: requested %d records exceeds buffer capacity %d for field %q",
				errs.ErrBadAPIArgument, n, buf.Capacity(), buf.Path())
		}
	}

	for _, buf := range w.fieldBuffers {
		buf.Rewind()
	}

	endRecordIndex := w.recordCount + n

	for !w.allEncodersReached(endRecordIndex) {
		if w.currentPacketSize() >= section.TargetPacketSize {
			if _, err := w.packetWrite(); err != nil {
				return err
			}

			continue
		}

		for _, enc := range w.encoders {
			remaining := endRecordIndex - int64(enc.CurrentRecordIndex())
			if remaining <= 0 {
				continue
			}

			batch := remaining
			if batch > writeBatchCap {
				batch = writeBatchCap
			}

			if err := enc.ProcessRecords(int(batch)); err != nil {
				return err
			}
		}

		// One compression pass per batch round, not one per encoder call:
		// each encoder's codec sees its accumulated raw bytes as a single
		// unit, so the block it produces is never split across a queue
		// read before packetWrite drains it whole (§4.2, §4.3.1).
		for _, enc := range w.encoders {
			enc.RegisterFlushToOutput()
		}
	}

	w.recordCount += n

	return nil
}

func (w *Writer) allEncodersReached(endRecordIndex int64) bool {
	for _, enc := range w.encoders {
		if int64(enc.CurrentRecordIndex()) < endRecordIndex {
			return false
		}
	}

	return true
}

// WriteWithBuffers rebinds the writer to buffers via SetBuffers, then
// writes n records against the new binding in one call (supplements the
// distilled spec with the original's write(sbufs, n) overload).
func (w *Writer) WriteWithBuffers(buffers []sourcebuf.FieldBuffer, n int64) error {
	if err := w.SetBuffers(buffers); err != nil {
		return err
	}

	return w.Write(n)
}
