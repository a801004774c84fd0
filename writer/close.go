package writer

import (
	"log/slog"

	"github.com/brineflow/cvector/endian"
	"github.com/brineflow/cvector/internal/pool"
	"github.com/brineflow/cvector/section"
)

// Close drains every encoder, emits the section's single index packet,
// patches the section header, and records the section's location back
// into the compressed-vector node (§4.4). Idempotent: a second call is a
// no-op that performs no further I/O.
func (w *Writer) Close() error {
	if !w.isOpen {
		return nil
	}
	w.isOpen = false

	file := w.node.File()
	file.DecrWriterCount()

	for _, enc := range w.encoders {
		enc.RegisterFlushToOutput()
	}

	for w.totalOutputAvailable() > 0 {
		if _, err := w.packetWrite(); err != nil {
			return err
		}

		for _, enc := range w.encoders {
			enc.RegisterFlushToOutput()
		}
	}

	if _, err := w.packetWriteIndex(); err != nil {
		return err
	}

	sectionLogicalLength := file.UnusedLogicalStart() - w.sectionHeaderLogicalStart

	hdr := section.NewHeader()
	hdr.SectionLogicalLength = uint64(sectionLogicalLength)    //nolint:gosec
	hdr.DataPhysicalOffset = uint64(w.dataPhysicalOffset)      //nolint:gosec
	hdr.IndexPhysicalOffset = uint64(w.topIndexPhysicalOffset) //nolint:gosec

	if err := file.Seek(w.sectionHeaderLogicalStart); err != nil {
		return err
	}

	if _, err := file.Write(hdr.Bytes(endian.GetLittleEndianEngine())); err != nil {
		return err
	}

	w.node.SetRecordCount(w.recordCount)
	w.node.SetBinarySectionLogicalStart(w.sectionHeaderLogicalStart)

	for _, enc := range w.encoders {
		enc.Finish()
	}

	if w.dataPacketScratch != nil {
		pool.PutScratchBuffer(w.dataPacketScratch)
		w.dataPacketScratch = nil
	}

	return nil
}

// Flush forwards RegisterFlushToOutput to every encoder without performing
// any I/O (§4.5). Idempotent.
func (w *Writer) Flush() {
	for _, enc := range w.encoders {
		enc.RegisterFlushToOutput()
	}
}

// Release is a scoped-release guard: call it via defer to best-effort close
// the writer on scope exit. It never panics or returns an error, honoring a
// no-throw release contract (design note "Destructor-time close"). Any
// error from Close is passed to onError if one is given, and always logged
// via slog so it is never silently swallowed.
func (w *Writer) Release(onError ...func(error)) {
	err := w.Close()
	if err == nil {
		return
	}

	slog.Error("writer release: close failed", "error", err)

	for _, cb := range onError {
		cb(err)
	}
}
