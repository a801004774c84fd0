// Package writer implements the compressed-vector section writer: the
// multi-stream packetization algorithm that drains a set of independently
// producing field encoders into size-bounded, 4-byte-aligned, self-
// describing data packets, plus the section lifecycle that reserves a
// header slot, tracks the first data packet's offset, and patches the
// header back at close.
package writer

import (
	"fmt"
	"sort"

	"github.com/brineflow/cvector/compress"
	"github.com/brineflow/cvector/encoder"
	"github.com/brineflow/cvector/errs"
	"github.com/brineflow/cvector/internal/fieldset"
	"github.com/brineflow/cvector/internal/options"
	"github.com/brineflow/cvector/internal/pool"
	"github.com/brineflow/cvector/node"
	"github.com/brineflow/cvector/proto"
	"github.com/brineflow/cvector/section"
	"github.com/brineflow/cvector/sourcebuf"
)

// Writer writes one compressed-vector section to a host file, bound to one
// compressed-vector node for the lifetime of the section.
type Writer struct {
	isOpen bool

	sectionHeaderLogicalStart int64
	dataPhysicalOffset        int64
	topIndexPhysicalOffset    int64

	recordCount       int64
	dataPacketsCount  int
	indexPacketsCount int

	node         *node.CompressedVectorNode
	prototype    *proto.Prototype
	fieldBuffers []sourcebuf.FieldBuffer
	fieldTypes   []proto.Field      // caller-order field metadata, for SetBuffers compatibility checks
	encoders     []encoder.Encoder // sorted ascending by bytestream number

	cfg *config

	dataPacketScratch *pool.ByteBuffer
}

// NewWriter constructs a writer over n's prototype and host file, bound to
// buffers. buffers must cover every terminal field of the prototype exactly
// once; see §4.1.
func NewWriter(n *node.CompressedVectorNode, buffers []sourcebuf.FieldBuffer, opts ...Option) (*Writer, error) {
	if len(buffers) == 0 {
		return nil, fmt.Errorf("%w: buffer sequence must not be empty", errs.ErrBadAPIArgument)
	}

	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	prototype := n.Prototype()

	encoders, fieldTypes, err := buildEncoders(prototype, buffers, cfg)
	if err != nil {
		return nil, err
	}

	if err := n.Bind(); err != nil {
		return nil, err
	}

	file := n.File()

	headerStart, err := file.AllocateSpace(int64(section.HeaderSize), true)
	if err != nil {
		return nil, fmt.Errorf("reserving section header: %w", err)
	}

	file.IncrWriterCount()

	w := &Writer{
		isOpen:                    true,
		sectionHeaderLogicalStart: headerStart,
		node:                      n,
		prototype:                 prototype,
		fieldBuffers:              buffers,
		fieldTypes:                fieldTypes,
		encoders:                  encoders,
		cfg:                       cfg,
		dataPacketScratch:         pool.GetScratchBuffer(),
	}

	return w, nil
}

// buildEncoders validates buffers against prototype (every terminal field
// covered exactly once, §4.1 steps 2-3) and constructs one encoder per
// buffer via the factory, sorted ascending by bytestream number (step 4-5).
// Returns the encoders alongside the resolved proto.Field for each buffer in
// caller order, for later SetBuffers compatibility checks.
func buildEncoders(prototype *proto.Prototype, buffers []sourcebuf.FieldBuffer, cfg *config) ([]encoder.Encoder, []proto.Field, error) {
	tracker := fieldset.NewTracker()
	type indexed struct {
		bsn int
		enc encoder.Encoder
	}

	built := make([]indexed, 0, len(buffers))
	fieldTypes := make([]proto.Field, 0, len(buffers))

	for _, buf := range buffers {
		path := buf.Path()

		field, bsn, ok := prototype.Resolve(path)
		if !ok {
			return nil, nil, fmt.Errorf("%w: buffer path %q is not a terminal field of the prototype", errs.ErrBuffersNotCompatible, path)
		}

		if err := tracker.Add(path); err != nil {
			return nil, nil, err
		}

		codec, err := codecFor(cfg, field)
		if err != nil {
			return nil, nil, err
		}

		enc, err := encoder.NewEncoder(field, bsn, buf, codec)
		if err != nil {
			return nil, nil, err
		}

		built = append(built, indexed{bsn: bsn, enc: enc})
		fieldTypes = append(fieldTypes, field)
	}

	if tracker.Count() != prototype.Len() {
		return nil, nil, fmt.Errorf("%w: buffer sequence covers %d of %d terminal fields", errs.ErrBuffersNotCompatible, tracker.Count(), prototype.Len())
	}

	sort.Slice(built, func(i, j int) bool { return built[i].bsn < built[j].bsn })

	if cfg.deepValidate {
		for i, ix := range built {
			if ix.bsn != i {
				return nil, nil, fmt.Errorf("%w: bytestream numbers are not contiguous from 0", errs.ErrInternal)
			}
		}
	}

	encoders := make([]encoder.Encoder, len(built))
	for i, ix := range built {
		encoders[i] = ix.enc
	}

	return encoders, fieldTypes, nil
}

// SetBuffers re-binds the writer to a new buffer sequence. Permitted only
// if len(buffers) matches the previous sequence and each new buffer is
// pairwise-compatible (same field path, same declared type) with the
// buffer previously bound at the same position (§4.1's "re-entering
// setBuffers" clause). Encoder accumulator state (delta chain, output
// queue) is preserved across the swap.
func (w *Writer) SetBuffers(buffers []sourcebuf.FieldBuffer) error {
	if !w.isOpen {
		return errs.ErrWriterNotOpen
	}

	if len(buffers) != len(w.fieldBuffers) {
		return fmt.Errorf("%w: buffer sequence length changed from %d to %d", errs.ErrBuffersNotCompatible, len(w.fieldBuffers), len(buffers))
	}

	for i, buf := range buffers {
		prev := w.fieldTypes[i]
		if buf.Path() != prev.Path || buf.Type() != prev.Type {
			return fmt.Errorf("%w: buffer at position %d is not compatible with the previously bound field %q",
				errs.ErrBuffersNotCompatible, i, prev.Path)
		}
	}

	for _, buf := range buffers {
		_, bsn, ok := w.prototype.Resolve(buf.Path())
		if !ok {
			return fmt.Errorf("%w: buffer path %q is not a terminal field of the prototype", errs.ErrBuffersNotCompatible, buf.Path())
		}

		rb, ok := w.encoders[bsn].(encoder.Rebindable)
		if !ok {
			return fmt.Errorf("%w: encoder for bytestream %d does not support rebinding", errs.ErrInternal, bsn)
		}
		if err := rb.RebindBuffer(buf); err != nil {
			return err
		}
	}

	w.fieldBuffers = buffers

	return nil
}

// IsOpen reports whether the writer is still accepting writes.
func (w *Writer) IsOpen() bool {
	return w.isOpen
}

// RecordCount returns the total number of records successfully ingested so
// far.
func (w *Writer) RecordCount() int64 {
	return w.recordCount
}

func codecFor(cfg *config, field proto.Field) (compress.Codec, error) {
	return compress.CreateCodec(cfg.codecFor(field.Path), field.Path)
}
