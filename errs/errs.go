// Package errs collects the sentinel errors surfaced by this module's public
// API. Call sites wrap these with context via fmt.Errorf("%w: ...", ...),
// the same idiom used throughout the teacher module's blob package.
package errs

import "errors"

var (
	// ErrBadAPIArgument is returned when a caller-supplied argument violates
	// a documented precondition: an empty buffer set, or a requested record
	// count exceeding a bound buffer's capacity.
	ErrBadAPIArgument = errors.New("bad API argument")

	// ErrBuffersNotCompatible is returned when SetBuffers is given a buffer
	// sequence that does not match the prototype, or that is incompatible
	// in shape with a previously bound sequence.
	ErrBuffersNotCompatible = errors.New("buffers not compatible")

	// ErrWriterNotOpen is returned by any write-like operation invoked after
	// the writer has been closed.
	ErrWriterNotOpen = errors.New("writer not open")

	// ErrInternal indicates an invariant the implementation itself should
	// have maintained was violated: a bytestream index mismatch, an
	// encoder drained a different byte count than requested, or padding
	// that would overflow the packet bound. These are implementation bugs,
	// never user errors.
	ErrInternal = errors.New("internal invariant violated")

	// ErrAlreadyWritten is returned when constructing a writer against a
	// compressed-vector node that already has a binary section recorded.
	// Resolves the original source's open question about rejecting a
	// second write to an already-written compressed vector.
	ErrAlreadyWritten = errors.New("compressed vector already written")

	// ErrUnknownFieldType is returned by the encoder factory when asked to
	// build an encoder for a FieldType it does not recognize.
	ErrUnknownFieldType = errors.New("unknown field type")

	// ErrInvalidHeaderSize is returned when parsing a fixed-size section or
	// packet header from a byte slice of the wrong length.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidPacketLayout is returned when a packet's declared length
	// disagrees with the bytes actually laid out for it.
	ErrInvalidPacketLayout = errors.New("invalid packet layout")
)
