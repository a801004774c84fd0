// Package encoder supplies the concrete field encoders spec.md's Encoder
// contract leaves abstract ("integer, scaled integer, float, string...
// via a factory external to this spec"). Each encoder owns one bytestream:
// it consumes records from a bound sourcebuf.FieldBuffer, encodes them with
// a field-type-appropriate columnar strategy, and on RegisterFlushToOutput
// compresses everything accumulated since the last flush in one
// compress.Codec.Compress call, queuing the result for the writer to drain
// via OutputRead.
package encoder

import "github.com/brineflow/cvector/sourcebuf"

// Rebindable is an additional capability every concrete encoder in this
// package implements, beyond the base Encoder contract: it lets the writer
// swap in a new source buffer for the same bytestream (SetBuffers'
// re-entry path) without discarding the encoder's accumulated delta-chain
// or output-queue state. Returns errs.ErrInternal if buf's concrete type
// does not match the encoder's field type.
type Rebindable interface {
	RebindBuffer(buf sourcebuf.FieldBuffer) error
}

// Encoder is the external contract spec.md §3 assigns to every field
// encoder. The writer package depends only on this interface; it never
// knows which concrete encoder it is driving.
type Encoder interface {
	// BytestreamNumber returns this encoder's stable position in the
	// prototype's depth-first terminal-field traversal.
	BytestreamNumber() int

	// CurrentRecordIndex returns the count of records already consumed
	// from the bound field buffer.
	CurrentRecordIndex() int

	// ProcessRecords consumes up to k records from the bound field buffer
	// and encodes them into the raw columnar accumulator. Returns fewer than
	// k consumed with no error if the buffer runs out first. Compression and
	// queuing happen separately, via RegisterFlushToOutput, so that one
	// codec.Compress call always covers everything accumulated since the
	// last flush rather than one call per ProcessRecords batch.
	ProcessRecords(k int) error

	// OutputAvailable returns the number of compressed bytes currently
	// queued for drain.
	OutputAvailable() int

	// OutputRead dequeues up to len(dst) bytes into dst and returns the
	// number of bytes copied.
	OutputRead(dst []byte) int

	// RegisterFlushToOutput commits any partial register/word state into
	// the output queue. Idempotent: a second call with nothing pending does
	// nothing.
	RegisterFlushToOutput()

	// BitsPerRecord is an advisory estimate of the encoder's average output
	// size per record; callers may ignore it.
	BitsPerRecord() float64

	// Finish releases any pooled resources the encoder holds. Called once,
	// after the writer has drained all of its output.
	Finish()
}
