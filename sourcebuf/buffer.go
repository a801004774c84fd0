// Package sourcebuf implements the caller-facing field buffer abstraction
// that the writer reads records from. Spec treats this as an out-of-scope
// external collaborator; this package ships the minimal concrete shape
// needed to exercise the writer end-to-end: a typed, slice-backed buffer
// with a read cursor the writer advances via ProcessRecords.
package sourcebuf

import "github.com/brineflow/cvector/format"

// FieldBuffer is the common shape every caller-supplied field buffer
// exposes, independent of its value type.
type FieldBuffer interface {
	// Path identifies the terminal field this buffer supplies values for,
	// resolved against the prototype to a bytestream number.
	Path() string

	// Type reports the field's declared type.
	Type() format.FieldType

	// Capacity returns the number of values available from the current
	// Rewind point.
	Capacity() int

	// Rewind resets the read cursor to position 0, as required at the start
	// of every Write call (spec §4.2).
	Rewind()

	// Position returns the number of values already consumed since the
	// last Rewind.
	Position() int
}

// IntBuffer supplies format.FieldInteger values. Scaled-integer fields are
// sourced from a FloatBuffer instead (see encoder.NewEncoder).
type IntBuffer interface {
	FieldBuffer
	// ReadInts consumes up to n values starting at the current cursor and
	// advances it. The returned slice may be shorter than n if fewer values
	// remain.
	ReadInts(n int) []int64
}

// FloatBuffer supplies format.FieldFloat and format.FieldScaledInteger values.
type FloatBuffer interface {
	FieldBuffer
	ReadFloats(n int) []float64
}

// StringBuffer supplies format.FieldString values.
type StringBuffer interface {
	FieldBuffer
	ReadStrings(n int) []string
}

type intSliceBuffer struct {
	path string
	data []int64
	pos  int
	typ  format.FieldType
}

// NewIntBuffer wraps data as an IntBuffer for path, reporting typ from
// Type. encoder.NewEncoder accepts an IntBuffer only for format.FieldInteger
// fields.
func NewIntBuffer(path string, typ format.FieldType, data []int64) IntBuffer {
	return &intSliceBuffer{path: path, typ: typ, data: data}
}

func (b *intSliceBuffer) Path() string          { return b.path }
func (b *intSliceBuffer) Type() format.FieldType { return b.typ }
func (b *intSliceBuffer) Capacity() int         { return len(b.data) }
func (b *intSliceBuffer) Position() int         { return b.pos }
func (b *intSliceBuffer) Rewind()               { b.pos = 0 }

func (b *intSliceBuffer) ReadInts(n int) []int64 {
	end := min(b.pos+n, len(b.data))
	out := b.data[b.pos:end]
	b.pos = end

	return out
}

type floatSliceBuffer struct {
	path string
	data []float64
	pos  int
	typ  format.FieldType
}

// NewFloatBuffer wraps data as a FloatBuffer for path. typ must be
// format.FieldFloat or format.FieldScaledInteger: a scaled-integer field is
// sourced from physical float64 values and quantized by its encoder, so it
// resolves against a FloatBuffer too (see encoder.NewEncoder).
func NewFloatBuffer(path string, typ format.FieldType, data []float64) FloatBuffer {
	return &floatSliceBuffer{path: path, typ: typ, data: data}
}

func (b *floatSliceBuffer) Path() string          { return b.path }
func (b *floatSliceBuffer) Type() format.FieldType { return b.typ }
func (b *floatSliceBuffer) Capacity() int         { return len(b.data) }
func (b *floatSliceBuffer) Position() int         { return b.pos }
func (b *floatSliceBuffer) Rewind()               { b.pos = 0 }

func (b *floatSliceBuffer) ReadFloats(n int) []float64 {
	end := min(b.pos+n, len(b.data))
	out := b.data[b.pos:end]
	b.pos = end

	return out
}

type stringSliceBuffer struct {
	path string
	data []string
	pos  int
}

// NewStringBuffer wraps data as a StringBuffer for path.
func NewStringBuffer(path string, data []string) StringBuffer {
	return &stringSliceBuffer{path: path, data: data}
}

func (b *stringSliceBuffer) Path() string          { return b.path }
func (b *stringSliceBuffer) Type() format.FieldType { return format.FieldString }
func (b *stringSliceBuffer) Capacity() int         { return len(b.data) }
func (b *stringSliceBuffer) Position() int         { return b.pos }
func (b *stringSliceBuffer) Rewind()               { b.pos = 0 }

func (b *stringSliceBuffer) ReadStrings(n int) []string {
	end := min(b.pos+n, len(b.data))
	out := b.data[b.pos:end]
	b.pos = end

	return out
}
