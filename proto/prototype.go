// Package proto implements the schema-tree external collaborator spec.md
// treats as an out-of-scope interface: it resolves a caller-supplied field
// path to a terminal bytestream number. This package ships the minimal
// concrete shape the writer needs to exercise that contract end-to-end — a
// flat, depth-first-ordered list of terminal fields — with no XML layer and
// no nesting beyond what bytestream-number resolution requires.
package proto

import (
	"fmt"

	"github.com/brineflow/cvector/errs"
	"github.com/brineflow/cvector/format"
)

// Field describes one terminal field of a record schema.
type Field struct {
	// Path uniquely identifies the field within the prototype.
	Path string

	// Type declares how the field's values are encoded into a bytestream.
	Type format.FieldType

	// Scale and Offset apply to format.FieldScaledInteger fields only: the
	// encoder transforms each value as (raw - Offset) / Scale before delta
	// encoding. Unused for other field types.
	Scale  float64
	Offset float64
}

// Prototype is an ordered, flat schema tree: a depth-first traversal of its
// terminal fields is simply the declaration order, and each field's
// position in that order is its bytestream number.
type Prototype struct {
	fields []Field
	byPath map[string]int
}

// NewPrototype builds a prototype from fields in bytestream-number order.
// Fails with errs.ErrBadAPIArgument if fields is empty or any path repeats.
func NewPrototype(fields ...Field) (*Prototype, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: prototype must declare at least one terminal field", errs.ErrBadAPIArgument)
	}

	byPath := make(map[string]int, len(fields))
	for i, f := range fields {
		if _, dup := byPath[f.Path]; dup {
			return nil, fmt.Errorf("%w: duplicate field path %q", errs.ErrBadAPIArgument, f.Path)
		}
		byPath[f.Path] = i
	}

	return &Prototype{fields: fields, byPath: byPath}, nil
}

// Fields returns the prototype's terminal fields in bytestream-number order.
// The returned slice must not be modified.
func (p *Prototype) Fields() []Field {
	return p.fields
}

// Len returns the number of terminal fields, i.e. N in spec.md's notation.
func (p *Prototype) Len() int {
	return len(p.fields)
}

// Resolve looks up path's bytestream number and field. ok is false if path
// is not a terminal field of this prototype.
func (p *Prototype) Resolve(path string) (field Field, bytestreamNumber int, ok bool) {
	idx, found := p.byPath[path]
	if !found {
		return Field{}, 0, false
	}

	return p.fields[idx], idx, true
}
