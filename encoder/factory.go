package encoder

import (
	"fmt"

	"github.com/brineflow/cvector/compress"
	"github.com/brineflow/cvector/errs"
	"github.com/brineflow/cvector/format"
	"github.com/brineflow/cvector/proto"
	"github.com/brineflow/cvector/sourcebuf"
)

// NewEncoder builds the concrete Encoder for field, reading from buf and
// compressing with codec. buf's concrete type must match field.Type:
// format.FieldInteger and format.FieldScaledInteger both expect an
// sourcebuf.IntBuffer or sourcebuf.FloatBuffer respectively — scaled
// integers are sourced from physical float64 values, not pre-quantized
// integers, so they resolve against sourcebuf.FloatBuffer.
func NewEncoder(field proto.Field, bytestreamNumber int, buf sourcebuf.FieldBuffer, codec compress.Codec) (Encoder, error) {
	switch field.Type {
	case format.FieldInteger:
		ib, ok := buf.(sourcebuf.IntBuffer)
		if !ok {
			return nil, fmt.Errorf("%w: field %q is Integer but buffer is not an IntBuffer", errs.ErrInternal, field.Path)
		}

		return NewIntegerEncoder(bytestreamNumber, ib, codec), nil

	case format.FieldScaledInteger:
		fb, ok := buf.(sourcebuf.FloatBuffer)
		if !ok {
			return nil, fmt.Errorf("%w: field %q is ScaledInteger but buffer is not a FloatBuffer", errs.ErrInternal, field.Path)
		}

		return NewScaledIntegerEncoder(bytestreamNumber, fb, field.Scale, field.Offset, codec)

	case format.FieldFloat:
		fb, ok := buf.(sourcebuf.FloatBuffer)
		if !ok {
			return nil, fmt.Errorf("%w: field %q is Float but buffer is not a FloatBuffer", errs.ErrInternal, field.Path)
		}

		return NewFloatEncoder(bytestreamNumber, fb, codec), nil

	case format.FieldString:
		sb, ok := buf.(sourcebuf.StringBuffer)
		if !ok {
			return nil, fmt.Errorf("%w: field %q is String but buffer is not a StringBuffer", errs.ErrInternal, field.Path)
		}

		return NewStringEncoder(bytestreamNumber, sb, codec), nil

	default:
		return nil, fmt.Errorf("%w: field %q has type %s", errs.ErrUnknownFieldType, field.Path, field.Type)
	}
}
