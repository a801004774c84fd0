package encoder

import (
	"testing"

	"github.com/brineflow/cvector/compress"
	"github.com/brineflow/cvector/format"
	"github.com/brineflow/cvector/sourcebuf"
	"github.com/stretchr/testify/require"
)

func TestNewScaledIntegerEncoder_RejectsZeroScale(t *testing.T) {
	buf := sourcebuf.NewFloatBuffer("pos/x", format.FieldScaledInteger, []float64{1, 2})

	_, err := NewScaledIntegerEncoder(0, buf, 0, 0, compress.NewNoOpCompressor())
	require.Error(t, err)
}

func TestScaledIntegerEncoder_Quantizes(t *testing.T) {
	// scale=0.001, offset=0 quantizes millimeter-precision physical values.
	buf := sourcebuf.NewFloatBuffer("pos/x", format.FieldScaledInteger, []float64{1.000, 1.001, 1.003, 1.002})
	enc, err := NewScaledIntegerEncoder(2, buf, 0.001, 0, compress.NewNoOpCompressor())
	require.NoError(t, err)
	defer enc.Finish()

	require.Equal(t, 2, enc.BytestreamNumber())
	require.NoError(t, enc.ProcessRecords(4))
	require.Equal(t, 4, enc.CurrentRecordIndex())
	require.Equal(t, 0, enc.OutputAvailable())

	enc.RegisterFlushToOutput()
	require.Positive(t, enc.OutputAvailable())
}

func TestScaledIntegerEncoder_OffsetApplied(t *testing.T) {
	buf := sourcebuf.NewFloatBuffer("pos/x", format.FieldScaledInteger, []float64{10.0})
	enc, err := NewScaledIntegerEncoder(0, buf, 1.0, 5.0, compress.NewNoOpCompressor())
	require.NoError(t, err)
	defer enc.Finish()

	require.Equal(t, int64(5), enc.quantize(10.0))
	require.NoError(t, enc.ProcessRecords(1))
}
