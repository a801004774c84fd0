package encoding

import (
	"testing"

	"github.com/brineflow/cvector/endian"
	"github.com/stretchr/testify/require"
)

func TestVarStringEncoder_WriteSlice(t *testing.T) {
	e := NewVarStringEncoder(endian.GetLittleEndianEngine())
	defer e.Finish()

	e.WriteSlice([]string{"ab", "", "xyz"})
	require.Equal(t, 3, e.Len())

	data := e.Bytes()
	engine := endian.GetLittleEndianEngine()

	l := engine.Uint16(data[0:2])
	require.Equal(t, uint16(2), l)
	require.Equal(t, "ab", string(data[2:4]))
	data = data[4:]

	l = engine.Uint16(data[0:2])
	require.Equal(t, uint16(0), l)
	data = data[2:]

	l = engine.Uint16(data[0:2])
	require.Equal(t, uint16(3), l)
	require.Equal(t, "xyz", string(data[2:5]))
}

func TestVarStringEncoder_TakeBytes(t *testing.T) {
	e := NewVarStringEncoder(endian.GetLittleEndianEngine())
	defer e.Finish()

	e.Write("hello")
	out := e.TakeBytes()
	require.NotEmpty(t, out)
	require.Equal(t, 0, e.Size())
	require.Equal(t, 1, e.Len())

	e.Write("world")
	out2 := e.TakeBytes()
	require.NotEmpty(t, out2)
	require.Equal(t, 2, e.Len())
}
