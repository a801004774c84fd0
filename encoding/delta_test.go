package encoding

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func zigzagDecode(z uint64) int64 {
	return int64(z>>1) ^ -int64(z&1)
}

func TestDeltaEncoder_SingleValue(t *testing.T) {
	e := NewDeltaEncoder()
	defer e.Finish()

	e.Write(100)
	require.Equal(t, 1, e.Len())

	v, n := binary.Uvarint(e.Bytes())
	require.Positive(t, n)
	require.Equal(t, uint64(100), v)
}

func TestDeltaEncoder_ConstantStep(t *testing.T) {
	e := NewDeltaEncoder()
	defer e.Finish()

	e.WriteSlice([]int64{100, 102, 104, 106, 108})
	require.Equal(t, 5, e.Len())

	data := e.Bytes()

	v, n := binary.Uvarint(data)
	require.Equal(t, uint64(100), v)
	data = data[n:]

	v, n = binary.Uvarint(data)
	require.Equal(t, int64(2), zigzagDecode(v))
	data = data[n:]

	// Constant step of 2 means every subsequent delta-of-delta is 0.
	for len(data) > 0 {
		v, n = binary.Uvarint(data)
		require.Equal(t, int64(0), zigzagDecode(v))
		data = data[n:]
	}
}

func TestDeltaEncoder_TakeBytes_PreservesChain(t *testing.T) {
	e := NewDeltaEncoder()
	defer e.Finish()

	e.WriteSlice([]int64{10, 20, 30})
	first := e.TakeBytes()
	require.NotEmpty(t, first)
	require.Equal(t, 0, e.Size())

	e.Write(40)
	second := e.TakeBytes()
	require.NotEmpty(t, second)

	// Delta chain survived TakeBytes: 40 continues the constant-step-10
	// sequence, so its encoded delta-of-delta is the single-byte zero.
	v, n := binary.Uvarint(second)
	require.Equal(t, 1, n)
	require.Equal(t, int64(0), zigzagDecode(v))
}

func TestDeltaEncoder_NegativeValues(t *testing.T) {
	e := NewDeltaEncoder()
	defer e.Finish()

	e.WriteSlice([]int64{-50, -10, 30, -5})
	require.Equal(t, 4, e.Len())
	require.NotEmpty(t, e.Bytes())
}
