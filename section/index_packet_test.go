package section

import (
	"testing"

	"github.com/brineflow/cvector/endian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndexPacketHeader(t *testing.T) {
	h := NewIndexPacketHeader(1)

	assert.Equal(t, PacketTypeIndex, h.PacketType)
	assert.Equal(t, uint32(1), h.EntryCount)
}

func TestIndexPacketHeader_BytesRoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	h := IndexPacketHeader{
		PacketType:                PacketTypeIndex,
		PacketLogicalLengthMinus1: uint16(IndexPacketHeaderSize + IndexEntrySize - 1),
		EntryCount:                1,
	}

	b := h.Bytes(engine)
	require.Len(t, b, IndexPacketHeaderSize)

	parsed, err := ParseIndexPacketHeader(b, engine)
	require.NoError(t, err)
	assert.Equal(t, h, parsed)
}

func TestIndexPacketHeader_PacketLength(t *testing.T) {
	h := IndexPacketHeader{PacketLogicalLengthMinus1: 31}
	assert.Equal(t, 32, h.PacketLength())
}

func TestParseIndexPacketHeader_TooShort(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	_, err := ParseIndexPacketHeader(make([]byte, IndexPacketHeaderSize-1), engine)
	assert.Error(t, err)
}

func TestIndexEntry_BytesRoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	e := IndexEntry{ChunkRecordNumber: 0, ChunkPhysicalOffset: 96}

	b := e.Bytes(engine)
	require.Len(t, b, IndexEntrySize)

	parsed, err := ParseIndexEntry(b, engine)
	require.NoError(t, err)
	assert.Equal(t, e, parsed)
}

func TestParseIndexEntry_TooShort(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	_, err := ParseIndexEntry(make([]byte, IndexEntrySize-1), engine)
	assert.Error(t, err)
}
