package section

import (
	"github.com/brineflow/cvector/endian"
	"github.com/brineflow/cvector/errs"
	"github.com/brineflow/cvector/format"
)

// IndexPacketHeader opens a section's single index packet. It is followed
// by EntryCount IndexEntry records.
//
// The wire layout is not specified beyond its 16-byte size; this package
// resolves it by mirroring DataPacketHeader's type/flags/length convention
// and widening the count and reserved fields to fill the remaining 12 bytes:
// packetType(u8) | packetFlags(u8) | packetLogicalLengthMinus1(u16) |
// entryCount(u32) | reserved(u64).
type IndexPacketHeader struct {
	// PacketType is always PacketTypeIndex.
	//
	// Offset: 0, Size: 1 byte.
	PacketType format.PacketType

	// PacketFlags is reserved for future use; always zero today.
	//
	// Offset: 1, Size: 1 byte.
	PacketFlags uint8

	// PacketLogicalLengthMinus1 is (total packet length in bytes) - 1.
	//
	// Offset: 2, Size: 2 bytes.
	PacketLogicalLengthMinus1 uint16

	// EntryCount is the number of IndexEntry records following this
	// header. Always 1 for the single compressed-vector section this
	// package writes, but parsed generally.
	//
	// Offset: 4, Size: 4 bytes.
	EntryCount uint32

	// Reserved occupies the header's remaining 8 bytes; always zero.
	//
	// Offset: 8, Size: 8 bytes.
	Reserved uint64
}

// NewIndexPacketHeader creates a header describing entryCount index entries.
func NewIndexPacketHeader(entryCount int) IndexPacketHeader {
	return IndexPacketHeader{
		PacketType: PacketTypeIndex,
		EntryCount: uint32(entryCount), //nolint:gosec
	}
}

// Bytes serializes the header into a new IndexPacketHeaderSize-byte slice.
func (h IndexPacketHeader) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, IndexPacketHeaderSize)
	h.WriteToSlice(b, engine)

	return b
}

// WriteToSlice writes the header into a pre-allocated IndexPacketHeaderSize-byte slice.
func (h IndexPacketHeader) WriteToSlice(b []byte, engine endian.EndianEngine) {
	b[0] = uint8(h.PacketType)
	b[1] = h.PacketFlags
	engine.PutUint16(b[2:4], h.PacketLogicalLengthMinus1)
	engine.PutUint32(b[4:8], h.EntryCount)
	engine.PutUint64(b[8:16], h.Reserved)
}

// ParseIndexPacketHeader parses an IndexPacketHeader from at least
// IndexPacketHeaderSize bytes.
func ParseIndexPacketHeader(data []byte, engine endian.EndianEngine) (IndexPacketHeader, error) {
	if len(data) < IndexPacketHeaderSize {
		return IndexPacketHeader{}, errs.ErrInvalidHeaderSize
	}

	return IndexPacketHeader{
		PacketType:                format.PacketType(data[0]),
		PacketFlags:               data[1],
		PacketLogicalLengthMinus1: engine.Uint16(data[2:4]),
		EntryCount:                engine.Uint32(data[4:8]),
		Reserved:                  engine.Uint64(data[8:16]),
	}, nil
}

// PacketLength returns the total on-disk length of the packet this header
// describes, derived from PacketLogicalLengthMinus1.
func (h IndexPacketHeader) PacketLength() int {
	return int(h.PacketLogicalLengthMinus1) + 1
}

// IndexEntry points at one data packet's worth of records. A compressed-
// vector section's index packet carries exactly one entry, pointing at the
// section's first data packet.
type IndexEntry struct {
	// ChunkRecordNumber is the index, within the section, of the first
	// record covered by the referenced data packet.
	//
	// Offset: 0, Size: 8 bytes.
	ChunkRecordNumber uint64

	// ChunkPhysicalOffset is the physical file offset of the referenced
	// data packet.
	//
	// Offset: 8, Size: 8 bytes.
	ChunkPhysicalOffset uint64
}

// Bytes serializes the entry into a new IndexEntrySize-byte slice.
func (e IndexEntry) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, IndexEntrySize)
	e.WriteToSlice(b, engine)

	return b
}

// WriteToSlice writes the entry into a pre-allocated IndexEntrySize-byte slice.
func (e IndexEntry) WriteToSlice(b []byte, engine endian.EndianEngine) {
	engine.PutUint64(b[0:8], e.ChunkRecordNumber)
	engine.PutUint64(b[8:16], e.ChunkPhysicalOffset)
}

// ParseIndexEntry parses an IndexEntry from at least IndexEntrySize bytes.
func ParseIndexEntry(data []byte, engine endian.EndianEngine) (IndexEntry, error) {
	if len(data) < IndexEntrySize {
		return IndexEntry{}, errs.ErrInvalidHeaderSize
	}

	return IndexEntry{
		ChunkRecordNumber:   engine.Uint64(data[0:8]),
		ChunkPhysicalOffset: engine.Uint64(data[8:16]),
	}, nil
}
