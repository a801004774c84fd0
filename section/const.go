package section

import "github.com/brineflow/cvector/format"

// Size limits governing a compressed-vector section's packet layout.
const (
	// DataPacketMax is the largest a single data packet may be, in bytes.
	DataPacketMax = 65536

	// TargetPacketSize is the fill threshold that triggers emission of a
	// data packet mid-write. Packets are paced to this fraction of
	// DataPacketMax rather than the hard maximum so that one more
	// bytestream's contribution can usually still fit before the next
	// packetWrite, keeping the packet count close to optimal.
	TargetPacketSize = DataPacketMax * 3 / 4
)

// Fixed structure sizes, in bytes.
const (
	HeaderSize            = 32 // CompressedVectorSectionHeader
	DataPacketHeaderSize  = 6  // DataPacketHeader, excluding the bytestream length array
	IndexPacketHeaderSize = 16 // IndexPacketHeader
	IndexEntrySize        = 16 // IndexEntry
)

// Packet type tags occupying the first byte of every packet header.
const (
	PacketTypeData  = format.PacketData
	PacketTypeIndex = format.PacketIndex
)

// SectionID tags the first byte of CompressedVectorSectionHeader.
const SectionIDCompressedVector uint8 = 0x1
