package section

import (
	"github.com/brineflow/cvector/endian"
	"github.com/brineflow/cvector/errs"
	"github.com/brineflow/cvector/format"
)

// DataPacketHeader opens every data packet. It is immediately followed by
// BytestreamCount little-endian uint16 values, one per encoder drained into
// the packet in ascending bytestream-number order, giving the byte length
// each encoder contributed.
type DataPacketHeader struct {
	// PacketType is always PacketTypeData for a data packet.
	//
	// Offset: 0, Size: 1 byte.
	PacketType format.PacketType

	// PacketFlags is reserved for future use; always zero today.
	//
	// Offset: 1, Size: 1 byte.
	PacketFlags uint8

	// PacketLogicalLengthMinus1 is (total packet length in bytes) - 1,
	// covering the header, the bytestream length array, the payload, and
	// any zero padding to a 4-byte boundary.
	//
	// Offset: 2, Size: 2 bytes.
	PacketLogicalLengthMinus1 uint16

	// BytestreamCount is the number of bytestream length entries that
	// follow this header.
	//
	// Offset: 4, Size: 2 bytes.
	BytestreamCount uint16
}

// NewDataPacketHeader creates a header for a data packet draining
// bytestreamCount encoders.
func NewDataPacketHeader(bytestreamCount int) DataPacketHeader {
	return DataPacketHeader{
		PacketType:      PacketTypeData,
		BytestreamCount: uint16(bytestreamCount), //nolint:gosec
	}
}

// Bytes serializes the header (not including the bytestream length array)
// into a new DataPacketHeaderSize-byte slice.
func (h DataPacketHeader) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, DataPacketHeaderSize)
	h.WriteToSlice(b, engine)

	return b
}

// WriteToSlice writes the header into a pre-allocated DataPacketHeaderSize-byte slice.
func (h DataPacketHeader) WriteToSlice(b []byte, engine endian.EndianEngine) {
	b[0] = uint8(h.PacketType)
	b[1] = h.PacketFlags
	engine.PutUint16(b[2:4], h.PacketLogicalLengthMinus1)
	engine.PutUint16(b[4:6], h.BytestreamCount)
}

// ParseDataPacketHeader parses a DataPacketHeader from at least
// DataPacketHeaderSize bytes.
func ParseDataPacketHeader(data []byte, engine endian.EndianEngine) (DataPacketHeader, error) {
	if len(data) < DataPacketHeaderSize {
		return DataPacketHeader{}, errs.ErrInvalidHeaderSize
	}

	return DataPacketHeader{
		PacketType:                format.PacketType(data[0]),
		PacketFlags:               data[1],
		PacketLogicalLengthMinus1: engine.Uint16(data[2:4]),
		BytestreamCount:           engine.Uint16(data[4:6]),
	}, nil
}

// PacketLength returns the total on-disk length of the packet this header
// describes, derived from PacketLogicalLengthMinus1.
func (h DataPacketHeader) PacketLength() int {
	return int(h.PacketLogicalLengthMinus1) + 1
}
