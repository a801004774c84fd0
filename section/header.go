package section

import (
	"github.com/brineflow/cvector/endian"
	"github.com/brineflow/cvector/errs"
)

// Header is the fixed 32-byte CompressedVectorSectionHeader that opens every
// compressed-vector section. Its logical offset is chosen once at
// construction time and never moves; every other field is a reserved,
// zero-filled placeholder until close patches it in.
type Header struct {
	// SectionID identifies the section kind. Always SectionIDCompressedVector
	// for this package.
	//
	// Offset: 0, Size: 1 byte.
	SectionID uint8

	// SectionLogicalLength is the number of bytes from the start of this
	// header to the end of the index packet, inclusive. Zero until close.
	//
	// Offset: 8, Size: 8 bytes.
	SectionLogicalLength uint64

	// DataPhysicalOffset is the physical offset of the first data packet,
	// or 0 if the section has none.
	//
	// Offset: 16, Size: 8 bytes.
	DataPhysicalOffset uint64

	// IndexPhysicalOffset is the physical offset of the section's single
	// index packet.
	//
	// Offset: 24, Size: 8 bytes.
	IndexPhysicalOffset uint64
}

// NewHeader creates a reserved, all-zero-payload compressed-vector section
// header ready to be written as a placeholder at allocation time.
func NewHeader() *Header {
	return &Header{SectionID: SectionIDCompressedVector}
}

// Bytes serializes the header into a new HeaderSize-byte slice.
func (h *Header) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, HeaderSize)
	h.WriteToSlice(b, engine)

	return b
}

// WriteToSlice writes the header into a pre-allocated HeaderSize-byte slice.
func (h *Header) WriteToSlice(b []byte, engine endian.EndianEngine) {
	b[0] = h.SectionID
	// bytes 1-7 are reserved and stay zero.
	for i := 1; i < 8; i++ {
		b[i] = 0
	}
	engine.PutUint64(b[8:16], h.SectionLogicalLength)
	engine.PutUint64(b[16:24], h.DataPhysicalOffset)
	engine.PutUint64(b[24:32], h.IndexPhysicalOffset)
}

// ParseHeader parses a Header from exactly HeaderSize bytes.
func ParseHeader(data []byte, engine endian.EndianEngine) (Header, error) {
	if len(data) != HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	return Header{
		SectionID:            data[0],
		SectionLogicalLength: engine.Uint64(data[8:16]),
		DataPhysicalOffset:   engine.Uint64(data[16:24]),
		IndexPhysicalOffset:  engine.Uint64(data[24:32]),
	}, nil
}
