// Package section defines the low-level binary structures and constants for
// a compressed-vector section: the fixed header that opens it, the data
// packets that carry interleaved bytestream payloads, and the single index
// packet written at close.
//
// # Overview
//
// The section package defines three categories of fixed-size, little-endian
// structures:
//
//  1. Header: the 32-byte CompressedVectorSectionHeader opening the section.
//  2. DataPacketHeader: the 6-byte header opening each data packet, followed
//     by a per-bytestream length array.
//  3. IndexPacketHeader + IndexEntry: the 16-byte header and 16-byte entries
//     making up the section's single index packet.
//
// # Section Layout
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                 │
//	├─────────────────────────────────────────────────────────┤
//	│ Data Packet 0 (≤ DataPacketMax bytes, 4-byte aligned)     │
//	│  - DataPacketHeader (6 bytes)                             │
//	│  - bytestreamBufferLength[bytestreamCount] (u16 each)     │
//	│  - interleaved bytestream payloads                        │
//	│  - zero padding to 4-byte boundary                        │
//	├─────────────────────────────────────────────────────────┤
//	│ ... more data packets ...                                 │
//	├─────────────────────────────────────────────────────────┤
//	│ Index Packet (16 + entryCount*16 bytes, 4-byte aligned)   │
//	│  - IndexPacketHeader (16 bytes)                            │
//	│  - IndexEntry[entryCount] (16 bytes each)                  │
//	└─────────────────────────────────────────────────────────┘
//
// A section always has exactly one index packet. A write(0) still emits a
// header-only, zero-bytestream data packet so the header's
// DataPhysicalOffset has something to point at; a writer closed without any
// Write call emits no data packet, and its DataPhysicalOffset is 0.
//
// # Byte Order
//
// Every structure in this package is little-endian, matching the fixed wire
// format; see package endian for the engine abstraction used to read and
// write multi-byte fields.
package section
