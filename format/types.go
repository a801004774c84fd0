// Package format defines the small enums shared across the section, encoder,
// and writer packages: field types declared by the schema prototype and the
// packet kinds that appear in a compressed-vector section.
package format

// FieldType identifies how a terminal field's values are encoded into a
// bytestream. The prototype (schema tree) declares one FieldType per
// terminal field; the encoder factory picks the concrete encoder from it.
type FieldType uint8

const (
	FieldInteger       FieldType = 0x1 // plain signed 64-bit integer field
	FieldScaledInteger FieldType = 0x2 // integer field with a fixed scale/offset transform
	FieldFloat         FieldType = 0x3 // IEEE-754 float64 field
	FieldString        FieldType = 0x4 // UTF-8 string field
)

func (t FieldType) String() string {
	switch t {
	case FieldInteger:
		return "Integer"
	case FieldScaledInteger:
		return "ScaledInteger"
	case FieldFloat:
		return "Float"
	case FieldString:
		return "String"
	default:
		return "Unknown"
	}
}

// PacketType identifies the kind of on-disk packet: exactly one of data or
// index. It occupies byte 0 of both DataPacketHeader and IndexPacketHeader.
type PacketType uint8

const (
	PacketData  PacketType = 0x1
	PacketIndex PacketType = 0x2
)

func (t PacketType) String() string {
	switch t {
	case PacketData:
		return "Data"
	case PacketIndex:
		return "Index"
	default:
		return "Unknown"
	}
}

// CompressionType identifies the per-bytestream compression codec applied
// during RegisterFlushToOutput. It is advisory metadata the encoder carries;
// the wire format itself does not need to record it since a reader decodes
// bytestreams using the same schema/codec agreement as the writer.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1
	CompressionS2   CompressionType = 0x2
	CompressionLZ4  CompressionType = 0x3
	CompressionZstd CompressionType = 0x4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZstd:
		return "Zstd"
	default:
		return "Unknown"
	}
}
