// Package compress provides compression and decompression codecs for
// packetized columnar payloads.
//
// This package offers multiple compression algorithms optimized for different
// characteristics of encoded bytestream data. Compression is applied after an
// encoder has produced its bytestream output, just before that output is
// drained into a data packet.
//
// # Overview
//
// Writing a compressed-vector section applies a two-stage strategy:
//
//  1. **Encoding**: Exploits patterns in the data (delta, zigzag+varint, raw words)
//  2. **Compression**: Further reduces encoded bytestreams using general-purpose algorithms
//
// The compress package implements the second stage, supporting multiple algorithms:
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp Compression** (format.CompressionNone)
//
//	codec := compress.NewNoOpCompressor()
//	compressed, _ := codec.Compress(data)  // Returns data unchanged
//	original, _ := codec.Decompress(compressed)  // Returns data unchanged
//
// Use when:
//   - Data is already well-compressed by encoding
//   - CPU is more critical than storage
//   - Data is incompressible (random, encrypted)
//
// **Zstandard (Zstd)** (format.CompressionZstd)
//
//	codec := compress.NewZstdCompressor()
//	compressed, _ := codec.Compress(data)  // Best compression ratio
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: Excellent (typically 2-4x on top of encoding)
//   - Speed: Moderate (compression: ~400 MB/s, decompression: ~1000 MB/s)
//   - Memory: ~2-4 MB for compression, ~1-2 MB for decompression
//   - Latency: Medium (adds ~0.5-2ms for typical payloads)
//
// Use when:
//   - Storage cost is primary concern
//   - Network bandwidth is limited
//   - Can tolerate moderate compression overhead
//
// Best for:
//   - String bytestreams (high compression ratio)
//   - Repetitive numeric data
//   - Cold storage / archival
//
// **S2 (Snappy Alternative)** (format.CompressionS2)
//
//	codec := compress.NewS2Compressor()
//	compressed, _ := codec.Compress(data)  // Fast with good compression
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: Good (typically 1.5-2.5x on top of encoding)
//   - Speed: Fast (compression: ~1000 MB/s, decompression: ~2000 MB/s)
//   - Memory: ~256KB for compression, ~64KB for decompression
//   - Latency: Low (adds ~0.2-0.5ms for typical payloads)
//
// Use when:
//   - Need balance between compression and speed
//   - Latency is important
//   - Moderate storage savings are acceptable
//
// Best for:
//   - Real-time section writes
//   - Streaming producers with tight packetization deadlines
//
// **LZ4** (format.CompressionLZ4)
//
//	codec := compress.NewLZ4Compressor()
//	compressed, _ := codec.Compress(data)  // Very fast decompression
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: Moderate (typically 1.3-2x on top of encoding)
//   - Speed: Very fast decompression (~3000 MB/s), moderate compression (~800 MB/s)
//   - Memory: ~64KB for compression, ~16KB for decompression
//   - Latency: Very low (adds ~0.1-0.3ms for typical payloads)
//
// Use when:
//   - Read performance is critical
//   - Decompression speed matters more than compression ratio
//   - Low latency is required
//
// Best for:
//   - Query-heavy readers of compressed-vector sections
//   - Low-latency applications
//
// # Algorithm Selection Guide
//
// **Choose based on workload**:
//
// | Workload Type          | Recommended | Reason                              |
// |------------------------|-------------|--------------------------------------|
// | Storage-constrained    | Zstd        | Best compression ratio              |
// | Real-time section write| S2          | Balanced speed and compression      |
// | Read-heavy             | LZ4         | Fastest decompression               |
// | CPU-constrained        | None        | No compression overhead             |
// | Cold storage           | Zstd        | Maximize space savings              |
// | Network transmission   | Zstd        | Reduce bandwidth usage              |
//
// **Choose based on field type**:
//
// | Field Type             | Recommended | Typical Ratio (after encoding) |
// |------------------------|-------------|---------------------------------|
// | String                 | Zstd        | 3-5x                            |
// | Integer (delta)        | S2          | 1.5-2x                          |
// | Float (raw)            | Zstd        | 2-3x                            |
// | ScaledInteger (delta)  | S2          | 1.8-2.5x                        |
//
// # Memory Management
//
// Codecs differ in how they manage buffers:
//   - NoOp returns its input slice and allocates nothing
//   - Zstd pools its encoders and decoders across calls
//   - LZ4 pools its block compressors; each call allocates a new output buffer,
//     and decompression starts at 4x the compressed size, doubling on demand
//   - S2 allocates a new output buffer per call
//
// Memory overhead:
//   - NoOp: Zero overhead
//   - LZ4: ~64KB compression, ~16KB decompression
//   - S2: ~256KB compression, ~64KB decompression
//   - Zstd: ~2-4MB compression, ~1-2MB decompression
//
// # Thread Safety
//
// All codec implementations are thread-safe and can be safely shared across goroutines.
// However, for best performance, consider using a codec per goroutine to avoid
// internal lock contention.
//
// # Error Handling
//
// Compression errors are rare but can occur:
//   - Input too large (exceeds algorithm limits)
//   - Memory allocation failure
//
// Decompression errors are more common:
//   - Corrupted compressed data
//   - Invalid compression format
//   - Decompressed size exceeds limits
//   - Checksum validation failure (algorithm-dependent)
//
// Zstd decompression errors are wrapped with context; S2 and LZ4 return the
// underlying library's error as is.
//
// # Best Practices
//
//  1. **Profile your workload**: Different algorithms excel at different scenarios
//  2. **Consider total cost**: Factor in CPU, memory, storage, and network
//  3. **Use appropriate levels**: Higher compression levels may not be worth the CPU cost
//  4. **Monitor metrics**: Track compression ratios, latencies, and resource usage
//  5. **Test with real data**: Synthetic benchmarks may not represent your workload
//  6. **Cache decompressors**: Create once, reuse many times
//  7. **Match encoding**: Some encodings benefit more from compression than others
//
// # Integration with the Encoder Package
//
// The encoder package uses this package internally. A field encoder's codec is
// selected per field, at bind time, and applied to each bytestream before it is
// handed to the section writer for packetization.
//
// # Advanced Usage
//
// For custom compression needs, implement the Compressor/Decompressor interfaces:
//
//	type MyCodec struct{}
//
//	func (c *MyCodec) Compress(data []byte) ([]byte, error) {
//	    // Custom compression logic
//	    return compressedData, nil
//	}
//
//	func (c *MyCodec) Decompress(data []byte) ([]byte, error) {
//	    // Custom decompression logic
//	    return originalData, nil
//	}
package compress
