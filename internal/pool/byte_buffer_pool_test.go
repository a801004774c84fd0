package pool

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "new buffer should have zero length")
	assert.Equal(t, capacity, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(EncoderQueueDefaultSize)
	bb.B = append(bb.B, []byte("hello")...)

	bytes := bb.Bytes()

	assert.Equal(t, []byte("hello"), bytes)
	assert.True(t, &bb.B[0] == &bytes[0], "Bytes() should return the same underlying slice")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(EncoderQueueDefaultSize)
	bb.B = append(bb.B, []byte("some data")...)
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, len(bb.B), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_Len(t *testing.T) {
	bb := NewByteBuffer(EncoderQueueDefaultSize)

	assert.Equal(t, 0, bb.Len(), "empty buffer should have zero length")

	bb.B = append(bb.B, []byte("test")...)
	assert.Equal(t, 4, bb.Len(), "buffer length should match data")

	bb.B = append(bb.B, []byte(" data")...)
	assert.Equal(t, 9, bb.Len(), "buffer length should update after append")
}

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := NewByteBuffer(EncoderQueueDefaultSize)

	bb.MustWrite([]byte("hello"))
	assert.Equal(t, []byte("hello"), bb.B)

	bb.MustWrite([]byte(" world"))
	assert.Equal(t, []byte("hello world"), bb.B)
}

func TestByteBuffer_MustWrite_EmptyData(t *testing.T) {
	bb := NewByteBuffer(EncoderQueueDefaultSize)

	bb.MustWrite([]byte{})
	assert.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte("data"))
	bb.MustWrite([]byte{})
	assert.Equal(t, []byte("data"), bb.B)
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(EncoderQueueDefaultSize)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("hello"), bb.B)
}

func TestByteBuffer_Write_Multiple(t *testing.T) {
	bb := NewByteBuffer(EncoderQueueDefaultSize)

	n1, err1 := bb.Write([]byte("hello"))
	require.NoError(t, err1)
	assert.Equal(t, 5, n1)

	n2, err2 := bb.Write([]byte(" world"))
	require.NoError(t, err2)
	assert.Equal(t, 6, n2)

	assert.Equal(t, []byte("hello world"), bb.B)
	assert.Equal(t, 11, bb.Len())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(EncoderQueueDefaultSize)
	bb.B = append(bb.B, []byte("test data")...)

	var buf bytes.Buffer
	n, err := bb.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
	assert.Equal(t, "test data", buf.String())
}

func TestByteBuffer_WriteTo_EmptyBuffer(t *testing.T) {
	bb := NewByteBuffer(EncoderQueueDefaultSize)

	var buf bytes.Buffer
	n, err := bb.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	assert.Equal(t, "", buf.String())
}

func TestByteBuffer_WriteTo_ErrorPropagation(t *testing.T) {
	bb := NewByteBuffer(EncoderQueueDefaultSize)
	bb.B = append(bb.B, []byte("test")...)

	errorWriter := &errorWriter{err: io.ErrShortWrite}
	n, err := bb.WriteTo(errorWriter)

	assert.Error(t, err)
	assert.Equal(t, io.ErrShortWrite, err)
	assert.Equal(t, int64(0), n)
}

// =============================================================================
// ByteBuffer Grow Tests
// =============================================================================

func TestByteBuffer_Grow_SufficientCapacity(t *testing.T) {
	bb := NewByteBuffer(defaultGrowSize)
	originalCap := cap(bb.B)

	bb.Grow(100)

	assert.Equal(t, originalCap, cap(bb.B), "should not reallocate when capacity is sufficient")
}

func TestByteBuffer_Grow_SmallBuffer(t *testing.T) {
	bb := NewByteBuffer(defaultGrowSize)
	bb.B = append(bb.B, make([]byte, defaultGrowSize)...)

	bb.Grow(1024)

	assert.GreaterOrEqual(t, cap(bb.B), defaultGrowSize+1024, "should have at least requested capacity")
	assert.Equal(t, defaultGrowSize, len(bb.B), "length should not change")
}

func TestByteBuffer_Grow_LargeBuffer(t *testing.T) {
	bb := NewByteBuffer(defaultGrowSize)
	largeSize := 4*defaultGrowSize + 1024
	bb.B = make([]byte, largeSize)

	bb.Grow(2048)

	assert.GreaterOrEqual(t, cap(bb.B), largeSize+2048, "should have at least requested capacity")
}

func TestByteBuffer_Grow_ExactRequiredBytes(t *testing.T) {
	bb := NewByteBuffer(defaultGrowSize)
	bb.B = append(bb.B, make([]byte, defaultGrowSize)...)

	bb.Grow(1)

	assert.Greater(t, cap(bb.B), defaultGrowSize, "should have grown")
}

func TestByteBuffer_Grow_MoreThanDefaultGrowth(t *testing.T) {
	bb := NewByteBuffer(defaultGrowSize)
	bb.B = append(bb.B, make([]byte, defaultGrowSize)...)

	hugeSize := defaultGrowSize * 10
	bb.Grow(hugeSize)

	assert.GreaterOrEqual(t, cap(bb.B), defaultGrowSize+hugeSize, "should accommodate huge growth request")
}

func TestByteBuffer_Grow_PreservesData(t *testing.T) {
	bb := NewByteBuffer(defaultGrowSize)
	testData := []byte("important data that must be preserved")
	bb.B = append(bb.B, testData...)

	bb.Grow(defaultGrowSize * 2)

	assert.Equal(t, testData, bb.B, "data should be preserved after growth")
}

func TestByteBuffer_Grow_ZeroBytes(t *testing.T) {
	bb := NewByteBuffer(defaultGrowSize)
	originalCap := cap(bb.B)

	bb.Grow(0)

	assert.Equal(t, originalCap, cap(bb.B), "Grow(0) should not change capacity")
}

// =============================================================================
// ByteBufferPool Tests
// =============================================================================

func TestNewByteBufferPool(t *testing.T) {
	pool := NewByteBufferPool(8192, 65536)

	require.NotNil(t, pool)

	bb := pool.Get()
	require.NotNil(t, bb)
	assert.GreaterOrEqual(t, cap(bb.B), 8192, "buffer should have at least default size")

	pool.Put(bb)
}

func TestByteBufferPool_CustomSizes(t *testing.T) {
	tests := []struct {
		name         string
		defaultSize  int
		maxThreshold int
	}{
		{"Small pool", 1024, 4096},
		{"Medium pool", 16384, 131072},
		{"Large pool", 1048576, 8388608},
		{"No threshold", 8192, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewByteBufferPool(tt.defaultSize, tt.maxThreshold)
			bb := pool.Get()
			assert.GreaterOrEqual(t, cap(bb.B), tt.defaultSize)
			pool.Put(bb)
		})
	}
}

func TestByteBufferPool_MaxThreshold_Discard(t *testing.T) {
	pool := NewByteBufferPool(1024, 4096)

	bb := pool.Get()
	bb.Grow(10000)

	assert.Greater(t, cap(bb.B), 4096, "buffer should have grown beyond threshold")

	pool.Put(bb)

	bb2 := pool.Get()
	assert.LessOrEqual(t, cap(bb2.B), 4096*2, "should not reuse buffer larger than threshold")
}

func TestByteBufferPool_MaxThreshold_Zero(t *testing.T) {
	pool := NewByteBufferPool(1024, 0)

	bb := pool.Get()
	bb.Grow(1024 * 1024)

	assert.Greater(t, cap(bb.B), 100000, "buffer should have grown to large size")

	pool.Put(bb)

	bb2 := pool.Get()
	assert.NotNil(t, bb2)
}

func TestPutBuffer_NilBuffer(t *testing.T) {
	pool := NewByteBufferPool(1024, 4096)

	assert.NotPanics(t, func() {
		pool.Put(nil)
	})
}

// =============================================================================
// Default Pool Tests (EncoderQueue / Scratch)
// =============================================================================

func TestGetEncoderQueue(t *testing.T) {
	bb := GetEncoderQueue()

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "pooled buffer should be empty")
	assert.GreaterOrEqual(t, cap(bb.B), EncoderQueueDefaultSize, "pooled buffer should have at least default capacity")

	PutEncoderQueue(bb)
}

func TestGetScratchBuffer(t *testing.T) {
	bb := GetScratchBuffer()

	require.NotNil(t, bb)
	assert.Equal(t, 0, len(bb.B), "scratch buffer should be empty")
	assert.GreaterOrEqual(t, cap(bb.B), ScratchBufferSize, "scratch buffer should have at least default size")

	PutScratchBuffer(bb)
}

func TestDefaultPools_Independence(t *testing.T) {
	queueBuf := GetEncoderQueue()
	queueCap := cap(queueBuf.B)

	scratchBuf := GetScratchBuffer()
	scratchCap := cap(scratchBuf.B)

	assert.NotEqual(t, queueCap, scratchCap, "encoder queue and scratch buffers should have different default sizes")
	assert.GreaterOrEqual(t, queueCap, EncoderQueueDefaultSize)
	assert.GreaterOrEqual(t, scratchCap, ScratchBufferSize)

	PutEncoderQueue(queueBuf)
	PutScratchBuffer(scratchBuf)
}

func TestPool_ResetsClearsData(t *testing.T) {
	bb := GetEncoderQueue()
	bb.B = append(bb.B, []byte("sensitive data")...)

	PutEncoderQueue(bb)

	bb2 := GetEncoderQueue()
	assert.Equal(t, 0, len(bb2.B), "buffer should be empty after retrieval from pool")
	assert.Equal(t, 0, len(bb.B), "PutEncoderQueue should reset the buffer")

	PutEncoderQueue(bb2)
}

func TestPool_MultipleGetsAndPuts(t *testing.T) {
	buffers := make([]*ByteBuffer, 10)

	for i := range buffers {
		buffers[i] = GetEncoderQueue()
		require.NotNil(t, buffers[i])
		buffers[i].MustWrite([]byte("data"))
	}

	for _, bb := range buffers {
		PutEncoderQueue(bb)
	}

	for i := 0; i < 10; i++ {
		bb := GetEncoderQueue()
		assert.Equal(t, 0, bb.Len(), "each buffer should be reset")
		PutEncoderQueue(bb)
	}
}

func TestPool_ConcurrentAccess(t *testing.T) {
	const numGoroutines = 100
	const numIterations = 1000

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < numIterations; j++ {
				bb := GetEncoderQueue()
				bb.MustWrite([]byte("data"))
				assert.Equal(t, 4, bb.Len())
				PutEncoderQueue(bb)
			}
		}()
	}

	wg.Wait()
}

// =============================================================================
// Integration Tests
// =============================================================================

func TestByteBuffer_LargeDataWrite(t *testing.T) {
	bb := GetScratchBuffer()
	defer PutScratchBuffer(bb)

	largeData := make([]byte, 1024*1024)
	for i := range largeData {
		largeData[i] = byte(i % 256)
	}

	bb.MustWrite(largeData)

	assert.Equal(t, len(largeData), bb.Len())
	assert.Equal(t, largeData, bb.B)
}

func TestByteBuffer_GrowAndWrite(t *testing.T) {
	bb := GetEncoderQueue()
	defer PutEncoderQueue(bb)

	bb.Grow(100 * 1024)
	initialCap := cap(bb.B)

	data := make([]byte, 50*1024)
	bb.MustWrite(data)

	assert.Equal(t, initialCap, cap(bb.B))
	assert.Equal(t, 50*1024, bb.Len())
}

func TestByteBuffer_MultipleWritesCauseGrowth(t *testing.T) {
	bb := NewByteBuffer(defaultGrowSize)
	initialCap := cap(bb.B)

	largeData := make([]byte, defaultGrowSize+1000)
	bb.MustWrite(largeData)

	assert.Greater(t, cap(bb.B), initialCap, "buffer should have grown")
	assert.Equal(t, len(largeData), bb.Len())
}

func TestByteBuffer_ResetAndReuse(t *testing.T) {
	bb := GetEncoderQueue()
	defer PutEncoderQueue(bb)

	bb.MustWrite([]byte("first"))
	assert.Equal(t, 5, bb.Len())

	bb.Reset()
	assert.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte("second"))
	assert.Equal(t, 6, bb.Len())
	assert.Equal(t, []byte("second"), bb.B)
}

// =============================================================================
// Benchmark Tests
// =============================================================================

func BenchmarkByteBuffer_Write(b *testing.B) {
	data := []byte("benchmark data for testing write performance")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bb := NewByteBuffer(defaultGrowSize)
		_, _ = bb.Write(data)
	}
}

func BenchmarkByteBuffer_Write_Small(b *testing.B) {
	bb := GetEncoderQueue()
	defer PutEncoderQueue(bb)
	data := []byte("small data")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bb.Reset()
		bb.MustWrite(data)
	}
}

func BenchmarkByteBuffer_Write_Large(b *testing.B) {
	bb := GetScratchBuffer()
	defer PutScratchBuffer(bb)
	data := make([]byte, 64*1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bb.Reset()
		bb.MustWrite(data)
	}
}

func BenchmarkByteBuffer_WriteTo(b *testing.B) {
	bb := NewByteBuffer(defaultGrowSize)
	bb.B = append(bb.B, make([]byte, 1024)...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		_, _ = bb.WriteTo(&buf)
	}
}

func BenchmarkByteBuffer_Grow(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bb := NewByteBuffer(defaultGrowSize)
		bb.Grow(1024 * 1024)
	}
}

func BenchmarkGetPut_Reuse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		bb := GetEncoderQueue()
		bb.MustWrite([]byte("benchmark data"))
		PutEncoderQueue(bb)
	}
}

func BenchmarkNewBuffer_NoPool(b *testing.B) {
	for i := 0; i < b.N; i++ {
		bb := NewByteBuffer(defaultGrowSize)
		bb.MustWrite([]byte("benchmark data"))
		_ = bb
	}
}

func BenchmarkPool_GetPut(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bb := GetEncoderQueue()
		PutEncoderQueue(bb)
	}
}

func BenchmarkPool_GetWritePut(b *testing.B) {
	data := []byte("benchmark data")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bb := GetEncoderQueue()
		bb.MustWrite(data)
		PutEncoderQueue(bb)
	}
}

func BenchmarkPool_vs_NewBuffer(b *testing.B) {
	data := make([]byte, 1024)

	b.Run("WithPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			bb := GetEncoderQueue()
			bb.MustWrite(data)
			PutEncoderQueue(bb)
		}
	})

	b.Run("WithoutPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			bb := NewByteBuffer(defaultGrowSize)
			bb.MustWrite(data)
		}
	})
}

func BenchmarkByteBuffer_LargeWrites(b *testing.B) {
	sizes := []int{
		1024,
		8192,
		64 * 1024,
		256 * 1024,
		1024 * 1024,
	}

	for _, size := range sizes {
		data := make([]byte, size)
		b.Run(formatBytes(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				bb := GetScratchBuffer()
				bb.MustWrite(data)
				PutScratchBuffer(bb)
			}
		})
	}
}

func BenchmarkConcurrentGetPut(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			bb := GetEncoderQueue()
			bb.MustWrite([]byte("concurrent test data"))
			PutEncoderQueue(bb)
		}
	})
}

// =============================================================================
// Helper Types and Functions
// =============================================================================

type errorWriter struct {
	err error
}

func (ew *errorWriter) Write(p []byte) (n int, err error) {
	return 0, ew.err
}

func formatBytes(b int) string {
	const unit = 1024
	if b < unit {
		return bytesToString(b) + "B"
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return bytesToString(b/int(div)) + []string{"K", "M", "G"}[exp] + "B"
}

func bytesToString(n int) string {
	if n == 0 {
		return "0"
	}
	digits := make([]byte, 0, 10)
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	return string(digits)
}
