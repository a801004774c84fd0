package hostfile

import (
	"fmt"
	"sync/atomic"

	"github.com/brineflow/cvector/errs"
)

// Memory is a flat in-memory File: logical offsets equal physical offsets.
// Intended for tests that exercise the writer without a real filesystem.
type Memory struct {
	buf         []byte
	frontier    int64
	pos         int64
	writerCount atomic.Int32
}

var _ File = (*Memory)(nil)

// NewMemory creates an empty in-memory host file.
func NewMemory() *Memory {
	return &Memory{}
}

// Bytes returns the file's current content. The returned slice must not be
// retained past the next mutating call.
func (m *Memory) Bytes() []byte {
	return m.buf[:m.frontier]
}

func (m *Memory) AllocateSpace(n int64, extendWithZeros bool) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: cannot allocate negative space", errs.ErrBadAPIArgument)
	}

	offset := m.frontier
	needed := offset + n
	if int64(len(m.buf)) < needed {
		grown := make([]byte, needed)
		copy(grown, m.buf)
		m.buf = grown
	}
	m.frontier = needed

	if !extendWithZeros {
		// Lazy zero-fill is indistinguishable from eager here: the grown
		// slice above is already zeroed by make. Both branches behave
		// identically for Memory.
		_ = extendWithZeros
	}

	return offset, nil
}

func (m *Memory) LogicalToPhysical(logical int64) int64 {
	return logical
}

func (m *Memory) Seek(logical int64) error {
	if logical < 0 || logical > int64(len(m.buf)) {
		return fmt.Errorf("%w: seek offset %d out of range", errs.ErrBadAPIArgument, logical)
	}
	m.pos = logical

	return nil
}

func (m *Memory) Write(buf []byte) (int, error) {
	end := m.pos + int64(len(buf))
	if end > int64(len(m.buf)) {
		return 0, fmt.Errorf("%w: write of %d bytes at offset %d exceeds allocated region", errs.ErrInternal, len(buf), m.pos)
	}
	copy(m.buf[m.pos:end], buf)
	m.pos = end

	return len(buf), nil
}

func (m *Memory) UnusedLogicalStart() int64 {
	return m.frontier
}

func (m *Memory) IncrWriterCount() { m.writerCount.Add(1) }
func (m *Memory) DecrWriterCount() { m.writerCount.Add(-1) }
func (m *Memory) WriterCount() int { return int(m.writerCount.Load()) }
