package hostfile

import (
	"fmt"
	"os"
	"sync"

	"github.com/brineflow/cvector/errs"
)

// Disk is a File backed by a real *os.File, grounded on the kvstash
// example's LogWriter: a single mutex serializes every allocation, seek and
// write call. A Seek and the Write that follows it are two separate calls,
// so the mutex does not stop another goroutine from moving the write
// position in between; writers for different sections sharing one Disk
// write to the right offsets only when their Seek/Write pairs do not
// interleave. This does not make a single writer.Writer
// thread-safe on its own — spec.md's "undefined" clause for concurrent
// calls on one writer still holds.
type Disk struct {
	file        *os.File
	mu          sync.Mutex
	frontier    int64
	seekPos     int64
	writerCount int
}

var _ File = (*Disk)(nil)

// OpenDisk opens (creating if necessary) path for read/write use as a
// host container file.
func OpenDisk(path string) (*Disk, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening host file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat host file: %w", err)
	}

	return &Disk{file: f, frontier: info.Size()}, nil
}

func (d *Disk) AllocateSpace(n int64, extendWithZeros bool) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if n < 0 {
		return 0, fmt.Errorf("%w: cannot allocate negative space", errs.ErrBadAPIArgument)
	}

	offset := d.frontier
	if extendWithZeros && n > 0 {
		if _, err := d.file.WriteAt(make([]byte, n), offset); err != nil {
			return 0, fmt.Errorf("zero-extending host file: %w", err)
		}
	}
	d.frontier = offset + n

	return offset, nil
}

func (d *Disk) LogicalToPhysical(logical int64) int64 {
	return logical
}

// Seek sets the offset the next Write targets. Write passes that offset to
// WriteAt, so the underlying os.File's own cursor is never moved.
func (d *Disk) Seek(logical int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if logical < 0 || logical > d.frontier {
		return fmt.Errorf("%w: seek offset %d out of range", errs.ErrBadAPIArgument, logical)
	}

	d.seekPos = logical

	return nil
}

func (d *Disk) Write(buf []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n, err := d.file.WriteAt(buf, d.seekPos)
	if err != nil {
		return n, fmt.Errorf("writing host file: %w", err)
	}
	d.seekPos += int64(n)

	return n, nil
}

func (d *Disk) UnusedLogicalStart() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.frontier
}

func (d *Disk) IncrWriterCount() {
	d.mu.Lock()
	d.writerCount++
	d.mu.Unlock()
}

func (d *Disk) DecrWriterCount() {
	d.mu.Lock()
	d.writerCount--
	d.mu.Unlock()
}

func (d *Disk) WriterCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.writerCount
}

// Close closes the underlying file. Fails with errs.ErrInternal if any
// writer is still open against this file.
func (d *Disk) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.writerCount > 0 {
		return fmt.Errorf("%w: %d writer(s) still open", errs.ErrInternal, d.writerCount)
	}

	return d.file.Close()
}
