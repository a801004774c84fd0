package encoder

import "github.com/brineflow/cvector/internal/pool"

// outputQueue holds compressed bytes an encoder has produced but the writer
// has not yet drained into a packet. Append grows the queue; Read dequeues
// from the front and compacts immediately, so the queue never grows past
// its high-water mark even under many small partial reads.
type outputQueue struct {
	buf *pool.ByteBuffer
}

func newOutputQueue() *outputQueue {
	return &outputQueue{buf: pool.GetEncoderQueue()}
}

func (q *outputQueue) Append(b []byte) {
	if len(b) == 0 {
		return
	}
	q.buf.Grow(len(b))
	q.buf.MustWrite(b)
}

func (q *outputQueue) Available() int {
	return q.buf.Len()
}

// Read copies up to len(dst) queued bytes into dst, compacting the
// remainder to the front of the internal buffer, and returns the count
// copied.
func (q *outputQueue) Read(dst []byte) int {
	n := copy(dst, q.buf.B)
	remaining := q.buf.B[n:]
	copy(q.buf.B, remaining)
	q.buf.B = q.buf.B[:len(remaining)]

	return n
}

func (q *outputQueue) Finish() {
	if q.buf != nil {
		pool.PutEncoderQueue(q.buf)
		q.buf = nil
	}
}
