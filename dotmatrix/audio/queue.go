package audio

// BufferSize is the length of one host-visible sample buffer. At the 95
// t-cycle sample tap this is one video frame's worth of audio.
const BufferSize = 735

// Queue accumulates single samples into fixed-size buffers. A buffer only
// becomes visible to the host once it is full, so consumers always see
// complete frames of audio.
type Queue struct {
	buffers [][]float32
	current []float32
}

// Push appends one sample, sealing the working buffer when it fills up.
func (q *Queue) Push(sample float32) {
	if q.current == nil {
		q.current = make([]float32, 0, BufferSize)
	}
	q.current = append(q.current, sample)
	if len(q.current) == BufferSize {
		q.buffers = append(q.buffers, q.current)
		q.current = make([]float32, 0, BufferSize)
	}
}

// Dequeue returns the oldest completed buffer, or nil if none is ready.
func (q *Queue) Dequeue() []float32 {
	if len(q.buffers) == 0 {
		return nil
	}
	buf := q.buffers[0]
	q.buffers = q.buffers[1:]
	return buf
}

// Pending reports how many completed buffers are waiting.
func (q *Queue) Pending() int {
	return len(q.buffers)
}
