package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueOnlyExposesFullBuffers(t *testing.T) {
	var q Queue

	for i := 0; i < BufferSize-1; i++ {
		q.Push(0.5)
	}
	assert.Zero(t, q.Pending())
	assert.Nil(t, q.Dequeue())

	q.Push(0.5)
	assert.Equal(t, 1, q.Pending())

	buf := q.Dequeue()
	assert.Len(t, buf, BufferSize)
	assert.Nil(t, q.Dequeue())
}

func TestQueueKeepsOrder(t *testing.T) {
	var q Queue

	for i := 0; i < BufferSize; i++ {
		q.Push(1)
	}
	for i := 0; i < BufferSize; i++ {
		q.Push(2)
	}

	assert.Equal(t, 2, q.Pending())
	assert.Equal(t, float32(1), q.Dequeue()[0])
	assert.Equal(t, float32(2), q.Dequeue()[0])
}
