package depth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sprite struct {
	name string
	y    int32
	log  *[]string
}

func (s sprite) DepthKey() int32 { return s.y }
func (s sprite) Render()         { *s.log = append(*s.log, s.name) }

func TestRenderAllOrdersByDepth(t *testing.T) {
	var order []string
	RenderAll([]Drawable{
		sprite{"a", 50, &order},
		sprite{"b", 200, &order},
		sprite{"c", 125, &order},
	})
	assert.Equal(t, []string{"a", "c", "b"}, order)
}

func TestRenderAllStableTieBreak(t *testing.T) {
	var order []string
	RenderAll([]Drawable{
		sprite{"e1", 100, &order},
		sprite{"e2", 100, &order},
		sprite{"front", 101, &order},
		sprite{"back", -3, &order},
		sprite{"e3", 100, &order},
	})
	assert.Equal(t, []string{"back", "e1", "e2", "e3", "front"}, order)
}

func TestRenderAllSkipsNil(t *testing.T) {
	var order []string
	RenderAll([]Drawable{nil, sprite{"only", 0, &order}})
	assert.Equal(t, []string{"only"}, order)
}

func TestQueueFlushResets(t *testing.T) {
	var q Queue
	var calls []int32
	for _, k := range []int32{3, 1, 2} {
		k := k
		q.Push(k, func() { calls = append(calls, k) })
	}
	q.Push(0, nil)
	assert.Equal(t, 3, q.Len())

	q.Flush()
	assert.Equal(t, []int32{1, 2, 3}, calls)
	assert.Zero(t, q.Len())

	q.Flush()
	assert.Len(t, calls, 3)
}
