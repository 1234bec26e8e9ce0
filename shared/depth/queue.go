// Package depth orders world drawing back to front (painter's algorithm).
// Entities further down the screen, with larger depth keys, are drawn later
// and occlude the ones behind them.
package depth

import (
	"cmp"
	"slices"
)

// Drawable is the capability the depth pass needs from an entity.
type Drawable interface {
	DepthKey() int32
	Render()
}

type entry struct {
	key    int32
	render func()
}

// Queue collects render callbacks for one frame. The zero value is ready to
// use. Nothing is kept between frames except the backing array.
type Queue struct {
	entries []entry
}

// Push adds a callback with its depth key.
func (q *Queue) Push(key int32, render func()) {
	if render == nil {
		return
	}
	q.entries = append(q.entries, entry{key: key, render: render})
}

// Len returns the number of queued callbacks.
func (q *Queue) Len() int {
	return len(q.entries)
}

// Flush sorts the queued callbacks by ascending key and invokes them. Equal
// keys keep the order they were pushed in. The queue is empty afterwards.
func (q *Queue) Flush() {
	slices.SortStableFunc(q.entries, func(a, b entry) int {
		return cmp.Compare(a.key, b.key)
	})
	for i := range q.entries {
		q.entries[i].render()
		q.entries[i].render = nil
	}
	q.entries = q.entries[:0]
}

// RenderAll draws items back to front.
func RenderAll(items []Drawable) {
	var q Queue
	for _, it := range items {
		if it == nil {
			continue
		}
		q.Push(it.DepthKey(), it.Render)
	}
	q.Flush()
}
