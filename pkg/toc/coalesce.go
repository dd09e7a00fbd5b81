package toc

import "sync/atomic"

// FrameCoalescer guards scroll handling so that at most one recomputation
// is pending per frame. Requests made while one is pending are dropped.
type FrameCoalescer struct {
	pending atomic.Bool
	task    atomic.Pointer[func()]
}

// Request schedules fn for the next frame. It returns false when a
// recomputation is already pending and fn was discarded.
func (c *FrameCoalescer) Request(fn func()) bool {
	if !c.pending.CompareAndSwap(false, true) {
		return false
	}
	c.task.Store(&fn)
	return true
}

// Pending reports whether a recomputation is waiting for the next frame.
func (c *FrameCoalescer) Pending() bool {
	return c.pending.Load()
}

// Frame runs the pending recomputation, if any, and clears the flag.
// It reports whether a task ran.
func (c *FrameCoalescer) Frame() bool {
	task := c.task.Swap(nil)
	if task == nil {
		return false
	}
	c.pending.Store(false)
	(*task)()
	return true
}
