package waveview

// Coalescer merges redraw requests raised between two frames into one.
type Coalescer struct {
	pending   bool
	request   func()
	forwarded int
}

// NewCoalescer forwards at most one call to request per frame. A nil
// request only tracks the pending flag.
func NewCoalescer(request func()) *Coalescer {
	return &Coalescer{request: request}
}

// SetRequest replaces the host redraw hook.
func (c *Coalescer) SetRequest(request func()) {
	c.request = request
}

// Invalidate marks a redraw as pending. It reports whether this call
// forwarded a request to the host.
func (c *Coalescer) Invalidate() bool {
	if c.pending {
		return false
	}
	c.pending = true
	c.forwarded++
	if c.request != nil {
		c.request()
	}
	return true
}

// Pending reports whether a redraw has been requested since the last frame.
func (c *Coalescer) Pending() bool {
	return c.pending
}

// BeginFrame re-arms the coalescer. Call it when a render pass starts.
func (c *Coalescer) BeginFrame() {
	c.pending = false
}

// Forwarded returns how many requests reached the host.
func (c *Coalescer) Forwarded() int {
	return c.forwarded
}
