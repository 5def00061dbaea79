package waveview

import "testing"

func TestCoalescerForwardsOncePerFrame(t *testing.T) {
	calls := 0
	c := NewCoalescer(func() { calls++ })

	if !c.Invalidate() {
		t.Error("expected first Invalidate to forward")
	}
	for i := 0; i < 5; i++ {
		if c.Invalidate() {
			t.Errorf("expected call %d to be coalesced", i+2)
		}
	}
	if calls != 1 {
		t.Errorf("expected 1 request, got %d", calls)
	}
	if !c.Pending() {
		t.Error("expected pending redraw")
	}

	c.BeginFrame()
	if c.Pending() {
		t.Error("expected BeginFrame to clear pending")
	}

	c.Invalidate()
	if calls != 2 {
		t.Errorf("expected a new request after the frame, got %d", calls)
	}
	if c.Forwarded() != 2 {
		t.Errorf("expected 2 forwarded, got %d", c.Forwarded())
	}
}

func TestCoalescerNilRequest(t *testing.T) {
	c := NewCoalescer(nil)
	if !c.Invalidate() {
		t.Error("expected Invalidate to mark pending without a hook")
	}
	if !c.Pending() {
		t.Error("expected pending redraw")
	}
}

func TestCoalescerSetRequest(t *testing.T) {
	c := NewCoalescer(nil)
	got := 0
	c.SetRequest(func() { got++ })
	c.Invalidate()
	if got != 1 {
		t.Errorf("expected replaced hook to be called, got %d", got)
	}
}
