package messaging

import (
	"slices"
	"testing"
)

// recorder is a test handler that logs every delivered kind and can run a
// callback in the middle of delivery.
type recorder struct {
	name      string
	delivered []string
	onDeliver func(Message)
}

func (r *recorder) ProcessMessage(m Message) {
	r.delivered = append(r.delivered, m.Kind())
	if r.onDeliver != nil {
		r.onDeliver(m)
	}
}

func TestPost_PreservesOrder(t *testing.T) {
	loop := NewLoop()
	h := &recorder{}
	loop.Post(h, NewMsg("a"))
	loop.Post(h, NewMsg("b"))
	loop.Post(h, NewMsg("c"))
	loop.Flush()

	want := []string{"a", "b", "c"}
	if !slices.Equal(h.delivered, want) {
		t.Errorf("delivered = %v, want %v", h.delivered, want)
	}
}

func TestPost_ConflatesPerHandlerAndKind(t *testing.T) {
	loop := NewLoop()
	first := &recorder{name: "first"}
	second := &recorder{name: "second"}

	loop.Post(first, NewConflatableMsg("update"))
	loop.Post(first, NewConflatableMsg("update"))
	loop.Post(first, NewConflatableMsg("fit"))
	loop.Post(second, NewConflatableMsg("update"))
	loop.Flush()

	if want := []string{"update", "fit"}; !slices.Equal(first.delivered, want) {
		t.Errorf("first delivered = %v, want %v", first.delivered, want)
	}
	if want := []string{"update"}; !slices.Equal(second.delivered, want) {
		t.Errorf("second delivered = %v, want %v", second.delivered, want)
	}
}

func TestPost_NonConflatableNeverCollapses(t *testing.T) {
	loop := NewLoop()
	h := &recorder{}
	loop.Post(h, NewMsg("tick"))
	loop.Post(h, NewMsg("tick"))
	loop.Flush()

	if len(h.delivered) != 2 {
		t.Errorf("delivered %d messages, want 2", len(h.delivered))
	}
}

func TestSend_BypassesQueue(t *testing.T) {
	loop := NewLoop()
	h := &recorder{}
	loop.Post(h, NewMsg("queued"))
	loop.Send(h, NewMsg("direct"))

	if want := []string{"direct"}; !slices.Equal(h.delivered, want) {
		t.Errorf("delivered before flush = %v, want %v", h.delivered, want)
	}
	loop.Flush()
	if want := []string{"direct", "queued"}; !slices.Equal(h.delivered, want) {
		t.Errorf("delivered after flush = %v, want %v", h.delivered, want)
	}
}

func TestFlush_ProcessesMessagesPostedDuringFlush(t *testing.T) {
	loop := NewLoop()
	h := &recorder{}
	h.onDeliver = func(m Message) {
		if m.Kind() == "a" {
			loop.Post(h, NewMsg("b"))
		}
	}
	loop.Post(h, NewMsg("a"))
	loop.Flush()

	if want := []string{"a", "b"}; !slices.Equal(h.delivered, want) {
		t.Errorf("delivered = %v, want %v", h.delivered, want)
	}
	if loop.HasPending(h, "b") {
		t.Error("message posted during flush still pending after flush")
	}
}

func TestFlush_RepostDuringDeliveryIsNotConflatedAway(t *testing.T) {
	loop := NewLoop()
	h := &recorder{}
	h.onDeliver = func(m Message) {
		// Re-post the same conflatable kind from inside its own delivery,
		// once. The already-delivered entry must not swallow it.
		if len(h.delivered) == 1 {
			loop.Post(h, NewConflatableMsg("update"))
		}
	}
	loop.Post(h, NewConflatableMsg("update"))
	loop.Flush()

	if want := []string{"update", "update"}; !slices.Equal(h.delivered, want) {
		t.Errorf("delivered = %v, want %v", h.delivered, want)
	}
}

func TestFlush_ReentrantCallIsNoOp(t *testing.T) {
	loop := NewLoop()
	h := &recorder{}
	h.onDeliver = func(Message) {
		loop.Flush()
	}
	loop.Post(h, NewMsg("a"))
	loop.Post(h, NewMsg("b"))
	loop.Flush()

	if want := []string{"a", "b"}; !slices.Equal(h.delivered, want) {
		t.Errorf("delivered = %v, want %v", h.delivered, want)
	}
}

func TestClearPending_CancelsOnlyThatHandler(t *testing.T) {
	loop := NewLoop()
	doomed := &recorder{name: "doomed"}
	kept := &recorder{name: "kept"}

	loop.Post(doomed, NewMsg("a"))
	loop.Post(kept, NewMsg("a"))
	loop.Post(doomed, NewMsg("b"))
	loop.ClearPending(doomed)

	if loop.HasPending(doomed, "a") || loop.HasPending(doomed, "b") {
		t.Error("cleared handler still has pending messages")
	}
	if !loop.HasPending(kept, "a") {
		t.Error("clearing one handler cancelled another handler's message")
	}

	loop.Flush()
	if len(doomed.delivered) != 0 {
		t.Errorf("cleared handler received %v", doomed.delivered)
	}
	if want := []string{"a"}; !slices.Equal(kept.delivered, want) {
		t.Errorf("kept handler delivered = %v, want %v", kept.delivered, want)
	}
}

func TestClearPending_TombstoneDoesNotAbsorbNewPosts(t *testing.T) {
	loop := NewLoop()
	h := &recorder{}
	loop.Post(h, NewConflatableMsg("update"))
	loop.ClearPending(h)
	loop.Post(h, NewConflatableMsg("update"))
	loop.Flush()

	if want := []string{"update"}; !slices.Equal(h.delivered, want) {
		t.Errorf("delivered = %v, want %v", h.delivered, want)
	}
}

func TestHasPending(t *testing.T) {
	loop := NewLoop()
	h := &recorder{}
	if loop.HasPending(h, "a") {
		t.Error("empty loop reports pending message")
	}
	loop.Post(h, NewMsg("a"))
	if !loop.HasPending(h, "a") {
		t.Error("posted message not reported pending")
	}
	if loop.HasPending(h, "b") {
		t.Error("pending reported for wrong kind")
	}
	loop.Flush()
	if loop.HasPending(h, "a") {
		t.Error("flushed message still reported pending")
	}
}

func TestPost_NilHandlerIgnored(t *testing.T) {
	loop := NewLoop()
	loop.Post(nil, NewMsg("a"))
	loop.Send(nil, NewMsg("a"))
	loop.Flush()
}
