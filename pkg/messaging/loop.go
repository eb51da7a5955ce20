package messaging

// pending is one queued delivery. Cleared entries stay in the queue as
// tombstones so conflation scans and flush order stay simple.
type pending struct {
	handler Handler
	msg     Message
	cleared bool
}

// Loop is a FIFO message queue with conflation.
type Loop struct {
	queue    []pending
	flushing bool
}

// NewLoop creates an empty message loop.
func NewLoop() *Loop {
	return &Loop{}
}

// Post enqueues a message for the handler. If the message is conflatable
// and an uncleared message of the same kind is already pending for the same
// handler, the post is dropped and the earlier entry keeps its position.
func (l *Loop) Post(h Handler, m Message) {
	if h == nil {
		return
	}
	if m.Conflatable() {
		for i := range l.queue {
			p := &l.queue[i]
			if !p.cleared && p.handler == h && p.msg.Kind() == m.Kind() {
				return
			}
		}
	}
	l.queue = append(l.queue, pending{handler: h, msg: m})
}

// Send delivers a message to the handler immediately, bypassing the queue.
func (l *Loop) Send(h Handler, m Message) {
	if h == nil {
		return
	}
	h.ProcessMessage(m)
}

// Flush processes queued messages until the queue is empty, including
// messages posted while flushing. Reentrant calls return immediately.
func (l *Loop) Flush() {
	if l.flushing {
		return
	}
	l.flushing = true
	defer func() { l.flushing = false }()

	for i := 0; i < len(l.queue); i++ {
		p := l.queue[i]
		if p.cleared {
			continue
		}
		// Tombstone before delivery so a message re-posted by the handler
		// is not conflated against this already-delivered entry.
		l.queue[i].cleared = true
		p.handler.ProcessMessage(p.msg)
	}
	l.queue = l.queue[:0]
}

// ClearPending cancels all queued messages for the handler. Entries become
// tombstones; they are skipped on flush and ignored by conflation.
func (l *Loop) ClearPending(h Handler) {
	for i := range l.queue {
		if l.queue[i].handler == h {
			l.queue[i].cleared = true
		}
	}
}

// HasPending reports whether an uncleared message of the given kind is
// queued for the handler.
func (l *Loop) HasPending(h Handler, kind string) bool {
	for i := range l.queue {
		p := &l.queue[i]
		if !p.cleared && p.handler == h && p.msg.Kind() == kind {
			return true
		}
	}
	return false
}

// defaultLoop drives all widget hierarchies in the process. Hosts flush it
// after every batch of events.
var defaultLoop = NewLoop()

// Post enqueues a message on the default loop.
func Post(h Handler, m Message) { defaultLoop.Post(h, m) }

// Send delivers a message immediately via the default loop.
func Send(h Handler, m Message) { defaultLoop.Send(h, m) }

// Flush drains the default loop.
func Flush() { defaultLoop.Flush() }

// ClearPending cancels queued messages for the handler on the default loop.
func ClearPending(h Handler) { defaultLoop.ClearPending(h) }

// HasPending reports pending state on the default loop.
func HasPending(h Handler, kind string) bool { return defaultLoop.HasPending(h, kind) }
