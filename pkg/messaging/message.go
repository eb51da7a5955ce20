package messaging

// Message is a unit of work delivered to a Handler.
type Message interface {
	// Kind identifies the message type for dispatch and conflation.
	Kind() string

	// Conflatable reports whether a posted message may collapse into an
	// already-pending message of the same kind for the same handler.
	Conflatable() bool
}

// Handler receives messages from the loop.
type Handler interface {
	ProcessMessage(Message)
}

// Msg is a plain message with no payload, identified only by its kind.
type Msg struct {
	kind     string
	conflate bool
}

// NewMsg creates a non-conflatable message with the given kind.
func NewMsg(kind string) Msg {
	return Msg{kind: kind}
}

// NewConflatableMsg creates a conflatable message with the given kind.
// Posting it while an equal-kind message is already pending for the same
// handler is a no-op.
func NewConflatableMsg(kind string) Msg {
	return Msg{kind: kind, conflate: true}
}

// Kind returns the message kind.
func (m Msg) Kind() string { return m.kind }

// Conflatable reports whether the message collapses with pending equals.
func (m Msg) Conflatable() bool { return m.conflate }
