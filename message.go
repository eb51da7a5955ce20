package phosphor

import "github.com/marekleszczynski/phosphor/pkg/messaging"

// Message kinds understood by Widget.ProcessMessage.
const (
	KindResize        = "resize"
	KindUpdateRequest = "update-request"
	KindFitRequest    = "fit-request"
	KindBeforeAttach  = "before-attach"
	KindAfterAttach   = "after-attach"
	KindBeforeDetach  = "before-detach"
	KindAfterDetach   = "after-detach"
	KindChildShown    = "child-shown"
	KindChildHidden   = "child-hidden"
)

// Singleton messages. The update and fit requests are conflatable: posting
// one while an equal request is pending for the same widget is a no-op,
// which is what bounds a resize cascade to one fit and one update per
// container.
var (
	MsgUpdateRequest = messaging.NewConflatableMsg(KindUpdateRequest)
	MsgFitRequest    = messaging.NewConflatableMsg(KindFitRequest)
	MsgBeforeAttach  = messaging.NewMsg(KindBeforeAttach)
	MsgAfterAttach   = messaging.NewMsg(KindAfterAttach)
	MsgBeforeDetach  = messaging.NewMsg(KindBeforeDetach)
	MsgAfterDetach   = messaging.NewMsg(KindAfterDetach)
)

// ResizeMessage carries a widget's new extent. A negative value means
// "unknown, measure the current geometry".
type ResizeMessage struct {
	Width, Height float64
}

// ResizeUnknown asks the layout to measure the widget itself.
var ResizeUnknown = ResizeMessage{Width: -1, Height: -1}

// Kind implements messaging.Message.
func (ResizeMessage) Kind() string { return KindResize }

// Conflatable implements messaging.Message. Resizes carry distinct extents
// and must all be delivered.
func (ResizeMessage) Conflatable() bool { return false }

// ChildMessage reports a visibility change of a child to its parent.
type ChildMessage struct {
	kind  string
	Child *Widget
}

// NewChildShown creates the message sent to a parent when a child is shown.
func NewChildShown(child *Widget) ChildMessage {
	return ChildMessage{kind: KindChildShown, Child: child}
}

// NewChildHidden creates the message sent to a parent when a child is hidden.
func NewChildHidden(child *Widget) ChildMessage {
	return ChildMessage{kind: KindChildHidden, Child: child}
}

// Kind implements messaging.Message.
func (m ChildMessage) Kind() string { return m.kind }

// Conflatable implements messaging.Message.
func (ChildMessage) Conflatable() bool { return false }
