// Package messaging provides the cooperative message loop that drives the
// widget hierarchy: a FIFO queue of (handler, message) pairs with
// conflation of pending requests, plus synchronous delivery for cascades
// that must resolve inline.
//
// The loop is single-threaded by design. All posting, sending, and
// flushing must happen on one goroutine (the host's event loop); there is
// no internal locking.
package messaging
