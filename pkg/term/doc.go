// Package term hosts a widget hierarchy inside a terminal.
//
// The host is a bubbletea program: terminal resize events become root
// geometry, the message loop is flushed after every event, and the view is
// painted by walking the laid-out tree onto a styled cell canvas. Layout
// runs in floating point; coordinates are rounded only when cells are
// painted.
package term
