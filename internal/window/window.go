// Package window tracks the application's live native windows. Dialog requests
// carry a non-owning reference to the window they are modal to; references are
// resolved through the registry at request-construction time so that a closed
// window degrades to "no owner" (application-modal) instead of a stale handle.
package window

import (
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
)

// Window is one live native window. The bridge never owns a window: it only
// reads its identity while building a dialog request.
type Window struct {
	id     uint64
	title  string
	closed atomic.Bool
}

// ID returns the registry identifier of the window.
func (w *Window) ID() uint64 {
	return w.id
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.title
}

// Live reports whether the window has not been closed yet.
func (w *Window) Live() bool {
	return !w.closed.Load()
}

// Registry is the set of currently live windows, keyed by id.
type Registry struct {
	windows *xsync.MapOf[uint64, *Window]
	nextID  atomic.Uint64
}

// NewRegistry creates an empty window registry.
func NewRegistry() *Registry {
	return &Registry{
		windows: xsync.NewMapOf[uint64, *Window](),
	}
}

// Open registers a new live window and returns it.
func (r *Registry) Open(title string) *Window {
	w := &Window{
		id:    r.nextID.Add(1),
		title: title,
	}
	r.windows.Store(w.id, w)
	return w
}

// Lookup resolves an id to a live window. It returns nil when the id is
// unknown or the window has been closed; callers treat nil as "no owner".
func (r *Registry) Lookup(id uint64) *Window {
	w, ok := r.windows.Load(id)
	if !ok || !w.Live() {
		return nil
	}
	return w
}

// Close marks the window dead and removes it from the registry. Closing an
// already-closed window is a no-op.
func (r *Registry) Close(w *Window) {
	if w == nil {
		return
	}
	if w.closed.CompareAndSwap(false, true) {
		r.windows.Delete(w.id)
	}
}

// Count returns the number of live windows.
func (r *Registry) Count() int {
	return r.windows.Size()
}
