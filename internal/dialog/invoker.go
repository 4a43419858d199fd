package dialog

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dop251/goja"
	"github.com/jonboulle/clockwork"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/iw/electron/internal/core"
	"github.com/iw/electron/internal/script"
	"github.com/iw/electron/internal/window"
)

// Invoker drives the three dialog operations against a Driver and routes
// results back to script code. Every operation follows the same dual-mode
// protocol: with no callback the driver runs on the script loop and the
// result is returned directly, intentionally stalling script execution until
// the user dismisses the dialog; with a callback the driver runs on its own
// goroutine, the call returns the "no value" sentinel immediately, and the
// callback fires exactly once when the dialog resolves.
//
// Cancellation and inability to present are indistinguishable on the script
// side: both become the "no value" sentinel. Only the log output tells them
// apart.
type Invoker struct {
	driver  Driver
	loop    *script.Loop
	windows *window.Registry
	clock   clockwork.Clock

	nextID  atomic.Uint64
	pending *xsync.MapOf[uint64, string] // request id -> operation
	wg      sync.WaitGroup
}

// NewInvoker creates an invoker backed by the given driver.
func NewInvoker(driver Driver, loop *script.Loop, windows *window.Registry) *Invoker {
	return NewInvokerWithClock(driver, loop, windows, clockwork.NewRealClock())
}

// NewInvokerWithClock creates an invoker with a custom clock, for tests.
func NewInvokerWithClock(driver Driver, loop *script.Loop, windows *window.Registry, clock clockwork.Clock) *Invoker {
	return &Invoker{
		driver:  driver,
		loop:    loop,
		windows: windows,
		clock:   clock,
		pending: xsync.NewMapOf[uint64, string](),
	}
}

// Windows returns the live-window registry the invoker resolves owners
// against.
func (inv *Invoker) Windows() *window.Registry {
	return inv.windows
}

// Pending returns the number of asynchronous requests not yet resolved.
func (inv *Invoker) Pending() int {
	return inv.pending.Size()
}

// Wait blocks until every outstanding asynchronous request has resolved and
// its callback delivery has been queued on the script loop.
func (inv *Invoker) Wait() {
	inv.wg.Wait()
}

// ShowMessageBox presents a message box and resolves to the 0-based index of
// the chosen button. Runs on the script loop.
func (inv *Invoker) ShowMessageBox(rt *goja.Runtime, req *MessageBoxRequest, cb *script.Callback) goja.Value {
	if cb == nil {
		index, err := inv.finishMessageBox("showMessageBox", inv.nextID.Add(1), inv.clock.Now(), req)
		if err != nil {
			return script.EncodeNone()
		}
		return script.EncodeButton(rt, index)
	}

	id := inv.begin("showMessageBox")
	started := inv.clock.Now()
	go func() {
		defer inv.end(id)
		index, err := inv.finishMessageBox("showMessageBox", id, started, req)
		cb.Deliver(inv.loop, func(rt *goja.Runtime) goja.Value {
			if err != nil {
				return script.EncodeNone()
			}
			return script.EncodeButton(rt, index)
		})
	}()
	return script.EncodeNone()
}

// ShowOpenDialog presents an open-file picker and resolves to the ordered
// list of selected paths, or to "no value" on cancel or empty selection.
// Runs on the script loop.
func (inv *Invoker) ShowOpenDialog(rt *goja.Runtime, req *OpenRequest, cb *script.Callback) goja.Value {
	if cb == nil {
		paths, err := inv.finishOpen("showOpenDialog", inv.nextID.Add(1), inv.clock.Now(), req)
		if err != nil || len(paths) == 0 {
			return script.EncodeNone()
		}
		return script.EncodePaths(rt, paths)
	}

	id := inv.begin("showOpenDialog")
	started := inv.clock.Now()
	go func() {
		defer inv.end(id)
		paths, err := inv.finishOpen("showOpenDialog", id, started, req)
		cb.Deliver(inv.loop, func(rt *goja.Runtime) goja.Value {
			if err != nil || len(paths) == 0 {
				return script.EncodeNone()
			}
			return script.EncodePaths(rt, paths)
		})
	}()
	return script.EncodeNone()
}

// ShowSaveDialog presents a save-file picker and resolves to the chosen path,
// or to "no value" on cancel. Runs on the script loop.
func (inv *Invoker) ShowSaveDialog(rt *goja.Runtime, req *SaveRequest, cb *script.Callback) goja.Value {
	if cb == nil {
		path, err := inv.finishSave("showSaveDialog", inv.nextID.Add(1), inv.clock.Now(), req)
		if err != nil || path == "" {
			return script.EncodeNone()
		}
		return script.EncodePath(rt, path)
	}

	id := inv.begin("showSaveDialog")
	started := inv.clock.Now()
	go func() {
		defer inv.end(id)
		path, err := inv.finishSave("showSaveDialog", id, started, req)
		cb.Deliver(inv.loop, func(rt *goja.Runtime) goja.Value {
			if err != nil || path == "" {
				return script.EncodeNone()
			}
			return script.EncodePath(rt, path)
		})
	}()
	return script.EncodeNone()
}

func (inv *Invoker) begin(operation string) uint64 {
	id := inv.nextID.Add(1)
	inv.pending.Store(id, operation)
	inv.wg.Add(1)
	return id
}

func (inv *Invoker) end(id uint64) {
	inv.pending.Delete(id)
	inv.wg.Done()
}

func (inv *Invoker) finishMessageBox(operation string, id uint64, started time.Time, req *MessageBoxRequest) (int, error) {
	index, err := inv.driver.MessageBox(req)
	inv.logOutcome(operation, id, started, err == nil, err)
	return index, err
}

func (inv *Invoker) finishOpen(operation string, id uint64, started time.Time, req *OpenRequest) ([]string, error) {
	paths, err := inv.driver.OpenFiles(req)
	inv.logOutcome(operation, id, started, err == nil && len(paths) > 0, err)
	return paths, err
}

func (inv *Invoker) finishSave(operation string, id uint64, started time.Time, req *SaveRequest) (string, error) {
	path, err := inv.driver.SaveFile(req)
	inv.logOutcome(operation, id, started, err == nil && path != "", err)
	return path, err
}

func (inv *Invoker) logOutcome(operation string, id uint64, started time.Time, selection bool, err error) {
	// User cancel is a normal outcome; only real presentation failures are
	// surfaced as errors in the log. Script code sees no difference.
	if errors.Is(err, ErrCanceled) {
		err = nil
	}
	core.LogDialog(operation, id, inv.clock.Since(started).Seconds(), selection, err)
}
