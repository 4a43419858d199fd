package script

import (
	"sync/atomic"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/iw/electron/internal/core"
)

// Callback exclusively owns a reference to a script-side callable for the
// lifetime of one asynchronous dialog request. The invariant is structural:
// the callable is invoked at most once, always on the script loop, and the
// reference is dropped on every exit path — after delivery, after a throw
// inside the callee, or as soon as it is known delivery will never happen.
//
// A nil *Callback means "no callback supplied" and selects synchronous mode.
type Callback struct {
	fn       goja.Callable
	consumed atomic.Bool
}

// Deliver invokes the callable exactly once on the loop with the value
// produced by encode, then releases the reference. Delivering a nil or
// already-consumed handle is a programming error inside this layer; it is
// logged and otherwise ignored so the callee can never fire twice.
func (c *Callback) Deliver(loop *Loop, encode func(rt *goja.Runtime) goja.Value) {
	if c == nil {
		return
	}
	if !c.consumed.CompareAndSwap(false, true) {
		zap.L().Error("Callback delivered more than once; dropping second delivery")
		return
	}
	fn := c.fn
	err := loop.RunOnLoop(func(rt *goja.Runtime) {
		defer func() {
			if r := recover(); r != nil {
				core.LogPanicRecovery("callback", r)
			}
		}()
		if _, callErr := fn(goja.Undefined(), encode(rt)); callErr != nil {
			zap.L().Warn("Dialog callback threw", zap.Error(callErr))
		}
	})
	if err != nil {
		zap.L().Warn("Dropping dialog callback delivery", zap.Error(err))
	}
	c.fn = nil
}

// Release drops the callable without invoking it. Used when it is determined
// that delivery will never happen. Releasing nil or a consumed handle is a
// no-op.
func (c *Callback) Release() {
	if c == nil {
		return
	}
	if c.consumed.CompareAndSwap(false, true) {
		c.fn = nil
	}
}

// Consumed reports whether the handle has been delivered or released.
func (c *Callback) Consumed() bool {
	return c != nil && c.consumed.Load()
}

// Released reports whether the underlying reference has been dropped.
func (c *Callback) Released() bool {
	return c != nil && c.fn == nil
}
