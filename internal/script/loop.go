// Package script owns the embedded goja runtime and the machinery that moves
// values across the script/native boundary: the execution loop, the value
// converter, and single-use callback handles.
//
// The runtime is single-threaded. Every script-visible effect, including
// asynchronous dialog results, is marshalled onto the loop goroutine; nothing
// in this module touches the runtime from anywhere else.
package script

import (
	"fmt"
	"sync/atomic"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/iw/electron/internal/core"
)

const jobQueueSize = 128

// Loop runs a goja runtime on a dedicated goroutine and executes submitted
// jobs against it in FIFO order.
type Loop struct {
	rt      *goja.Runtime
	jobs    chan func(*goja.Runtime)
	quit    chan struct{}
	done    chan struct{}
	stopped atomic.Bool
}

// NewLoop creates a fresh runtime and starts its loop goroutine.
func NewLoop() *Loop {
	l := &Loop{
		rt:   goja.New(),
		jobs: make(chan func(*goja.Runtime), jobQueueSize),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.done)
	for {
		// Drain pending jobs before honoring shutdown so results queued
		// ahead of Stop are still delivered.
		select {
		case job := <-l.jobs:
			l.runJob(job)
			continue
		default:
		}
		select {
		case job := <-l.jobs:
			l.runJob(job)
		case <-l.quit:
			return
		}
	}
}

func (l *Loop) runJob(job func(*goja.Runtime)) {
	defer func() {
		if r := recover(); r != nil {
			core.LogPanicRecovery("script loop", r)
		}
	}()
	job(l.rt)
}

// RunOnLoop submits a job for execution on the loop goroutine. It returns an
// error when the loop has been stopped; it never runs the job inline.
func (l *Loop) RunOnLoop(job func(*goja.Runtime)) error {
	if l.stopped.Load() {
		return fmt.Errorf("script loop is stopped")
	}
	select {
	case l.jobs <- job:
		return nil
	case <-l.done:
		return fmt.Errorf("script loop is stopped")
	}
}

// RunSync submits a job and blocks until it has run, returning its result.
// It must not be called from the loop goroutine itself.
func (l *Loop) RunSync(job func(*goja.Runtime) (goja.Value, error)) (goja.Value, error) {
	type outcome struct {
		value goja.Value
		err   error
	}
	ch := make(chan outcome, 1)
	err := l.RunOnLoop(func(rt *goja.Runtime) {
		v, jobErr := job(rt)
		ch <- outcome{value: v, err: jobErr}
	})
	if err != nil {
		return nil, err
	}
	res := <-ch
	return res.value, res.err
}

// RunScript evaluates src on the loop and returns the script's value.
func (l *Loop) RunScript(name, src string) (goja.Value, error) {
	return l.RunSync(func(rt *goja.Runtime) (goja.Value, error) {
		return rt.RunScript(name, src)
	})
}

// Stop shuts the loop down after draining already-queued jobs and waits for
// the loop goroutine to exit. Stopping twice is a no-op.
func (l *Loop) Stop() {
	if l.stopped.CompareAndSwap(false, true) {
		close(l.quit)
	}
	<-l.done
	zap.L().Debug("Script loop stopped")
}
