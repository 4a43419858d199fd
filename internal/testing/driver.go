// Package testing provides shared test fixtures for the dialog bridge: a
// scripted fake driver standing in for the native dialog subsystem, and
// stream-capture helpers for terminal output assertions.
package testing

import (
	"math/rand"
	"sync"
	"time"

	"github.com/iw/electron/internal/dialog"
)

// Response is one scripted user interaction for the fake driver. Err takes
// precedence; otherwise the field matching the operation is used.
type Response struct {
	Button int
	Paths  []string
	Path   string
	Err    error
}

// Cancel is a scripted user cancel.
func Cancel() Response {
	return Response{Err: dialog.ErrCanceled}
}

// FakeDriver implements dialog.Driver with scripted responses. Responses are
// consumed in FIFO order; when the queue is empty the fallback response is
// used. An optional jitter randomizes answer latency so concurrent requests
// resolve in arbitrary order, like real user interaction.
type FakeDriver struct {
	mu       sync.Mutex
	queue    []Response
	fallback Response
	jitter   time.Duration
	calls    map[string]int
	hold     chan struct{}

	lastMessageBox *dialog.MessageBoxRequest
	lastOpen       *dialog.OpenRequest
	lastSave       *dialog.SaveRequest
}

// NewFakeDriver creates a fake driver whose fallback cancels everything.
func NewFakeDriver() *FakeDriver {
	return &FakeDriver{
		fallback: Cancel(),
		calls:    make(map[string]int),
	}
}

// Enqueue scripts the next user interactions, in order.
func (d *FakeDriver) Enqueue(responses ...Response) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queue = append(d.queue, responses...)
}

// SetFallback sets the response used when the queue is empty.
func (d *FakeDriver) SetFallback(r Response) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fallback = r
}

// SetJitter makes every answer wait a random duration up to max.
func (d *FakeDriver) SetJitter(max time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.jitter = max
}

// Hold blocks every subsequent answer until the returned release function is
// called. Used to assert that asynchronous calls return before the dialog
// resolves.
func (d *FakeDriver) Hold() (release func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	gate := make(chan struct{})
	d.hold = gate
	var once sync.Once
	return func() {
		once.Do(func() { close(gate) })
	}
}

// Calls returns how many times the named operation ran.
func (d *FakeDriver) Calls(operation string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls[operation]
}

// Name implements dialog.Driver.
func (d *FakeDriver) Name() string {
	return "fake"
}

// LastMessageBox returns the most recent message box request.
func (d *FakeDriver) LastMessageBox() *dialog.MessageBoxRequest {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastMessageBox
}

// LastOpen returns the most recent open request.
func (d *FakeDriver) LastOpen() *dialog.OpenRequest {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastOpen
}

// LastSave returns the most recent save request.
func (d *FakeDriver) LastSave() *dialog.SaveRequest {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastSave
}

// MessageBox implements dialog.Driver.
func (d *FakeDriver) MessageBox(req *dialog.MessageBoxRequest) (int, error) {
	d.mu.Lock()
	d.lastMessageBox = req
	d.mu.Unlock()
	r := d.answer("messageBox")
	if r.Err != nil {
		return 0, r.Err
	}
	return r.Button, nil
}

// OpenFiles implements dialog.Driver.
func (d *FakeDriver) OpenFiles(req *dialog.OpenRequest) ([]string, error) {
	d.mu.Lock()
	d.lastOpen = req
	d.mu.Unlock()
	r := d.answer("openFiles")
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Paths, nil
}

// SaveFile implements dialog.Driver.
func (d *FakeDriver) SaveFile(req *dialog.SaveRequest) (string, error) {
	d.mu.Lock()
	d.lastSave = req
	d.mu.Unlock()
	r := d.answer("saveFile")
	if r.Err != nil {
		return "", r.Err
	}
	return r.Path, nil
}

func (d *FakeDriver) answer(operation string) Response {
	d.mu.Lock()
	d.calls[operation]++
	r := d.fallback
	if len(d.queue) > 0 {
		r = d.queue[0]
		d.queue = d.queue[1:]
	}
	jitter := d.jitter
	hold := d.hold
	d.mu.Unlock()

	if hold != nil {
		<-hold
	}
	if jitter > 0 {
		time.Sleep(time.Duration(rand.Int63n(int64(jitter))))
	}
	return r
}
