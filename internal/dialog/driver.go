package dialog

import (
	"errors"

	"github.com/iw/electron/internal/window"
)

// ErrCanceled is returned by drivers when the user dismisses a dialog without
// making a selection. The bridge does not distinguish cancellation from a
// dialog that could not be presented: both collapse to the "no value" result
// on the script side. Drivers should still return ErrCanceled for genuine
// cancels so the failure case can be logged separately.
var ErrCanceled = errors.New("dialog canceled")

// MessageBoxRequest carries the parameters of one message box invocation.
type MessageBoxRequest struct {
	Type    MessageBoxType
	Buttons []string
	Title   string
	Message string
	Detail  string
	Owner   *window.Window // nil makes the dialog application-modal
}

// OpenRequest carries the parameters of one open-file picker invocation.
type OpenRequest struct {
	Title       string
	DefaultPath string
	Properties  OpenProperty
	Owner       *window.Window
}

// SaveRequest carries the parameters of one save-file picker invocation.
type SaveRequest struct {
	Title       string
	DefaultPath string
	Owner       *window.Window
}

// Driver is the native dialog subsystem. Implementations present the dialog
// and block until the user dismisses it; the invoker decides on which
// goroutine that happens. The Owner reference is read-only and non-owning.
//
// MessageBox returns the 0-based index of the chosen button, in the order the
// buttons were supplied. OpenFiles returns the ordered selection. SaveFile
// returns the chosen path. All three return ErrCanceled on user cancel.
type Driver interface {
	Name() string
	MessageBox(req *MessageBoxRequest) (int, error)
	OpenFiles(req *OpenRequest) ([]string, error)
	SaveFile(req *SaveRequest) (string, error)
}
