// Package zenity implements the native dialog driver on top of
// github.com/ncruces/zenity, which talks to the platform dialog toolkit
// (GTK zenity on Linux, native APIs on macOS and Windows).
package zenity

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"

	"github.com/iw/electron/internal/dialog"
)

// DriverName is the name the driver registers under.
const DriverName = "zenity"

// maxButtons is the widest message box the toolkit can express: an OK label,
// a cancel label, and one extra button.
const maxButtons = 3

// Driver presents dialogs through the platform toolkit. The zero value is
// usable; New exists for symmetry with the other drivers.
type Driver struct{}

// New returns a zenity-backed driver, or an error when the platform toolkit
// is not available (e.g. no zenity binary on a headless Linux host).
func New() (*Driver, error) {
	if !zenity.IsAvailable() {
		return nil, fmt.Errorf("platform dialog toolkit is not available")
	}
	return &Driver{}, nil
}

// Name implements dialog.Driver.
func (d *Driver) Name() string {
	return DriverName
}

// MessageBox implements dialog.Driver. Button labels map onto the toolkit's
// OK / cancel / extra slots in order, so the returned index is the 0-based
// position in the supplied labels.
func (d *Driver) MessageBox(req *dialog.MessageBoxRequest) (int, error) {
	if len(req.Buttons) == 0 {
		return 0, fmt.Errorf("message box needs at least one button")
	}
	if len(req.Buttons) > maxButtons {
		return 0, fmt.Errorf("message box supports at most %d buttons, got %d", maxButtons, len(req.Buttons))
	}

	text := req.Message
	if req.Detail != "" {
		text += "\n\n" + req.Detail
	}

	opts := []zenity.Option{
		zenity.Title(req.Title),
		messageIcon(req.Type),
		zenity.OKLabel(req.Buttons[0]),
	}
	if len(req.Buttons) > 1 {
		opts = append(opts, zenity.CancelLabel(req.Buttons[1]))
	}
	if len(req.Buttons) > 2 {
		opts = append(opts, zenity.ExtraButton(req.Buttons[2]))
	}

	err := zenity.Question(text, opts...)
	switch {
	case err == nil:
		return 0, nil
	case errors.Is(err, zenity.ErrExtraButton):
		return 2, nil
	case errors.Is(err, zenity.ErrCanceled):
		if len(req.Buttons) > 1 {
			// The cancel slot is a real button; dismissal picks it.
			return 1, nil
		}
		return 0, dialog.ErrCanceled
	default:
		return 0, fmt.Errorf("message box failed: %w", err)
	}
}

// OpenFiles implements dialog.Driver.
func (d *Driver) OpenFiles(req *dialog.OpenRequest) ([]string, error) {
	opts := []zenity.Option{
		zenity.Title(req.Title),
	}
	if req.DefaultPath != "" {
		opts = append(opts, zenity.Filename(req.DefaultPath))
	}
	if req.Properties.Has(dialog.OpenDirectory) {
		opts = append(opts, zenity.Directory())
	}

	if req.Properties.Has(dialog.OpenMultiSelections) {
		paths, err := zenity.SelectFileMultiple(opts...)
		if err != nil {
			return nil, mapCancel(err)
		}
		return paths, nil
	}

	path, err := zenity.SelectFile(opts...)
	if err != nil {
		return nil, mapCancel(err)
	}
	return []string{path}, nil
}

// SaveFile implements dialog.Driver.
func (d *Driver) SaveFile(req *dialog.SaveRequest) (string, error) {
	opts := []zenity.Option{
		zenity.Title(req.Title),
		zenity.ConfirmOverwrite(),
	}
	if req.DefaultPath != "" {
		opts = append(opts, zenity.Filename(req.DefaultPath))
	}

	path, err := zenity.SelectFileSave(opts...)
	if err != nil {
		return "", mapCancel(err)
	}
	return path, nil
}

func messageIcon(t dialog.MessageBoxType) zenity.Option {
	switch t {
	case dialog.MessageBoxInfo:
		return zenity.Icon(zenity.InfoIcon)
	case dialog.MessageBoxWarning:
		return zenity.Icon(zenity.WarningIcon)
	case dialog.MessageBoxError:
		return zenity.Icon(zenity.ErrorIcon)
	case dialog.MessageBoxQuestion:
		return zenity.Icon(zenity.QuestionIcon)
	default:
		return zenity.Icon(zenity.NoIcon)
	}
}

func mapCancel(err error) error {
	if errors.Is(err, zenity.ErrCanceled) {
		return dialog.ErrCanceled
	}
	return err
}
