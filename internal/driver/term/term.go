// Package term implements a terminal dialog driver: prompts on stdout,
// answers on stdin. It exists for headless environments where no native
// toolkit is available, and doubles as the driver the tests exercise the
// bridge with against scripted input.
package term

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iw/electron/internal/dialog"
	"github.com/iw/electron/internal/tui"
)

// DriverName is the name the driver registers under.
const DriverName = "term"

// Driver prompts for dialog answers on a terminal.
type Driver struct {
	in  *bufio.Scanner
	out io.Writer
	ui  *tui.UI
}

// New returns a terminal driver bound to stdin/stdout.
func New() *Driver {
	return NewWithStreams(os.Stdin, os.Stdout)
}

// NewWithStreams returns a terminal driver reading answers from in and
// writing prompts to out.
func NewWithStreams(in io.Reader, out io.Writer) *Driver {
	return &Driver{
		in:  bufio.NewScanner(in),
		out: out,
		ui:  tui.New(),
	}
}

// Name implements dialog.Driver.
func (d *Driver) Name() string {
	return DriverName
}

// MessageBox implements dialog.Driver. Buttons are presented as a numbered
// list; the user answers with the number. An empty answer cancels.
func (d *Driver) MessageBox(req *dialog.MessageBoxRequest) (int, error) {
	if len(req.Buttons) == 0 {
		return 0, fmt.Errorf("message box needs at least one button")
	}

	d.header(req.Title, req.Type.String())
	if req.Message != "" {
		fmt.Fprintln(d.out, req.Message)
	}
	if req.Detail != "" {
		fmt.Fprintln(d.out, d.ui.Detail(d.ui.RenderMarkdown(req.Detail)))
	}
	for i, label := range req.Buttons {
		fmt.Fprintf(d.out, "  [%d] %s\n", i, d.ui.Button(label))
	}

	answer, err := d.prompt(fmt.Sprintf("Choose 0-%d (blank cancels): ", len(req.Buttons)-1))
	if err != nil {
		return 0, err
	}
	index, err := strconv.Atoi(answer)
	if err != nil || index < 0 || index >= len(req.Buttons) {
		return 0, dialog.ErrCanceled
	}
	return index, nil
}

// OpenFiles implements dialog.Driver. With OpenMultiSelections set, one path
// is read per line until a blank line; otherwise a single path is read. An
// empty selection cancels.
func (d *Driver) OpenFiles(req *dialog.OpenRequest) ([]string, error) {
	d.header(req.Title, "open")
	if req.DefaultPath != "" {
		fmt.Fprintf(d.out, "Default: %s\n", req.DefaultPath)
	}

	if !req.Properties.Has(dialog.OpenMultiSelections) {
		answer, err := d.prompt("Path (blank cancels): ")
		if err != nil {
			return nil, err
		}
		if answer == "" {
			return nil, dialog.ErrCanceled
		}
		return []string{answer}, nil
	}

	fmt.Fprintln(d.out, "One path per line; blank line finishes:")
	var paths []string
	for {
		answer, err := d.prompt("> ")
		if err != nil {
			return nil, err
		}
		if answer == "" {
			break
		}
		paths = append(paths, answer)
	}
	if len(paths) == 0 {
		return nil, dialog.ErrCanceled
	}
	return paths, nil
}

// SaveFile implements dialog.Driver. An empty answer cancels.
func (d *Driver) SaveFile(req *dialog.SaveRequest) (string, error) {
	d.header(req.Title, "save")
	if req.DefaultPath != "" {
		fmt.Fprintf(d.out, "Default: %s\n", req.DefaultPath)
	}

	answer, err := d.prompt("Save as (blank cancels): ")
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", dialog.ErrCanceled
	}
	return answer, nil
}

func (d *Driver) header(title, kind string) {
	if title == "" {
		title = "Dialog"
	}
	fmt.Fprintf(d.out, "\n%s (%s)\n", d.ui.Title(title), kind)
}

func (d *Driver) prompt(label string) (string, error) {
	fmt.Fprint(d.out, label)
	if !d.in.Scan() {
		if err := d.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		// EOF behaves like cancel.
		return "", dialog.ErrCanceled
	}
	return strings.TrimSpace(d.in.Text()), nil
}
