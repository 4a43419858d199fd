// Package tui provides terminal UI utilities using charmbracelet libraries.
// It automatically detects terminal capabilities and disables rich output
// when piping or redirecting.
//
// The bridge uses it in two places: the terminal dialog driver renders its
// prompts through the styles and markdown renderer here, and the CLI shows a
// spinner while asynchronous dialogs are still pending at script exit.
//
// Environment variables:
//   - NO_COLOR or ELECTRON_NO_COLOR: disable colors (https://no-color.org/)
//   - TERM=dumb: disable colors
//   - ELECTRON_QUIET: disable progress output
package tui

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	colorGreen = lipgloss.ANSIColor(2)
	colorBlue  = lipgloss.ANSIColor(4)
	colorGray  = lipgloss.ANSIColor(8)
)

// UI provides terminal UI functionality with automatic TTY detection.
type UI struct {
	stdoutIsTTY bool
	stderrIsTTY bool
	// enabled indicates whether progress output should be shown
	enabled bool
	// colorEnabled indicates whether colors should be used
	colorEnabled bool
	// currentSpinner tracks the running pending-dialog spinner, if any
	currentSpinner *spinnerState
	// markdownRenderer renders message box detail text
	markdownRenderer *glamour.TermRenderer
}

type spinnerState struct {
	started time.Time
	ticker  clockwork.Ticker
	message string
	done    chan struct{}
}

var (
	spinnerClock clockwork.Clock = clockwork.NewRealClock()

	// stderrRenderer lets colors work on stderr even when stdout is piped
	stderrRenderer = lipgloss.NewRenderer(os.Stderr)

	successStyle = lipgloss.NewStyle().Renderer(stderrRenderer).Foreground(colorGreen).Bold(true)
	spinnerStyle = lipgloss.NewStyle().Renderer(stderrRenderer).Foreground(colorBlue)

	titleStyle  = lipgloss.NewStyle().Bold(true)
	detailStyle = lipgloss.NewStyle().Foreground(colorGray)
	buttonStyle = lipgloss.NewStyle().Foreground(colorBlue)
)

// New creates a new UI instance with automatic TTY detection.
func New() *UI {
	stdoutIsTTY := IsTerminal(os.Stdout)
	stderrIsTTY := IsTerminal(os.Stderr)

	ui := &UI{
		stdoutIsTTY:  stdoutIsTTY,
		stderrIsTTY:  stderrIsTTY,
		enabled:      stderrIsTTY && !isQuiet(),
		colorEnabled: stderrIsTTY && !isColorDisabled(),
	}

	if stdoutIsTTY {
		width := 80
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err == nil {
			ui.markdownRenderer = renderer
		}
	}

	return ui
}

// IsTerminal checks if a file descriptor is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func isQuiet() bool {
	if val := os.Getenv("ELECTRON_QUIET"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
		return true
	}
	return false
}

func isColorDisabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	if os.Getenv("ELECTRON_NO_COLOR") != "" {
		return true
	}
	if os.Getenv("TERM") == "dumb" {
		return true
	}
	return false
}

// Enabled returns whether progress output should be shown.
func (u *UI) Enabled() bool {
	return u.enabled
}

// ColorEnabled returns whether colors should be used.
func (u *UI) ColorEnabled() bool {
	return u.colorEnabled
}

// StdoutIsTTY returns whether stdout is a terminal.
func (u *UI) StdoutIsTTY() bool {
	return u.stdoutIsTTY
}

// Title styles a dialog title line.
func (u *UI) Title(text string) string {
	if !u.colorEnabled {
		return text
	}
	return titleStyle.Render(text)
}

// Detail styles dialog detail text.
func (u *UI) Detail(text string) string {
	if !u.colorEnabled {
		return text
	}
	return detailStyle.Render(text)
}

// Button styles one numbered button label.
func (u *UI) Button(text string) string {
	if !u.colorEnabled {
		return text
	}
	return buttonStyle.Render(text)
}

// RenderMarkdown renders markdown content for terminal display. When no
// renderer is available (piped output), the raw text is returned unchanged.
func (u *UI) RenderMarkdown(content string) string {
	if u.markdownRenderer == nil {
		return content
	}
	rendered, err := u.markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// Progress shows a progress message with a spinner on stderr, in the style
// of uv's clean UI. Used while waiting for pending dialogs to resolve.
func (u *UI) Progress(message string) {
	if !u.enabled {
		return
	}

	if u.currentSpinner != nil {
		u.stopSpinner()
	}

	u.currentSpinner = &spinnerState{
		started: time.Now(),
		message: message,
		done:    make(chan struct{}),
		ticker:  spinnerClock.NewTicker(100 * time.Millisecond),
	}

	state := u.currentSpinner
	printFrame := func() {
		elapsed := time.Since(state.started)
		frame := int(elapsed/spinner.Line.FPS) % len(spinner.Line.Frames)
		spinnerChar := spinner.Line.Frames[frame]
		if !u.colorEnabled {
			fmt.Fprintf(os.Stderr, "\r... %s", state.message)
			return
		}
		fmt.Fprintf(os.Stderr, "\r%s %s", spinnerStyle.Render(spinnerChar), state.message)
	}

	printFrame()

	go func() {
		for {
			select {
			case <-state.ticker.Chan():
				printFrame()
			case <-state.done:
				return
			}
		}
	}()
}

// ProgressSuccess stops the spinner and shows a checkmarked success message.
func (u *UI) ProgressSuccess(message string) {
	if !u.enabled {
		return
	}
	if u.currentSpinner == nil {
		zap.L().Error("ProgressSuccess called without a spinner")
		return
	}

	if message == "" {
		message = u.currentSpinner.message
	}
	u.stopSpinner()

	symbol := "✓"
	if u.colorEnabled {
		fmt.Fprintf(os.Stderr, "%s %s\n", successStyle.Render(symbol), message)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", symbol, message)
}

func (u *UI) stopSpinner() {
	if u.currentSpinner.ticker != nil {
		u.currentSpinner.ticker.Stop()
	}
	if u.currentSpinner.done != nil {
		close(u.currentSpinner.done)
	}
	// Give the animation goroutine a moment to observe done before the line
	// is cleared.
	time.Sleep(10 * time.Millisecond)
	fmt.Fprint(os.Stderr, "\r", ansi.EraseLine(2))
	u.currentSpinner = nil
}
