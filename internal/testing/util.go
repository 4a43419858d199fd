package testing

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/iw/electron/internal/core"
)

// CapturedOutput redirects stdout and stderr into pipes so tests can assert
// on terminal output (the tui spinner and the term driver write there).
type CapturedOutput struct {
	OriginalStdout *os.File
	OriginalStderr *os.File
	CapturedStdout *os.File // Read end
	CapturedStderr *os.File // Read end
	stdoutW        *os.File // Write end (closed for ReadAll to complete)
	stderrW        *os.File // Write end (closed for ReadAll to complete)
}

// NewCapturedOutput captures both stdout and stderr and returns them separately.
func NewCapturedOutput() (*CapturedOutput, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		core.LogDeferredError(stdoutR.Close)
		core.LogDeferredError(stdoutW.Close)
		return nil, fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	os.Stdout = stdoutW
	os.Stderr = stderrW

	return &CapturedOutput{
		OriginalStdout: originalStdout,
		OriginalStderr: originalStderr,
		CapturedStdout: stdoutR,
		CapturedStderr: stderrR,
		stdoutW:        stdoutW,
		stderrW:        stderrW,
	}, nil
}

// Stop restores the original streams and returns everything captured.
func (capturedOutput *CapturedOutput) Stop() (string, string, error) {
	// Restore originals first so late writers hit the real streams, then
	// close the write ends to signal EOF to ReadAll.
	os.Stdout = capturedOutput.OriginalStdout
	os.Stderr = capturedOutput.OriginalStderr

	core.LogDeferredError(capturedOutput.stdoutW.Close)
	core.LogDeferredError(capturedOutput.stderrW.Close)

	// Small delay so pending writes from background goroutines land.
	time.Sleep(10 * time.Millisecond)

	capturedStdout, err := io.ReadAll(capturedOutput.CapturedStdout)
	if err != nil {
		core.LogDeferredError(capturedOutput.CapturedStdout.Close)
		core.LogDeferredError(capturedOutput.CapturedStderr.Close)
		return "", "", fmt.Errorf("failed to read captured stdout: %w", err)
	}

	capturedStderr, err := io.ReadAll(capturedOutput.CapturedStderr)
	if err != nil {
		core.LogDeferredError(capturedOutput.CapturedStdout.Close)
		core.LogDeferredError(capturedOutput.CapturedStderr.Close)
		return "", "", fmt.Errorf("failed to read captured stderr: %w", err)
	}

	core.LogDeferredError(capturedOutput.CapturedStdout.Close)
	core.LogDeferredError(capturedOutput.CapturedStderr.Close)

	return string(capturedStdout), string(capturedStderr), nil
}
