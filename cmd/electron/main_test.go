package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw/electron/internal/config"
	fixtures "github.com/iw/electron/internal/testing"
)

// TestResolveLogFormat tests log format resolution logic
func TestResolveLogFormat(t *testing.T) {
	// Test: prettyLog flag wins
	cfg := &config.Config{LogFormat: "json"}
	assert.True(t, resolveLogFormat(cfg, true))

	// Test: config.LogFormat = "pretty" when flag is false
	cfg = &config.Config{LogFormat: "pretty"}
	assert.True(t, resolveLogFormat(cfg, false))

	// Test: config.LogFormat != "pretty" and flag is false
	cfg = &config.Config{LogFormat: "json"}
	assert.False(t, resolveLogFormat(cfg, false))
}

// TestExecute tests running a script against a scripted driver
func TestExecute(t *testing.T) {
	drv := fixtures.NewFakeDriver()
	drv.Enqueue(fixtures.Response{Button: 0})

	err := execute(drv, &config.Config{}, "test.js", `dialog.showMessageBox(1, ['OK'], 'Hello', 'Hi there', '')`)
	require.NoError(t, err)
	assert.Equal(t, 1, drv.Calls("messageBox"))
}

// TestExecute_ScriptError tests that script failures surface as errors
func TestExecute_ScriptError(t *testing.T) {
	drv := fixtures.NewFakeDriver()

	err := execute(drv, &config.Config{}, "bad.js", `function (`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "script error")

	err = execute(drv, &config.Config{}, "bad.js", `dialog.showSaveDialog(42, '/tmp')`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bad argument")
	assert.Equal(t, 0, drv.Calls("saveFile"))
}

// TestExecute_MainWindow tests that scripts can make dialogs window-modal
func TestExecute_MainWindow(t *testing.T) {
	drv := fixtures.NewFakeDriver()
	drv.Enqueue(fixtures.Response{Button: 0})

	err := execute(drv, &config.Config{}, "test.js", `dialog.showMessageBox(0, ['OK'], 't', 'm', '', mainWindow)`)
	require.NoError(t, err)

	req := drv.LastMessageBox()
	require.NotNil(t, req)
	require.NotNil(t, req.Owner)
	assert.Equal(t, "main", req.Owner.Title())
}

// TestExecute_DefaultPath tests the configured default_path fallback
func TestExecute_DefaultPath(t *testing.T) {
	drv := fixtures.NewFakeDriver()
	drv.Enqueue(fixtures.Response{Path: "/docs/out.txt"}, fixtures.Response{Path: "/tmp/out.txt"})

	cfg := &config.Config{DefaultPath: "/docs"}
	err := execute(drv, cfg, "test.js", `
		dialog.showSaveDialog('Save', '');
		dialog.showSaveDialog('Save', '/tmp/explicit.txt');
	`)
	require.NoError(t, err)

	// The second request's explicit path must survive the fallback shim.
	req := drv.LastSave()
	require.NotNil(t, req)
	assert.Equal(t, "/tmp/explicit.txt", req.DefaultPath)
	assert.Equal(t, 2, drv.Calls("saveFile"))
}

// TestExecute_DrainsAsyncDialogs tests that execute waits for callbacks
func TestExecute_DrainsAsyncDialogs(t *testing.T) {
	drv := fixtures.NewFakeDriver()
	drv.Enqueue(fixtures.Response{Paths: []string{"/tmp/a.txt"}})
	drv.SetJitter(fixtures.DefaultPollInterval)

	err := execute(drv, &config.Config{}, "test.js", `
		dialog.showOpenDialog('Open', '/tmp', 1, null, function (paths) {});
	`)
	require.NoError(t, err)
	assert.Equal(t, 1, drv.Calls("openFiles"))
}

// TestRunScript_MissingScript tests the unreadable-script error path
func TestRunScript_MissingScript(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	err := runScript("", "term", false, "does-not-exist.js")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read script")
}

// TestRunScript_UnknownDriver tests driver resolution failure
func TestRunScript_UnknownDriver(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	err := runScript("", "cocoa", false, "does-not-exist.js")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dialog driver 'cocoa'")
}
