package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dop251/goja"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw/electron/internal/config"
	"github.com/iw/electron/internal/core"
	"github.com/iw/electron/internal/dialog"
	"github.com/iw/electron/internal/driver"
	"github.com/iw/electron/internal/script"
	"github.com/iw/electron/internal/tui"
	"github.com/iw/electron/internal/window"
)

// newRunCmd creates the run command
func newRunCmd() *cobra.Command {
	var (
		configPath string
		driverName string
		prettyLog  bool
	)

	cmd := &cobra.Command{
		Use:   "run SCRIPT",
		Short: "Run a script with the dialog module installed",
		Long: `Run a JavaScript file. The script sees a global dialog object with
showMessageBox, showOpenDialog and showSaveDialog, and a mainWindow wrapper
dialogs can be made modal to. The process exits once the script returns and
every pending asynchronous dialog has resolved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(configPath, driverName, prettyLog, args[0])
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to electron.yaml config file")
	cmd.Flags().StringVar(&driverName, "driver", "", "Dialog driver to use (overrides config file)")
	cmd.Flags().BoolVar(&prettyLog, "pretty", false, "Use pretty-printed logs instead of JSON")

	return cmd
}

// runScript runs the script at scriptPath with the given flags
func runScript(configPath, driverName string, prettyLog bool, scriptPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v", err)
		return err
	}

	// Command line flag overrides config file
	if driverName != "" {
		cfg.Driver = driverName
	}

	if err := core.Init(resolveLogFormat(cfg, prettyLog)); err != nil {
		fmt.Printf("Failed to initialize logger: %v", err)
		return err
	}
	defer zap.L().Sync() //nolint:errcheck // Sync errors on stdout/stderr are not critical

	registry, err := driver.DefaultRegistry()
	if err != nil {
		return err
	}
	drv, err := registry.Open(cfg.Driver)
	if err != nil {
		return err
	}
	zap.L().Info("Opened dialog driver", zap.String("driver", drv.Name()))

	src, err := os.ReadFile(scriptPath) // #nosec G304 -- path comes from the CLI user
	if err != nil {
		return fmt.Errorf("failed to read script '%s': %w", scriptPath, err)
	}

	return execute(drv, cfg, filepath.Base(scriptPath), string(src))
}

// resolveLogFormat determines the log format based on CLI flag and config
func resolveLogFormat(cfg *config.Config, prettyLog bool) bool {
	if !prettyLog && cfg.LogFormat == "pretty" {
		return true
	}
	return prettyLog
}

// execute evaluates src on a fresh script loop with the dialog module
// installed, then drains pending asynchronous dialogs before returning.
func execute(drv dialog.Driver, cfg *config.Config, name, src string) error {
	loop := script.NewLoop()
	defer loop.Stop()

	windows := window.NewRegistry()
	invoker := dialog.NewInvoker(drv, loop, windows)
	mainWindow := windows.Open("main")

	if _, err := loop.RunSync(func(rt *goja.Runtime) (goja.Value, error) {
		if installErr := dialog.Install(rt, invoker); installErr != nil {
			return nil, installErr
		}
		return nil, rt.Set("mainWindow", script.WrapWindow(rt, windows, mainWindow))
	}); err != nil {
		return fmt.Errorf("failed to install dialog module: %w", err)
	}

	if cfg.DefaultPath != "" {
		if err := installDefaultPath(loop, cfg.DefaultPath); err != nil {
			return err
		}
	}

	if _, err := loop.RunScript(name, src); err != nil {
		return fmt.Errorf("script error: %w", err)
	}

	waitForDialogs(invoker)
	return nil
}

// installDefaultPath rebinds the file dialogs so an empty defaultPath argument
// falls back to the configured default_path.
func installDefaultPath(loop *script.Loop, defaultPath string) error {
	shim := fmt.Sprintf(`(function (fallback) {
	var openNative = dialog.showOpenDialog;
	var saveNative = dialog.showSaveDialog;
	dialog.showOpenDialog = function (title, path, properties, win, cb) {
		return openNative(title, path === '' ? fallback : path, properties, win, cb);
	};
	dialog.showSaveDialog = function (title, path, win, cb) {
		return saveNative(title, path === '' ? fallback : path, win, cb);
	};
})(%q);`, defaultPath)

	if _, err := loop.RunScript("default_path.js", shim); err != nil {
		return fmt.Errorf("failed to apply default_path: %w", err)
	}
	return nil
}

// waitForDialogs blocks until every pending asynchronous dialog has resolved,
// showing a spinner when attached to a terminal.
func waitForDialogs(invoker *dialog.Invoker) {
	pending := invoker.Pending()
	if pending == 0 {
		invoker.Wait()
		return
	}

	ui := tui.New()
	ui.Progress(fmt.Sprintf("Waiting for %d pending dialogs", pending))
	invoker.Wait()
	if ui.Enabled() {
		ui.ProgressSuccess("All dialogs resolved")
	}
	zap.L().Info("All pending dialogs resolved", zap.Int("count", pending))
}
