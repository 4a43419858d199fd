package dialog

import (
	"github.com/dop251/goja"

	"github.com/iw/electron/internal/script"
)

// Shallow positional shape checks, run before any decoding with side effects
// and before any native call. Only surface shape is checked (is-number,
// is-string, is-array); semantic validity, like whether a default path exists
// on disk, is deliberately out of scope. The optional trailing window and
// callback arguments are not validated here: their decoders degrade to nil,
// which is the documented "absent" behavior.

// ValidMessageBoxShape checks (type, buttons, title, message, detail, ...).
func ValidMessageBoxShape(call goja.FunctionCall) bool {
	return script.IsNumber(call.Argument(0)) &&
		script.IsArray(call.Argument(1)) &&
		script.IsString(call.Argument(2)) &&
		script.IsString(call.Argument(3)) &&
		script.IsString(call.Argument(4))
}

// ValidOpenDialogShape checks (title, defaultPath, properties, ...).
func ValidOpenDialogShape(call goja.FunctionCall) bool {
	return script.IsString(call.Argument(0)) &&
		script.IsString(call.Argument(1)) &&
		script.IsNumber(call.Argument(2))
}

// ValidSaveDialogShape checks (title, defaultPath, ...).
func ValidSaveDialogShape(call goja.FunctionCall) bool {
	return script.IsString(call.Argument(0)) &&
		script.IsString(call.Argument(1))
}
