package dialog

import (
	"fmt"
	"strconv"

	"github.com/dop251/goja"

	"github.com/iw/electron/internal/script"
)

// Install registers the dialog module on the runtime as a global `dialog`
// object with showMessageBox, showOpenDialog and showSaveDialog. Must run on
// the script loop.
//
// Argument order is positional and fixed:
//
//	dialog.showMessageBox(type, buttons, title, message, detail[, window[, callback]])
//	dialog.showOpenDialog(title, defaultPath, properties[, window[, callback]])
//	dialog.showSaveDialog(title, defaultPath[, window[, callback]])
func Install(rt *goja.Runtime, inv *Invoker) error {
	module := rt.NewObject()

	natives := map[string]func(goja.FunctionCall) goja.Value{
		"showMessageBox": func(call goja.FunctionCall) goja.Value {
			if !ValidMessageBoxShape(call) {
				panic(rt.NewTypeError("Bad argument"))
			}
			req := &MessageBoxRequest{
				Type:    MessageBoxType(script.DecodeInteger(call.Argument(0))),
				Buttons: decodeButtons(rt, call.Argument(1)),
				Title:   script.DecodeString(call.Argument(2)),
				Message: script.DecodeString(call.Argument(3)),
				Detail:  script.DecodeString(call.Argument(4)),
				Owner:   script.DecodeWindow(call.Argument(5), inv.windows),
			}
			return inv.ShowMessageBox(rt, req, script.DecodeCallback(call.Argument(6)))
		},
		"showOpenDialog": func(call goja.FunctionCall) goja.Value {
			if !ValidOpenDialogShape(call) {
				panic(rt.NewTypeError("Bad argument"))
			}
			req := &OpenRequest{
				Title:       script.DecodeString(call.Argument(0)),
				DefaultPath: script.DecodePath(call.Argument(1)),
				Properties:  OpenProperty(script.DecodeInteger(call.Argument(2))),
				Owner:       script.DecodeWindow(call.Argument(3), inv.windows),
			}
			return inv.ShowOpenDialog(rt, req, script.DecodeCallback(call.Argument(4)))
		},
		"showSaveDialog": func(call goja.FunctionCall) goja.Value {
			if !ValidSaveDialogShape(call) {
				panic(rt.NewTypeError("Bad argument"))
			}
			req := &SaveRequest{
				Title:       script.DecodeString(call.Argument(0)),
				DefaultPath: script.DecodePath(call.Argument(1)),
				Owner:       script.DecodeWindow(call.Argument(2), inv.windows),
			}
			return inv.ShowSaveDialog(rt, req, script.DecodeCallback(call.Argument(3)))
		},
	}

	for name, fn := range natives {
		if err := module.Set(name, fn); err != nil {
			return fmt.Errorf("failed to register dialog.%s: %w", name, err)
		}
	}

	if err := rt.Set("dialog", module); err != nil {
		return fmt.Errorf("failed to register dialog module: %w", err)
	}
	return nil
}

// decodeButtons flattens a script array of button labels into an ordered
// string slice. Validation has already established that v is an array.
func decodeButtons(rt *goja.Runtime, v goja.Value) []string {
	arr := v.ToObject(rt)
	length := int(arr.Get("length").ToInteger())
	buttons := make([]string, 0, length)
	for i := 0; i < length; i++ {
		buttons = append(buttons, script.DecodeString(arr.Get(strconv.Itoa(i))))
	}
	return buttons
}
