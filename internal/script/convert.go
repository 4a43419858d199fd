package script

import (
	"reflect"

	"github.com/dop251/goja"

	"github.com/iw/electron/internal/window"
)

// Value conversion between script values and native dialog parameters. Each
// target type gets its own named decoder: decoding never raises and degrades
// to a default (empty string, zero, nil) instead, so all shape rejection
// happens in the argument validators before any decoder runs.

// DecodeString returns the textual representation of v. A missing value
// decodes to the empty string.
func DecodeString(v goja.Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}

// DecodeInteger returns the numeric coercion of v. Non-numeric values decode
// to 0, matching JavaScript ToInteger semantics.
func DecodeInteger(v goja.Value) int {
	if v == nil {
		return 0
	}
	return int(v.ToInteger())
}

// DecodePath builds a filesystem path from the decoded UTF-8 string. No
// existence or validity check is performed.
func DecodePath(v goja.Value) string {
	return DecodeString(v)
}

// DecodeWindow resolves v to a live native window. v must be a wrapper object
// carrying a window id (see WrapWindow); anything else, and any id whose
// window is no longer live, resolves to nil. A nil owner makes the dialog
// application-modal rather than window-modal.
func DecodeWindow(v goja.Value, registry *window.Registry) *window.Window {
	if v == nil || registry == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil
	}
	idValue := obj.Get("id")
	if idValue == nil || !IsNumber(idValue) {
		return nil
	}
	return registry.Lookup(uint64(idValue.ToInteger()))
}

// DecodeCallback wraps a callable value as an owned single-use handle. A
// non-callable value decodes to nil, which selects synchronous mode.
func DecodeCallback(v goja.Value) *Callback {
	if v == nil {
		return nil
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil
	}
	return &Callback{fn: fn}
}

// EncodePath encodes a filesystem path as a script string.
func EncodePath(rt *goja.Runtime, path string) goja.Value {
	return rt.ToValue(path)
}

// EncodePaths encodes an ordered path list as a script array, preserving
// element order.
func EncodePaths(rt *goja.Runtime, paths []string) goja.Value {
	items := make([]interface{}, len(paths))
	for i, p := range paths {
		items[i] = p
	}
	return rt.NewArray(items...)
}

// EncodeButton encodes a 0-based button index as a script integer.
func EncodeButton(rt *goja.Runtime, index int) goja.Value {
	return rt.ToValue(index)
}

// EncodeNone returns the script-side "no value" sentinel.
func EncodeNone() goja.Value {
	return goja.Undefined()
}

// WrapWindow builds the script wrapper object for a live window. The wrapper
// holds only the window's id; DecodeWindow re-resolves it against the registry
// on every use, so a wrapper of a closed window quietly stops resolving.
func WrapWindow(rt *goja.Runtime, registry *window.Registry, w *window.Window) *goja.Object {
	obj := rt.NewObject()
	_ = obj.Set("id", w.ID())
	_ = obj.Set("title", w.Title())
	_ = obj.Set("close", func(goja.FunctionCall) goja.Value {
		registry.Close(w)
		return goja.Undefined()
	})
	return obj
}

// IsNumber reports whether v is a script number.
func IsNumber(v goja.Value) bool {
	if v == nil {
		return false
	}
	t := v.ExportType()
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Int64, reflect.Float64:
		return true
	default:
		return false
	}
}

// IsString reports whether v is a script string.
func IsString(v goja.Value) bool {
	if v == nil {
		return false
	}
	t := v.ExportType()
	return t != nil && t.Kind() == reflect.String
}

// IsArray reports whether v is a script array.
func IsArray(v goja.Value) bool {
	if v == nil {
		return false
	}
	obj, ok := v.(*goja.Object)
	return ok && obj.ClassName() == "Array"
}

// IsCallable reports whether v can be invoked as a function.
func IsCallable(v goja.Value) bool {
	if v == nil {
		return false
	}
	_, ok := goja.AssertFunction(v)
	return ok
}
