package script

import (
	"testing"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw/electron/internal/window"
)

// TestDecodeString tests textual decoding of assorted script values
func TestDecodeString(t *testing.T) {
	rt := goja.New()

	assert.Equal(t, "hello", DecodeString(rt.ToValue("hello")))
	assert.Equal(t, "42", DecodeString(rt.ToValue(42)))
	assert.Equal(t, "undefined", DecodeString(goja.Undefined()))
	assert.Equal(t, "", DecodeString(nil))
}

// TestDecodeInteger tests numeric coercion, including the non-numeric → 0 rule
func TestDecodeInteger(t *testing.T) {
	rt := goja.New()

	assert.Equal(t, 5, DecodeInteger(rt.ToValue(5)))
	assert.Equal(t, 5, DecodeInteger(rt.ToValue(5.9)))
	assert.Equal(t, 12, DecodeInteger(rt.ToValue("12")))
	assert.Equal(t, 0, DecodeInteger(rt.ToValue("not a number")))
	assert.Equal(t, 0, DecodeInteger(goja.Undefined()))
	assert.Equal(t, 0, DecodeInteger(nil))
}

// TestPathRoundTrip tests decode(encode(x)) == x for paths
func TestPathRoundTrip(t *testing.T) {
	rt := goja.New()

	for _, path := range []string{"/tmp/a.txt", "relative/file", "", "/with spaces/έ.txt"} {
		assert.Equal(t, path, DecodePath(EncodePath(rt, path)))
	}
}

// TestPathListRoundTrip tests decode(encode(xs)) == xs for path lists,
// index-preserving
func TestPathListRoundTrip(t *testing.T) {
	rt := goja.New()

	paths := []string{"/tmp/c.txt", "/tmp/a.txt", "/tmp/b.txt"}
	encoded := EncodePaths(rt, paths)
	require.True(t, IsArray(encoded))

	arr := encoded.ToObject(rt)
	require.Equal(t, int64(3), arr.Get("length").ToInteger())
	assert.Equal(t, "/tmp/c.txt", DecodePath(arr.Get("0")))
	assert.Equal(t, "/tmp/a.txt", DecodePath(arr.Get("1")))
	assert.Equal(t, "/tmp/b.txt", DecodePath(arr.Get("2")))
}

// TestEncodePaths_Empty tests encoding an empty path list
func TestEncodePaths_Empty(t *testing.T) {
	rt := goja.New()

	encoded := EncodePaths(rt, nil)
	require.True(t, IsArray(encoded))
	assert.Equal(t, int64(0), encoded.ToObject(rt).Get("length").ToInteger())
}

// TestEncodeButton tests integer encoding
func TestEncodeButton(t *testing.T) {
	rt := goja.New()
	assert.Equal(t, int64(1), EncodeButton(rt, 1).ToInteger())
}

// TestEncodeNone tests the "no value" sentinel
func TestEncodeNone(t *testing.T) {
	assert.True(t, goja.IsUndefined(EncodeNone()))
}

// TestDecodeWindow_LiveWindow tests that a wrapper of a live window resolves
func TestDecodeWindow_LiveWindow(t *testing.T) {
	rt := goja.New()
	registry := window.NewRegistry()
	w := registry.Open("main")

	wrapper := WrapWindow(rt, registry, w)
	assert.Same(t, w, DecodeWindow(wrapper, registry))
}

// TestDecodeWindow_ClosedWindow tests that a wrapper of a closed window
// degrades to nil (application-modal)
func TestDecodeWindow_ClosedWindow(t *testing.T) {
	rt := goja.New()
	registry := window.NewRegistry()
	w := registry.Open("main")
	wrapper := WrapWindow(rt, registry, w)

	registry.Close(w)
	assert.Nil(t, DecodeWindow(wrapper, registry))
}

// TestDecodeWindow_CloseFromScript tests closing a window through its wrapper
func TestDecodeWindow_CloseFromScript(t *testing.T) {
	rt := goja.New()
	registry := window.NewRegistry()
	w := registry.Open("main")

	require.NoError(t, rt.Set("win", WrapWindow(rt, registry, w)))
	_, err := rt.RunString("win.close()")
	require.NoError(t, err)

	assert.False(t, w.Live())
	assert.Nil(t, DecodeWindow(rt.Get("win"), registry))
}

// TestDecodeWindow_NotAWindow tests that non-window values resolve to nil
func TestDecodeWindow_NotAWindow(t *testing.T) {
	rt := goja.New()
	registry := window.NewRegistry()

	assert.Nil(t, DecodeWindow(nil, registry))
	assert.Nil(t, DecodeWindow(goja.Undefined(), registry))
	assert.Nil(t, DecodeWindow(goja.Null(), registry))
	assert.Nil(t, DecodeWindow(rt.ToValue("window"), registry))
	assert.Nil(t, DecodeWindow(rt.ToValue(7), registry))
	assert.Nil(t, DecodeWindow(rt.NewObject(), registry))

	// A wrapper-shaped object whose id is unknown to the registry
	fake := rt.NewObject()
	require.NoError(t, fake.Set("id", 999))
	assert.Nil(t, DecodeWindow(fake, registry))
}

// TestDecodeCallback tests callable wrapping and the non-callable → nil rule
func TestDecodeCallback(t *testing.T) {
	rt := goja.New()

	fn, err := rt.RunString("(function(){})")
	require.NoError(t, err)

	cb := DecodeCallback(fn)
	require.NotNil(t, cb)
	assert.False(t, cb.Consumed())

	assert.Nil(t, DecodeCallback(rt.ToValue("not callable")))
	assert.Nil(t, DecodeCallback(goja.Undefined()))
	assert.Nil(t, DecodeCallback(goja.Null()))
	assert.Nil(t, DecodeCallback(nil))
}

// TestTypePredicates tests the shape predicates the validators build on
func TestTypePredicates(t *testing.T) {
	rt := goja.New()

	arr, err := rt.RunString("[1, 2]")
	require.NoError(t, err)
	fn, err := rt.RunString("(function(){})")
	require.NoError(t, err)

	assert.True(t, IsNumber(rt.ToValue(1)))
	assert.True(t, IsNumber(rt.ToValue(1.5)))
	assert.False(t, IsNumber(rt.ToValue("1")))
	assert.False(t, IsNumber(rt.ToValue(true)))
	assert.False(t, IsNumber(goja.Undefined()))
	assert.False(t, IsNumber(nil))

	assert.True(t, IsString(rt.ToValue("s")))
	assert.False(t, IsString(rt.ToValue(1)))
	assert.False(t, IsString(goja.Null()))

	assert.True(t, IsArray(arr))
	assert.False(t, IsArray(rt.NewObject()))
	assert.False(t, IsArray(rt.ToValue("[]")))

	assert.True(t, IsCallable(fn))
	assert.False(t, IsCallable(arr))
	assert.False(t, IsCallable(nil))
}
