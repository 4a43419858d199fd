package zenity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ncruces/zenity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw/electron/internal/dialog"
)

// TestMessageBox_ButtonLimits tests the label count guards, which run before
// any toolkit call
func TestMessageBox_ButtonLimits(t *testing.T) {
	d := &Driver{}

	_, err := d.MessageBox(&dialog.MessageBoxRequest{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, dialog.ErrCanceled))

	_, err = d.MessageBox(&dialog.MessageBoxRequest{
		Buttons: []string{"A", "B", "C", "D"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most 3 buttons")
}

// TestMapCancel tests toolkit cancel translation
func TestMapCancel(t *testing.T) {
	assert.ErrorIs(t, mapCancel(zenity.ErrCanceled), dialog.ErrCanceled)

	failure := fmt.Errorf("display gone")
	assert.Equal(t, failure, mapCancel(failure))
	assert.False(t, errors.Is(mapCancel(failure), dialog.ErrCanceled))
}

// TestMessageIcon tests the type → icon mapping
func TestMessageIcon(t *testing.T) {
	for _, kind := range []dialog.MessageBoxType{
		dialog.MessageBoxNone,
		dialog.MessageBoxInfo,
		dialog.MessageBoxWarning,
		dialog.MessageBoxError,
		dialog.MessageBoxQuestion,
		dialog.MessageBoxType(99),
	} {
		assert.NotNil(t, messageIcon(kind), "type %s", kind)
	}
}

// TestName tests the registered driver name
func TestName(t *testing.T) {
	d := &Driver{}
	assert.Equal(t, DriverName, d.Name())
}
