// Package dialog implements the bridge between script code and native OS
// dialogs: a modal message box, an open-file picker, and a save-file picker.
// Each operation supports a blocking call that returns the result directly
// and a non-blocking call that delivers the result later through a
// caller-supplied callback. Presentation itself is delegated to a Driver.
package dialog

// MessageBoxType selects the icon and severity of a message box. Raw integers
// appear only at the script boundary; everything past decoding uses this type.
type MessageBoxType int

const (
	MessageBoxNone MessageBoxType = iota
	MessageBoxInfo
	MessageBoxWarning
	MessageBoxError
	MessageBoxQuestion
)

func (t MessageBoxType) String() string {
	switch t {
	case MessageBoxInfo:
		return "info"
	case MessageBoxWarning:
		return "warning"
	case MessageBoxError:
		return "error"
	case MessageBoxQuestion:
		return "question"
	default:
		return "none"
	}
}

// OpenProperty is the bitmask of open-dialog behaviors requested by the
// caller. Unknown bits are passed through to the driver untouched.
type OpenProperty int

const (
	OpenFile OpenProperty = 1 << iota
	OpenDirectory
	OpenMultiSelections
	OpenCreateDirectory
)

// Has reports whether all bits of flag are set.
func (p OpenProperty) Has(flag OpenProperty) bool {
	return p&flag == flag
}
