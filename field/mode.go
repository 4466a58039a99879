package field

// WrapMode controls how logical lines are fitted to a viewport.
//
// WrapNone keeps one physical line per logical line and leaves clipping to
// the renderer. WrapChar breaks lines at exact width boundaries. WrapWord
// keeps whitespace-delimited tokens together whenever they fit.
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapChar
	WrapWord
)

func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "WrapNone"
	case WrapChar:
		return "WrapChar"
	case WrapWord:
		return "WrapWord"
	default:
		return "WrapMode(?)"
	}
}
