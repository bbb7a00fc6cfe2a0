package literal

// Lookback describes how the previously written byte ended.
type Lookback struct {
	// Escape is set after any escape other than \0. A following hex digit
	// would be read as part of a \x escape.
	Escape bool
	// NUL is set after \0. A following octal digit would extend it.
	NUL bool
}

func escapedState(b byte) Lookback {
	return Lookback{Escape: b != 0, NUL: b == 0}
}

// Safe reports whether c may be written raw after a byte that left prev.
func Safe(c byte, prev Lookback) bool {
	if !isGraphic(c) || c == '\\' || c == '"' {
		return false
	}
	if prev.Escape && isHexDigit(c) {
		return false
	}
	if prev.NUL && isOctalDigit(c) {
		return false
	}
	return true
}

func isGraphic(c byte) bool {
	return c > ' ' && c < 0x7f
}

func isHexDigit(c byte) bool {
	return isDecimalDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isDecimalDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isOctalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}
