package literal

const upperHex = "0123456789ABCDEF"

// AppendEscape appends the escape sequence for b to dst.
func AppendEscape(dst []byte, b byte) []byte {
	switch b {
	case 0:
		return append(dst, '\\', '0')
	case '"':
		return append(dst, '\\', '"')
	case '\\':
		return append(dst, '\\', '\\')
	}
	return append(dst, '\\', 'x', upperHex[b>>4], upperHex[b&0x0f])
}

// Escape returns the escape sequence for b.
func Escape(b byte) string {
	return string(AppendEscape(make([]byte, 0, 4), b))
}
