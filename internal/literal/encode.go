package literal

import "unicode/utf8"

const (
	// HeaderTagLen is the width of the record tag at the start of the input.
	HeaderTagLen = 4
	// HeaderLen is the width of the full record header, tag included.
	HeaderLen = 24
)

type Zone int

const (
	ZoneTag Zone = iota
	ZoneHeader
	ZoneBody
)

func (z Zone) String() string {
	switch z {
	case ZoneTag:
		return "tag"
	case ZoneHeader:
		return "header"
	case ZoneBody:
		return "body"
	default:
		return "unknown"
	}
}

// ZoneOf returns the zone of the byte at index.
func ZoneOf(index int) Zone {
	switch {
	case index < HeaderTagLen:
		return ZoneTag
	case index < HeaderLen:
		return ZoneHeader
	default:
		return ZoneBody
	}
}

// ZoneCounts splits a run of n bytes into the number of bytes per zone.
func ZoneCounts(n int) (tag, header, body int) {
	tag = min(n, HeaderTagLen)
	header = min(n, HeaderLen) - tag
	body = n - tag - header
	return tag, header, body
}

// Step appends the representation of b at position index and returns the
// state for the next byte.
func Step(dst []byte, index int, b byte, prev Lookback) ([]byte, Lookback) {
	switch ZoneOf(index) {
	case ZoneTag:
		// Tag bytes go out as characters without any checks.
		return utf8.AppendRune(dst, rune(b)), Lookback{}
	case ZoneHeader:
		return AppendEscape(dst, b), escapedState(b)
	default:
		if Safe(b, prev) {
			return append(dst, b), Lookback{}
		}
		return AppendEscape(dst, b), escapedState(b)
	}
}

// EncodeBytes returns the literal body for data.
func EncodeBytes(data []byte) string {
	buf := make([]byte, 0, len(data)*2)
	var state Lookback
	for i, b := range data {
		buf, state = Step(buf, i, b, state)
	}
	return string(buf)
}

// Encode decodes trimmed hex input and returns the literal body. Nothing is
// returned alongside an error.
func Encode(input string) (string, error) {
	data, err := Decode(input)
	if err != nil {
		return "", err
	}
	return EncodeBytes(data), nil
}
