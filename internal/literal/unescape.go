package literal

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

var simpleEscapes = map[byte]byte{
	'"':  '"',
	'\'': '\'',
	'?':  '?',
	'\\': '\\',
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
}

// Unescape lexes the body of a narrow C++ string literal the way a compiler
// does: \x consumes every following hex digit and octal escapes take up to
// three digits. Values that do not fit in a byte are rejected.
func Unescape(body string) ([]byte, error) {
	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); {
		c := body[i]
		if c == '"' {
			return nil, fmt.Errorf("%w: unescaped quote at offset %d", ErrLiteralSyntax, i)
		}
		if c != '\\' {
			out = append(out, c)
			i++
			continue
		}
		start := i
		i++
		if i == len(body) {
			return nil, fmt.Errorf("%w: trailing backslash at offset %d", ErrLiteralSyntax, start)
		}
		e := body[i]
		switch {
		case e == 'x':
			i++
			v, n := 0, 0
			for i < len(body) && isHexDigit(body[i]) {
				v = v<<4 | hexValue(body[i])
				if v > 0xff {
					return nil, fmt.Errorf("%w: hex escape at offset %d out of range", ErrLiteralSyntax, start)
				}
				i++
				n++
			}
			if n == 0 {
				return nil, fmt.Errorf("%w: \\x without digits at offset %d", ErrLiteralSyntax, start)
			}
			out = append(out, byte(v))
		case isOctalDigit(e):
			v := 0
			for n := 0; n < 3 && i < len(body) && isOctalDigit(body[i]); n++ {
				v = v<<3 | int(body[i]-'0')
				i++
			}
			if v > 0xff {
				return nil, fmt.Errorf("%w: octal escape at offset %d out of range", ErrLiteralSyntax, start)
			}
			out = append(out, byte(v))
		default:
			r, ok := simpleEscapes[e]
			if !ok {
				return nil, fmt.Errorf("%w: unknown escape \\%c at offset %d", ErrLiteralSyntax, e, start)
			}
			out = append(out, r)
			i++
		}
	}
	return out, nil
}

func hexValue(c byte) int {
	switch {
	case isDecimalDigit(c):
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}

// Verify re-lexes body and checks that it yields data. Tag bytes are compared
// in the form EncodeBytes writes them.
func Verify(data []byte, body string) error {
	got, err := Unescape(body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRoundTrip, err)
	}
	want := make([]byte, 0, len(data)+HeaderTagLen)
	for i, b := range data {
		if ZoneOf(i) == ZoneTag {
			want = utf8.AppendRune(want, rune(b))
			continue
		}
		want = append(want, b)
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("%w: lexed %d bytes, want %d, first difference at byte %d",
			ErrRoundTrip, len(got), len(want), firstDifference(got, want))
	}
	return nil
}

func firstDifference(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
