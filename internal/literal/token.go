package literal

import (
	"encoding/hex"
	"strings"
)

// Token is one space separated piece of the input and its position.
type Token struct {
	Index int
	Value string
}

// Tokenize splits trimmed input on single spaces. Pieces are not validated;
// consecutive spaces yield empty tokens that fail in DecodeToken.
func Tokenize(input string) []Token {
	parts := strings.Split(input, " ")
	tokens := make([]Token, 0, len(parts))
	for i, part := range parts {
		tokens = append(tokens, Token{Index: i, Value: part})
	}
	return tokens
}

// DecodeToken returns the byte a two digit hex token stands for.
func DecodeToken(tok Token) (byte, error) {
	if len(tok.Value) != 2 {
		return 0, &FormatError{Value: tok.Value, Index: tok.Index, Err: ErrTokenLength}
	}
	var out [1]byte
	if _, err := hex.Decode(out[:], []byte(tok.Value)); err != nil {
		return 0, &FormatError{Value: tok.Value, Index: tok.Index, Err: ErrTokenHex}
	}
	return out[0], nil
}

// Decode tokenizes input and decodes every token, stopping at the first
// malformed one.
func Decode(input string) ([]byte, error) {
	if input == "" {
		return nil, ErrEmptyInput
	}
	tokens := Tokenize(input)
	data := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		b, err := DecodeToken(tok)
		if err != nil {
			return nil, err
		}
		data = append(data, b)
	}
	return data, nil
}
