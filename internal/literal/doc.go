// Package literal turns hex dumps of plugin records into C++ string_view
// literal bodies.
//
// Ownership boundary:
// - tokenizing and decoding space separated hex bytes
// - escape sequence formatting and the raw-or-escape decision
// - re-lexing a literal body back into bytes
//
// Output layout is positional. The first HeaderTagLen bytes are the record
// tag and are written as characters. Bytes up to HeaderLen form the binary
// record header and are always escaped. Everything after that is written raw
// where a compiler would read it back unchanged.
package literal
