// hex2sv reads space separated hex bytes of a plugin record from stdin and
// prints them as a C++ string_view declaration:
//
//	$ echo "41 41 43 54 11 00 ..." | hex2sv
//	const auto data = "AACT\x11\0..."sv;
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
