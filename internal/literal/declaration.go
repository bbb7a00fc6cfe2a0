package literal

import (
	"fmt"
	"strings"
)

const (
	DefaultQualifier = "const auto"
	DefaultName      = "data"
)

// Declaration describes the C++ statement a literal body is wrapped in.
// Empty fields fall back to the defaults.
type Declaration struct {
	Qualifier string `toml:"qualifier"`
	Name      string `toml:"name"`
}

func DefaultDeclaration() Declaration {
	return Declaration{Qualifier: DefaultQualifier, Name: DefaultName}
}

// Format renders body as a string_view declaration.
func (d Declaration) Format(body string) string {
	qualifier := strings.TrimSpace(d.Qualifier)
	if qualifier == "" {
		qualifier = DefaultQualifier
	}
	name := strings.TrimSpace(d.Name)
	if name == "" {
		name = DefaultName
	}
	return qualifier + " " + name + " = \"" + body + "\"sv;"
}

// Validate rejects names that are not C++ identifiers and qualifiers that
// would break the statement.
func (d Declaration) Validate() error {
	if name := strings.TrimSpace(d.Name); name != "" && !isIdentifier(name) {
		return fmt.Errorf("declaration name %q is not an identifier", d.Name)
	}
	if strings.ContainsAny(d.Qualifier, "\"=;\r\n") {
		return fmt.Errorf("declaration qualifier %q contains reserved characters", d.Qualifier)
	}
	return nil
}

func isIdentifier(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case isDecimalDigit(c) && i > 0:
		default:
			return false
		}
	}
	return s != ""
}
