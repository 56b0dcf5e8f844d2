package lang

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Name identifies a language node in the capability graph.
type Name string

// Local is the language the local machine executes natively. It is the sink
// every executability query is answered against.
const Local Name = "LOCAL"

var (
	// ErrInvalidName is returned for a language token that is empty or not alphanumeric.
	ErrInvalidName = errors.New("language must be alphanumeric")
	// ErrInvalidProgramName is returned for an empty program name or one containing whitespace.
	ErrInvalidProgramName = errors.New("invalid program name")
)

// String implements fmt.Stringer.
func (n Name) String() string { return string(n) }

// IsLocal reports whether n is the reference executor.
func (n Name) IsLocal() bool { return n == Local }

// IsAlphanumeric reports whether s is non-empty and made only of letters and
// numbers. Numbers include digits of any script as well as characters such
// as '²' and '½'.
func IsAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// Parse validates s and returns it as a Name.
func Parse(s string) (Name, error) {
	if !IsAlphanumeric(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, s)
	}
	return Name(s), nil
}

// ParseAll validates every token, failing on the first invalid one.
func ParseAll(tokens ...string) ([]Name, error) {
	names := make([]Name, 0, len(tokens))
	for _, tok := range tokens {
		n, err := Parse(tok)
		if err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, nil
}

// ValidateProgramName checks a program name. Program names are free-form
// apart from being non-empty and free of whitespace.
func ValidateProgramName(s string) error {
	if s == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidProgramName)
	}
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidProgramName, s)
	}
	return nil
}

// JoinPath renders a chain of languages as "A -> B -> LOCAL".
func JoinPath(path []Name) string {
	parts := make([]string, len(path))
	for i, n := range path {
		parts[i] = string(n)
	}
	return strings.Join(parts, " -> ")
}
