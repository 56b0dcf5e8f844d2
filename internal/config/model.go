package config

import (
	"errors"
	"fmt"

	"github.com/vk/tombstone/internal/lang"
)

// Kind is the type of a declaration.
type Kind string

const (
	KindProgram     Kind = "program"
	KindInterpreter Kind = "interpreter"
	KindTranslator  Kind = "translator"
)

// ErrInvalidDeclaration is wrapped by every validation failure.
var ErrInvalidDeclaration = errors.New("invalid declaration")

// Model is the unified representation of one or more manifests.
type Model struct {
	Declarations []Declaration
}

// Declaration is a single program, interpreter or translator definition.
// Only the fields relevant to Kind are set.
type Declaration struct {
	Kind     Kind
	Name     string // program
	Language string // program, interpreter
	Base     string // interpreter, translator
	Source   string // translator
	Target   string // translator

	// Origin is a human-readable source position such as "grid.hcl:3,1".
	Origin string
}

// Program builds a program declaration.
func Program(name, language string) Declaration {
	return Declaration{Kind: KindProgram, Name: name, Language: language}
}

// Interpreter builds an interpreter declaration.
func Interpreter(base, language string) Declaration {
	return Declaration{Kind: KindInterpreter, Base: base, Language: language}
}

// Translator builds a translator declaration.
func Translator(base, source, target string) Declaration {
	return Declaration{Kind: KindTranslator, Base: base, Source: source, Target: target}
}

// Append adds declarations to the end of the model.
func (m *Model) Append(decls ...Declaration) {
	m.Declarations = append(m.Declarations, decls...)
}

// Merge appends every declaration of other, keeping their order.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Append(other.Declarations...)
}

// Validate checks every declaration's tokens.
func (m *Model) Validate() error {
	var errs []error
	for _, d := range m.Declarations {
		if err := d.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Validate checks that the declaration carries valid tokens for its kind.
func (d Declaration) Validate() error {
	var err error
	switch d.Kind {
	case KindProgram:
		if err = lang.ValidateProgramName(d.Name); err == nil {
			_, err = lang.Parse(d.Language)
		}
	case KindInterpreter:
		_, err = lang.ParseAll(d.Base, d.Language)
	case KindTranslator:
		_, err = lang.ParseAll(d.Base, d.Source, d.Target)
	default:
		err = fmt.Errorf("unknown kind %q", d.Kind)
	}
	if err == nil {
		return nil
	}
	if d.Origin != "" {
		return fmt.Errorf("%w at %s: %s: %w", ErrInvalidDeclaration, d.Origin, d.Kind, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrInvalidDeclaration, d.Kind, err)
}
