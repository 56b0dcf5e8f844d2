package programs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vk/tombstone/internal/lang"
)

var (
	// ErrDuplicate is returned when a program name is already registered.
	ErrDuplicate = errors.New("program already defined")
	// ErrUnknown is returned when a program name has never been registered.
	ErrUnknown = errors.New("program not defined")
)

// Program is a named program written in a language.
type Program struct {
	Name     string    `json:"name"`
	Language lang.Name `json:"language"`
}

// Registry holds every program defined in a session.
type Registry struct {
	byName map[string]lang.Name
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{byName: make(map[string]lang.Name)}
}

// Define records name as a program written in language. Nothing is changed
// when the name is already taken.
func (r *Registry) Define(name string, language lang.Name) error {
	if existing, ok := r.byName[name]; ok {
		return fmt.Errorf("%w: %q is written in %q", ErrDuplicate, name, existing)
	}
	r.byName[name] = language
	return nil
}

// Lookup returns the language of the named program.
func (r *Registry) Lookup(name string) (lang.Name, error) {
	language, ok := r.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return language, nil
}

// Len returns the number of registered programs.
func (r *Registry) Len() int { return len(r.byName) }

// All returns every program sorted by name.
func (r *Registry) All() []Program {
	all := make([]Program, 0, len(r.byName))
	for name, language := range r.byName {
		all = append(all, Program{Name: name, Language: language})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}
