package resolver

import (
	"github.com/vk/tombstone/internal/lang"
	"github.com/vk/tombstone/internal/pending"
)

// Observer receives a notification for every request the resolver handles
// and for every pending translator it materializes. Implementations must not
// call back into the resolver.
type Observer interface {
	ProgramDefined(name string, language lang.Name, err error)
	InterpreterDefined(base, language lang.Name, added bool)
	TranslatorDefined(c pending.Constraint, deferred bool)
	Materialized(c pending.Constraint)
	Queried(name string, executable bool, err error)
}

// NopObserver ignores every notification. Embed it to implement only part
// of Observer.
type NopObserver struct{}

func (NopObserver) ProgramDefined(string, lang.Name, error)       {}
func (NopObserver) InterpreterDefined(lang.Name, lang.Name, bool) {}
func (NopObserver) TranslatorDefined(pending.Constraint, bool)    {}
func (NopObserver) Materialized(pending.Constraint)               {}
func (NopObserver) Queried(string, bool, error)                   {}
