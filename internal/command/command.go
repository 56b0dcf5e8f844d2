package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/vk/tombstone/internal/lang"
)

// Action is the verb of a command.
type Action string

const (
	ActionDefine     Action = "DEFINE"
	ActionExecutable Action = "EXECUTABLE"
	ActionExplain    Action = "EXPLAIN"
	ActionDisplay    Action = "DISPLAY"
	ActionStatus     Action = "STATUS"
	ActionHelp       Action = "HELP"
	ActionExit       Action = "EXIT"
)

// Type is the kind of thing a DEFINE command declares.
type Type string

const (
	TypeProgram     Type = "PROGRAM"
	TypeInterpreter Type = "INTERPRETER"
	TypeTranslator  Type = "TRANSLATOR"
)

// Display formats accepted by DISPLAY.
const (
	FormatText = "TEXT"
	FormatDOT  = "DOT"
)

var (
	ErrEmpty         = errors.New("empty command")
	ErrUnknownAction = errors.New("invalid action")
	ErrUnknownType   = errors.New("invalid type")
	ErrArity         = errors.New("invalid number of parameters")
	ErrInvalidFormat = errors.New("invalid display format")
)

var actionAliases = map[string]Action{
	"DEFINE": ActionDefine, "1": ActionDefine, "DEFINIR": ActionDefine,
	"EXECUTABLE": ActionExecutable, "2": ActionExecutable, "EJECUTABLE": ActionExecutable,
	"EXIT": ActionExit, "3": ActionExit, "SALIR": ActionExit, "QUIT": ActionExit,
	"DISPLAY": ActionDisplay, "4": ActionDisplay, "MOSTRAR": ActionDisplay,
	"EXPLAIN": ActionExplain, "EXPLICAR": ActionExplain,
	"STATUS": ActionStatus, "ESTADO": ActionStatus,
	"HELP": ActionHelp, "AYUDA": ActionHelp, "?": ActionHelp,
}

var typeAliases = map[string]Type{
	"PROGRAM": TypeProgram, "1": TypeProgram, "PROGRAMA": TypeProgram,
	"INTERPRETER": TypeInterpreter, "2": TypeInterpreter, "INTERPRETE": TypeInterpreter,
	"TRANSLATOR": TypeTranslator, "3": TypeTranslator, "TRADUCTOR": TypeTranslator,
}

// typeArity is the number of arguments each DEFINE type takes.
var typeArity = map[Type]int{
	TypeProgram:     2,
	TypeInterpreter: 2,
	TypeTranslator:  3,
}

// Command is a parsed, shape-checked line.
type Command struct {
	Action Action
	Type   Type     // DEFINE only
	Args   []string // positional arguments after the verb (and type)
}

// UnknownActionError is returned for an unrecognized verb.
type UnknownActionError struct {
	Word       string
	Suggestion string
}

func (e *UnknownActionError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("%s %q", ErrUnknownAction, e.Word)
	}
	return fmt.Sprintf("%s %q, did you mean %s?", ErrUnknownAction, e.Word, e.Suggestion)
}

func (e *UnknownActionError) Unwrap() error { return ErrUnknownAction }

// Parse turns a line into a Command.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmpty
	}

	word := strings.ToUpper(fields[0])
	action, ok := actionAliases[word]
	if !ok {
		return Command{}, &UnknownActionError{Word: fields[0], Suggestion: suggest(word, actionAliases)}
	}
	args := fields[1:]

	switch action {
	case ActionDefine:
		return parseDefine(args)
	case ActionExecutable, ActionExplain:
		if len(args) != 1 {
			return Command{}, arityError(action, 1, len(args))
		}
		if err := lang.ValidateProgramName(args[0]); err != nil {
			return Command{}, err
		}
		return Command{Action: action, Args: args}, nil
	case ActionDisplay:
		if len(args) > 1 {
			return Command{}, arityError(action, 1, len(args))
		}
		format := FormatText
		if len(args) == 1 {
			format = strings.ToUpper(args[0])
		}
		if format != FormatText && format != FormatDOT {
			return Command{}, fmt.Errorf("%w %q: expected TEXT or DOT", ErrInvalidFormat, args[0])
		}
		return Command{Action: action, Args: []string{format}}, nil
	default:
		if len(args) != 0 {
			return Command{}, arityError(action, 0, len(args))
		}
		return Command{Action: action}, nil
	}
}

func parseDefine(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, fmt.Errorf("%w: DEFINE needs a type (PROGRAM, INTERPRETER or TRANSLATOR)", ErrArity)
	}

	typ, ok := typeAliases[strings.ToUpper(args[0])]
	if !ok {
		err := fmt.Errorf("%w %q", ErrUnknownType, args[0])
		if s := suggest(strings.ToUpper(args[0]), typeAliases); s != "" {
			err = fmt.Errorf("%w, did you mean %s?", err, s)
		}
		return Command{}, err
	}
	params := args[1:]
	if want := typeArity[typ]; len(params) != want {
		return Command{}, arityError(Action(string(ActionDefine)+" "+string(typ)), want, len(params))
	}

	var err error
	switch typ {
	case TypeProgram:
		if err = lang.ValidateProgramName(params[0]); err == nil {
			_, err = lang.Parse(params[1])
		}
	default:
		_, err = lang.ParseAll(params...)
	}
	if err != nil {
		return Command{}, err
	}
	return Command{Action: ActionDefine, Type: typ, Args: params}, nil
}

func arityError(what Action, want, got int) error {
	return fmt.Errorf("%w: %s takes %d, got %d", ErrArity, what, want, got)
}

// suggest returns the canonical spelling closest to word when it is within
// two edits, or "" otherwise. Numeric aliases are never suggested.
func suggest[T ~string](word string, aliases map[string]T) string {
	best, bestDist := "", 3
	for alias, canonical := range aliases {
		if len(alias) < 2 {
			continue
		}
		d := levenshtein.Distance(word, alias, nil)
		if d < bestDist || (d == bestDist && string(canonical) < best) {
			best, bestDist = string(canonical), d
		}
	}
	return best
}
