package command

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/tombstone/internal/lang"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name string
		line string
		want Command
	}{
		{"define program", "DEFINE PROGRAM hello Java", Command{Action: ActionDefine, Type: TypeProgram, Args: []string{"hello", "Java"}}},
		{"define interpreter", "define interpreter LOCAL C", Command{Action: ActionDefine, Type: TypeInterpreter, Args: []string{"LOCAL", "C"}}},
		{"define translator", "DEFINE TRANSLATOR C Java C", Command{Action: ActionDefine, Type: TypeTranslator, Args: []string{"C", "Java", "C"}}},
		{"numeric aliases", "1 3 LOCAL Java C", Command{Action: ActionDefine, Type: TypeTranslator, Args: []string{"LOCAL", "Java", "C"}}},
		{"spanish aliases", "DEFINIR PROGRAMA hola Python", Command{Action: ActionDefine, Type: TypeProgram, Args: []string{"hola", "Python"}}},
		{"interprete", "definir interprete LOCAL Lua", Command{Action: ActionDefine, Type: TypeInterpreter, Args: []string{"LOCAL", "Lua"}}},
		{"executable", "EXECUTABLE hello", Command{Action: ActionExecutable, Args: []string{"hello"}}},
		{"ejecutable numeric", "2 hello", Command{Action: ActionExecutable, Args: []string{"hello"}}},
		{"explain", "EXPLICAR hello", Command{Action: ActionExplain, Args: []string{"hello"}}},
		{"display default", "DISPLAY", Command{Action: ActionDisplay, Args: []string{FormatText}}},
		{"display dot", "4 dot", Command{Action: ActionDisplay, Args: []string{FormatDOT}}},
		{"status", "ESTADO", Command{Action: ActionStatus}},
		{"help", "?", Command{Action: ActionHelp}},
		{"exit", "salir", Command{Action: ActionExit}},
		{"extra whitespace", "  EXECUTABLE   hello  ", Command{Action: ActionExecutable, Args: []string{"hello"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.line)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.line, diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name string
		line string
		want error
	}{
		{"empty", "   ", ErrEmpty},
		{"unknown action", "RUN hello", ErrUnknownAction},
		{"unknown type", "DEFINE COMPILER a b", ErrUnknownType},
		{"define without type", "DEFINE", ErrArity},
		{"program arity", "DEFINE PROGRAM hello", ErrArity},
		{"translator arity", "DEFINE TRANSLATOR a b", ErrArity},
		{"interpreter arity", "DEFINE INTERPRETER a b c", ErrArity},
		{"executable arity", "EXECUTABLE", ErrArity},
		{"exit arity", "EXIT now", ErrArity},
		{"bad language", "DEFINE PROGRAM hello C++", lang.ErrInvalidName},
		{"bad interpreter base", "DEFINE INTERPRETER lo-cal C", lang.ErrInvalidName},
		{"bad translator target", "DEFINE TRANSLATOR LOCAL a b_c", lang.ErrInvalidName},
		{"display format", "DISPLAY svg", ErrInvalidFormat},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.line)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_ProgramNamesAreFreeForm(t *testing.T) {
	got, err := Parse("DEFINE PROGRAM hello-world.v2 Java")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello-world.v2", "Java"}, got.Args)
}

func TestParse_SuggestsClosestAction(t *testing.T) {
	_, err := Parse("EXECUTBLE hello")
	var unknown *UnknownActionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "EXECUTBLE", unknown.Word)
	assert.Equal(t, "EXECUTABLE", unknown.Suggestion)
	assert.Contains(t, err.Error(), "did you mean EXECUTABLE?")

	_, err = Parse("xyzzy")
	require.ErrorAs(t, err, &unknown)
	assert.Empty(t, unknown.Suggestion)
}

func TestParse_SuggestsClosestType(t *testing.T) {
	_, err := Parse("DEFINE PROGRM hello Java")
	require.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), "did you mean PROGRAM?")
}
