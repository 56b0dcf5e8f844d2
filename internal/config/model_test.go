package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/tombstone/internal/lang"
)

func TestDeclarationValidate(t *testing.T) {
	testCases := []struct {
		name      string
		decl      Declaration
		expectErr error
	}{
		{name: "program", decl: Program("name_program", "language")},
		{name: "interpreter", decl: Interpreter("LOCAL", "Python")},
		{name: "translator", decl: Translator("LOCAL", "Java", "C")},
		{name: "program with bad language", decl: Program("p", "special_symbols-#$&"), expectErr: lang.ErrInvalidName},
		{name: "program with empty name", decl: Program("", "L1"), expectErr: lang.ErrInvalidProgramName},
		{name: "interpreter with bad base", decl: Interpreter("a-b", "L"), expectErr: lang.ErrInvalidName},
		{name: "translator with bad target", decl: Translator("B", "S", "T!"), expectErr: lang.ErrInvalidName},
		{name: "unknown kind", decl: Declaration{Kind: "compiler"}, expectErr: ErrInvalidDeclaration},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.decl.Validate()
			if tc.expectErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.expectErr)
			require.ErrorIs(t, err, ErrInvalidDeclaration)
		})
	}
}

func TestDeclarationValidate_IncludesOrigin(t *testing.T) {
	d := Interpreter("LOCAL", "bad-lang")
	d.Origin = "caps.hcl:4,1"

	err := d.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "caps.hcl:4,1")
}

func TestModelValidate_JoinsAllErrors(t *testing.T) {
	m := &Model{}
	m.Append(Program("ok", "L"), Program("bad", "L-1"), Interpreter("B", "x y"))

	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"L-1"`)
	assert.Contains(t, err.Error(), `"x y"`)
}

func TestModelMerge_KeepsOrder(t *testing.T) {
	a := &Model{}
	a.Append(Program("first", "A"))
	b := &Model{}
	b.Append(Program("second", "B"))

	a.Merge(b)
	a.Merge(nil)

	require.Len(t, a.Declarations, 2)
	assert.Equal(t, "first", a.Declarations[0].Name)
	assert.Equal(t, "second", a.Declarations[1].Name)
}
