package programs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/tombstone/internal/lang"
)

func TestDefineAndLookup(t *testing.T) {
	r := New()
	require.NoError(t, r.Define("P1", "L1"))

	language, err := r.Lookup("P1")
	require.NoError(t, err)
	assert.Equal(t, lang.Name("L1"), language)
}

func TestDefine_RejectsDuplicateWithoutMutation(t *testing.T) {
	r := New()
	require.NoError(t, r.Define("P1", "L1"))

	err := r.Define("P1", "L2")
	require.ErrorIs(t, err, ErrDuplicate)
	assert.Equal(t, 1, r.Len())

	language, err := r.Lookup("P1")
	require.NoError(t, err)
	assert.Equal(t, lang.Name("L1"), language, "the first definition must survive")
}

func TestLookup_Unknown(t *testing.T) {
	_, err := New().Lookup("nope")
	require.ErrorIs(t, err, ErrUnknown)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestAll_SortedByName(t *testing.T) {
	r := New()
	require.NoError(t, r.Define("zeta", "Z"))
	require.NoError(t, r.Define("alpha", "A"))

	assert.Equal(t, []Program{
		{Name: "alpha", Language: "A"},
		{Name: "zeta", Language: "Z"},
	}, r.All())
}
