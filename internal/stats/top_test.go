package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopChars(t *testing.T) {
	counts := map[byte]int{'b': 4, 'a': 4, 'c': 1, 'z': 9}
	top := TopChars(counts, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "z", top[0].Char)
	assert.Equal(t, "a", top[1].Char)
	assert.Equal(t, "b", top[2].Char)
	assert.Equal(t, 4, top[2].Count)

	assert.Len(t, TopChars(counts, 10), 4)
	assert.Nil(t, TopChars(counts, 0))
	assert.Nil(t, TopChars(nil, 3))
}
