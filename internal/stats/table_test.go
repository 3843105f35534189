package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Class", "Chars", "Share"}
	rows := [][]string{
		{"upper", "120", "33.10%"},
		{"extra-symbols", "7", "2.00%"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	require.Len(t, lines, 3)
	assert.Equal(t, "Class          Chars   Share", lines[0])
	assert.Equal(t, "upper            120  33.10%", lines[1])
	assert.Equal(t, "extra-symbols      7   2.00%", lines[2])
}

func TestFormatTableRaggedRows(t *testing.T) {
	lines := formatTable(nil, [][]string{{"a"}, {"bb", "c"}}, nil)
	require.Len(t, lines, 2)
	assert.Equal(t, "a    ", lines[0])
	assert.Equal(t, "bb  c", lines[1])
	assert.Nil(t, formatTable(nil, nil, nil))
}
