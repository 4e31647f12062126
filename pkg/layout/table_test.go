package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(ws []int) int {
	total := 0
	for _, w := range ws {
		total += w
	}
	return total
}

func TestColumnsNaturalFit(t *testing.T) {
	headers := []string{"name", "age"}
	rows := [][]string{
		{"Alice", "30"},
		{"Bob", "25"},
	}

	widths := Columns(headers, rows, 40)
	require.Len(t, widths, 2)

	// Natural widths plus padding sum exactly to the budget
	assert.Equal(t, 40-GapWidth, sum(widths))
	// Padding goes to the widest column; text is never stretched
	assert.GreaterOrEqual(t, widths[0], 5)
	assert.GreaterOrEqual(t, widths[1], 3)
}

func TestColumnsShrinkExactSum(t *testing.T) {
	headers := []string{"aaaaaaaaaa", "bbbbbbbbbb", "cccccccccc"}
	available := 24

	widths := Columns(headers, nil, available)
	require.Len(t, widths, 3)

	// Sum of widths plus separators equals the available width exactly
	assert.Equal(t, available-2*GapWidth, sum(widths))
	for _, w := range widths {
		assert.Positive(t, w)
	}
}

func TestColumnsShrinkProportional(t *testing.T) {
	// One dominant column should absorb most of the shrinking
	headers := []string{strings.Repeat("a", 30), strings.Repeat("b", 6)}
	widths := Columns(headers, nil, 24)
	require.Len(t, widths, 2)

	assert.Equal(t, 24-GapWidth, sum(widths))
	assert.Greater(t, widths[0], widths[1])
}

func TestColumnsTieBreakRightmostShrinks(t *testing.T) {
	// Equal natural widths forced to shrink: the later column gives
	// first, so the earlier one stays more legible
	headers := []string{"aaaaa", "bbbbb"}
	widths := Columns(headers, nil, 11)
	require.Len(t, widths, 2)

	assert.Equal(t, 11-GapWidth, sum(widths))
	assert.GreaterOrEqual(t, widths[0], widths[1])
}

func TestColumnsSingleOverWideColumn(t *testing.T) {
	headers := []string{strings.Repeat("x", 50)}
	widths := Columns(headers, nil, 20)
	require.Len(t, widths, 1)
	assert.Equal(t, 20, widths[0])
}

func TestColumnsZeroRowsHeaderOnly(t *testing.T) {
	widths := Columns([]string{"name", "status"}, nil, 30)
	require.Len(t, widths, 2)
	assert.Equal(t, 30-GapWidth, sum(widths))
}

func TestColumnsEmpty(t *testing.T) {
	assert.Nil(t, Columns(nil, nil, 30))
}

func TestColumnsRowWiderThanHeaders(t *testing.T) {
	widths := Columns([]string{"a"}, [][]string{{"x", "y", "z"}}, 30)
	assert.Len(t, widths, 3)
}

func TestColumnsNarrowTerminal(t *testing.T) {
	headers := []string{"aaaaaaaaaa", "bbbbbbbbbb"}
	widths := Columns(headers, nil, 5)
	require.Len(t, widths, 2)
	for _, w := range widths {
		assert.Positive(t, w)
	}
}

func TestColumnsSpecScenario(t *testing.T) {
	// Header("Report") then a two-column table at width 10: widths
	// must fit in the 8 cells left after the separator
	rows := [][]string{{"a", "1"}, {"bb", "22"}}
	widths := Columns(nil, rows, 10)
	require.Len(t, widths, 2)
	assert.LessOrEqual(t, sum(widths), 10-GapWidth)
	for _, w := range widths {
		assert.Positive(t, w)
	}
}

func TestColumnsMeasuresStyledCells(t *testing.T) {
	// ANSI color sequences must not count toward natural width
	styled := "\x1b[31mred\x1b[0m"
	widths := Columns(nil, [][]string{{styled}}, 40)
	require.Len(t, widths, 1)
	assert.Equal(t, 40, widths[0])
}
