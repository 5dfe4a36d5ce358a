package content

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/texteffects/vmath"
)

func symbols(g Grid) string {
	var b strings.Builder
	for _, c := range g.Cells {
		b.WriteRune(c.Symbol)
	}
	return b.String()
}

func TestDecompose_RowsFromBottom(t *testing.T) {
	g := Decompose("ab\ncd\n", Options{})
	require.Equal(t, 2, g.Height)
	assert.Equal(t, 2, g.Width)
	assert.Equal(t, []Cell{
		{Symbol: 'a', Coord: vmath.C(1, 2), Width: 1},
		{Symbol: 'b', Coord: vmath.C(2, 2), Width: 1},
		{Symbol: 'c', Coord: vmath.C(1, 1), Width: 1},
		{Symbol: 'd', Coord: vmath.C(2, 1), Width: 1},
	}, g.Cells)
}

func TestDecompose_SingleLine(t *testing.T) {
	g := Decompose("ABC", Options{})
	assert.Equal(t, 1, g.Height)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, vmath.C(1, 1), g.Cells[0].Coord)
	assert.Equal(t, vmath.C(3, 1), g.Cells[2].Coord)
}

func TestDecompose_SpacesSkipped(t *testing.T) {
	g := Decompose("a b", Options{})
	require.Len(t, g.Cells, 2)
	assert.Equal(t, vmath.C(3, 1), g.Cells[1].Coord)
	assert.Equal(t, 3, g.Width)
}

func TestDecompose_ExtentFromVisibleCells(t *testing.T) {
	g := Decompose("ab   \ncd", Options{})
	assert.Equal(t, 2, g.Width)
	assert.Equal(t, 2, g.Height)

	// Blank lines above the text keep their rows but add no height
	g = Decompose("\n\nxy\n", Options{})
	assert.Equal(t, 1, g.Height)
	assert.Equal(t, 2, g.Width)

	// A blank line between text rows still counts
	g = Decompose("a\n\nb", Options{})
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, vmath.C(1, 3), g.Cells[0].Coord)
}

func TestDecompose_Tabs(t *testing.T) {
	g := Decompose("\tx", Options{TabWidth: 4})
	require.Len(t, g.Cells, 1)
	assert.Equal(t, vmath.C(5, 1), g.Cells[0].Coord)
}

func TestDecompose_BlankInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n"} {
		g := Decompose(in, Options{})
		assert.Equal(t, "NoInput.", symbols(g), "input %q", in)
		assert.Equal(t, len(NoInputText), g.Width)
	}
}

func TestDecompose_Wrap(t *testing.T) {
	g := Decompose("abcdefg", Options{MaxWidth: 3})
	assert.Equal(t, []string{"abc", "def", "g"}, g.Lines)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, 3, g.Width)
	// Last wrapped chunk is the bottom row
	assert.Equal(t, Cell{Symbol: 'g', Coord: vmath.C(1, 1), Width: 1}, g.Cells[len(g.Cells)-1])
}

func TestDecompose_NoWrapTruncates(t *testing.T) {
	g := Decompose("abcdefg\nxy", Options{MaxWidth: 3, NoWrap: true})
	assert.Equal(t, []string{"abc", "xy"}, g.Lines)
	assert.Equal(t, "abcxy", symbols(g))
}

func TestDecompose_WideRunes(t *testing.T) {
	g := Decompose("世a", Options{})
	require.Len(t, g.Cells, 2)
	assert.Equal(t, 2, g.Cells[0].Width)
	assert.Equal(t, vmath.C(3, 1), g.Cells[1].Coord)
	assert.Equal(t, 3, g.Width)

	// A wide rune is never split by wrapping or truncation
	g = Decompose("a世", Options{MaxWidth: 2, NoWrap: true})
	assert.Equal(t, []string{"a"}, g.Lines)
	g = Decompose("a世", Options{MaxWidth: 2})
	assert.Equal(t, []string{"a", "世"}, g.Lines)
}

func TestDecompose_CRLF(t *testing.T) {
	g := Decompose("a\r\nb\r\n", Options{})
	assert.Equal(t, []string{"a", "b"}, g.Lines)
}

func TestReadInput(t *testing.T) {
	s, err := ReadInput(strings.NewReader("one\r\ntwo"), 0)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo", s)

	s, err = ReadInput(strings.NewReader("abcdef"), 3)
	require.NoError(t, err)
	assert.Equal(t, "abc", s)
}

func TestReadInput_LongLine(t *testing.T) {
	line := strings.Repeat("x", 2<<20)

	s, err := ReadInput(strings.NewReader(line), 1<<20)
	require.NoError(t, err)
	assert.Len(t, s, 1<<20)

	s, err = ReadInput(strings.NewReader(line+"\nend"), 0)
	require.NoError(t, err)
	assert.Len(t, s, len(line)+4)
	assert.True(t, strings.HasSuffix(s, "\nend"))
}

func TestReadInput_CutInsideRune(t *testing.T) {
	// "世" is 3 bytes; limits of 2 and 3 cut it, 4 keeps it whole
	s, err := ReadInput(strings.NewReader("a世b"), 2)
	require.NoError(t, err)
	assert.Equal(t, "a", s)

	s, err = ReadInput(strings.NewReader("a世b"), 3)
	require.NoError(t, err)
	assert.Equal(t, "a", s)

	s, err = ReadInput(strings.NewReader("a世b"), 4)
	require.NoError(t, err)
	assert.Equal(t, "a世", s)
	assert.True(t, utf8.ValidString(s))
}
