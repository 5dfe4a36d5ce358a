package terminal

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellsOf(s string) []Cell {
	row := make([]Cell, 0, len(s))
	for _, r := range s {
		row = append(row, Cell{Rune: r})
	}
	return row
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want uint8
	}{
		{"black", Black, 16},
		{"white", White, 231},
		{"red", RGB{255, 0, 0}, 196},
		{"green", RGB{0, 255, 0}, 46},
		{"blue", RGB{0, 0, 255}, 21},
		{"mid gray", RGB{128, 128, 128}, 244},
		{"cube exact", RGB{95, 135, 175}, 16 + 36*1 + 6*2 + 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBTo256(tt.in))
		})
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, RGB{255, 128, 0}, c)

	c, err = ParseHex("0a0b0c")
	require.NoError(t, err)
	assert.Equal(t, RGB{10, 11, 12}, c)
	assert.Equal(t, "0a0b0c", c.Hex())
	assert.Equal(t, "#0a0b0c", c.String())

	_, err = ParseHex("fff")
	assert.Error(t, err)
	_, err = ParseHex("zzzzzz")
	assert.Error(t, err)
}

func TestWriteInt(t *testing.T) {
	for _, n := range []int{0, 7, 42, 255, 1000, 123456} {
		var buf bytes.Buffer
		w := bufio.NewWriter(&buf)
		writeInt(w, n)
		w.Flush()
		assert.Equal(t, itoa(n), buf.String())
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var s []byte
	for n > 0 {
		s = append([]byte{byte('0' + n%10)}, s...)
		n /= 10
	}
	return string(s)
}

func TestANSIWriter_Prepare(t *testing.T) {
	var buf bytes.Buffer
	a := NewANSIWriter(&buf, ColorModeTrueColor, false)
	require.NoError(t, a.Prepare(3))
	assert.Equal(t, "\x1b[?25l\n\n\n", buf.String())
}

func TestANSIWriter_DrawInPlace(t *testing.T) {
	var buf bytes.Buffer
	a := NewANSIWriter(&buf, ColorModeTrueColor, false)
	require.NoError(t, a.Draw([][]Cell{cellsOf("ab"), cellsOf(" c")}))
	assert.Equal(t, "\x1b7\x1b[2A\x1b[1Gab\n c\x1b8", buf.String())
}

func TestANSIWriter_Colors(t *testing.T) {
	row := []Cell{{Rune: 'x', Fg: RGB{255, 0, 0}, HasColor: true}, {Rune: 'y'}}

	var buf bytes.Buffer
	require.NoError(t, NewANSIWriter(&buf, ColorModeTrueColor, false).Draw([][]Cell{row}))
	assert.Contains(t, buf.String(), "\x1b[38;2;255;0;0mx\x1b[0my")

	buf.Reset()
	require.NoError(t, NewANSIWriter(&buf, ColorMode256, false).Draw([][]Cell{row}))
	assert.Contains(t, buf.String(), "\x1b[38;5;196mx\x1b[0my")

	buf.Reset()
	require.NoError(t, NewANSIWriter(&buf, ColorModeTrueColor, true).Draw([][]Cell{row}))
	assert.Contains(t, buf.String(), "\x1b[1Gxy\x1b8")
}

func TestANSIWriter_WideRuneContinuation(t *testing.T) {
	var buf bytes.Buffer
	row := []Cell{{Rune: '世'}, {Rune: 0}, {Rune: 'a'}}
	require.NoError(t, NewANSIWriter(&buf, ColorModeTrueColor, false).Draw([][]Cell{row}))
	assert.Contains(t, buf.String(), "世a")
}

func TestANSIWriter_Finish(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewANSIWriter(&buf, ColorModeTrueColor, false).Finish())
	assert.Equal(t, "\x1b[0m\x1b[?25h", buf.String())
}

func TestScreenSink(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	sink := NewScreenSink(screen, false)
	require.NoError(t, sink.Prepare(2))
	screen.SetSize(10, 4)

	rows := [][]Cell{
		{{Rune: 'h', Fg: RGB{0, 255, 0}, HasColor: true}, {Rune: 'i'}},
		cellsOf(" z"),
	}
	require.NoError(t, sink.Draw(rows))

	r, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, 'h', r)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 255, 0), fg)

	r, _, _, _ = screen.GetContent(1, 0)
	assert.Equal(t, 'i', r)
	r, _, _, _ = screen.GetContent(1, 1)
	assert.Equal(t, 'z', r)

	require.NoError(t, sink.Finish())
}

func TestSize_Fallback(t *testing.T) {
	w, h, ok := Size(-1)
	assert.False(t, ok)
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)
}

func TestEmergencyReset(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)
	assert.Contains(t, buf.String(), "\x1b[?25h")
	assert.Contains(t, buf.String(), "\x1b[0m")
}

func TestColorModeString(t *testing.T) {
	assert.Equal(t, "truecolor", ColorModeTrueColor.String())
	assert.Equal(t, "256", ColorMode256.String())
}
