package render

import (
	"github.com/lixenwraith/texteffects/terminal"
)

// Cell is an alias to terminal.Cell so frames export to sinks without copying
type Cell = terminal.Cell

// continuation marks the trailing half of a wide rune
const continuation rune = 0
