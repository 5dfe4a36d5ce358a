package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// ScreenSink renders blocks on a tcell screen, anchored at the top-left corner
type ScreenSink struct {
	screen  tcell.Screen
	noColor bool
}

// NewScreenSink wraps an uninitialized screen; Prepare initializes it
func NewScreenSink(screen tcell.Screen, noColor bool) *ScreenSink {
	return &ScreenSink{screen: screen, noColor: noColor}
}

// NewTTYScreenSink opens the process terminal through tcell
func NewTTYScreenSink(noColor bool) (*ScreenSink, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenSink(screen, noColor), nil
}

func (s *ScreenSink) Prepare(int) error {
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.HideCursor()
	s.screen.Clear()
	return nil
}

func (s *ScreenSink) Draw(rows [][]Cell) error {
	s.screen.Clear()
	for y, row := range rows {
		for x, c := range row {
			if c.Rune == 0 || c.Rune == ' ' {
				continue
			}
			style := tcell.StyleDefault
			if c.HasColor && !s.noColor {
				style = style.Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B)))
			}
			s.screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	s.screen.Show()
	return nil
}

func (s *ScreenSink) Finish() error {
	s.screen.Fini()
	return nil
}

// Screen exposes the underlying screen
func (s *ScreenSink) Screen() tcell.Screen {
	return s.screen
}
