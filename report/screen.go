package report

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/evolve2d/genetic/organism"
	"github.com/lixenwraith/evolve2d/parameter"
)

// Screen draws the latest report as a full-screen panel
type Screen struct {
	screen       tcell.Screen
	headingStyle tcell.Style
	labelStyle   tcell.Style
	valueStyle   tcell.Style
}

var _ Reporter = (*Screen)(nil)

// NewScreen creates a reporter drawing on an initialized screen
func NewScreen(screen tcell.Screen) *Screen {
	return &Screen{
		screen:       screen,
		headingStyle: tcell.StyleDefault.Bold(true).Foreground(tcell.NewHexColor(0x8BC34A)),
		labelStyle:   tcell.StyleDefault.Foreground(tcell.NewHexColor(0x2196F3)),
		valueStyle:   tcell.StyleDefault,
	}
}

// Report replaces the panel contents with the fields for generation
func (s *Screen) Report(generation int, best organism.Organism) error {
	fields, err := Fields(best)
	if err != nil {
		return err
	}

	s.screen.Clear()
	drawText(s.screen, 0, 0, Heading(generation), s.headingStyle)
	valueCol := 2 + parameter.GAReportLabelWidth + 1
	for i, f := range fields {
		row := i + 1
		drawText(s.screen, 2, row, f.Label+":", s.labelStyle)
		drawText(s.screen, valueCol, row, f.Value, s.valueStyle)
	}
	s.screen.Show()
	return nil
}

// Footer writes a status line below the report block
func (s *Screen) Footer(text string) {
	_, height := s.screen.Size()
	drawText(s.screen, 0, height-1, text, s.labelStyle)
	s.screen.Show()
}

// drawText writes single-width runes starting at (x, y), clipped to the screen
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	width, height := screen.Size()
	if y < 0 || y >= height {
		return
	}
	for _, r := range text {
		if x >= width {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
