package report

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/evolve2d/genetic/organism"
	"github.com/lixenwraith/evolve2d/parameter"
)

var (
	headingColor = lipgloss.Color("#8BC34A")
	labelColor   = lipgloss.Color("#2196F3")
)

// Text writes aligned report blocks to a writer
// Styling degrades to plain text when the writer is not a terminal
type Text struct {
	w       io.Writer
	heading lipgloss.Style
	label   lipgloss.Style
}

var _ Reporter = (*Text)(nil)

// NewText creates a text reporter writing to w
func NewText(w io.Writer) *Text {
	r := lipgloss.NewRenderer(w)
	return &Text{
		w:       w,
		heading: r.NewStyle().Bold(true).Foreground(headingColor),
		label:   r.NewStyle().Width(parameter.GAReportLabelWidth).Foreground(labelColor),
	}
}

// Report writes the heading and fields for generation
func (t *Text) Report(generation int, best organism.Organism) error {
	fields, err := Fields(best)
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString(t.heading.Render(Heading(generation)))
	sb.WriteByte('\n')
	t.writeFields(&sb, fields)

	_, err = io.WriteString(t.w, sb.String())
	return err
}

// Describe writes the fields of a single organism without a heading
func (t *Text) Describe(o organism.Organism) error {
	fields, err := Fields(o)
	if err != nil {
		return err
	}

	var sb strings.Builder
	t.writeFields(&sb, fields)

	_, err = io.WriteString(t.w, sb.String())
	return err
}

func (t *Text) writeFields(sb *strings.Builder, fields []Field) {
	for _, f := range fields {
		sb.WriteString("  ")
		sb.WriteString(t.label.Render(f.Label + ":"))
		sb.WriteByte(' ')
		sb.WriteString(f.Value)
		sb.WriteByte('\n')
	}
}
