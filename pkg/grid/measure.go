package grid

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
)

// DefaultFontSize is the font size assumed when a cell's format does not
// set one. Fonts larger than this scale the measured height proportionally.
const DefaultFontSize = 14

// TextMeasurer computes the height, in screen lines, that a piece of text
// needs when wrapped to a given width. Implementations must be monotonic in
// text length for a fixed width and font.
type TextMeasurer interface {
	WrappedHeight(text string, width int, fontSize int, fontFamily string) int
}

// ReflowMeasurer measures wrapped text by actually word-wrapping it. The
// font family is irrelevant in a character grid; the font size scales the
// line count so oversized fonts still demand taller rows.
type ReflowMeasurer struct{}

func (ReflowMeasurer) WrappedHeight(text string, width int, fontSize int, fontFamily string) int {
	if text == "" {
		return 0
	}
	if width < 1 {
		width = 1
	}
	wrapped := wordwrap.String(text, width)
	lines := 0
	for _, line := range strings.Split(wrapped, "\n") {
		lines++
		// wordwrap keeps unbreakable runs intact; count their overflow.
		if w := ansi.PrintableRuneWidth(line); w > width {
			lines += (w - 1) / width
		}
	}
	if fontSize > DefaultFontSize {
		lines = (lines*fontSize + DefaultFontSize - 1) / DefaultFontSize
	}
	return lines
}
