package tui

import (
	"strconv"
	"strings"

	"github.com/gridley/gridley-cli/pkg/models"
)

// DisplayValue converts a cell's raw value to its rendered text. Only the
// number, currency and percent formats are interpreted; everything else
// (including non-numeric values under a numeric format) passes through.
func DisplayValue(c *models.Cell) string {
	if c == nil {
		return ""
	}
	if c.Format == nil {
		return c.Value
	}
	switch c.Format.NumberFormat {
	case models.NumberFormatNumber:
		if f, err := strconv.ParseFloat(c.Value, 64); err == nil {
			return groupThousands(strconv.FormatFloat(f, 'f', -1, 64))
		}
	case models.NumberFormatCurrency:
		if f, err := strconv.ParseFloat(c.Value, 64); err == nil {
			return "$" + groupThousands(strconv.FormatFloat(f, 'f', 2, 64))
		}
	case models.NumberFormatPercent:
		if f, err := strconv.ParseFloat(c.Value, 64); err == nil {
			return strconv.FormatFloat(f*100, 'f', 2, 64) + "%"
		}
	}
	return c.Value
}

// groupThousands inserts comma separators into the integer part of a
// decimal number string.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}

	out := intPart
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
