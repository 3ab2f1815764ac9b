package inspect

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sdrhost/dboard-go/pkg/prop"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowMetadata includes kind and access information
	ShowMetadata bool

	// ShowIDs includes numeric key IDs alongside names
	ShowIDs bool

	// IndentWidth is the number of spaces per indent level
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowMetadata: true,
		ShowIDs:      false,
		IndentWidth:  2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	indent := strings.Repeat(" ", depth*width)
	return indent + content
}

// FormatValue formats a value for display, including unit conversions.
func (f *Formatter) FormatValue(v prop.Value, unit string) string {
	switch v.Kind() {
	case prop.KindInvalid:
		return "null"

	case prop.KindString:
		return strconv.Quote(v.Str())

	case prop.KindBool:
		return strconv.FormatBool(v.Truth())

	case prop.KindFloat32:
		return formatNumber(float64(v.F32()), unit)

	case prop.KindFloat64:
		return formatNumber(v.F64(), unit)

	case prop.KindRange:
		return f.FormatRange(v.Range(), unit)

	case prop.KindNames:
		names := v.NameList()
		if len(names) == 0 {
			return "[]"
		}
		return v.String()

	default:
		return v.String()
	}
}

// FormatRange formats a range as "[min, max]" or "[min, max] step s".
// Endpoints are shown in stored order.
func (f *Formatter) FormatRange(r prop.Range, unit string) string {
	s := fmt.Sprintf("[%s, %s]", formatNumber(r.Min, unit), formatNumber(r.Max, unit))
	if r.Step != 0 {
		s += " step " + formatNumber(r.Step, unit)
	}
	return s
}

func formatNumber(v float64, unit string) string {
	switch unit {
	case "":
		return strconv.FormatFloat(v, 'g', -1, 64)
	case "Hz":
		return FormatFrequencyHumanReadable(v)
	default:
		return strconv.FormatFloat(v, 'g', -1, 64) + " " + unit
	}
}

// FormatFrequencyHumanReadable formats a frequency in Hz with an SI prefix.
func FormatFrequencyHumanReadable(hz float64) string {
	abs := math.Abs(hz)
	switch {
	case abs >= 1e9:
		return strconv.FormatFloat(hz/1e9, 'g', 6, 64) + " GHz"
	case abs >= 1e6:
		return strconv.FormatFloat(hz/1e6, 'g', 6, 64) + " MHz"
	case abs >= 1e3:
		return strconv.FormatFloat(hz/1e3, 'g', 6, 64) + " kHz"
	default:
		return strconv.FormatFloat(hz, 'g', 6, 64) + " Hz"
	}
}

// FormatAccess formats an access level for display.
func FormatAccess(access prop.Access) string {
	switch access {
	case prop.AccessReadOnly:
		return "read-only"
	case prop.AccessWrite:
		return "write"
	case prop.AccessReadWrite:
		return "read-write"
	default:
		return fmt.Sprintf("access(%d)", access)
	}
}

// FormatKind formats a value kind for display.
func FormatKind(k prop.Kind) string {
	return k.String()
}

// PropertyRow represents a formatted property for display.
type PropertyRow struct {
	Key    prop.Key
	Name   string
	Value  string
	Kind   string
	Access string
}

// FormatPropertyTable formats a list of properties as a table.
func (f *Formatter) FormatPropertyTable(rows []PropertyRow) string {
	if len(rows) == 0 {
		return "  (no properties)"
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row.Name))
	}

	var sb strings.Builder
	for _, row := range rows {
		if f.ShowIDs {
			sb.WriteString(fmt.Sprintf("  [%2d] %-*s  %s", row.Key, width, row.Name, row.Value))
		} else {
			sb.WriteString(fmt.Sprintf("  %-*s  %s", width, row.Name, row.Value))
		}
		if f.ShowMetadata && row.Kind != "" {
			sb.WriteString(fmt.Sprintf(" (%s, %s)", row.Kind, row.Access))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
