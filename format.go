package canmsg

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	green = color.New(color.FgGreen).SprintfFunc()
	blue  = color.New(color.FgHiBlue).SprintfFunc()
)

// String renders the message as "<id> [<len>] <hex bytes>", for example
// "123 [2] DE AD".
func (m Message) String() string {
	var out strings.Builder
	fmt.Fprintf(&out, "%s [%d]", m.id, m.length)
	for _, b := range m.data[:m.length] {
		fmt.Fprintf(&out, " %02X", b)
	}
	return out.String()
}

// ColorString is String with the identifier and the printable view of the
// payload highlighted for terminals.
func (m Message) ColorString() string {
	var out strings.Builder
	out.WriteString(green("%s", m.id))
	fmt.Fprintf(&out, " [%d]", m.length)
	for _, b := range m.data[:m.length] {
		fmt.Fprintf(&out, " %02X", b)
	}
	if m.length > 0 {
		out.WriteString("  ")
		out.WriteString(blue("%s", onlyPrintable(m.data[:m.length])))
	}
	return out.String()
}

func onlyPrintable(data []byte) string {
	var out strings.Builder
	for _, b := range data {
		if b < 32 || b > 126 {
			out.WriteByte('.')
		} else {
			out.WriteByte(b)
		}
	}
	return out.String()
}
