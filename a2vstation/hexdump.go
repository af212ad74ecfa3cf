package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

/* hexdump renders data 16 bytes per row. Marked bytes are printed in red and,
 * because colour is lost when stderr is redirected, also pointed at with ^^. */
func hexdump(offset int, data []byte, mark []bool) string {
	var result strings.Builder
	red := color.New(color.FgRed, color.Bold)

	for len(data) > 0 {
		l := len(data)
		if l > 16 {
			l = 16
		}
		work := data[:l]
		data = data[l:]
		var workMark []bool
		if mark != nil {
			workMark = mark[:l]
			mark = mark[l:]
		}

		var workHex, workPtr string
		marked := false
		for i, m := range work {
			if workMark != nil && workMark[i] {
				workHex += red.Sprintf("%02x", m) + " "
				workPtr += "^^ "
				marked = true
			} else {
				workHex += fmt.Sprintf("%02x ", m)
				workPtr += "   "
			}
			if i%8 == 7 {
				workHex += " "
				workPtr += " "
			}
		}

		fmt.Fprintf(&result, "%04x  %s\n", offset, strings.TrimRight(workHex, " "))
		if marked {
			fmt.Fprintf(&result, "      %s\n", strings.TrimRight(workPtr, " "))
		}
		offset += l
	}

	return result.String()
}
