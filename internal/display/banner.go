package display

import (
	"fmt"
	"io"

	"github.com/backmassage/datasplit/internal/term"
)

// PrintBanner writes the ASCII art banner to w; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, `     _       _                   _ _ _
  __| | __ _| |_ __ _ ___ _ __ | (_) |_
 / _`+"`"+` |/ _`+"`"+` | __/ _`+"`"+` / __| '_ \| | | __|
| (_| | (_| | || (_| \__ \ |_) | | | |_
 \__,_|\__,_|\__\__,_|___/ .__/|_|_|\__|
                         |_|
`)
	if term.Enabled() {
		fmt.Fprintln(w, term.NC)
	}
}
