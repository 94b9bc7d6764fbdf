package term

import (
	"fmt"
	"io"
)

// ShowDialog prints a titled message, the terminal stand-in for an alert.
func ShowDialog(w io.Writer, title, message string) {
	fmt.Fprintf(w, "%s: %s\n", title, message)
}
