package term

import (
	"fmt"
	"io"

	"github.com/mdp/qrterminal"
)

// LinkOpener "opens" an external link by printing it together with a QR
// code, so it can be followed from a phone.
type LinkOpener struct {
	out    io.Writer
	showQR bool
}

func NewLinkOpener(out io.Writer, showQR bool) *LinkOpener {
	return &LinkOpener{out: out, showQR: showQR}
}

func (o *LinkOpener) Open(url string) error {
	if _, err := fmt.Fprintln(o.out, "Open:", url); err != nil {
		return err
	}
	if o.showQR {
		qrterminal.GenerateHalfBlock(url, qrterminal.L, o.out)
	}
	return nil
}
