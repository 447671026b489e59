// Package snippet defines the snippet value type and the built-in snippet
// that ships with the binary.
package snippet

import (
	"fmt"
	"io"
)

// Snippet is a paste-ready fix fragment: an instruction telling the operator
// where to apply it, and the body to paste verbatim.
type Snippet struct {
	Name        string
	Description string
	Instruction string
	Body        string
}

// Write emits the snippet contract to w: the instruction line terminated by
// a newline, then the body verbatim. The body carries its own leading and
// trailing blank lines, so no separator is inserted between the two.
func Write(w io.Writer, instruction, body string) error {
	if _, err := fmt.Fprintln(w, instruction); err != nil {
		return err
	}
	if _, err := io.WriteString(w, body); err != nil {
		return err
	}
	return nil
}
