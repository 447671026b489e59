// Package capture reads snippet bodies from an input stream.
package capture

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadBody reads r until EOF and returns the text as a snippet body.
// Interior blank lines and indentation are preserved exactly; a body is a
// verbatim paste fragment, not a list of statements. The result always ends
// with a single trailing newline so emitted output stays line-terminated.
func ReadBody(r io.Reader) (string, error) {
	var b strings.Builder
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		b.WriteString(s.Text())
		b.WriteByte('\n')
	}
	if err := s.Err(); err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("empty body")
	}
	return b.String(), nil
}
