// Package utils provides interactive helpers for the CLI commands.
package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prompts the user with msg on w and expects y/n on r.
// Returns true only for an explicit yes.
func Confirm(w io.Writer, r io.Reader, msg string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", msg)
	line, _ := bufio.NewReader(r).ReadString('\n')
	resp := strings.TrimSpace(strings.ToLower(line))
	return resp == "y" || resp == "yes"
}
