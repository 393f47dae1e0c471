package ux

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm asks a yes/no question on out and reads the answer from in.
// Empty input or a read error yields defaultYes.
func Confirm(in io.Reader, out io.Writer, message string, defaultYes bool) bool {
	reader := bufio.NewReader(in)

	prompt := message
	if defaultYes {
		prompt += " (Y/n): "
	} else {
		prompt += " (y/N): "
	}

	fmt.Fprint(out, prompt)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return defaultYes
	}

	response = strings.TrimSpace(strings.ToLower(response))

	if response == "" {
		return defaultYes
	}

	return response == "y" || response == "yes"
}
