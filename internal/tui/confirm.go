// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
)

// Confirm prints question with a [y/N] suffix and blocks for a line of
// input. Only "y" and "yes" (any case) count as consent; EOF and read
// errors are treated as declining.
func (p *TerminalPresenter) Confirm(question string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.out)
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
