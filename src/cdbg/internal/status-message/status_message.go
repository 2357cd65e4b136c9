// Package statusmessage renders the templated status messages returned by the debugger backend.
package statusmessage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/uber/cdbg-sync/src/cdbg/entity"
)

// ErrEmptyFormat is returned for a message without a format string.
var ErrEmptyFormat = errors.New("empty message format")

// Format substitutes $0, $1, ... in msg.Format with the matching parameter. "$$" renders a literal "$".
func Format(msg entity.FormatMessage) (string, error) {
	if msg.Format == "" {
		return "", ErrEmptyFormat
	}

	f := msg.Format
	var b strings.Builder
	for i := 0; i < len(f); i++ {
		if f[i] != '$' {
			b.WriteByte(f[i])
			continue
		}
		if i+1 < len(f) && f[i+1] == '$' {
			b.WriteByte('$')
			i++
			continue
		}

		end := i + 1
		for end < len(f) && f[end] >= '0' && f[end] <= '9' {
			end++
		}
		if end == i+1 {
			return "", fmt.Errorf("dangling '$' at offset %d in %q", i, f)
		}
		index, err := strconv.Atoi(f[i+1 : end])
		if err != nil {
			return "", fmt.Errorf("parsing parameter index in %q: %w", f, err)
		}
		if index >= len(msg.Parameters) {
			return "", fmt.Errorf("parameter $%d out of range, %d parameters given", index, len(msg.Parameters))
		}
		b.WriteString(msg.Parameters[index])
		i = end - 1
	}
	return b.String(), nil
}

// FormatOr renders the status description, or returns fallback if the status is missing or cannot be rendered.
func FormatOr(status *entity.StatusMessage, fallback string) string {
	if status == nil {
		return fallback
	}
	msg, err := Format(status.Description)
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}
