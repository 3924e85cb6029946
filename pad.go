package tilde

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// padTo pads s with pad to at least width display cells. left puts the
// padding before the text (right justification).
func padTo(s string, width int, pad rune, left bool) string {
	n := width - runewidth.StringWidth(s)
	if n <= 0 {
		return s
	}
	fill := strings.Repeat(string(pad), n)
	if left {
		return fill + s
	}
	return s + fill
}
