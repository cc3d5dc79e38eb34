package colprint

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// displayWidth returns the number of terminal cells s occupies. All width
// math in the package goes through here so the counting strategy stays in
// one place.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// padRight extends s with ASCII spaces until it occupies width cells.
// Strings already at or beyond width are returned unchanged.
func padRight(s string, width int) string {
	pad := width - displayWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
