// Package format renders repository metadata for terminal display:
// ANSI-aware column math for the repo tables plus compact age and
// count strings matching how GitHub shows them.
package format

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripAnsi removes ANSI color sequences.
func StripAnsi(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// cell is one unit of a styled string: an ANSI sequence (width 0) or a
// display rune. An emoji presentation sequence (base rune plus U+FE0F)
// is a single width-2 cell; stray variation selectors are dropped.
type cell struct {
	text  string
	width int
}

func cells(s string) []cell {
	matches := ansiRegex.FindAllStringIndex(s, -1)

	var out []cell
	pos := 0
	matchIdx := 0
	for pos < len(s) {
		if matchIdx < len(matches) && pos == matches[matchIdx][0] {
			out = append(out, cell{text: s[matches[matchIdx][0]:matches[matchIdx][1]]})
			pos = matches[matchIdx][1]
			matchIdx++
			continue
		}

		r, size := utf8.DecodeRuneInString(s[pos:])
		if r == '️' {
			pos += size
			continue
		}

		end := pos + size
		width := runewidth.RuneWidth(r)
		if next, nextSize := utf8.DecodeRuneInString(s[end:]); next == '️' {
			end += nextSize
			width = 2
		}

		out = append(out, cell{text: s[pos:end], width: width})
		pos = end
	}
	return out
}

// DisplayWidth returns the number of terminal columns s occupies.
// ANSI sequences count for nothing; wide runes and emoji count two.
func DisplayWidth(s string) int {
	width := 0
	for _, c := range cells(s) {
		width += c.width
	}
	return width
}

// TruncateToWidth fits s into maxWidth columns. ANSI sequences are
// carried through; when the string has to be cut, "..." and a reset
// code are appended. Returns the string and its visible width.
func TruncateToWidth(s string, maxWidth int) (string, int) {
	width := DisplayWidth(s)
	if width <= maxWidth {
		return s, width
	}

	target := maxWidth - 3
	if target < 0 {
		target = 0
	}

	var b strings.Builder
	used := 0
	for _, c := range cells(s) {
		if c.width == 0 {
			b.WriteString(c.text)
			continue
		}
		if used+c.width > target {
			break
		}
		b.WriteString(c.text)
		used += c.width
	}

	b.WriteString("...\033[0m")
	return b.String(), maxWidth
}

// PadRight pads s with spaces to targetWidth columns. The caller
// supplies the visible width so styled strings pad correctly.
func PadRight(s string, visibleWidth, targetWidth int) string {
	if visibleWidth >= targetWidth {
		return s
	}
	return s + strings.Repeat(" ", targetWidth-visibleWidth)
}
