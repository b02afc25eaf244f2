package picker

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const ellipsis = "..."

// ansiRegex matches SGR escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes ANSI escape codes from a string.
func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// visibleLength returns the number of runes a terminal would show for s.
func visibleLength(s string) int {
	return utf8.RuneCountInString(stripANSI(s))
}

// highlight underlines the runes at the given byte offsets, as reported by
// the fuzzy matcher.
func highlight(line string, matched []int) string {
	if len(matched) == 0 {
		return line
	}
	matchSet := make(map[int]bool, len(matched))
	for _, idx := range matched {
		matchSet[idx] = true
	}

	var b strings.Builder
	for i, r := range line {
		if matchSet[i] {
			b.WriteString("\x1b[1;4m")
			b.WriteRune(r)
			b.WriteString("\x1b[22;24m")
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// truncateANSI shortens styled text to maxWidth visible runes, keeping escape
// codes intact. A reset code follows the ellipsis so styles don't bleed.
func truncateANSI(styled string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleLength(styled) <= maxWidth {
		return styled
	}

	target := max(maxWidth-utf8.RuneCountInString(ellipsis), 0)

	var result []byte
	visible := 0
	input := []byte(styled)
	i := 0
	for i < len(input) && visible < target {
		if input[i] == '\x1b' && i+1 < len(input) && input[i+1] == '[' {
			j := i + 2
			for j < len(input) && input[j] != 'm' {
				j++
			}
			if j < len(input) {
				result = append(result, input[i:j+1]...)
				i = j + 1
				continue
			}
		}

		r, size := utf8.DecodeRune(input[i:])
		if r != utf8.RuneError {
			result = append(result, input[i:i+size]...)
			visible++
		}
		i += size
	}

	result = append(result, ellipsis...)
	result = append(result, "\x1b[0m"...)
	return string(result)
}
