package ruby2html

import (
	"regexp"
	"strings"
)

// titlePattern is rubyPattern with an optional base run, so a bare "(pron)"
// group with no base text also collapses to its (empty) base when deriving
// a title. Body rendering keeps such groups literal.
var titlePattern = regexp.MustCompile(`([\x{4e00}-\x{9fff}]*)\(([^)]+)\)`)

// ExtractTitle derives a display title from the first non-empty line of a
// story: annotation pairs collapse to their base text and all whitespace is
// removed, so "小(xiǎo) 红(hóng) 帽(mào)" becomes "小红帽". Returns fallback
// when no non-empty line exists or the stripped line ends up empty.
func ExtractTitle(text, fallback string) string {
	return extractTitle(text, fallback, false)
}

// extractTitle implements ExtractTitle. When markdown is true, a leading
// ATX heading marker on the title line is dropped so "# 标题" titles the
// same as "标题".
func extractTitle(text, fallback string, markdown bool) string {
	for _, line := range strings.Split(normalizeNewlines(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if markdown {
			line = strings.TrimSpace(strings.TrimLeft(line, "#"))
			if line == "" {
				return fallback
			}
		}
		stripped := titlePattern.ReplaceAllString(line, "$1")
		title := strings.Join(strings.Fields(stripped), "")
		if title == "" {
			return fallback
		}
		return title
	}
	return fallback
}
