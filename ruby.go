package ruby2html

import (
	"html"
	"regexp"
	"strings"
)

// rubyPattern matches one annotation pair: a run of Han characters
// (U+4E00–U+9FFF) followed by a parenthesized pronunciation. The
// pronunciation stops at the first closing parenthesis, so matches never
// nest or overlap.
var rubyPattern = regexp.MustCompile(`([\x{4e00}-\x{9fff}]+)\(([^)]+)\)`)

// RenderRuby converts annotated text into paragraph HTML.
//
// Blank-line-delimited blocks become <p> elements; blocks that are empty
// after trimming produce nothing. Within a block, literal spaces are
// stripped from each line and every base(pron) pair is rewritten to
// <ruby>base<rt>pron</rt></ruby>. Text outside matches passes through
// escaped but otherwise unchanged, so unmatched parentheses stay literal.
func RenderRuby(text string) string {
	var paragraphs []string
	for _, block := range strings.Split(normalizeNewlines(strings.TrimSpace(text)), "\n\n") {
		p := renderBlock(block)
		if p == "" {
			continue
		}
		paragraphs = append(paragraphs, "<p>"+p+"</p>")
	}
	return strings.Join(paragraphs, "\n\n")
}

// renderBlock renders the lines of one paragraph block. Lines that are
// empty after space stripping are dropped; remaining lines keep their
// line breaks inside the paragraph.
func renderBlock(block string) string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
		line = strings.ReplaceAll(line, " ", "")
		if line == "" {
			continue
		}
		lines = append(lines, substituteRuby(line))
	}
	return strings.Join(lines, "\n")
}

// substituteRuby rewrites every annotation pair in one line, escaping both
// the matched segments and the text between them. Single pass, leftmost
// first, non-overlapping.
func substituteRuby(line string) string {
	matches := rubyPattern.FindAllStringSubmatchIndex(line, -1)
	if matches == nil {
		return html.EscapeString(line)
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(html.EscapeString(line[last:m[0]]))
		b.WriteString("<ruby>")
		b.WriteString(html.EscapeString(line[m[2]:m[3]]))
		b.WriteString("<rt>")
		b.WriteString(html.EscapeString(line[m[4]:m[5]]))
		b.WriteString("</rt></ruby>")
		last = m[1]
	}
	b.WriteString(html.EscapeString(line[last:]))
	return b.String()
}

// normalizeNewlines converts Windows and old-Mac line endings to \n.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
