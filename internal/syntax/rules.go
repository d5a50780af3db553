package syntax

import "regexp"

// rule is one pattern in the highlight table. The guard bytes emulate
// the lookaround conditions that keep single-delimiter emphasis from
// firing on the delimiters of double-delimiter emphasis, and that tie
// link text to a following paren. RE2 has no lookaround, so candidates
// are matched plainly and the neighbouring bytes checked by hand.
type rule struct {
	re  *regexp.Regexp
	cat Category

	notBefore    byte // reject when the byte before the match equals this
	notAfter     byte // reject when the byte after the match equals this
	requireAfter byte // reject unless the byte after the match equals this
}

// rules is applied in order on every Normal-state line. Order matters
// only for paint order: every rule always runs, and later spans
// overwrite earlier ones where they overlap.
var rules = []rule{
	{re: regexp.MustCompile(`^\s{0,3}#{1,6} .*`), cat: Heading},
	{re: regexp.MustCompile(`^\s{0,3}>\s.*`), cat: Blockquote},
	{re: regexp.MustCompile(`^\s{0,3}[-*+]\s+`), cat: ListMarker},
	{re: regexp.MustCompile(`^\s{0,3}\d+\.\s+`), cat: ListMarker},
	{re: regexp.MustCompile(`^\s{0,3}(-{3,}|\*{3,}|_{3,})\s*$`), cat: HorizontalRule},
	{re: regexp.MustCompile(`\*\*[^*\n]+\*\*`), cat: Bold},
	{re: regexp.MustCompile(`__[^_\n]+__`), cat: Bold},
	{re: regexp.MustCompile(`\*[^*\n]+\*`), cat: Italic, notBefore: '*', notAfter: '*'},
	{re: regexp.MustCompile(`_[^_\n]+_`), cat: Italic, notBefore: '_', notAfter: '_'},
	{re: regexp.MustCompile("`[^`\n]+`"), cat: InlineCode},
	{re: regexp.MustCompile(`\[[^\]]+\]`), cat: LinkText, requireAfter: '('},
	{re: regexp.MustCompile(`\([^)\s]+\)`), cat: LinkURL},
}

func (r rule) guarded() bool {
	return r.notBefore != 0 || r.notAfter != 0 || r.requireAfter != 0
}

func (r rule) spans(line string) []Span {
	if !r.guarded() {
		var out []Span
		for _, m := range r.re.FindAllStringIndex(line, -1) {
			if m[1] > m[0] {
				out = append(out, Span{Start: m[0], Len: m[1] - m[0], Cat: r.cat})
			}
		}
		return out
	}

	// Guarded scan. An accepted candidate advances past its end, like
	// any global match; a rejected one advances a single byte so a
	// later overlapping candidate still gets its turn.
	var out []Span
	pos := 0
	for pos < len(line) {
		m := r.re.FindStringIndex(line[pos:])
		if m == nil {
			break
		}
		start, end := pos+m[0], pos+m[1]
		if r.accept(line, start, end) {
			if end > start {
				out = append(out, Span{Start: start, Len: end - start, Cat: r.cat})
			}
			pos = end
		} else {
			pos = start + 1
		}
	}
	return out
}

func (r rule) accept(line string, start, end int) bool {
	if r.notBefore != 0 && start > 0 && line[start-1] == r.notBefore {
		return false
	}
	if r.notAfter != 0 && end < len(line) && line[end] == r.notAfter {
		return false
	}
	if r.requireAfter != 0 && (end >= len(line) || line[end] != r.requireAfter) {
		return false
	}
	return true
}
