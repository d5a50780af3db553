// Package mdfmt normalizes markdown spacing: headings get a separating
// blank line and a space after their hashes, list markers get exactly
// one space, blank runs collapse, and trailing blanks are stripped.
// Format is idempotent; running it twice changes nothing more.
package mdfmt

import (
	"regexp"
	"strings"
)

// tightHeadingRe requires the byte after the hash run to be neither
// space nor another hash. Allowing '#' there would let the pattern
// backtrack into the run ("### #x" matching as "##" + "#"), and each
// Format pass would then peel one more hash off. Excluding it keeps
// the rewrite a fixed point: 7+ hash runs and spaced headings whose
// content starts with '#' pass through untouched.
var (
	tightHeadingRe = regexp.MustCompile(`^(#{1,6})([^#\s])`)
	tightBulletRe  = regexp.MustCompile(`^(\s*)([-*+])(\S)`)
	bulletPartsRe  = regexp.MustCompile(`^(\s*)([-*+])(.*)$`)
	tightOrderedRe = regexp.MustCompile(`^(\s*)(\d+\.)(\S)`)
	orderedPartsRe = regexp.MustCompile(`^(\s*)(\d+\.)(.*)$`)
)

// Format rewrites text under the normalization rules in a single
// forward pass. Rules apply per line, in order:
//
//   - a '#'-led line that is not first and does not follow a blank
//     line gets a blank line inserted before it
//   - a hash run followed directly by content collapses to
//     "hashes content" with one space (the line is trimmed first, so
//     a tight heading also loses its indentation)
//   - a bullet or number-dot marker followed directly by non-space is
//     rewritten to one space after the marker, indentation kept and
//     content trimmed
//   - runs of blank or whitespace-only lines collapse to one blank
//   - trailing blank lines are dropped
//
// Already well-formed lines pass through byte for byte.
func Format(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	prevBlank := false

	for i, line := range lines {
		stripped := strings.TrimSpace(line)

		if strings.HasPrefix(stripped, "#") && i > 0 && !prevBlank {
			out = append(out, "")
		}

		if strings.HasPrefix(stripped, "#") {
			if m := tightHeadingRe.FindStringSubmatch(stripped); m != nil {
				hashes := m[1]
				out = append(out, hashes+" "+stripped[len(hashes):])
				prevBlank = false
				continue
			}
		}

		if tightBulletRe.MatchString(line) {
			m := bulletPartsRe.FindStringSubmatch(line)
			out = append(out, m[1]+m[2]+" "+strings.TrimSpace(m[3]))
			prevBlank = false
			continue
		}

		if tightOrderedRe.MatchString(line) {
			m := orderedPartsRe.FindStringSubmatch(line)
			out = append(out, m[1]+m[2]+" "+strings.TrimSpace(m[3]))
			prevBlank = false
			continue
		}

		if stripped == "" {
			if !prevBlank {
				out = append(out, "")
				prevBlank = true
			}
			continue
		}

		out = append(out, line)
		prevBlank = false
	}

	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
