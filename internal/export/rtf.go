package export

import "strings"

var rtfHeadings = []struct {
	prefix string
	size   string
}{
	{"# ", `\fs36`},
	{"## ", `\fs32`},
	{"### ", `\fs28`},
	{"#### ", `\fs26`},
	{"##### ", `\fs24`},
	{"###### ", `\fs22`},
}

// AsRTF converts markdown to Rich Text Format. Headings become bold
// paragraphs at decreasing sizes, fenced code keeps its lines in a
// monospace run, and rules become underscore dividers.
func AsRTF(md string) string {
	var b strings.Builder
	b.WriteString(`{\rtf1\ansi\deff0`)
	b.WriteString(`{\fonttbl{\f0 Times New Roman;}}`)
	b.WriteString(`{\colortbl;\red0\green0\blue0;}`)
	b.WriteString(`\fs24`)

	inCode := false
	var code []string

	for _, line := range strings.Split(md, "\n") {
		stripped := strings.TrimSpace(line)

		if strings.HasPrefix(stripped, "```") {
			if inCode {
				if len(code) > 0 {
					b.WriteString(`{\pard\plain\f0\fs20 `)
					for _, cl := range code {
						b.WriteString(rtfEscape(cl))
						b.WriteString(`\line `)
					}
					b.WriteString(`}\par`)
					code = code[:0]
				}
				inCode = false
			} else {
				inCode = true
			}
			continue
		}
		if inCode {
			code = append(code, line)
			continue
		}

		if heading, ok := rtfHeading(line); ok {
			b.WriteString(heading)
			continue
		}

		switch {
		case stripped == "---" || stripped == "***":
			b.WriteString(`{\pard\plain\f0\fs24 ` + strings.Repeat("_", 50) + `}\par`)
		case hasBulletPrefix(stripped):
			b.WriteString(`{\pard\plain\f0\fs24 \bullet ` + rtfEscape(stripped[2:]) + `}\par`)
		case isOrderedItem(stripped):
			b.WriteString(`{\pard\plain\f0\fs24 ` + rtfEscape(stripped) + `}\par`)
		case stripped == "":
			b.WriteString(`\par`)
		default:
			b.WriteString(`{\pard\plain\f0\fs24 ` + rtfInline(rtfEscape(line)) + `}\par`)
		}
	}

	b.WriteString("}")
	return b.String()
}

func rtfHeading(line string) (string, bool) {
	for _, h := range rtfHeadings {
		if strings.HasPrefix(line, h.prefix) {
			return `{\pard\plain\f0` + h.size + `\b ` + rtfEscape(line[len(h.prefix):]) + `}\par`, true
		}
	}
	return "", false
}

// rtfEscape protects RTF control characters in document text.
func rtfEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "{", `\{`)
	s = strings.ReplaceAll(s, "}", `\}`)
	return s
}

// rtfInline rewrites emphasis, inline code, and links into RTF runs.
// The input must already be escaped so the injected control words
// pass through intact.
func rtfInline(line string) string {
	line = boldRe.ReplaceAllString(line, `\b $1\b0`)
	line = italicRe.ReplaceAllString(line, `\i $1\i0`)
	line = inlineCodeRe.ReplaceAllString(line, `\f1\fs18 $1\f0\fs24`)
	line = linkRe.ReplaceAllString(line, "$1")
	return line
}
