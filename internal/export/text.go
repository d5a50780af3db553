package export

import "regexp"

var (
	textHeadingRe = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	textFenceRe   = regexp.MustCompile("(?s)```.*?\n(.*?)\n```")
	textImageRe   = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
)

// AsText strips markdown syntax, leaving the readable text. Heading
// markers disappear, emphasis and inline code keep their contents,
// fenced blocks keep their body, and links keep their label.
func AsText(md string) string {
	text := textHeadingRe.ReplaceAllString(md, "")
	text = boldRe.ReplaceAllString(text, "$1")
	text = italicRe.ReplaceAllString(text, "$1")
	text = textFenceRe.ReplaceAllString(text, "$1")
	text = inlineCodeRe.ReplaceAllString(text, "$1")
	text = linkRe.ReplaceAllString(text, "$1")
	text = textImageRe.ReplaceAllString(text, "[$1]")
	return text
}
