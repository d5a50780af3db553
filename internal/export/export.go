// Package export converts markdown documents into other file
// formats: plain text, standalone HTML, RTF, and OpenDocument Text.
package export

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Format identifies a supported export format.
type Format string

const (
	Markdown Format = "md"
	Text     Format = "txt"
	HTML     Format = "html"
	RTF      Format = "rtf"
	ODT      Format = "odt"
)

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{Markdown, Text, HTML, RTF, ODT}
}

// ParseFormat maps a user-supplied name or file extension to a
// Format. Leading dots and case are ignored.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "md", "markdown":
		return Markdown, nil
	case "txt", "text":
		return Text, nil
	case "html", "htm":
		return HTML, nil
	case "rtf":
		return RTF, nil
	case "odt":
		return ODT, nil
	}
	return "", fmt.Errorf("unsupported export format: %s", name)
}

// ForPath infers the format from a file extension.
func ForPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot infer export format for %s", path)
	}
	return ParseFormat(ext)
}

// Export converts markdown to the named format. The result is a
// binary archive for ODT and text for everything else.
func Export(md string, format Format) ([]byte, error) {
	switch format {
	case Markdown:
		return []byte(md), nil
	case Text:
		return []byte(AsText(md)), nil
	case HTML:
		page, err := AsHTML(md)
		if err != nil {
			return nil, err
		}
		return []byte(page), nil
	case RTF:
		return []byte(AsRTF(md)), nil
	case ODT:
		return AsODT(md)
	}
	return nil, fmt.Errorf("unsupported export format: %s", format)
}

// Inline patterns shared by the line-based exporters.
var (
	boldRe       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe     = regexp.MustCompile(`\*(.*?)\*`)
	inlineCodeRe = regexp.MustCompile("`(.*?)`")
	linkRe       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
)

// flattenInline reduces emphasis, inline code, and links to their
// plain text.
func flattenInline(line string) string {
	line = boldRe.ReplaceAllString(line, "$1")
	line = italicRe.ReplaceAllString(line, "$1")
	line = inlineCodeRe.ReplaceAllString(line, "$1")
	line = linkRe.ReplaceAllString(line, "$1")
	return line
}

func hasBulletPrefix(s string) bool {
	return strings.HasPrefix(s, "- ") || strings.HasPrefix(s, "* ") || strings.HasPrefix(s, "+ ")
}

// isOrderedItem matches the single-digit "N. item" form the
// exporters keep verbatim.
func isOrderedItem(s string) bool {
	return len(s) >= 2 && s[0] >= '0' && s[0] <= '9' && strings.IndexByte(s, '.') == 1
}
