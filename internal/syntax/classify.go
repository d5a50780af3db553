// Package syntax assigns markdown categories to line regions for rendering.
package syntax

import (
	"regexp"
	"strings"
)

// Category identifies the markdown construct a span covers.
type Category uint8

const (
	Plain Category = iota
	Heading
	Blockquote
	ListMarker
	HorizontalRule
	Bold
	Italic
	InlineCode
	LinkText
	LinkURL
	CodeFence
)

var categoryNames = map[Category]string{
	Plain:          "plain",
	Heading:        "heading",
	Blockquote:     "blockquote",
	ListMarker:     "list-marker",
	HorizontalRule: "rule",
	Bold:           "bold",
	Italic:         "italic",
	InlineCode:     "inline-code",
	LinkText:       "link-text",
	LinkURL:        "link-url",
	CodeFence:      "code-fence",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Span marks the half-open byte range [Start, Start+Len) of one line.
// Spans are emitted in paint order: when two spans overlap, the later
// one wins for the overlapping bytes. They are never merged.
type Span struct {
	Start int
	Len   int
	Cat   Category
}

// State is the carry-state threaded between consecutive lines. It is
// the only cross-line memory: whether the scan is inside a fenced code
// block.
type State uint8

const (
	Normal State = iota
	InFence
)

func (s State) String() string {
	if s == InFence {
		return "in-fence"
	}
	return "normal"
}

// fenceRe matches a fence delimiter line: up to three leading spaces
// followed by a run of at least three backticks or tildes.
var fenceRe = regexp.MustCompile("^\\s{0,3}(```|~~~)")

// ClassifyLine returns the spans for a single line plus the state to
// carry into the next line. Inside a fence the whole line is code; a
// fence delimiter line is itself painted as code and toggles the
// state. Outside a fence every pattern rule is applied independently,
// so overlapping constructs produce overlapping spans.
func ClassifyLine(line string, state State) ([]Span, State) {
	isFence := fenceRe.MatchString(line)

	if state == InFence {
		if isFence {
			return wholeLine(line, CodeFence), Normal
		}
		return wholeLine(line, CodeFence), InFence
	}

	if isFence {
		return wholeLine(line, CodeFence), InFence
	}

	var spans []Span
	for _, r := range rules {
		spans = append(spans, r.spans(line)...)
	}
	return spans, Normal
}

// ClassifyDocument classifies every line of text, threading the carry
// state from line to line. The returned slice is parallel to the
// document's lines under a "\n" split. Callers resuming an edited
// document mid-way pass the state left by the line before the edit;
// a fresh scan starts from Normal.
func ClassifyDocument(text string, state State) ([][]Span, State) {
	lines := strings.Split(text, "\n")
	out := make([][]Span, len(lines))
	for i, line := range lines {
		out[i], state = ClassifyLine(line, state)
	}
	return out, state
}

func wholeLine(line string, cat Category) []Span {
	if line == "" {
		return nil
	}
	return []Span{{Start: 0, Len: len(line), Cat: cat}}
}
