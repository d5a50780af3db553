// Package document derives structure and quality metrics from markdown
// text. Each metric is an independent scan over the input, so a caller
// needing one number does not pay for the rest; Analyze runs every scan
// and returns the combined record. All functions are pure: identical
// text always produces identical results.
package document

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Metrics is the full analysis of one document.
type Metrics struct {
	WordCount       int           `json:"word_count"`
	CharCount       int           `json:"char_count"`
	LineCount       int           `json:"line_count"`
	ReadingTime     int           `json:"reading_time"`
	Headings        HeadingCounts `json:"headings"`
	LinkCount       int           `json:"link_count"`
	ImageCount      int           `json:"image_count"`
	CodeBlockCount  int           `json:"code_block_count"`
	ListItemCount   int           `json:"list_item_count"`
	BlockquoteLines int           `json:"blockquote_lines"`
	TableCount      int           `json:"table_count"`
	Readability     int           `json:"readability_score"`
	Structure       string        `json:"structure_quality"`
	Issues          []string      `json:"issues"`
}

// HeadingCounts is the heading histogram, one bucket per level.
type HeadingCounts struct {
	H1 int `json:"h1"`
	H2 int `json:"h2"`
	H3 int `json:"h3"`
	H4 int `json:"h4"`
	H5 int `json:"h5"`
	H6 int `json:"h6"`
}

// Total returns the heading count summed across levels.
func (h HeadingCounts) Total() int {
	return h.H1 + h.H2 + h.H3 + h.H4 + h.H5 + h.H6
}

// Levels returns the buckets indexed by level-1.
func (h HeadingCounts) Levels() [6]int {
	return [6]int{h.H1, h.H2, h.H3, h.H4, h.H5, h.H6}
}

func (h *HeadingCounts) bump(level int) {
	switch level {
	case 1:
		h.H1++
	case 2:
		h.H2++
	case 3:
		h.H3++
	case 4:
		h.H4++
	case 5:
		h.H5++
	case 6:
		h.H6++
	}
}

var (
	backtickFenceRe = regexp.MustCompile("(?s)```.*?```")
	tildeFenceRe    = regexp.MustCompile("(?s)~~~.*?~~~")
	inlineCodeRe    = regexp.MustCompile("`[^`\n]+`")
	wordRe          = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	headingLineRe   = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	linkRe          = regexp.MustCompile(`\[[^\]]+\]\([^)]+\)`)
	imageRe         = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	bulletItemRe    = regexp.MustCompile(`^\s*[-*+]\s+`)
	orderedItemRe   = regexp.MustCompile(`^\s*\d+\.\s+`)
)

// Analyze runs every scan over text and returns the combined record.
func Analyze(text string) Metrics {
	words := CountWords(text)
	return Metrics{
		WordCount:       words,
		CharCount:       CountChars(text),
		LineCount:       CountLines(text),
		ReadingTime:     ReadingTime(words),
		Headings:        AnalyzeHeadings(text),
		LinkCount:       CountLinks(text),
		ImageCount:      CountImages(text),
		CodeBlockCount:  CountCodeBlocks(text),
		ListItemCount:   CountListItems(text),
		BlockquoteLines: CountBlockquoteLines(text),
		TableCount:      CountTables(text),
		Readability:     ReadabilityScore(text),
		Structure:       StructureQuality(text),
		Issues:          DetectIssues(text),
	}
}

// CountWords counts prose words. Paired fenced code blocks (backtick
// or tilde fences, non-greedy, spanning newlines) and inline code
// spans are removed first, then maximal runs of letters, digits, and
// underscores are counted. An unterminated trailing fence has no pair
// to match, so its content still counts as prose.
func CountWords(text string) int {
	prose := backtickFenceRe.ReplaceAllString(text, "")
	prose = tildeFenceRe.ReplaceAllString(prose, "")
	prose = inlineCodeRe.ReplaceAllString(prose, "")
	return len(wordRe.FindAllStringIndex(prose, -1))
}

// CountChars counts runes, not bytes.
func CountChars(text string) int {
	return utf8.RuneCountInString(text)
}

// CountLines returns 0 for empty text, otherwise one more than the
// number of newlines.
func CountLines(text string) int {
	if text == "" {
		return 0
	}
	return 1 + strings.Count(text, "\n")
}

// ReadingTime estimates minutes to read at 200 words per minute,
// never less than one.
func ReadingTime(words int) int {
	minutes := int(math.Round(float64(words) / 200))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// AnalyzeHeadings counts headings per level. A heading line, after
// trimming, is one to six '#' followed by whitespace and content.
// Seven or more '#' fail the pattern and count nowhere.
func AnalyzeHeadings(text string) HeadingCounts {
	var counts HeadingCounts
	for _, line := range strings.Split(text, "\n") {
		m := headingLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		counts.bump(len(m[1]))
	}
	return counts
}

// CountLinks counts [text](url) pairs anywhere in the text. Image
// syntax embeds the same pair after its bang, so every image also
// scores a link; the two counts are independent scans.
func CountLinks(text string) int {
	return len(linkRe.FindAllStringIndex(text, -1))
}

// CountImages counts ![alt](url) pairs. Alt text may be empty.
func CountImages(text string) int {
	return len(imageRe.FindAllStringIndex(text, -1))
}

// CountCodeBlocks counts fenced blocks as half the number of ```
// tokens in the text. It counts delimiters rather than pairing them:
// an odd token count floors down.
func CountCodeBlocks(text string) int {
	return strings.Count(text, "```") / 2
}

// CountListItems counts lines opening with a bullet or a number-dot
// marker followed by whitespace, at any indentation.
func CountListItems(text string) int {
	items := 0
	for _, line := range strings.Split(text, "\n") {
		if bulletItemRe.MatchString(line) || orderedItemRe.MatchString(line) {
			items++
		}
	}
	return items
}

// CountBlockquoteLines counts lines whose trimmed content starts
// with '>'.
func CountBlockquoteLines(text string) int {
	quoted := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), ">") {
			quoted++
		}
	}
	return quoted
}

// CountTables counts runs of consecutive pipe-led lines. A run is
// scored once, on the transition from a non-pipe-led line to a
// pipe-led one; the run ends at the next non-pipe-led line.
func CountTables(text string) int {
	inTable := false
	tables := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "|") {
			if !inTable {
				tables++
				inTable = true
			}
		} else {
			inTable = false
		}
	}
	return tables
}
