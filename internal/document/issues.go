package document

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// NoIssues is the single element returned when no check fires. The
// issue list is never empty.
const NoIssues = "No issues detected"

const (
	longLineLimit     = 120
	longLineThreshold = 5
)

var emptyLinkRe = regexp.MustCompile(`\[[^\]]+\]\(\s*\)`)

// DetectIssues runs three independent checks over the text: links with
// an empty or whitespace-only URL, heading text repeated on more than
// one line (exact match after trim, levels ignored), and lines longer
// than 120 runes. Long lines are reported only when more than five
// exist, and pipe-led lines are exempt since tables wrap badly anyway.
func DetectIssues(text string) []string {
	var issues []string
	lines := strings.Split(text, "\n")

	if empty := len(emptyLinkRe.FindAllStringIndex(text, -1)); empty > 0 {
		issues = append(issues, fmt.Sprintf("%d empty link(s)", empty))
	}

	counts := make(map[string]int)
	for _, line := range lines {
		if m := headingLineRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			counts[m[2]]++
		}
	}
	duplicates := 0
	for _, n := range counts {
		if n > 1 {
			duplicates++
		}
	}
	if duplicates > 0 {
		issues = append(issues, fmt.Sprintf("%d duplicate heading(s)", duplicates))
	}

	long := 0
	for _, line := range lines {
		if utf8.RuneCountInString(line) > longLineLimit && !strings.HasPrefix(strings.TrimSpace(line), "|") {
			long++
		}
	}
	if long > longLineThreshold {
		issues = append(issues, fmt.Sprintf("%d very long lines", long))
	}

	if len(issues) == 0 {
		return []string{NoIssues}
	}
	return issues
}
