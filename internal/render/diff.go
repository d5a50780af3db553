package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	diff "github.com/shogoki/gotextdiff"
)

// hunkRe parses a hunk header: @@ -start,count +start,count @@
var hunkRe = regexp.MustCompile(`^@@ -(\d+)(?:,\d+)? \+(\d+)(?:,\d+)? @@`)

// UnifiedDiff renders a colored unified diff between two versions of a
// file. Removed lines carry the theme's red tint, added lines the
// green one, and every line is numbered by its position in the new
// file. Returns "" when the contents are equal.
func (s *Styles) UnifiedDiff(path, oldContent, newContent string) string {
	if oldContent == newContent {
		return ""
	}

	diffText := string(diff.Diff(path, []byte(oldContent), path, []byte(newContent)))
	if diffText == "" {
		return ""
	}

	// Line number column sized for the longer side
	oldLines := strings.Count(oldContent, "\n") + 1
	newLines := strings.Count(newContent, "\n") + 1
	lineNumWidth := len(strconv.Itoa(max(oldLines, newLines)))
	if lineNumWidth < 3 {
		lineNumWidth = 3
	}

	var b strings.Builder
	var newLineNum int
	var deletionOffset int // position within a run of removals
	hunkCount := 0

	for _, line := range strings.Split(diffText, "\n") {
		// Skip the "diff" line and --- / +++ headers
		if strings.HasPrefix(line, "diff ") ||
			strings.HasPrefix(line, "--- ") ||
			strings.HasPrefix(line, "+++ ") {
			continue
		}
		if len(line) == 0 {
			continue
		}

		prefix := line[0]
		content := ""
		if len(line) > 1 {
			content = line[1:]
		}

		switch prefix {
		case '@':
			if m := hunkRe.FindStringSubmatch(line); m != nil {
				newLineNum, _ = strconv.Atoi(m[2])
			}
			// Separator between hunks, not before the first one
			if hunkCount > 0 {
				b.WriteString(s.Muted.Render(strings.Repeat(" ", lineNumWidth)+"  ...") + "\n")
			}
			hunkCount++

		case '-':
			// Removed line, shown at its virtual position in the new file
			b.WriteString(s.Bad.Render(fmt.Sprintf("%*d- ", lineNumWidth, newLineNum+deletionOffset)))
			b.WriteString(s.DiffRemove.Render(content) + "\n")
			deletionOffset++

		case '+':
			deletionOffset = 0
			b.WriteString(s.Good.Render(fmt.Sprintf("%*d+ ", lineNumWidth, newLineNum)))
			b.WriteString(s.DiffAdd.Render(content) + "\n")
			newLineNum++

		case ' ':
			deletionOffset = 0
			b.WriteString(s.Muted.Render(fmt.Sprintf("%*d  ", lineNumWidth, newLineNum)))
			b.WriteString(content + "\n")
			newLineNum++

		default:
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}
