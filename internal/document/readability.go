package document

import "strings"

// Structure quality labels returned by StructureQuality.
const (
	StructureNone      = "No structure"
	StructureManyH1    = "Multiple H1s detected"
	StructureExcellent = "Excellent"
	StructureGood      = "Good"
	StructureNeedsWork = "Needs improvement"
)

// ReadabilityScore scores text 0-100 from paragraph length and heading
// presence. It is a coarse heuristic, not a standardized readability
// formula: long average paragraphs cost points, an H1 with at least
// one H2 earns some back, and a heading-free document over fifty words
// is penalized. The result is clamped to [0, 100].
func ReadabilityScore(text string) int {
	score := 100

	paragraphs := strings.Split(text, "\n\n")
	words := 0
	for _, p := range paragraphs {
		words += len(strings.Fields(p))
	}
	avg := float64(words) / float64(len(paragraphs))

	// The >150 arm is shadowed by the >100 check and can never fire.
	if avg > 100 {
		score -= 10
	} else if avg > 150 {
		score -= 20
	}

	headings := AnalyzeHeadings(text)
	if headings.H1 >= 1 && headings.H2 > 0 {
		score += 10
	}
	if headings.Total() == 0 && CountWords(text) > 50 {
		score -= 15
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// StructureQuality labels the heading hierarchy. Cases are checked in
// order; the "Good" arm matches every nonzero count the earlier cases
// miss, which leaves the final fallback unreachable.
func StructureQuality(text string) string {
	headings := AnalyzeHeadings(text)
	total := headings.Total()
	switch {
	case total == 0:
		return StructureNone
	case headings.H1 > 1:
		return StructureManyH1
	case headings.H1 == 1 && headings.H2 > 0:
		return StructureExcellent
	case total > 0:
		return StructureGood
	default:
		return StructureNeedsWork
	}
}
