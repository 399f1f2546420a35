package optimize

import (
	"math"
	"regexp"
	"strings"
)

// Filler phrases counted for the clarity sub-score, the same \b...\s+
// shape the precise and fast styles strip.
var fillerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bvery\s+`),
	regexp.MustCompile(`(?i)\bquite\s+`),
	regexp.MustCompile(`(?i)\breally\s+`),
	regexp.MustCompile(`(?i)\bactually\s+`),
	regexp.MustCompile(`(?i)\bjust\s+`),
	regexp.MustCompile(`(?i)\bsimply\s+`),
	regexp.MustCompile(`(?i)\bkind of\s+`),
	regexp.MustCompile(`(?i)\bsort of\s+`),
	regexp.MustCompile(`(?i)\bplease\s+`),
	regexp.MustCompile(`(?i)\bcould you\s+`),
	regexp.MustCompile(`(?i)\bwould you\s+`),
}

var wordToken = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Score evaluates the effectiveness of an improved prompt relative to the
// original. Length optimization weighs 40%, keyword preservation 30% and
// clarity improvement 30%; the result is rounded to 3 decimals and always
// falls within [0, 1].
func Score(rawPrompt, improvedPrompt string) float64 {
	if strings.TrimSpace(rawPrompt) == "" {
		if strings.TrimSpace(improvedPrompt) == "" {
			return 1.0
		}
		return 0.0
	}
	if strings.TrimSpace(improvedPrompt) == "" {
		return 0.0
	}

	rawPrompt = strings.TrimSpace(rawPrompt)
	improvedPrompt = strings.TrimSpace(improvedPrompt)

	final := 0.4*lengthScore(rawPrompt, improvedPrompt) +
		0.3*keywordScore(rawPrompt, improvedPrompt) +
		0.3*clarityScore(rawPrompt, improvedPrompt)

	return math.Round(final*1000) / 1000
}

// lengthScore prefers shorter prompts, but not ones cut below half of the
// original length.
func lengthScore(rawPrompt, improvedPrompt string) float64 {
	rawLength := len(strings.Fields(rawPrompt))
	improvedLength := len(strings.Fields(improvedPrompt))

	if rawLength == 0 {
		return 1.0
	}

	ratio := float64(improvedLength) / float64(rawLength)
	switch {
	case ratio <= 0.5:
		return 0.3
	case ratio <= 0.8:
		return 1.0
	case ratio <= 1.2:
		return 0.8
	default:
		return 0.4
	}
}

// keywordScore is the Jaccard similarity of the two lowercase token sets.
func keywordScore(rawPrompt, improvedPrompt string) float64 {
	rawWords := tokenSet(rawPrompt)
	improvedWords := tokenSet(improvedPrompt)

	if len(rawWords) == 0 {
		return 1.0
	}

	intersection := 0
	union := len(improvedWords)
	for w := range rawWords {
		if _, ok := improvedWords[w]; ok {
			intersection++
		} else {
			union++
		}
	}

	if union == 0 {
		return 0.0
	}

	return float64(intersection) / float64(union)
}

func clarityScore(rawPrompt, improvedPrompt string) float64 {
	rawRedundant := countFillers(rawPrompt)
	improvedRedundant := countFillers(improvedPrompt)

	if rawRedundant == 0 {
		// Hand-chosen penalty for introducing filler into a clean prompt.
		if improvedRedundant == 0 {
			return 1.0
		}
		return 0.7
	}

	improvementRatio := float64(rawRedundant-improvedRedundant) / float64(rawRedundant)

	return math.Max(0.0, math.Min(1.0, 0.5+improvementRatio*0.5))
}

func countFillers(prompt string) int {
	n := 0
	for _, pattern := range fillerPatterns {
		n += len(pattern.FindAllStringIndex(prompt, -1))
	}

	return n
}

func tokenSet(prompt string) map[string]struct{} {
	tokens := wordToken.FindAllString(strings.ToLower(prompt), -1)

	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}

	return set
}
