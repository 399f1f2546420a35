// Package optimize holds the deterministic prompt rewriting and scoring
// logic. Both entry points are pure functions over their string inputs.
package optimize

import (
	"regexp"
	"strings"

	"github.com/Mahad-007/PromptOptimizerMCP/internal/domain"
)

type wordSwap struct {
	word *regexp.Regexp
	repl string
}

// Iteration order decides which verb wins when several are present,
// so these stay slices, not maps.
var enhancedVerbs = []wordSwap{
	{regexp.MustCompile(`(?i)\bwrite\b`), "craft a compelling"},
	{regexp.MustCompile(`(?i)\bcreate\b`), "design an innovative"},
	{regexp.MustCompile(`(?i)\bexplain\b`), "elaborate on the fascinating"},
	{regexp.MustCompile(`(?i)\bdescribe\b`), "paint a vivid picture of"},
	{regexp.MustCompile(`(?i)\banalyze\b`), "dive deep into the intricate"},
	{regexp.MustCompile(`(?i)\bhelp\b`), "assist with the remarkable"},
	{regexp.MustCompile(`(?i)\bshow\b`), "demonstrate the extraordinary"},
	{regexp.MustCompile(`(?i)\btell\b`), "share the captivating"},
}

var redundantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bvery\s+`),
	regexp.MustCompile(`(?i)\bquite\s+`),
	regexp.MustCompile(`(?i)\breally\s+`),
	regexp.MustCompile(`(?i)\bactually\s+`),
	regexp.MustCompile(`(?i)\bjust\s+`),
	regexp.MustCompile(`(?i)\bsimply\s+`),
	regexp.MustCompile(`(?i)\bkind of\s+`),
	regexp.MustCompile(`(?i)\bsort of\s+`),
}

var shortSynonyms = []wordSwap{
	{regexp.MustCompile(`(?i)\butilize\b`), "use"},
	{regexp.MustCompile(`(?i)\bimplement\b`), "use"},
	{regexp.MustCompile(`(?i)\bdemonstrate\b`), "show"},
	{regexp.MustCompile(`(?i)\billustrate\b`), "show"},
	{regexp.MustCompile(`(?i)\belaborate\b`), "explain"},
	{regexp.MustCompile(`(?i)\bcomprehensive\b`), "complete"},
	{regexp.MustCompile(`(?i)\bsubsequently\b`), "then"},
	{regexp.MustCompile(`(?i)\bfurthermore\b`), "also"},
	{regexp.MustCompile(`(?i)\badditionally\b`), "also"},
	{regexp.MustCompile(`(?i)\bnevertheless\b`), "but"},
}

var politenessPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bplease\s+`),
	regexp.MustCompile(`(?i)\bcould you\s+`),
	regexp.MustCompile(`(?i)\bwould you\s+`),
}

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

const (
	engagingStart    = "Imagine you're an expert in this field. "
	creativeModifier = "in a way that captivates and inspires"
	constraintPhrase = "Be specific and concise."
	speedIndicator   = "Quick response: "
)

// Variants generates 3 optimized variants of the raw prompt in the given
// style. The result always has exactly 3 entries; for a blank prompt all
// of them are empty strings.
func Variants(rawPrompt string, style domain.Style) ([]string, error) {
	if _, err := domain.ParseStyle(string(style)); err != nil {
		return nil, err
	}

	rawPrompt = strings.TrimSpace(rawPrompt)
	if rawPrompt == "" {
		return []string{"", "", ""}, nil
	}

	sentences := splitSentences(rawPrompt)

	switch style {
	case domain.StyleCreative:
		return creativeVariants(rawPrompt, sentences), nil
	case domain.StylePrecise:
		return preciseVariants(rawPrompt, sentences), nil
	default:
		return fastVariants(rawPrompt, sentences), nil
	}
}

func splitSentences(prompt string) []string {
	parts := sentenceBoundary.Split(prompt, -1)

	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}

	return sentences
}

func creativeVariants(rawPrompt string, sentences []string) []string {
	if len(sentences) == 0 {
		return []string{rawPrompt, rawPrompt, rawPrompt}
	}

	// Only the first verb from the table that occurs in the prompt gets
	// elaborated; every occurrence of that one verb is replaced.
	variant1 := rawPrompt
	for _, swap := range enhancedVerbs {
		if swap.word.MatchString(variant1) {
			variant1 = swap.word.ReplaceAllString(variant1, swap.repl)
			break
		}
	}

	variant2 := engagingStart + rawPrompt
	variant3 := rawPrompt + ". " + creativeModifier

	return []string{variant1, variant2, variant3}
}

func preciseVariants(rawPrompt string, sentences []string) []string {
	if len(sentences) == 0 {
		return []string{rawPrompt, rawPrompt, rawPrompt}
	}

	variant1 := rawPrompt
	for _, pattern := range redundantPatterns {
		variant1 = pattern.ReplaceAllString(variant1, "")
	}

	variant2 := rawPrompt
	if len(sentences) > 1 {
		variant2 = "• " + strings.Join(sentences, "\n• ")
	}

	variant3 := rawPrompt + " " + constraintPhrase

	return []string{variant1, variant2, variant3}
}

func fastVariants(rawPrompt string, sentences []string) []string {
	if len(sentences) == 0 {
		return []string{rawPrompt, rawPrompt, rawPrompt}
	}

	variant1 := rawPrompt
	for _, swap := range shortSynonyms {
		variant1 = swap.word.ReplaceAllString(variant1, swap.repl)
	}

	variant2 := rawPrompt
	for _, pattern := range politenessPatterns {
		variant2 = pattern.ReplaceAllString(variant2, "")
	}

	variant3 := speedIndicator + rawPrompt

	return []string{variant1, variant2, variant3}
}
