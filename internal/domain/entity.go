package domain

// Style selects the optimization strategy applied to a prompt.
// The set is closed; anything else is a caller error.
type Style string

const (
	StyleCreative Style = "creative"
	StylePrecise  Style = "precise"
	StyleFast     Style = "fast"
)

func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleCreative, StylePrecise, StyleFast:
		return Style(s), nil
	default:
		return "", ErrUnknownStyle
	}
}

type Optimization struct {
	Id             string   `json:"id"`
	OriginalPrompt string   `json:"original_prompt"`
	Style          string   `json:"style"`
	Variants       []string `json:"variants"`
}

type Scoring struct {
	Id             string  `json:"id"`
	OriginalPrompt string  `json:"original_prompt"`
	ImprovedPrompt string  `json:"improved_prompt"`
	Score          float64 `json:"score"`
}
