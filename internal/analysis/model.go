package analysis

import "time"

// Recommendation is one product suggestion derived from the vision model's
// assessment text.
type Recommendation struct {
	Category    string   `json:"category"`
	ProductType string   `json:"productType"`
	Reason      string   `json:"reason"`
	Priority    int      `json:"priority"`
	Ingredients []string `json:"ingredients"`
}

// Result is the structured outcome of parsing one raw assessment. Degraded
// is set when neither tone pattern matched and the defaults were used.
type Result struct {
	SkinType         string           `json:"skinType"`
	SkinTone         string           `json:"skinTone"`
	Undertone        string           `json:"undertone"`
	Concerns         []string         `json:"concerns"`
	Recommendations  []Recommendation `json:"recommendations"`
	FoundationShades []string         `json:"foundationShades"`
	Degraded         bool             `json:"degraded"`
}

// Analysis is a persisted analysis belonging to a user.
type Analysis struct {
	ID               string           `json:"id"`
	UserID           string           `json:"userId"`
	ImageKey         string           `json:"imageKey"`
	RawText          string           `json:"rawText"`
	SkinType         string           `json:"skinType"`
	SkinTone         string           `json:"skinTone"`
	Undertone        string           `json:"undertone"`
	Concerns         []string         `json:"concerns"`
	Recommendations  []Recommendation `json:"recommendations"`
	FoundationShades []string         `json:"foundationShades"`
	Degraded         bool             `json:"degraded"`
	CreatedAt        time.Time        `json:"createdAt"`
}
