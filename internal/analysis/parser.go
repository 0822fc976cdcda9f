package analysis

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"beauty-backend/internal/catalog"
)

// Default values used when extraction finds nothing usable.
const (
	DefaultSkinType  = "Normal"
	DefaultSkinTone  = catalog.ToneMedium
	DefaultUndertone = catalog.UndertoneNeutral
	DefaultConcern   = "Uneven skin tone"
)

// failureMarkers are the phrases the vision model emits when it could not
// produce an assessment at all.
var failureMarkers = []string{
	"No face detected",
	"Unable to analyze",
}

var (
	skinToneRe     = regexp.MustCompile(`(?i)(?:skin\s*tone|complexion):\s*([^.\n,]+)`)
	undertoneRe    = regexp.MustCompile(`(?i)(?:undertone|undertones):\s*([^.\n,]+)`)
	altSkinToneRe  = regexp.MustCompile(`(?i)skin\s*tone\s*(?:is|appears to be)\s*([^.\n,]+)`)
	altUndertoneRe = regexp.MustCompile(`(?i)(?:have|has|with)\s*(?:a|an)\s*([^.\n,]+)\s*undertone`)

	shadeValueRe      = regexp.MustCompile(`(?i)Shade[s]?:?\s*([^\n]+)`)
	colorValueRe      = regexp.MustCompile(`(?i)Color[s]?:?\s*([^\n]+)`)
	ingredientValueRe = regexp.MustCompile(`(?i)Ingredient[s]?:?\s*([^\n]+)`)
	ingredientSplitRe = regexp.MustCompile(`,|\band\b`)
)

// recommendationSections are the product-type headings scanned for in the
// assessment text, in priority order.
var recommendationSections = []struct {
	Type     string
	Category string
}{
	{"Foundation", "foundation"},
	{"Concealer", "concealer"},
	{"Blush", "blush"},
	{"Eyeshadow", "eyeshadow"},
	{"Eyeliner", "eyeliner"},
	{"Lipstick", "lipstick"},
	{"Lip", "lip"},
	{"Moisturizer", "moisturizer"},
	{"Serum", "serum"},
	{"Cleanser", "cleanser"},
}

var sectionRes = buildSectionRes()

func buildSectionRes() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(recommendationSections))
	for _, s := range recommendationSections {
		// Section runs from the heading to the next blank line or end of text.
		out[s.Type] = regexp.MustCompile(`(?is)` + s.Type + `.*?(?:\n\n|\z)`)
	}
	return out
}

var commonConcerns = []string{
	"dryness", "oiliness", "acne", "aging", "wrinkles",
	"dark spots", "pigmentation", "redness", "sensitive",
}

// Parse converts one raw assessment text into a structured Result. It never
// fails on malformed input; the only error is ErrAnalysisFailed when the
// text carries a failure marker.
func Parse(raw string) (Result, error) {
	for _, marker := range failureMarkers {
		if strings.Contains(raw, marker) {
			return Result{}, fmt.Errorf("%w: %s", ErrAnalysisFailed, marker)
		}
	}

	skinTone, toneFound := extractTone(raw, skinToneRe, altSkinToneRe, catalog.SkinToneOrder, DefaultSkinTone)
	undertone, underFound := extractTone(raw, undertoneRe, altUndertoneRe,
		[]string{catalog.UndertoneWarm, catalog.UndertoneCool, catalog.UndertoneNeutral}, DefaultUndertone)

	result := Result{
		SkinType:         DefaultSkinType,
		SkinTone:         skinTone,
		Undertone:        undertone,
		Concerns:         extractConcerns(raw),
		Recommendations:  extractRecommendations(raw),
		FoundationShades: extractFoundationShades(raw),
		Degraded:         !toneFound && !underFound,
	}

	applyJSONOverlay(raw, &result)
	return result, nil
}

func extractTone(raw string, primary, secondary *regexp.Regexp, valid []string, fallback string) (string, bool) {
	var value string
	if m := primary.FindStringSubmatch(raw); m != nil {
		value = strings.TrimSpace(m[1])
	} else if m := secondary.FindStringSubmatch(raw); m != nil {
		value = strings.TrimSpace(m[1])
	} else {
		return fallback, false
	}

	token := strings.Fields(value)
	if len(token) == 0 {
		return fallback, false
	}
	word := strings.ReplaceAll(token[0], "**", "")
	word = titleCase(word)
	for _, v := range valid {
		if v == word {
			return word, true
		}
	}
	return fallback, false
}

func titleCase(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}

func extractConcerns(raw string) []string {
	concerns := []string{}
	for _, line := range strings.Split(raw, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "concern") && !strings.Contains(lower, "issue") && !strings.Contains(lower, "problem") {
			continue
		}
		parts := strings.Split(line, ":")
		candidate := strings.TrimSpace(parts[len(parts)-1])
		if candidate != "" && !containsString(concerns, candidate) {
			concerns = append(concerns, candidate)
		}
	}

	if len(concerns) == 0 {
		lower := strings.ToLower(raw)
		for _, concern := range commonConcerns {
			if strings.Contains(lower, concern) {
				concerns = append(concerns, titleCaseFirst(concern))
			}
		}
	}

	if len(concerns) == 0 {
		concerns = append(concerns, DefaultConcern)
	}
	return concerns
}

// titleCaseFirst capitalizes only the first byte, preserving the rest.
func titleCaseFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func extractRecommendations(raw string) []Recommendation {
	recs := []Recommendation{}
	for _, section := range recommendationSections {
		match := sectionRes[section.Type].FindString(raw)
		if match == "" {
			continue
		}

		rec := Recommendation{
			Category:    section.Category,
			ProductType: section.Type,
			Reason:      fmt.Sprintf("Recommended for your %s needs", section.Category),
			Priority:    len(recs) + 1,
			Ingredients: []string{},
		}
		if m := shadeValueRe.FindStringSubmatch(match); m != nil {
			rec.Reason += " - " + strings.TrimSpace(m[1])
		}
		if m := colorValueRe.FindStringSubmatch(match); m != nil {
			rec.Reason += " - " + strings.TrimSpace(m[1])
		}
		if m := ingredientValueRe.FindStringSubmatch(match); m != nil {
			for _, ing := range ingredientSplitRe.Split(m[1], -1) {
				if ing = strings.TrimSpace(ing); ing != "" {
					rec.Ingredients = append(rec.Ingredients, ing)
				}
			}
		}
		recs = append(recs, rec)
	}

	if len(recs) == 0 {
		recs = append(recs, Recommendation{
			Category:    "foundation",
			ProductType: "Foundation",
			Reason:      "Recommended for your skin tone and type",
			Priority:    1,
			Ingredients: []string{"Hydrating formula"},
		})
	}
	return recs
}

// extractFoundationShades collects shade suggestions from lines mentioning
// foundations or shades. The value after the last colon is kept so matching
// against product names works on short keywords rather than whole sentences.
func extractFoundationShades(raw string) []string {
	shades := []string{}
	for _, line := range strings.Split(raw, "\n") {
		if !strings.Contains(line, "Foundation") && !strings.Contains(line, "Shade") {
			continue
		}
		candidate := line
		if idx := strings.LastIndex(line, ":"); idx >= 0 {
			candidate = line[idx+1:]
		}
		candidate = strings.TrimSpace(strings.ReplaceAll(candidate, "**", ""))
		if candidate != "" && !containsString(shades, candidate) {
			shades = append(shades, candidate)
		}
	}
	return shades
}

// applyJSONOverlay looks for an embedded {...} span and overlays skinType,
// concerns, and recommendations when present and well typed. Any parse
// failure leaves the regex-derived result untouched.
func applyJSONOverlay(raw string, result *Result) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw[start:end+1]), &fields); err != nil {
		return
	}

	if v, ok := fields["skinType"]; ok {
		var skinType string
		if err := json.Unmarshal(v, &skinType); err == nil && skinType != "" {
			result.SkinType = skinType
		}
	}
	if v, ok := fields["concerns"]; ok {
		var concerns []string
		if err := json.Unmarshal(v, &concerns); err == nil && len(concerns) > 0 {
			result.Concerns = concerns
		}
	}
	if v, ok := fields["recommendations"]; ok {
		var recs []Recommendation
		if err := json.Unmarshal(v, &recs); err == nil && len(recs) > 0 {
			result.Recommendations = recs
		}
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
