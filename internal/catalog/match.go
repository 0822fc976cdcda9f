package catalog

import (
	"sort"
	"strings"
)

// MaxMatches caps how many products a match returns.
const MaxMatches = 6

// Preference is one product suggestion from an analysis, reduced to the
// fields the matcher scores on.
type Preference struct {
	Category    string
	Ingredients []string
}

// MatchRequest carries the analysis signals the matcher scores products
// against. Shades are foundation shade keywords and only affect foundation
// products. SkinTone and Undertone score against the products' shade family
// and undertone tags.
type MatchRequest struct {
	SkinTone    string
	Undertone   string
	Shades      []string
	Concerns    []string
	Preferences []Preference
}

// Match is a product with its relevance score.
type Match struct {
	Product
	MatchScore int `json:"matchScore"`
}

// MatchProducts scores every product against the request and returns the top
// MaxMatches, highest score first. Ties break on ascending product id so the
// order is deterministic.
func MatchProducts(products []Product, req MatchRequest) []Match {
	matches := make([]Match, 0, len(products))
	for _, p := range products {
		matches = append(matches, Match{Product: p, MatchScore: scoreProduct(p, req)})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchScore != matches[j].MatchScore {
			return matches[i].MatchScore > matches[j].MatchScore
		}
		return matches[i].ID < matches[j].ID
	})
	if len(matches) > MaxMatches {
		matches = matches[:MaxMatches]
	}
	return matches
}

func scoreProduct(p Product, req MatchRequest) int {
	score := 0
	name := strings.ToLower(p.Name)
	category := strings.ToLower(p.Category)

	if category == "foundation" {
		for _, shade := range req.Shades {
			shade = strings.TrimSpace(shade)
			if shade == "" {
				continue
			}
			if strings.Contains(name, strings.ToLower(shade)) {
				score += 5
			}
		}
	}

	if req.SkinTone != "" && strings.EqualFold(p.ShadeFamily, req.SkinTone) {
		score += 5
	}
	if req.Undertone != "" && strings.EqualFold(p.Undertone, req.Undertone) {
		score += 3
	}

	for _, pref := range req.Preferences {
		for _, ingredient := range pref.Ingredients {
			if containsIngredient(p.Ingredients, ingredient) {
				score += 2
			}
		}
		if pref.Category != "" && category == strings.ToLower(pref.Category) {
			score += 3
		}
	}

	for _, concern := range req.Concerns {
		lc := strings.ToLower(strings.TrimSpace(concern))
		if lc == "" {
			continue
		}
		for _, benefit := range p.Benefits {
			if strings.Contains(strings.ToLower(benefit), lc) {
				score += 2
			}
		}
	}

	return score
}

func containsIngredient(ingredients []string, needle string) bool {
	lc := strings.ToLower(strings.TrimSpace(needle))
	if lc == "" {
		return false
	}
	for _, ing := range ingredients {
		if strings.Contains(strings.ToLower(ing), lc) {
			return true
		}
	}
	return false
}
