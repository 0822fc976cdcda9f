package analysis

import (
	"errors"
	"strings"
	"testing"
)

const sampleAssessment = `Foundation Recommendation:
Undertone: Warm - Determined based on visible skin characteristics.
Skin Tone: Tan
Suggested Foundation: MAC Studio Fix in NC42

Concealer
Shade: One shade lighter than NC42
Best For: Under eyes, brightening

Blush
Color Family: Coral
Finish: Satin

Lipstick
Color Family: Warm nude
Ingredients: Shea Butter, Vitamin E and Jojoba Oil

Application Tips:
Blend outward from the center of the face. Watch for dryness around the nose.`

func TestParseExtractsTones(t *testing.T) {
	result, err := Parse(sampleAssessment)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result.SkinTone != "Tan" {
		t.Fatalf("expected skin tone Tan, got %q", result.SkinTone)
	}
	if result.Undertone != "Warm" {
		t.Fatalf("expected undertone Warm, got %q", result.Undertone)
	}
	if result.Degraded {
		t.Fatal("expected non-degraded result")
	}
	if result.SkinType != DefaultSkinType {
		t.Fatalf("expected default skin type, got %q", result.SkinType)
	}
}

func TestParseLoosePhrasing(t *testing.T) {
	raw := "The skin tone appears to be deep with golden hues. The subject has a warm undertone overall."
	result, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result.SkinTone != "Deep" {
		t.Fatalf("expected Deep, got %q", result.SkinTone)
	}
	if result.Undertone != "Warm" {
		t.Fatalf("expected Warm, got %q", result.Undertone)
	}
}

func TestParseStripsMarkdownAndCase(t *testing.T) {
	raw := "Skin Tone: **FAIR** complexion\nUndertone: **cool** leaning"
	result, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result.SkinTone != "Fair" {
		t.Fatalf("expected Fair, got %q", result.SkinTone)
	}
	if result.Undertone != "Cool" {
		t.Fatalf("expected Cool, got %q", result.Undertone)
	}
}

func TestParseOutOfEnumFallsBackToDefaults(t *testing.T) {
	raw := "Skin Tone: Olive\nUndertone: Golden"
	result, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result.SkinTone != DefaultSkinTone {
		t.Fatalf("expected default %q, got %q", DefaultSkinTone, result.SkinTone)
	}
	if result.Undertone != DefaultUndertone {
		t.Fatalf("expected default %q, got %q", DefaultUndertone, result.Undertone)
	}
}

func TestParseDegradedWhenNothingMatches(t *testing.T) {
	result, err := Parse("The lighting in this photo is quite soft.")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !result.Degraded {
		t.Fatal("expected degraded result")
	}
	if result.SkinTone != DefaultSkinTone || result.Undertone != DefaultUndertone {
		t.Fatalf("expected defaults, got %q/%q", result.SkinTone, result.Undertone)
	}
	if len(result.Concerns) == 0 {
		t.Fatal("concerns must never be empty")
	}
	if len(result.Recommendations) == 0 {
		t.Fatal("recommendations must never be empty")
	}
}

func TestParseFailureMarkers(t *testing.T) {
	for _, raw := range []string{
		"No face detected in the image. Please upload a clear photo.",
		"Unable to analyze this image.",
	} {
		_, err := Parse(raw)
		if !errors.Is(err, ErrAnalysisFailed) {
			t.Fatalf("expected ErrAnalysisFailed for %q, got %v", raw, err)
		}
	}
}

func TestParseConcernsFromLabeledLines(t *testing.T) {
	raw := "Skin Tone: Medium\nMain concern: enlarged pores\nAnother issue: uneven texture"
	result, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(result.Concerns) != 2 {
		t.Fatalf("expected 2 concerns, got %v", result.Concerns)
	}
	if result.Concerns[0] != "enlarged pores" || result.Concerns[1] != "uneven texture" {
		t.Fatalf("unexpected concerns %v", result.Concerns)
	}
}

func TestParseConcernsFromKeywordScan(t *testing.T) {
	result, err := Parse("Skin Tone: Light\nSome dryness is visible on the cheeks along with redness.")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(result.Concerns) != 2 || result.Concerns[0] != "Dryness" || result.Concerns[1] != "Redness" {
		t.Fatalf("unexpected concerns %v", result.Concerns)
	}
}

func TestParseConcernsDefault(t *testing.T) {
	result, err := Parse("Skin Tone: Light\nUndertone: Cool")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(result.Concerns) != 1 || result.Concerns[0] != DefaultConcern {
		t.Fatalf("expected default concern, got %v", result.Concerns)
	}
}

func TestParseRecommendationsFromSections(t *testing.T) {
	result, err := Parse(sampleAssessment)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	byCategory := map[string]Recommendation{}
	for _, rec := range result.Recommendations {
		byCategory[rec.Category] = rec
	}

	foundation, ok := byCategory["foundation"]
	if !ok {
		t.Fatalf("expected foundation recommendation, got %v", result.Recommendations)
	}
	if foundation.Priority != 1 {
		t.Fatalf("expected foundation priority 1, got %d", foundation.Priority)
	}

	concealer, ok := byCategory["concealer"]
	if !ok {
		t.Fatal("expected concealer recommendation")
	}
	if !strings.Contains(concealer.Reason, "One shade lighter") {
		t.Fatalf("expected shade in reason, got %q", concealer.Reason)
	}

	lipstick, ok := byCategory["lipstick"]
	if !ok {
		t.Fatal("expected lipstick recommendation")
	}
	want := []string{"Shea Butter", "Vitamin E", "Jojoba Oil"}
	if len(lipstick.Ingredients) != len(want) {
		t.Fatalf("expected ingredients %v, got %v", want, lipstick.Ingredients)
	}
	for i := range want {
		if lipstick.Ingredients[i] != want[i] {
			t.Fatalf("expected ingredients %v, got %v", want, lipstick.Ingredients)
		}
	}
}

func TestParseRecommendationsFallback(t *testing.T) {
	result, err := Parse("Skin Tone: Medium with no product details at all.")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(result.Recommendations) != 1 {
		t.Fatalf("expected single fallback recommendation, got %v", result.Recommendations)
	}
	rec := result.Recommendations[0]
	if rec.Category != "foundation" || rec.Priority != 1 {
		t.Fatalf("unexpected fallback %+v", rec)
	}
	if len(rec.Ingredients) != 1 || rec.Ingredients[0] != "Hydrating formula" {
		t.Fatalf("unexpected fallback ingredients %v", rec.Ingredients)
	}
}

func TestParseJSONOverlay(t *testing.T) {
	raw := `Skin Tone: Light
Undertone: Cool

{"skinType": "Combination", "concerns": ["Dehydration", "Dullness"], "recommendations": [{"category": "serum", "productType": "Serum", "reason": "Boost hydration", "priority": 1, "ingredients": ["Hyaluronic Acid"]}]}`

	result, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result.SkinType != "Combination" {
		t.Fatalf("expected overlay skin type, got %q", result.SkinType)
	}
	if len(result.Concerns) != 2 || result.Concerns[0] != "Dehydration" {
		t.Fatalf("unexpected concerns %v", result.Concerns)
	}
	if len(result.Recommendations) != 1 || result.Recommendations[0].Category != "serum" {
		t.Fatalf("unexpected recommendations %v", result.Recommendations)
	}
	// Regex-derived tones are never overlaid.
	if result.SkinTone != "Light" || result.Undertone != "Cool" {
		t.Fatalf("tones changed by overlay: %q/%q", result.SkinTone, result.Undertone)
	}
}

func TestParseJSONOverlayMalformedIsIgnored(t *testing.T) {
	raw := "Skin Tone: Light\nUndertone: Cool\n{this is not json}"
	result, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result.SkinTone != "Light" || result.SkinType != DefaultSkinType {
		t.Fatalf("malformed JSON changed result: %+v", result)
	}
}

func TestParseJSONOverlayWrongTypesIgnored(t *testing.T) {
	raw := `Skin Tone: Light
{"skinType": "Oily", "concerns": "not an array", "recommendations": {"also": "not an array"}}`
	result, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result.SkinType != "Oily" {
		t.Fatalf("expected valid field applied, got %q", result.SkinType)
	}
	if len(result.Concerns) == 0 || result.Concerns[0] == "not an array" {
		t.Fatalf("non-array concerns accepted: %v", result.Concerns)
	}
	if len(result.Recommendations) != 1 || result.Recommendations[0].Category != "foundation" {
		t.Fatalf("non-array recommendations accepted: %v", result.Recommendations)
	}
}

func TestParseFoundationShades(t *testing.T) {
	result, err := Parse(sampleAssessment)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	found := false
	for _, shade := range result.FoundationShades {
		if strings.Contains(shade, "NC42") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected NC42 shade suggestion, got %v", result.FoundationShades)
	}
}
