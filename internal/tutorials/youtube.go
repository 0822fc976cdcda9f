package tutorials

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"beauty-backend/internal/shared/metrics"
)

// ErrInvalidURL is returned when no video id can be extracted from the input.
var ErrInvalidURL = errors.New("invalid YouTube URL format")

var oEmbedURL = "https://www.youtube.com/oembed"

var (
	watchIDRe = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)
	embedIDRe = regexp.MustCompile(`youtube\.com/embed/([^"&?/\s]{11})`)
	bareIDRe  = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
)

// ExtractVideoID pulls the 11-character video id out of watch, shortened,
// embed, or bare-id forms. Returns "" when nothing matches.
func ExtractVideoID(url string) string {
	if url == "" {
		return ""
	}
	if m := watchIDRe.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	if m := embedIDRe.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	if bareIDRe.MatchString(url) {
		return url
	}
	return ""
}

// EmbedURL normalizes any recognized YouTube reference to the canonical
// embed form. Returns "" when the input carries no video id.
func EmbedURL(url string) string {
	id := ExtractVideoID(url)
	if id == "" {
		return ""
	}
	return "https://www.youtube.com/embed/" + id
}

// VerifyResult is the outcome of validating one tutorial reference.
type VerifyResult struct {
	EmbedURL   string `json:"embedUrl"`
	IsValid    bool   `json:"isValid"`
	IsFallback bool   `json:"isFallback,omitempty"`
}

// Verifier checks video liveness against the oEmbed endpoint and walks
// per-category fallback chains when a video is gone.
type Verifier struct {
	HTTPClient       *http.Client
	Fallbacks        map[string][]string
	CategoryDefaults map[string]string
	FinalDefault     string
}

// NewVerifier constructs a Verifier with the compiled-in fallback chains.
func NewVerifier() *Verifier {
	return &Verifier{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Fallbacks: map[string][]string{
			"foundation": {
				"https://www.youtube.com/embed/mLN4RM-m7yg",
				"https://www.youtube.com/embed/HPx5zZk_45Q",
				"https://www.youtube.com/embed/ZCbeHxnGcUk",
			},
			"concealer": {
				"https://www.youtube.com/embed/v2D-ZQVlk0s",
				"https://www.youtube.com/embed/RN5456ORMxI",
				"https://www.youtube.com/embed/2DDFFuENqYA",
			},
			"blush": {
				"https://www.youtube.com/embed/sRg20WYF-fI",
				"https://www.youtube.com/embed/BHqkEjfHYQ8",
				"https://www.youtube.com/embed/qBJeAp7Vfe4",
			},
			"eyeshadow": {
				"https://www.youtube.com/embed/ajjIzvbPsUI",
				"https://www.youtube.com/embed/W4W-4VL1ABU",
				"https://www.youtube.com/embed/W9bdkMykNEM",
			},
			"lipstick": {
				"https://www.youtube.com/embed/vYAq-sA-DUM",
				"https://www.youtube.com/embed/0LZX6mGKJys",
				"https://www.youtube.com/embed/aWq0oO6fHxQ",
			},
		},
		CategoryDefaults: map[string]string{
			"foundation": "https://www.youtube.com/embed/ZD92D2qQW8U",
			"concealer":  "https://www.youtube.com/embed/n5YbJ8LzI2M",
			"blush":      "https://www.youtube.com/embed/BHdpCHFL0GQ",
			"eyeshadow":  "https://www.youtube.com/embed/qEQq1wx_4Ro",
			"lipstick":   "https://www.youtube.com/embed/Ow0Jr-0qzZs",
			"mascara":    "https://www.youtube.com/embed/MzJFw8Y5g1s",
		},
		FinalDefault: "https://www.youtube.com/embed/z1r67VKWGFU",
	}
}

// VideoAvailable probes the oEmbed endpoint for the video. Any failure,
// timeout, or non-200 status counts as unavailable. No retries.
func (v *Verifier) VideoAvailable(ctx context.Context, url string) bool {
	id := ExtractVideoID(url)
	if id == "" {
		return false
	}

	probe := oEmbedURL + "?url=https://www.youtube.com/watch?v=" + id + "&format=json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probe, nil)
	if err != nil {
		return false
	}
	resp, err := v.HTTPClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Verify normalizes the reference and checks liveness. An unavailable video
// resolves to the first live fallback for the category, then the category
// default, then the global default. Only an unparseable URL is an error.
func (v *Verifier) Verify(ctx context.Context, url, category string) (VerifyResult, error) {
	embed := EmbedURL(url)
	if embed == "" {
		return VerifyResult{}, ErrInvalidURL
	}

	if v.VideoAvailable(ctx, embed) {
		return VerifyResult{EmbedURL: embed, IsValid: true}, nil
	}

	metrics.IncTutorialFallback()
	return VerifyResult{
		EmbedURL:   v.fallbackFor(ctx, category),
		IsValid:    false,
		IsFallback: true,
	}, nil
}

func (v *Verifier) fallbackFor(ctx context.Context, category string) string {
	category = strings.ToLower(category)
	chain, ok := v.Fallbacks[category]
	if !ok {
		chain = v.Fallbacks["foundation"]
	}
	for _, candidate := range chain {
		if v.VideoAvailable(ctx, candidate) {
			return candidate
		}
	}
	if url, ok := v.CategoryDefaults[category]; ok {
		return url
	}
	return v.FinalDefault
}
