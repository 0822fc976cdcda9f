package vision

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Client abstracts vision providers for facial analysis. AnalyzeFace takes a
// base64-encoded selfie and returns the provider's free-text assessment.
type Client interface {
	AnalyzeFace(ctx context.Context, imageBase64 string) (string, error)
}

// ErrNoFace is returned when the provider reports that the image contains no
// detectable face.
var ErrNoFace = errors.New("no face detected in the image")

// ErrInvalidImage wraps image validation failures.
var ErrInvalidImage = errors.New("invalid image")

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("vision provider not configured")

const maxImageBytes = 20 << 20 // 20MB decoded

var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)

// NormalizeImage strips an optional data-URL prefix and returns the raw
// base64 payload.
func NormalizeImage(image string) string {
	image = strings.TrimSpace(image)
	if strings.HasPrefix(image, "data:image") {
		if idx := strings.Index(image, ","); idx >= 0 {
			return image[idx+1:]
		}
	}
	return image
}

// ValidateImage checks that the payload is plausible base64 and that the
// decoded size stays under the provider limit. It does not decode the image.
func ValidateImage(imageBase64 string) error {
	if imageBase64 == "" {
		return fmt.Errorf("%w: image is required", ErrInvalidImage)
	}
	if !base64Pattern.MatchString(imageBase64) {
		return fmt.Errorf("%w: invalid base64 format", ErrInvalidImage)
	}
	if len(imageBase64)*3/4 > maxImageBytes {
		return fmt.Errorf("%w: image size exceeds 20MB limit", ErrInvalidImage)
	}
	return nil
}

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// AnalyzeFace returns ErrNotConfigured.
func (PlaceholderClient) AnalyzeFace(ctx context.Context, imageBase64 string) (string, error) {
	_ = ctx
	_ = imageBase64
	return "", ErrNotConfigured
}
