package catalog

import "errors"

// ErrNotFound is returned when a product does not exist.
var ErrNotFound = errors.New("product not found")

// Skin tone shade families, ordered light to dark.
const (
	ToneFair   = "Fair"
	ToneLight  = "Light"
	ToneMedium = "Medium"
	ToneTan    = "Tan"
	ToneDeep   = "Deep"
	ToneDark   = "Dark"
)

// Undertones.
const (
	UndertoneWarm    = "Warm"
	UndertoneCool    = "Cool"
	UndertoneNeutral = "Neutral"
)

// SkinToneOrder is the shade spectrum from lightest to darkest, used for
// nearest-tone fallbacks.
var SkinToneOrder = []string{ToneFair, ToneLight, ToneMedium, ToneTan, ToneDeep, ToneDark}

// Product is a catalog entry. ShadeFamily and Undertone are empty for
// products that are not tone-specific.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	PriceCents  int      `json:"priceCents"`
	ImageURL    string   `json:"imageUrl"`
	ProductURL  string   `json:"productUrl"`
	ShadeFamily string   `json:"shadeFamily,omitempty"`
	Undertone   string   `json:"undertone,omitempty"`
	VideoURL    string   `json:"videoUrl,omitempty"`
	Benefits    []string `json:"benefits"`
	Ingredients []string `json:"ingredients"`
}

// ValidSkinTone reports whether tone is one of the recognized shade families.
func ValidSkinTone(tone string) bool {
	for _, t := range SkinToneOrder {
		if t == tone {
			return true
		}
	}
	return false
}

// ValidUndertone reports whether the undertone is recognized.
func ValidUndertone(undertone string) bool {
	switch undertone {
	case UndertoneWarm, UndertoneCool, UndertoneNeutral:
		return true
	default:
		return false
	}
}
