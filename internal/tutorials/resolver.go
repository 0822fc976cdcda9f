package tutorials

import (
	"beauty-backend/internal/catalog"
	"beauty-backend/internal/shared/metrics"
)

// CategoryTable maps tones to tutorial embed URLs for one product category.
// MatchUndertone enables the undertone lookup used for eyeshadow, whose
// videos are keyed by undertone rather than skin tone.
type CategoryTable struct {
	Videos         map[string]string
	Default        string
	MatchUndertone bool
}

// Config holds the per-category tutorial tables. GlobalDefault is the video
// returned when every other lookup comes up empty.
type Config struct {
	Tables        map[string]CategoryTable
	GlobalDefault string
}

// DefaultConfig returns the curated tutorial tables the app ships with.
func DefaultConfig() Config {
	return Config{
		GlobalDefault: "https://www.youtube.com/embed/ZD92D2qQW8U",
		Tables: map[string]CategoryTable{
			"foundation": {
				Videos: map[string]string{
					catalog.ToneFair:   "https://www.youtube.com/embed/j7-Oi8n01Lc",
					catalog.ToneLight:  "https://www.youtube.com/embed/XZQfNBYazPI",
					catalog.ToneMedium: "https://www.youtube.com/embed/ZD92D2qQW8U",
					catalog.ToneTan:    "https://www.youtube.com/embed/UlTLlOFjYz0",
					catalog.ToneDeep:   "https://www.youtube.com/embed/FuVxOLwizjQ",
					catalog.ToneDark:   "https://www.youtube.com/embed/4xmgxhBdB0Y",
				},
				Default: "https://www.youtube.com/embed/ZD92D2qQW8U",
			},
			"concealer": {
				Videos: map[string]string{
					catalog.ToneFair:   "https://www.youtube.com/embed/VEDrLcPZM_o",
					catalog.ToneMedium: "https://www.youtube.com/embed/n5YbJ8LzI2M",
					catalog.ToneDark:   "https://www.youtube.com/embed/fzUYjvL1NJg",
				},
				Default: "https://www.youtube.com/embed/n5YbJ8LzI2M",
			},
			"blush": {
				Videos: map[string]string{
					catalog.ToneFair:   "https://www.youtube.com/embed/EkPXdQVcN8g",
					catalog.ToneLight:  "https://www.youtube.com/embed/AcFUGTZdEPk",
					catalog.ToneMedium: "https://www.youtube.com/embed/BHdpCHFL0GQ",
					catalog.ToneTan:    "https://www.youtube.com/embed/BHdpCHFL0GQ",
					catalog.ToneDeep:   "https://www.youtube.com/embed/wFLjQGTc_zc",
					catalog.ToneDark:   "https://www.youtube.com/embed/wFLjQGTc_zc",
				},
				Default: "https://www.youtube.com/embed/BHdpCHFL0GQ",
			},
			"eyeshadow": {
				Videos: map[string]string{
					catalog.UndertoneWarm:    "https://www.youtube.com/embed/SycFuomRuQo",
					catalog.UndertoneCool:    "https://www.youtube.com/embed/XPkwk20RjJw",
					catalog.UndertoneNeutral: "https://www.youtube.com/embed/qEQq1wx_4Ro",
				},
				Default:        "https://www.youtube.com/embed/qEQq1wx_4Ro",
				MatchUndertone: true,
			},
			"lipstick": {
				Videos: map[string]string{
					catalog.ToneFair: "https://www.youtube.com/embed/xP2nqq1c6Uc",
					catalog.ToneDeep: "https://www.youtube.com/embed/cYxjl0n_Zc8",
				},
				Default: "https://www.youtube.com/embed/Ow0Jr-0qzZs",
			},
		},
	}
}

// Resolver maps (category, skin tone, undertone) to a tutorial embed URL.
type Resolver struct {
	cfg Config
}

// NewResolver constructs a Resolver. A zero-value config falls back to the
// compiled-in tables.
func NewResolver(cfg Config) *Resolver {
	if cfg.Tables == nil {
		cfg = DefaultConfig()
	}
	return &Resolver{cfg: cfg}
}

// Resolve never returns an empty string. Lookup order: exact skin tone,
// undertone (eyeshadow), nearest registered tone on the Fair..Dark spectrum,
// category default, foundation default, global default.
func (r *Resolver) Resolve(category, skinTone, undertone string) string {
	table, ok := r.cfg.Tables[category]
	if !ok {
		metrics.IncTutorialFallback()
		if foundation, ok := r.cfg.Tables["foundation"]; ok && foundation.Default != "" {
			return foundation.Default
		}
		return r.cfg.GlobalDefault
	}

	if url, ok := table.Videos[skinTone]; ok {
		return url
	}
	if table.MatchUndertone {
		if url, ok := table.Videos[undertone]; ok {
			return url
		}
	}

	if url := nearestTone(table, skinTone); url != "" {
		return url
	}

	metrics.IncTutorialFallback()
	if table.Default != "" {
		return table.Default
	}
	if foundation, ok := r.cfg.Tables["foundation"]; ok && foundation.Default != "" {
		return foundation.Default
	}
	return r.cfg.GlobalDefault
}

// nearestTone picks the registered tone closest to the requested one on the
// spectrum. Ties resolve to the lighter tone because iteration runs light to
// dark with a strict improvement check.
func nearestTone(table CategoryTable, skinTone string) string {
	current := -1
	for i, tone := range catalog.SkinToneOrder {
		if tone == skinTone {
			current = i
			break
		}
	}
	if current == -1 {
		return ""
	}

	best := ""
	bestDistance := len(catalog.SkinToneOrder)
	for i, tone := range catalog.SkinToneOrder {
		if _, ok := table.Videos[tone]; !ok {
			continue
		}
		distance := current - i
		if distance < 0 {
			distance = -distance
		}
		if distance < bestDistance {
			bestDistance = distance
			best = table.Videos[tone]
		}
	}
	return best
}
