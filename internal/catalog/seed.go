package catalog

// SeedProducts is the curated catalog the app ships with. IDs are grouped by
// category: 1xx foundations, 2xx concealers, 3xx blushes, 4xx eyeshadows,
// 5xx lipsticks, 6xx skincare.
func SeedProducts() []Product {
	return []Product{
		{
			ID: 101, Name: "Double Wear Stay-in-Place Foundation - 1N0 Porcelain", Brand: "Estée Lauder",
			Category: "Foundation", Description: "24-hour wear, flawless foundation for light skin tones with neutral undertones",
			PriceCents: 4900, ImageURL: "https://www.sephora.com/productimages/sku/s2380459-main-zoom.jpg",
			ProductURL:  "https://www.esteelauder.com/product/643/22830/product-catalog/makeup/face/foundation/double-wear/stay-in-place-foundation",
			ShadeFamily: ToneLight, Undertone: UndertoneNeutral,
			VideoURL: "https://www.youtube.com/embed/ZD92D2qQW8U",
			Benefits: []string{"Long-wearing", "Full Coverage", "Oil Control"},
			Ingredients: []string{"Dimethicone", "Kaolin Clay", "Vitamin E"},
		},
		{
			ID: 102, Name: "Double Wear Stay-in-Place Foundation - 1C1 Cool Bone", Brand: "Estée Lauder",
			Category: "Foundation", Description: "24-hour wear, flawless foundation for light skin tones with cool undertones",
			PriceCents: 4900, ImageURL: "https://www.sephora.com/productimages/sku/s2380459-main-zoom.jpg",
			ProductURL:  "https://www.esteelauder.com/product/643/22830/product-catalog/makeup/face/foundation/double-wear/stay-in-place-foundation",
			ShadeFamily: ToneLight, Undertone: UndertoneCool,
			VideoURL: "https://www.youtube.com/embed/ZD92D2qQW8U",
			Benefits: []string{"Long-wearing", "Full Coverage", "Oil Control"},
			Ingredients: []string{"Dimethicone", "Kaolin Clay", "Vitamin E"},
		},
		{
			ID: 103, Name: "Double Wear Stay-in-Place Foundation - 1W1 Bone", Brand: "Estée Lauder",
			Category: "Foundation", Description: "24-hour wear, flawless foundation for light skin tones with warm undertones",
			PriceCents: 4900, ImageURL: "https://www.sephora.com/productimages/sku/s2380459-main-zoom.jpg",
			ProductURL:  "https://www.esteelauder.com/product/643/22830/product-catalog/makeup/face/foundation/double-wear/stay-in-place-foundation",
			ShadeFamily: ToneLight, Undertone: UndertoneWarm,
			VideoURL: "https://www.youtube.com/embed/ZD92D2qQW8U",
			Benefits: []string{"Long-wearing", "Full Coverage", "Oil Control"},
			Ingredients: []string{"Dimethicone", "Kaolin Clay", "Vitamin E"},
		},
		{
			ID: 104, Name: "Luminous Silk Foundation - 4 Medium", Brand: "Armani Beauty",
			Category: "Foundation", Description: "Award-winning, medium coverage foundation with a luminous finish for medium neutral skin",
			PriceCents: 6900, ImageURL: "https://www.sephora.com/productimages/sku/s2327732-main-zoom.jpg",
			ProductURL:  "https://www.sephora.com/product/luminous-silk-perfect-glow-flawless-oil-free-foundation-P393401",
			ShadeFamily: ToneMedium, Undertone: UndertoneNeutral,
			VideoURL: "https://www.youtube.com/embed/Nqkpk18FUH4",
			Benefits: []string{"Luminous Finish", "Buildable Coverage", "Hydrating"},
			Ingredients: []string{"Glycerin", "Hyaluronic Acid", "Light-reflecting Pigments"},
		},
		{
			ID: 105, Name: "Luminous Silk Foundation - 4.25 Medium", Brand: "Armani Beauty",
			Category: "Foundation", Description: "Award-winning, medium coverage foundation with a luminous finish for medium cool skin",
			PriceCents: 6900, ImageURL: "https://www.sephora.com/productimages/sku/s2327732-main-zoom.jpg",
			ProductURL:  "https://www.sephora.com/product/luminous-silk-perfect-glow-flawless-oil-free-foundation-P393401",
			ShadeFamily: ToneMedium, Undertone: UndertoneCool,
			VideoURL: "https://www.youtube.com/embed/ZD92D2qQW8U",
			Benefits: []string{"Luminous Finish", "Buildable Coverage", "Hydrating"},
			Ingredients: []string{"Glycerin", "Hyaluronic Acid", "Light-reflecting Pigments"},
		},
		{
			ID: 106, Name: "Luminous Silk Foundation - 5 Medium", Brand: "Armani Beauty",
			Category: "Foundation", Description: "Award-winning, medium coverage foundation with a luminous finish for medium warm skin",
			PriceCents: 6900, ImageURL: "https://www.sephora.com/productimages/sku/s2327732-main-zoom.jpg",
			ProductURL:  "https://www.sephora.com/product/luminous-silk-perfect-glow-flawless-oil-free-foundation-P393401",
			ShadeFamily: ToneMedium, Undertone: UndertoneWarm,
			VideoURL: "https://www.youtube.com/embed/ZD92D2qQW8U",
			Benefits: []string{"Luminous Finish", "Buildable Coverage", "Hydrating"},
			Ingredients: []string{"Glycerin", "Hyaluronic Acid", "Light-reflecting Pigments"},
		},
		{
			ID: 107, Name: "Pro Filt'r Soft Matte Foundation - 390", Brand: "Fenty Beauty",
			Category: "Foundation", Description: "Soft matte, long-wear foundation with buildable, medium to full coverage for deep cool skin tones",
			PriceCents: 3900, ImageURL: "https://www.sephora.com/productimages/sku/s2194033-main-zoom.jpg",
			ProductURL:  "https://www.sephora.com/product/pro-filtr-soft-matte-longwear-foundation-P87985432",
			ShadeFamily: ToneDeep, Undertone: UndertoneCool,
			VideoURL: "https://www.youtube.com/embed/ZD92D2qQW8U",
			Benefits: []string{"Matte Finish", "Long-wearing", "Oil Control"},
			Ingredients: []string{"Silica", "Dimethicone", "Glycerin"},
		},
		{
			ID: 108, Name: "Pro Filt'r Soft Matte Foundation - 420", Brand: "Fenty Beauty",
			Category: "Foundation", Description: "Soft matte, long-wear foundation with buildable, medium to full coverage for deep warm skin tones",
			PriceCents: 3900, ImageURL: "https://www.sephora.com/productimages/sku/s2194033-main-zoom.jpg",
			ProductURL:  "https://www.sephora.com/product/pro-filtr-soft-matte-longwear-foundation-P87985432",
			ShadeFamily: ToneDeep, Undertone: UndertoneWarm,
			Benefits:    []string{"Matte Finish", "Long-wearing", "Oil Control"},
			Ingredients: []string{"Silica", "Dimethicone", "Glycerin"},
		},
		{
			ID: 109, Name: "Pro Filt'r Soft Matte Foundation - 445", Brand: "Fenty Beauty",
			Category: "Foundation", Description: "Soft matte, long-wear foundation with buildable, medium to full coverage for deep neutral skin tones",
			PriceCents: 3900, ImageURL: "https://www.sephora.com/productimages/sku/s2194033-main-zoom.jpg",
			ProductURL:  "https://www.sephora.com/product/pro-filtr-soft-matte-longwear-foundation-P87985432",
			ShadeFamily: ToneDeep, Undertone: UndertoneNeutral,
			VideoURL: "https://www.youtube.com/embed/ZD92D2qQW8U",
			Benefits: []string{"Matte Finish", "Long-wearing", "Oil Control"},
			Ingredients: []string{"Silica", "Dimethicone", "Glycerin"},
		},
		{
			ID: 110, Name: "Skin Tint + Serum - Light", Brand: "Ilia",
			Category: "Foundation", Description: "Lightweight tinted serum with light coverage and skincare benefits for light skin tones",
			PriceCents: 4800, ImageURL: "https://www.sephora.com/productimages/sku/s2291128-main-zoom.jpg",
			ProductURL:  "https://www.sephora.com/product/super-serum-skin-tint-spf-40-P466223",
			ShadeFamily: ToneLight,
			Benefits:    []string{"Hydrating", "Light Coverage", "SPF Protection"},
			Ingredients: []string{"Hyaluronic Acid", "Niacinamide", "Squalane"},
		},
		{
			ID: 111, Name: "Skin Tint + Serum - Medium", Brand: "Ilia",
			Category: "Foundation", Description: "Lightweight tinted serum with light coverage and skincare benefits for medium skin tones",
			PriceCents: 4800, ImageURL: "https://www.sephora.com/productimages/sku/s2291128-main-zoom.jpg",
			ProductURL:  "https://www.sephora.com/product/super-serum-skin-tint-spf-40-P466223",
			ShadeFamily: ToneMedium,
			Benefits:    []string{"Hydrating", "Light Coverage", "SPF Protection"},
			Ingredients: []string{"Hyaluronic Acid", "Niacinamide", "Squalane"},
		},
		{
			ID: 112, Name: "Skin Tint + Serum - Deep", Brand: "Ilia",
			Category: "Foundation", Description: "Lightweight tinted serum with light coverage and skincare benefits for deep skin tones",
			PriceCents: 4800, ImageURL: "https://www.sephora.com/productimages/sku/s2291128-main-zoom.jpg",
			ProductURL:  "https://www.sephora.com/product/super-serum-skin-tint-spf-40-P466223",
			ShadeFamily: ToneDeep,
			Benefits:    []string{"Hydrating", "Light Coverage", "SPF Protection"},
			Ingredients: []string{"Hyaluronic Acid", "Niacinamide", "Squalane"},
		},

		{
			ID: 201, Name: "Radiant Creamy Concealer - Vanilla", Brand: "NARS",
			Category: "Concealer", Description: "Award-winning concealer with buildable, medium coverage for light cool skin tones",
			PriceCents: 3200, ImageURL: "https://www.sephora.com/productimages/sku/s1478403-main-zoom.jpg",
			ProductURL:  "https://www.narscosmetics.com/USA/radiant-creamy-concealer/0607845016229.html",
			ShadeFamily: ToneLight, Undertone: UndertoneCool,
			VideoURL: "https://www.youtube.com/embed/n5YbJ8LzI2M",
			Benefits: []string{"Brightening", "Crease-proof", "Hydrating"},
			Ingredients: []string{"Hyaluronic Acid", "Vitamin E", "Light-diffusing Pigments"},
		},
		{
			ID: 202, Name: "Radiant Creamy Concealer - Custard", Brand: "NARS",
			Category: "Concealer", Description: "Award-winning concealer with buildable, medium coverage for light warm skin tones",
			PriceCents: 3200, ImageURL: "https://www.sephora.com/productimages/sku/s1478403-main-zoom.jpg",
			ProductURL:  "https://www.narscosmetics.com/USA/radiant-creamy-concealer/0607845016229.html",
			ShadeFamily: ToneLight, Undertone: UndertoneWarm,
			VideoURL: "https://www.youtube.com/embed/n5YbJ8LzI2M",
			Benefits: []string{"Brightening", "Crease-proof", "Hydrating"},
			Ingredients: []string{"Hyaluronic Acid", "Vitamin E", "Light-diffusing Pigments"},
		},
		{
			ID: 203, Name: "Radiant Creamy Concealer - Ginger", Brand: "NARS",
			Category: "Concealer", Description: "Award-winning concealer with buildable, medium coverage for medium skin tones",
			PriceCents: 3200, ImageURL: "https://www.sephora.com/productimages/sku/s1478403-main-zoom.jpg",
			ProductURL:  "https://www.narscosmetics.com/USA/radiant-creamy-concealer/0607845016229.html",
			ShadeFamily: ToneMedium, Undertone: UndertoneNeutral,
			VideoURL: "https://www.youtube.com/embed/JfG3ziJszl0",
			Benefits: []string{"Brightening", "Crease-proof", "Hydrating"},
			Ingredients: []string{"Hyaluronic Acid", "Vitamin E", "Light-diffusing Pigments"},
		},
		{
			ID: 204, Name: "Pro Filt'r Instant Retouch Concealer - 310", Brand: "Fenty Beauty",
			Category: "Concealer", Description: "Creamy, long-wear, crease-proof liquid concealer for medium skin tones",
			PriceCents: 2900, ImageURL: "https://www.sephora.com/productimages/sku/s2212579-main-zoom.jpg",
			ProductURL:  "https://www.sephora.com/product/pro-filtr-instant-retouch-concealer-P90773711",
			ShadeFamily: ToneMedium, Undertone: UndertoneWarm,
			VideoURL: "https://www.youtube.com/embed/n5YbJ8LzI2M",
			Benefits: []string{"Full Coverage", "Crease-proof", "Long-wearing"},
			Ingredients: []string{"Dimethicone", "Glycerin", "Silica"},
		},
		{
			ID: 205, Name: "Pro Filt'r Instant Retouch Concealer - 420", Brand: "Fenty Beauty",
			Category: "Concealer", Description: "Creamy, long-wear, crease-proof liquid concealer for deep skin tones",
			PriceCents: 2900, ImageURL: "https://www.sephora.com/productimages/sku/s2212579-main-zoom.jpg",
			ProductURL:  "https://www.sephora.com/product/pro-filtr-instant-retouch-concealer-P90773711",
			ShadeFamily: ToneDeep, Undertone: UndertoneWarm,
			VideoURL: "https://www.youtube.com/embed/n5YbJ8LzI2M",
			Benefits: []string{"Full Coverage", "Crease-proof", "Long-wearing"},
			Ingredients: []string{"Dimethicone", "Glycerin", "Silica"},
		},
		{
			ID: 206, Name: "Pro Filt'r Instant Retouch Concealer - 498", Brand: "Fenty Beauty",
			Category: "Concealer", Description: "Creamy, long-wear, crease-proof liquid concealer for deep skin tones",
			PriceCents: 2900, ImageURL: "https://www.sephora.com/productimages/sku/s2212579-main-zoom.jpg",
			ProductURL:  "https://www.sephora.com/product/pro-filtr-instant-retouch-concealer-P90773711",
			ShadeFamily: ToneDeep, Undertone: UndertoneNeutral,
			VideoURL: "https://www.youtube.com/embed/n5YbJ8LzI2M",
			Benefits: []string{"Full Coverage", "Crease-proof", "Long-wearing"},
			Ingredients: []string{"Dimethicone", "Glycerin", "Silica"},
		},

		{
			ID: 301, Name: "Soft Pinch Liquid Blush - Joy", Brand: "Rare Beauty",
			Category: "Blush", Description: "Weightless, long-lasting liquid blush that blends beautifully for a soft flush",
			PriceCents: 2300, ImageURL: "https://www.sephora.com/productimages/sku/s2518959-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/rare-beauty-by-selena-gomez-soft-pinch-liquid-blush-P97989732",
			VideoURL:   "https://www.youtube.com/embed/VbVaSZELdO4",
			Benefits:   []string{"Buildable Color", "Long-wearing", "Natural Finish"},
			Ingredients: []string{"Glycerin", "Mineral Pigments", "Vitamin E"},
		},
		{
			ID: 302, Name: "Soft Pinch Liquid Blush - Bliss", Brand: "Rare Beauty",
			Category: "Blush", Description: "Weightless, long-lasting liquid blush that blends beautifully for a soft flush",
			PriceCents: 2300, ImageURL: "https://www.sephora.com/productimages/sku/s2518959-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/rare-beauty-by-selena-gomez-soft-pinch-liquid-blush-P97989732",
			VideoURL:   "https://www.youtube.com/embed/BHdpCHFL0GQ",
			Benefits:   []string{"Buildable Color", "Long-wearing", "Natural Finish"},
			Ingredients: []string{"Glycerin", "Mineral Pigments", "Vitamin E"},
		},
		{
			ID: 303, Name: "Soft Pinch Liquid Blush - Love", Brand: "Rare Beauty",
			Category: "Blush", Description: "Weightless, long-lasting liquid blush that blends beautifully for a soft flush",
			PriceCents: 2300, ImageURL: "https://www.sephora.com/productimages/sku/s2518959-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/rare-beauty-by-selena-gomez-soft-pinch-liquid-blush-P97989732",
			VideoURL:   "https://www.youtube.com/embed/BHdpCHFL0GQ",
			Benefits:   []string{"Buildable Color", "Long-wearing", "Natural Finish"},
			Ingredients: []string{"Glycerin", "Mineral Pigments", "Vitamin E"},
		},
		{
			ID: 304, Name: "Cloud Paint - Puff", Brand: "Glossier",
			Category: "Blush", Description: "Seamless, buildable gel-cream blush for a natural-looking flush",
			PriceCents: 2000, ImageURL: "https://images.ctfassets.net/p3w8f4svwgcg/SB-Blush-CloudPaint-PDP-03/e47c4a8d6dad6b1c9c75d71935c90347/SB-CLOUDPAINT-TILE-PUFF-1-1440x1952.png",
			ProductURL: "https://www.glossier.com/products/cloud-paint",
			VideoURL:   "https://www.youtube.com/embed/BHdpCHFL0GQ",
			Benefits:   []string{"Buildable Color", "Natural Finish", "Blendable"},
			Ingredients: []string{"Glycerin", "Squalane", "Mineral Pigments"},
		},
		{
			ID: 305, Name: "Cloud Paint - Dusk", Brand: "Glossier",
			Category: "Blush", Description: "Seamless, buildable gel-cream blush for a natural-looking flush",
			PriceCents: 2000, ImageURL: "https://images.ctfassets.net/p3w8f4svwgcg/SB-Blush-CloudPaint-PDP-03/e47c4a8d6dad6b1c9c75d71935c90347/SB-CLOUDPAINT-TILE-PUFF-1-1440x1952.png",
			ProductURL: "https://www.glossier.com/products/cloud-paint",
			VideoURL:   "https://www.youtube.com/embed/BHdpCHFL0GQ",
			Benefits:   []string{"Buildable Color", "Natural Finish", "Blendable"},
			Ingredients: []string{"Glycerin", "Squalane", "Mineral Pigments"},
		},
		{
			ID: 306, Name: "Cheek Pop - Nude Pop", Brand: "Clinique",
			Category: "Blush", Description: "Silky powder blush with a natural-looking stain",
			PriceCents: 2700, ImageURL: "https://www.sephora.com/productimages/sku/s1971779-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/cheek-pop-P384566",
			VideoURL:   "https://www.youtube.com/embed/BHdpCHFL0GQ",
			Benefits:   []string{"Natural Finish", "Long-wearing", "Blendable"},
			Ingredients: []string{"Mica", "Silica", "Mineral Pigments"},
		},

		{
			ID: 401, Name: "Naked3 Eyeshadow Palette", Brand: "Urban Decay",
			Category: "Eyeshadow", Description: "Rose-toned neutral eyeshadow palette ideal for cool undertones",
			PriceCents: 5400, ImageURL: "https://www.sephora.com/productimages/sku/s1782937-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/naked3-P384099",
			Undertone:  UndertoneCool,
			VideoURL:   "https://www.youtube.com/embed/qEQq1wx_4Ro",
			Benefits:   []string{"Highly Pigmented", "Blendable", "Versatile"},
			Ingredients: []string{"Mica", "Silica", "Vitamin E"},
		},
		{
			ID: 402, Name: "Soft Glam Eyeshadow Palette", Brand: "Anastasia Beverly Hills",
			Category: "Eyeshadow", Description: "Warm-toned neutral eyeshadow palette with gold and bronze shades",
			PriceCents: 4500, ImageURL: "https://www.sephora.com/productimages/sku/s2018232-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/soft-glam-eye-shadow-palette-P04207901",
			Undertone:  UndertoneWarm,
			VideoURL:   "https://www.youtube.com/embed/qEQq1wx_4Ro",
			Benefits:   []string{"Highly Pigmented", "Blendable", "Buildable"},
			Ingredients: []string{"Mica", "Silica", "Jojoba Oil"},
		},
		{
			ID: 403, Name: "Naked Palette", Brand: "Urban Decay",
			Category: "Eyeshadow", Description: "Versatile eyeshadow palette with 12 neutral shades",
			PriceCents: 5400, ImageURL: "https://www.sephora.com/productimages/sku/s2319820-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/naked-reloaded-eyeshadow-palette-P441302",
			Undertone:  UndertoneNeutral,
			VideoURL:   "https://www.youtube.com/embed/huO2KlLmerA",
			Benefits:   []string{"Highly Pigmented", "Versatile", "Long-wearing"},
			Ingredients: []string{"Mica", "Silica", "Vitamin E"},
		},
		{
			ID: 404, Name: "Mercury Retrograde Palette", Brand: "Huda Beauty",
			Category: "Eyeshadow", Description: "Vibrant eyeshadow palette with stunning cosmic-inspired shades",
			PriceCents: 6700, ImageURL: "https://www.sephora.com/productimages/sku/s2291631-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/mercury-retrograde-eyeshadow-palette-P449509",
			VideoURL:   "https://www.youtube.com/embed/qEQq1wx_4Ro",
			Benefits:   []string{"Highly Pigmented", "Metallic Finish", "Dramatic"},
			Ingredients: []string{"Mica", "Silica", "Jojoba Oil"},
		},
		{
			ID: 405, Name: "The Chocolates Palette", Brand: "Juvia's Place",
			Category: "Eyeshadow", Description: "Rich, warm-toned neutral palette perfect for deeper skin tones",
			PriceCents: 2000, ImageURL: "https://www.juviasplace.com/cdn/shop/files/ChocolatePalette1_800x.jpg",
			ProductURL: "https://www.juviasplace.com/products/the-chocolates-eyeshadow-palette",
			VideoURL:   "https://www.youtube.com/embed/qEQq1wx_4Ro",
			Benefits:   []string{"Highly Pigmented", "Buildable", "Blendable"},
			Ingredients: []string{"Mica", "Silica", "Vitamin E"},
		},
		{
			ID: 406, Name: "Mocha Capsule Palette", Brand: "Makeup By Mario",
			Category: "Eyeshadow", Description: "Buttery matte and metallic eyeshadows in everyday neutral shades",
			PriceCents: 3400, ImageURL: "https://www.sephora.com/productimages/sku/s2637205-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/makeup-by-mario-master-mattes-eyeshadow-palette-P465706",
			VideoURL:   "https://www.youtube.com/embed/qEQq1wx_4Ro",
			Benefits:   []string{"Blendable", "Versatile", "Long-wearing"},
			Ingredients: []string{"Mica", "Silica", "Squalane"},
		},

		{
			ID: 501, Name: "Matte Revolution Lipstick - Pillow Talk", Brand: "Charlotte Tilbury",
			Category: "Lipstick", Description: "Iconic nude-pink matte lipstick with a hydrating, long-lasting formula",
			PriceCents: 3400, ImageURL: "https://www.charlottetilbury.com/media/catalog/product/cache/1/image/450x/9df78eab33525d08d6e5fb8d27136e95/p/i/pillow_talk_matte_lipstick_packshot_1.jpg",
			ProductURL: "https://www.charlottetilbury.com/us/product/matte-revolution-pillow-talk",
			VideoURL:   "https://www.youtube.com/embed/Ow0Jr-0qzZs",
			Benefits:   []string{"Hydrating", "Long-lasting", "Comfortable Matte"},
			Ingredients: []string{"Shea Butter", "Vitamin E", "Jojoba Oil"},
		},
		{
			ID: 502, Name: "Rouge Dior Lipstick - 999", Brand: "Dior",
			Category: "Lipstick", Description: "Iconic red lipstick in a velvety, moisturizing formula",
			PriceCents: 4200, ImageURL: "https://www.sephora.com/productimages/sku/s2348134-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/rouge-dior-refillable-lipstick-P476828",
			VideoURL:   "https://www.youtube.com/embed/Ow0Jr-0qzZs",
			Benefits:   []string{"Hydrating", "Vibrant Color", "Long-lasting"},
			Ingredients: []string{"Shea Butter", "Hyaluronic Acid", "Jojoba Oil"},
		},
		{
			ID: 503, Name: "Lip Power Lipstick - 400", Brand: "Armani Beauty",
			Category: "Lipstick", Description: "Long-lasting satin lipstick with comfort and vibrant color",
			PriceCents: 3900, ImageURL: "https://www.sephora.com/productimages/sku/s2448363-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/armani-beauty-lip-power-long-lasting-satin-lipstick-P475114",
			VideoURL:   "https://www.youtube.com/embed/Ow0Jr-0qzZs",
			Benefits:   []string{"Long-lasting", "Vibrant Color", "Comfortable Wear"},
			Ingredients: []string{"Shea Butter", "Vitamin E", "Jojoba Oil"},
		},
		{
			ID: 504, Name: "Soft Matte Cream Lipstick - Dragon Girl", Brand: "NARS",
			Category: "Lipstick", Description: "Highly pigmented matte lipstick in a vibrant red shade",
			PriceCents: 2800, ImageURL: "https://www.narscosmetics.com/dw/image/v2/BBSK_PRD/on/demandware.static/-/Sites-itemmaster_NARS/default/dw8d2c6f57/hi-res/LIPSTICK_SOFT_MATTE/0607845083290.jpg",
			ProductURL: "https://www.narscosmetics.com/USA/soft-matte-lipstick/0607845083290.html",
			VideoURL:   "https://www.youtube.com/embed/Ow0Jr-0qzZs",
			Benefits:   []string{"Highly Pigmented", "Comfortable Matte", "Long-lasting"},
			Ingredients: []string{"Shea Butter", "Vitamin E", "Dimethicone"},
		},

		{
			ID: 601, Name: "The Dewy Skin Cream", Brand: "Tatcha",
			Category: "Moisturizer", Description: "Rich cream that provides intense hydration for dry skin",
			PriceCents: 6900, ImageURL: "https://www.sephora.com/productimages/sku/s2181006-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/the-dewy-skin-cream-P441101",
			VideoURL:   "https://www.youtube.com/embed/Q2Wp5dwXEEo",
			Benefits:   []string{"Hydration", "Dryness Relief", "Plumping"},
			Ingredients: []string{"Hyaluronic Acid", "Okinawa Algae", "Ginseng"},
		},
		{
			ID: 602, Name: "The Water Cream", Brand: "Tatcha",
			Category: "Moisturizer", Description: "Oil-free, water-light cream that hydrates oily skin without clogging pores",
			PriceCents: 7000, ImageURL: "https://www.sephora.com/productimages/sku/s1932920-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/the-water-cream-P418218",
			Benefits:   []string{"Oil Control", "Oiliness Balance", "Hydration"},
			Ingredients: []string{"Japanese Wild Rose", "Green Tea", "Hyaluronic Acid"},
		},
		{
			ID: 603, Name: "Protini Polypeptide Cream", Brand: "Drunk Elephant",
			Category: "Moisturizer", Description: "Protein moisturizer that improves skin firmness and texture",
			PriceCents: 6800, ImageURL: "https://www.sephora.com/productimages/sku/s2025633-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/protini-tm-polypeptide-cream-P427421",
			Benefits:   []string{"Anti-aging", "Firming", "Texture Improvement"},
			Ingredients: []string{"Peptides", "Amino Acids", "Pygmy Waterlily"},
		},
		{
			ID: 604, Name: "Calm Redness Relief Moisturizer", Brand: "Paula's Choice",
			Category: "Moisturizer", Description: "Gentle, soothing moisturizer for sensitive skin",
			PriceCents: 3100, ImageURL: "https://www.paulaschoice.com/dw/image/v2/BBNX_PRD/on/demandware.static/-/Sites-pc-catalog/default/dwd3c30ca7/images/products/calm-redness-relief-moisturizer-normal-to-oily-9160-L.png",
			ProductURL: "https://www.paulaschoice.com/calm-redness-relief-moisturizer---normal-to-oily/9160.html",
			Benefits:   []string{"Redness Relief", "Soothing", "Sensitive Skin Friendly"},
			Ingredients: []string{"Oat Extract", "Allantoin", "Green Tea"},
		},
		{
			ID: 605, Name: "C E Ferulic", Brand: "SkinCeuticals",
			Category: "Serum", Description: "Vitamin C serum that brightens skin and reduces dark spots",
			PriceCents: 16900, ImageURL: "https://m.skinceuticals.com/is/image/SkinCeuticals/DFE10-c-e-ferulic-635494263008-SkinCeuticals.png",
			ProductURL: "https://www.skinceuticals.com/c-e-ferulic-635494263008.html",
			Benefits:   []string{"Brightening", "Dark Spots Reduction", "Antioxidant Protection"},
			Ingredients: []string{"Vitamin C", "Vitamin E", "Ferulic Acid"},
		},
		{
			ID: 606, Name: "Niacinamide 10% + Zinc 1%", Brand: "The Ordinary",
			Category: "Serum", Description: "High-strength vitamin and mineral formula to reduce blemishes and congestion",
			PriceCents: 600, ImageURL: "https://www.sephora.com/productimages/sku/s2031391-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/the-ordinary-deciem-niacinamide-10-zinc-1-P427417",
			Benefits:   []string{"Acne Control", "Oiliness Balance", "Even Tone"},
			Ingredients: []string{"Niacinamide", "Zinc PCA"},
		},
		{
			ID: 607, Name: "Retinol 1% in Squalane", Brand: "The Ordinary",
			Category: "Serum", Description: "High-strength retinol to reduce signs of aging",
			PriceCents: 1300, ImageURL: "https://www.sephora.com/productimages/sku/s2315042-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/the-ordinary-deciem-retinol-1-in-squalane-P427420",
			Benefits:   []string{"Anti-aging", "Wrinkles Reduction", "Texture Improvement"},
			Ingredients: []string{"Retinol", "Squalane"},
		},
		{
			ID: 608, Name: "EGF Serum", Brand: "BIOEFFECT",
			Category: "Serum", Description: "Anti-aging serum with epidermal growth factor to rejuvenate skin",
			PriceCents: 16500, ImageURL: "https://www.bioeffect.com/media/catalog/product/cache/e/g/egfserum_nov22_1.jpg",
			ProductURL: "https://www.bioeffect.com/us/bioeffect-egf-serum",
			Benefits:   []string{"Anti-aging", "Firming", "Hydration"},
			Ingredients: []string{"EGF", "Glycerin", "Hyaluronic Acid"},
		},
		{
			ID: 609, Name: "Soy Face Cleanser", Brand: "Fresh",
			Category: "Cleanser", Description: "Gentle, amino-acid rich gel cleanser for all skin types",
			PriceCents: 4500, ImageURL: "https://www.sephora.com/productimages/sku/s1649086-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/soy-face-cleansing-milk-P7880",
			Benefits:   []string{"Gentle Cleansing", "Hydration", "Soothing"},
			Ingredients: []string{"Soy Proteins", "Cucumber Extract", "Aloe Vera"},
		},
		{
			ID: 610, Name: "The Deep Cleanse", Brand: "Tatcha",
			Category: "Cleanser", Description: "Oil-free gel cleanser that exfoliates and decongests pores",
			PriceCents: 3900, ImageURL: "https://www.sephora.com/productimages/sku/s2035129-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/the-deep-cleanse-P427536",
			Benefits:   []string{"Pore Care", "Oiliness Balance", "Exfoliation"},
			Ingredients: []string{"Japanese Luffa Fruit", "Amino Acids"},
		},
		{
			ID: 611, Name: "CeraVe Hydrating Facial Cleanser", Brand: "CeraVe",
			Category: "Cleanser", Description: "Gentle cleanser with ceramides and hyaluronic acid for dry skin",
			PriceCents: 1599, ImageURL: "https://www.ulta.com/media/catalog/productXLarge/p/i/pi-cerave-hydrating-face-cleanser-16-oz-prd.jpg",
			ProductURL: "https://www.ulta.com/p/hydrating-facial-cleanser-pimprod2012638",
			Benefits:   []string{"Hydration", "Dryness Relief", "Gentle Cleansing"},
			Ingredients: []string{"Ceramides", "Hyaluronic Acid", "Glycerin"},
		},
		{
			ID: 612, Name: "Salicylic Acid 2% BHA Liquid Exfoliant", Brand: "Paula's Choice",
			Category: "Treatment", Description: "Leave-on exfoliant that unclogs pores and smooths wrinkles",
			PriceCents: 3200, ImageURL: "https://www.paulaschoice.com/dw/image/v2/BBNX_PRD/images/products/skin-perfecting-2-percent-bha-liquid-2010-L.png",
			ProductURL: "https://www.paulaschoice.com/skin-perfecting-2pct-bha-liquid-exfoliant/201.html",
			Benefits:   []string{"Acne Control", "Pore Care", "Wrinkles Smoothing"},
			Ingredients: []string{"Salicylic Acid", "Green Tea"},
		},
		{
			ID: 613, Name: "Glycolic Acid 7% Toning Solution", Brand: "The Ordinary",
			Category: "Treatment", Description: "Exfoliating toner for improved skin texture and brightness",
			PriceCents: 1300, ImageURL: "https://www.sephora.com/productimages/sku/s1971647-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/the-ordinary-deciem-glycolic-acid-7-toning-solution-P427406",
			Benefits:   []string{"Brightening", "Texture Improvement", "Even Tone"},
			Ingredients: []string{"Glycolic Acid", "Aloe Vera", "Ginseng"},
		},
		{
			ID: 614, Name: "Luna Sleeping Night Oil", Brand: "Sunday Riley",
			Category: "Treatment", Description: "Retinol oil that reduces appearance of pores, fine lines, and wrinkles",
			PriceCents: 5500, ImageURL: "https://www.sephora.com/productimages/sku/s1679935-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/luna-sleeping-night-oil-P393718",
			Benefits:   []string{"Anti-aging", "Wrinkles Reduction", "Pore Care"},
			Ingredients: []string{"Retinol", "Blue Tansy", "Chia Seed Oil"},
		},
		{
			ID: 615, Name: "Alpha Beta Extra Strength Daily Peel", Brand: "Dr. Dennis Gross",
			Category: "Treatment", Description: "Two-step AHA/BHA peel pads for powerful exfoliation and anti-aging benefits",
			PriceCents: 9200, ImageURL: "https://www.sephora.com/productimages/sku/s1499482-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/alpha-beta-peel-extra-strength-daily-peel-P269534",
			Benefits:   []string{"Exfoliation", "Anti-aging", "Pigmentation Reduction"},
			Ingredients: []string{"Glycolic Acid", "Salicylic Acid", "Retinol"},
		},
		{
			ID: 616, Name: "Unseen Sunscreen SPF 40", Brand: "Supergoop!",
			Category: "Sunscreen", Description: "Invisible, weightless, scentless SPF 40 with a velvety finish",
			PriceCents: 3800, ImageURL: "https://www.sephora.com/productimages/sku/s2315935-main-zoom.jpg",
			ProductURL: "https://www.sephora.com/product/supergoop-unseen-sunscreen-spf-40-P454380",
			Benefits:   []string{"SPF Protection", "Dark Spots Prevention", "Primer Effect"},
			Ingredients: []string{"Avobenzone", "Red Algae", "Frankincense"},
		},
	}
}
