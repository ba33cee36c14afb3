package theme

// DefaultPreset returns the built-in Tailwind-flavoured preset. Each call
// returns a fresh copy that the caller may mutate.
func DefaultPreset() Preset {
	return Preset{
		Name:    "tailwind",
		Version: "4.0.0",
		Spacing: SpacingPreset{
			Unit:  4,
			Steps: defaultSpacing(),
		},
		Colors: defaultColors(),
		Typography: TypographyPreset{
			RootSize:      16,
			FontSize:      defaultFontSizes(),
			FontWeight:    defaultFontWeights(),
			LineHeight:    defaultLineHeights(),
			LetterSpacing: defaultLetterSpacings(),
			FontFamily: map[string]string{
				"sans":  "Inter",
				"serif": "Times New Roman",
				"mono":  "Menlo",
			},
		},
		Effects: EffectsPreset{
			Radius: defaultRadii(),
			Shadow: defaultShadows(),
			Blur:   defaultBlurs(),
		},
		Layout: LayoutPreset{
			Breakpoints: map[string]float64{
				"sm":  640,
				"md":  768,
				"lg":  1024,
				"xl":  1280,
				"2xl": 1536,
			},
			Containers: defaultContainers(),
		},
		Animation: map[string]AnimationPreset{
			"spin":   {Duration: 1000, Easing: "linear"},
			"ping":   {Duration: 1000, Easing: "cubic-bezier(0, 0, 0.2, 1)"},
			"pulse":  {Duration: 2000, Easing: "cubic-bezier(0.4, 0, 0.6, 1)"},
			"bounce": {Duration: 1000, Easing: "ease-in-out"},
		},
	}
}

func defaultColors() map[string]string {
	colors := make(map[string]string)

	palettes := map[string][]string{
		"slate":   {"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a", "#020617"},
		"gray":    {"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827", "#030712"},
		"zinc":    {"#fafafa", "#f4f4f5", "#e4e4e7", "#d4d4d8", "#a1a1aa", "#71717a", "#52525b", "#3f3f46", "#27272a", "#18181b", "#09090b"},
		"neutral": {"#fafafa", "#f5f5f5", "#e5e5e5", "#d4d4d4", "#a3a3a3", "#737373", "#525252", "#404040", "#262626", "#171717", "#0a0a0a"},
		"stone":   {"#fafaf9", "#f5f5f4", "#e7e5e4", "#d6d3d1", "#a8a29e", "#78716c", "#57534e", "#44403c", "#292524", "#1c1917", "#0c0a09"},
		"red":     {"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d", "#450a0a"},
		"orange":  {"#fff7ed", "#ffedd5", "#fed7aa", "#fdba74", "#fb923c", "#f97316", "#ea580c", "#c2410c", "#9a3412", "#7c2d12", "#431407"},
		"amber":   {"#fffbeb", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#f59e0b", "#d97706", "#b45309", "#92400e", "#78350f", "#451a03"},
		"yellow":  {"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12", "#422006"},
		"lime":    {"#f7fee7", "#ecfccb", "#d9f99d", "#bef264", "#a3e635", "#84cc16", "#65a30d", "#4d7c0f", "#3f6212", "#365314", "#1a2e05"},
		"green":   {"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d", "#052e16"},
		"emerald": {"#ecfdf5", "#d1fae5", "#a7f3d0", "#6ee7b7", "#34d399", "#10b981", "#059669", "#047857", "#065f46", "#064e3b", "#022c22"},
		"teal":    {"#f0fdfa", "#ccfbf1", "#99f6e4", "#5eead4", "#2dd4bf", "#14b8a6", "#0d9488", "#0f766e", "#115e59", "#134e4a", "#042f2e"},
		"cyan":    {"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63", "#083344"},
		"sky":     {"#f0f9ff", "#e0f2fe", "#bae6fd", "#7dd3fc", "#38bdf8", "#0ea5e9", "#0284c7", "#0369a1", "#075985", "#0c4a6e", "#082f49"},
		"blue":    {"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a", "#172554"},
		"indigo":  {"#eef2ff", "#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8", "#6366f1", "#4f46e5", "#4338ca", "#3730a3", "#312e81", "#1e1b4b"},
		"violet":  {"#f5f3ff", "#ede9fe", "#ddd6fe", "#c4b5fd", "#a78bfa", "#8b5cf6", "#7c3aed", "#6d28d9", "#5b21b6", "#4c1d95", "#2e1065"},
		"purple":  {"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7e22ce", "#6b21a8", "#581c87", "#3b0764"},
		"fuchsia": {"#fdf4ff", "#fae8ff", "#f5d0fe", "#f0abfc", "#e879f9", "#d946ef", "#c026d3", "#a21caf", "#86198f", "#701a75", "#4a044e"},
		"pink":    {"#fdf2f8", "#fce7f3", "#fbcfe8", "#f9a8d4", "#f472b6", "#ec4899", "#db2777", "#be185d", "#9d174d", "#831843", "#500724"},
		"rose":    {"#fff1f2", "#ffe4e6", "#fecdd3", "#fda4af", "#fb7185", "#f43f5e", "#e11d48", "#be123c", "#9f1239", "#881337", "#4c0519"},
	}

	shades := []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}
	for name, palette := range palettes {
		for i, shade := range shades {
			colors[name+"-"+shade] = palette[i]
		}
	}

	colors["white"] = "#ffffff"
	colors["black"] = "#000000"
	colors["transparent"] = "transparent"

	return colors
}

// defaultSpacing lists the steps that cannot be derived from the numeric
// unit. Numeric steps such as "4" are computed as n * unit.
func defaultSpacing() map[string]float64 {
	return map[string]float64{
		"0":  0,
		"px": 1,
	}
}

func defaultFontSizes() map[string]float64 {
	return map[string]float64{
		"xs":   12,
		"sm":   14,
		"base": 16,
		"lg":   18,
		"xl":   20,
		"2xl":  24,
		"3xl":  30,
		"4xl":  36,
		"5xl":  48,
		"6xl":  60,
		"7xl":  72,
		"8xl":  96,
		"9xl":  128,
	}
}

func defaultFontWeights() map[string]int {
	return map[string]int{
		"thin":       100,
		"extralight": 200,
		"light":      300,
		"normal":     400,
		"medium":     500,
		"semibold":   600,
		"bold":       700,
		"extrabold":  800,
		"black":      900,
	}
}

func defaultLineHeights() map[string]float64 {
	return map[string]float64{
		"none":    1.0,
		"tight":   1.25,
		"snug":    1.375,
		"normal":  1.5,
		"relaxed": 1.625,
		"loose":   2.0,
	}
}

func defaultLetterSpacings() map[string]float64 {
	return map[string]float64{
		"tighter": -0.05,
		"tight":   -0.025,
		"normal":  0,
		"wide":    0.025,
		"wider":   0.05,
		"widest":  0.1,
	}
}

// defaultRadii keys "" as the bare `rounded` class.
func defaultRadii() map[string]float64 {
	return map[string]float64{
		"none": 0,
		"sm":   2,
		"":     4,
		"md":   6,
		"lg":   8,
		"xl":   12,
		"2xl":  16,
		"3xl":  24,
		"4xl":  32,
		"full": 9999,
	}
}

func defaultShadows() map[string][]ShadowLayer {
	return map[string][]ShadowLayer{
		"sm": {
			{X: 0, Y: 1, Blur: 2, Spread: 0, Color: "#0000000d"},
		},
		"": {
			{X: 0, Y: 1, Blur: 3, Spread: 0, Color: "#0000001a"},
			{X: 0, Y: 1, Blur: 2, Spread: -1, Color: "#0000001a"},
		},
		"md": {
			{X: 0, Y: 4, Blur: 6, Spread: -1, Color: "#0000001a"},
			{X: 0, Y: 2, Blur: 4, Spread: -2, Color: "#0000001a"},
		},
		"lg": {
			{X: 0, Y: 10, Blur: 15, Spread: -3, Color: "#0000001a"},
			{X: 0, Y: 4, Blur: 6, Spread: -4, Color: "#0000001a"},
		},
		"xl": {
			{X: 0, Y: 20, Blur: 25, Spread: -5, Color: "#0000001a"},
			{X: 0, Y: 8, Blur: 10, Spread: -6, Color: "#0000001a"},
		},
		"2xl": {
			{X: 0, Y: 25, Blur: 50, Spread: -12, Color: "#00000040"},
		},
		"inner": {
			{X: 0, Y: 2, Blur: 4, Spread: 0, Color: "#0000000d", Inset: true},
		},
	}
}

func defaultBlurs() map[string]float64 {
	return map[string]float64{
		"none": 0,
		"sm":   4,
		"":     8,
		"md":   12,
		"lg":   16,
		"xl":   24,
		"2xl":  40,
		"3xl":  64,
	}
}

func defaultContainers() map[string]float64 {
	return map[string]float64{
		"3xs": 256,
		"2xs": 288,
		"xs":  320,
		"sm":  384,
		"md":  448,
		"lg":  512,
		"xl":  576,
		"2xl": 672,
		"3xl": 768,
		"4xl": 896,
		"5xl": 1024,
		"6xl": 1152,
		"7xl": 1280,
	}
}
