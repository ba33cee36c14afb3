package theme

// Preset is the on-disk and in-memory shape of a design-token table.
// A base preset and an optional override preset are merged by New.
// Zero values in an override (empty maps, zero units) mean "not set".
type Preset struct {
	Name       string                     `toml:"name,omitempty" yaml:"name,omitempty"`
	Version    string                     `toml:"version,omitempty" yaml:"version,omitempty" validate:"omitempty,semver"`
	Spacing    SpacingPreset              `toml:"spacing" yaml:"spacing"`
	Colors     map[string]string          `toml:"colors,omitempty" yaml:"colors,omitempty" validate:"dive,keys,required,endkeys,palette_color"`
	Typography TypographyPreset           `toml:"typography" yaml:"typography"`
	Effects    EffectsPreset              `toml:"effects" yaml:"effects"`
	Layout     LayoutPreset               `toml:"layout" yaml:"layout"`
	Animation  map[string]AnimationPreset `toml:"animation,omitempty" yaml:"animation,omitempty" validate:"dive,keys,required,endkeys"`
}

// SpacingPreset holds the spacing scale. Unit is the pixel size of one
// numeric step (p-1 = Unit px); Steps are named or fixed overrides such as "px".
type SpacingPreset struct {
	Unit  float64            `toml:"unit,omitempty" yaml:"unit,omitempty" validate:"gte=0"`
	Steps map[string]float64 `toml:"steps,omitempty" yaml:"steps,omitempty" validate:"dive,keys,required,endkeys,gte=0"`
}

// TypographyPreset holds the type scale. RootSize is the pixel size of 1rem.
// LetterSpacing values are in em.
type TypographyPreset struct {
	RootSize      float64            `toml:"root_size,omitempty" yaml:"root_size,omitempty" validate:"gte=0"`
	FontSize      map[string]float64 `toml:"font_size,omitempty" yaml:"font_size,omitempty" validate:"dive,keys,required,endkeys,gt=0"`
	FontWeight    map[string]int     `toml:"font_weight,omitempty" yaml:"font_weight,omitempty" validate:"dive,keys,required,endkeys,min=1,max=1000"`
	LineHeight    map[string]float64 `toml:"line_height,omitempty" yaml:"line_height,omitempty" validate:"dive,keys,required,endkeys,gte=0"`
	LetterSpacing map[string]float64 `toml:"letter_spacing,omitempty" yaml:"letter_spacing,omitempty"`
	FontFamily    map[string]string  `toml:"font_family,omitempty" yaml:"font_family,omitempty" validate:"dive,keys,required,endkeys,required"`
}

// EffectsPreset holds corner radii, shadow stacks and blur radii, all in px.
type EffectsPreset struct {
	Radius map[string]float64       `toml:"radius,omitempty" yaml:"radius,omitempty" validate:"dive,gte=0"`
	Shadow map[string][]ShadowLayer `toml:"shadow,omitempty" yaml:"shadow,omitempty" validate:"dive,dive"`
	Blur   map[string]float64       `toml:"blur,omitempty" yaml:"blur,omitempty" validate:"dive,gte=0"`
}

// ShadowLayer is one layer of a box shadow. Color is a hex color with
// optional alpha (#rrggbbaa).
type ShadowLayer struct {
	X      float64 `toml:"x" yaml:"x"`
	Y      float64 `toml:"y" yaml:"y"`
	Blur   float64 `toml:"blur" yaml:"blur" validate:"gte=0"`
	Spread float64 `toml:"spread" yaml:"spread"`
	Color  string  `toml:"color" yaml:"color" validate:"required,palette_color"`
	Inset  bool    `toml:"inset,omitempty" yaml:"inset,omitempty"`
}

// LayoutPreset holds responsive breakpoints (min-width px), named container
// widths used by max-w-*, and custom state modifier names.
type LayoutPreset struct {
	Breakpoints map[string]float64 `toml:"breakpoints,omitempty" yaml:"breakpoints,omitempty" validate:"dive,keys,required,modifier_name,endkeys,gt=0"`
	Containers  map[string]float64 `toml:"containers,omitempty" yaml:"containers,omitempty" validate:"dive,gt=0"`
	States      []string           `toml:"states,omitempty" yaml:"states,omitempty" validate:"dive,required,modifier_name"`
}

// AnimationPreset describes a named animation. Duration is in milliseconds;
// Iterations of 0 means infinite.
type AnimationPreset struct {
	Duration   float64 `toml:"duration" yaml:"duration" validate:"gte=0"`
	Easing     string  `toml:"easing,omitempty" yaml:"easing,omitempty"`
	Iterations int     `toml:"iterations,omitempty" yaml:"iterations,omitempty" validate:"gte=0"`
}
