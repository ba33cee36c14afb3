package theme

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	th := Default()

	tests := []struct {
		name     string
		validate func(*testing.T, *Theme)
	}{
		{
			name: "palette lookup",
			validate: func(t *testing.T, th *Theme) {
				v, ok := th.Color("blue-500")
				require.True(t, ok)
				assert.Equal(t, "#3b82f6", v)
			},
		},
		{
			name: "missing keys are not errors",
			validate: func(t *testing.T, th *Theme) {
				_, ok := th.Color("brand-500")
				assert.False(t, ok)
				v, ok := th.Resolve(CategoryColors, "nope")
				assert.False(t, ok)
				assert.Nil(t, v)
				_, ok = th.Resolve(CategoryTypography, "fontSize")
				assert.False(t, ok)
			},
		},
		{
			name: "dotted resolve",
			validate: func(t *testing.T, th *Theme) {
				v, ok := th.Resolve(CategoryTypography, "fontSize.lg")
				require.True(t, ok)
				assert.Equal(t, 18.0, v)
				v, ok = th.Resolve(CategoryLayout, "breakpoints.md")
				require.True(t, ok)
				assert.Equal(t, 768.0, v)
				v, ok = th.Resolve(CategoryEffects, "radius.lg")
				require.True(t, ok)
				assert.Equal(t, 8.0, v)
			},
		},
		{
			name: "reverse lookups",
			validate: func(t *testing.T, th *Theme) {
				name, ok := th.RadiusName(8)
				require.True(t, ok)
				assert.Equal(t, "lg", name)
				name, ok = th.RadiusName(8.0004)
				require.True(t, ok)
				assert.Equal(t, "lg", name)
				_, ok = th.RadiusName(8.004)
				assert.False(t, ok)
				_, ok = th.RadiusName(10)
				assert.False(t, ok)
				name, ok = th.ColorName("#FFFFFF")
				require.True(t, ok)
				assert.Equal(t, "white", name)
				name, ok = th.FontWeightName(700)
				require.True(t, ok)
				assert.Equal(t, "bold", name)
			},
		},
		{
			name: "shared hex resolves deterministically",
			validate: func(t *testing.T, th *Theme) {
				// neutral-50 and zinc-50 are both #fafafa.
				name, ok := th.ColorName("#fafafa")
				require.True(t, ok)
				assert.Equal(t, "neutral-50", name)
			},
		},
		{
			name: "breakpoints ordered by width",
			validate: func(t *testing.T, th *Theme) {
				assert.Equal(t, []string{"sm", "md", "lg", "xl", "2xl"}, th.Breakpoints())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, th)
		})
	}
}

func TestNewMergesOverride(t *testing.T) {
	override := &Preset{
		Spacing: SpacingPreset{Unit: 8},
		Colors:  map[string]string{"brand-500": "#1DA1F2", "white": "#fefefe"},
		Layout: LayoutPreset{
			Breakpoints: map[string]float64{"tablet": 900},
			States:      []string{"selected"},
		},
	}

	th, err := New(DefaultPreset(), override)
	require.NoError(t, err)

	assert.Equal(t, 8.0, th.SpacingUnit())
	v, ok := th.Color("brand-500")
	require.True(t, ok)
	assert.Equal(t, "#1da1f2", v, "override colors are normalized")
	v, _ = th.Color("white")
	assert.Equal(t, "#fefefe", v, "override wins for the same key")
	v, _ = th.Color("red-500")
	assert.Equal(t, "#ef4444", v, "untouched keys fall back to base")
	bp, ok := th.Breakpoint("tablet")
	require.True(t, ok)
	assert.Equal(t, 900.0, bp)
	assert.True(t, th.HasState("selected"))
	assert.Equal(t, 16.0, th.RootSize())

	// Base theme is unaffected.
	assert.Equal(t, 4.0, Default().SpacingUnit())
	assert.False(t, Default().HasState("selected"))
}

func TestNewRejectsInvalidPreset(t *testing.T) {
	tests := []struct {
		name     string
		override Preset
	}{
		{name: "bad color", override: Preset{Colors: map[string]string{"brand": "blue-ish"}}},
		{name: "negative spacing", override: Preset{Spacing: SpacingPreset{Steps: map[string]float64{"gutter": -2}}}},
		{name: "weight out of range", override: Preset{Typography: TypographyPreset{FontWeight: map[string]int{"ultra": 1200}}}},
		{name: "bad version", override: Preset{Version: "v-one"}},
		{name: "breakpoint name with colon", override: Preset{Layout: LayoutPreset{Breakpoints: map[string]float64{"a:b": 10}}}},
		{name: "zero breakpoint", override: Preset{Layout: LayoutPreset{Breakpoints: map[string]float64{"tiny": 0}}}},
		{name: "state collides with breakpoint", override: Preset{Layout: LayoutPreset{States: []string{"md"}}}},
		{name: "shadow without color", override: Preset{Effects: EffectsPreset{Shadow: map[string][]ShadowLayer{"x": {{Y: 1}}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := tt.override
			_, err := New(DefaultPreset(), &o)
			require.Error(t, err)
			assert.ErrorContains(t, err, "invalid theme preset")
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("toml with nested colors", func(t *testing.T) {
		data := []byte(`
name = "brand"
version = "1.2.0"

[spacing]
unit = 5

[spacing.steps]
gutter = 18

[colors]
accent = "#FF0000"

[colors.brand]
DEFAULT = "#123456"
500 = "#1da1f2"

[typography.font_family]
display = "Playfair Display"

[layout]
states = ["selected"]
`)
		p, err := Decode(data, ".toml")
		require.NoError(t, err)
		assert.Equal(t, "brand", p.Name)
		assert.Equal(t, 5.0, p.Spacing.Unit)
		assert.Equal(t, 18.0, p.Spacing.Steps["gutter"])
		assert.Equal(t, "#1da1f2", p.Colors["brand-500"])
		assert.Equal(t, "#123456", p.Colors["brand"])
		assert.Equal(t, "#FF0000", p.Colors["accent"])
		assert.Equal(t, []string{"selected"}, p.Layout.States)

		th, err := New(DefaultPreset(), p)
		require.NoError(t, err)
		fam, ok := th.FontFamily("display")
		require.True(t, ok)
		assert.Equal(t, "Playfair Display", fam)
	})

	t.Run("yaml", func(t *testing.T) {
		data := []byte(`
colors:
  brand:
    500: "#1da1f2"
layout:
  breakpoints:
    tablet: 900
animation:
  wiggle:
    duration: 300
    easing: ease-in-out
    iterations: 2
`)
		p, err := Decode(data, ".yaml")
		require.NoError(t, err)
		assert.Equal(t, "#1da1f2", p.Colors["brand-500"])
		assert.Equal(t, 900.0, p.Layout.Breakpoints["tablet"])
		assert.Equal(t, AnimationPreset{Duration: 300, Easing: "ease-in-out", Iterations: 2}, p.Animation["wiggle"])
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := Decode([]byte("{}"), ".json")
		require.Error(t, err)
		assert.ErrorContains(t, err, "unsupported theme file format")
	})

	t.Run("color must be string", func(t *testing.T) {
		_, err := Decode([]byte("[colors]\nbrand = 5\n"), ".toml")
		require.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte("[spacing]\nunit = 2\n"), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.Spacing.Unit)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Default().Preset()))

	p, err := Decode(buf.Bytes(), ".toml")
	require.NoError(t, err)
	th, err := New(*p, nil)
	require.NoError(t, err)

	v, ok := th.Color("rose-950")
	require.True(t, ok)
	assert.Equal(t, "#4c0519", v)
	r, ok := th.Radius("")
	require.True(t, ok)
	assert.Equal(t, 4.0, r)
}

func TestNormalizeHex(t *testing.T) {
	assert.Equal(t, "#ffffff", NormalizeHex("#FFF"))
	assert.Equal(t, "#112233", NormalizeHex("#112233ff"))
	assert.Equal(t, "#1122334d", NormalizeHex("#1122334D"))
	assert.Equal(t, "#aabbccdd", NormalizeHex("#abcd"))
	assert.Equal(t, "transparent", NormalizeHex(" Transparent "))
}

func TestConcurrentReads(t *testing.T) {
	th := Default()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_, _ = th.Color("blue-500")
				_, _ = th.RadiusName(8)
				_ = th.Breakpoints()
			}
		}()
	}
	wg.Wait()
}
