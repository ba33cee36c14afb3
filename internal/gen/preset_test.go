package gen

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/twconv/theme"
)

func TestPresetSource(t *testing.T) {
	tests := []struct {
		name     string
		preset   theme.Preset
		opts     Options
		contains []string
		absent   []string
	}{
		{
			name:   "default preset",
			preset: theme.DefaultPreset(),
			contains: []string{
				"package theme",
				"func Preset() theme.Preset {",
				`"blue-500":`,
				`"#3b82f6"`,
				`"md":`,
				"map[string][]theme.ShadowLayer{",
			},
		},
		{
			name: "sparse override",
			preset: theme.Preset{
				Name:   "brand",
				Colors: map[string]string{"brand-500": "#1da1f2"},
				Layout: theme.LayoutPreset{States: []string{"selected"}},
			},
			opts:     Options{Package: "design", Func: "Brand"},
			contains: []string{"package design", "func Brand() theme.Preset {", `States: []string{"selected"}`},
			absent:   []string{"Steps:", "Shadow:", "Animation:"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := PresetSource(tt.preset, tt.opts)
			require.NoError(t, err)

			_, err = parser.ParseFile(token.NewFileSet(), "preset.go", src, parser.AllErrors)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, string(src), s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, string(src), s)
			}
		})
	}
}

func TestPresetSourceIsDeterministic(t *testing.T) {
	a, err := PresetSource(theme.DefaultPreset(), Options{})
	require.NoError(t, err)
	b, err := PresetSource(theme.DefaultPreset(), Options{})
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}
