package tw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/twconv/theme"
)

func TestRegistryLongestPrefix(t *testing.T) {
	r := DefaultRegistry()
	th := theme.Default()

	tests := []struct {
		base    string
		want    Property
		targets []Property
	}{
		{base: "p-4", want: PropPadding, targets: paddingEdges},
		{base: "px-4", want: PropPaddingX, targets: []Property{PropPaddingRight, PropPaddingLeft}},
		{base: "border-t-2", want: PropStrokeTop, targets: []Property{PropStrokeTop}},
		{base: "rounded-tl-lg", want: PropRadiusTopLeft, targets: []Property{PropRadiusTopLeft}},
		{base: "top-4", want: PropTop, targets: []Property{PropTop}},
		{base: "to-blue-500", want: PropGradientTo, targets: []Property{PropGradientTo}},
		{base: "translate-x-4", want: PropTranslateX, targets: []Property{PropTranslateX}},
		{base: "bg-linear-to-r", want: PropGradient, targets: []Property{PropGradient}},
	}
	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			s, ok := r.Resolve(tt.base, th)
			require.True(t, ok)
			assert.Equal(t, tt.want, s.Property)
			assert.Equal(t, tt.targets, s.Targets)
			assert.Equal(t, tt.base, s.Raw)
		})
	}

	prefixes := r.Prefixes()
	for i := 1; i < len(prefixes); i++ {
		assert.GreaterOrEqual(t, len(prefixes[i-1]), len(prefixes[i]))
	}
}

func TestRegistryRejects(t *testing.T) {
	r := DefaultRegistry()
	for _, base := range []string{"nonsense-4", "-p-4", "p-", "p", "-", "text-", "bg-nope-500", "rounded-[abc]x"} {
		t.Run(base, func(t *testing.T) {
			_, ok := r.Resolve(base, theme.Default())
			assert.False(t, ok)
		})
	}
}

func TestRegistryCloneIsIndependent(t *testing.T) {
	r := DefaultRegistry().Clone()
	r.Register("elevation", func(u Utility, th *theme.Theme) (ParsedStyle, bool) {
		layers, ok := th.Shadow(u.Value)
		if !ok {
			return ParsedStyle{}, false
		}
		shadows, ok := themeShadows(layers)
		return single(PropShadow, Value{Kind: KindShadow, Shadows: shadows}, VariantPreset), ok
	})

	a := Compile("elevation-md p-2", Options{Registry: r})
	assert.Empty(t, a.Literals)
	assert.NotEmpty(t, a.Unconditional.Effects.Shadows)

	b := compile("elevation-md")
	assert.Equal(t, []string{"elevation-md"}, b.Literals)
}
