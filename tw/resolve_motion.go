package tw

import (
	"strings"

	"github.com/agiangrant/twconv/theme"
)

// transitionProperties maps transition-* suffixes ("" for the bare token)
// to CSS transition-property lists.
var transitionProperties = map[string]string{
	"":          "color, background-color, border-color, text-decoration-color, fill, stroke, opacity, box-shadow, transform, filter, backdrop-filter",
	"all":       "all",
	"colors":    "color, background-color, border-color, text-decoration-color, fill, stroke",
	"opacity":   "opacity",
	"shadow":    "box-shadow",
	"transform": "transform",
	"none":      "none",
}

var easings = map[string]string{
	"linear": "linear",
	"in":     "cubic-bezier(0.4, 0, 1, 1)",
	"out":    "cubic-bezier(0, 0, 0.2, 1)",
	"in-out": "cubic-bezier(0.4, 0, 0.2, 1)",
}

func registerMotion(r *Registry) {
	r.Register("transition", func(u Utility, _ *theme.Theme) (ParsedStyle, bool) {
		if v, ok := transitionProperties[u.Value]; ok {
			return single(PropTransitionProperty, keyword(v), VariantPreset), true
		}
		if content, _, ok := arbitrary(u.Value); ok {
			return single(PropTransitionProperty, keyword(content), VariantArbitrary), true
		}
		return ParsedStyle{}, false
	})
	r.Register("duration", durationResolver(PropTransitionDuration))
	r.Register("delay", durationResolver(PropTransitionDelay))
	r.Register("ease", func(u Utility, _ *theme.Theme) (ParsedStyle, bool) {
		if v, ok := easings[u.Value]; ok {
			return single(PropTransitionTiming, keyword(v), VariantPreset), true
		}
		if content, _, ok := arbitrary(u.Value); ok {
			return single(PropTransitionTiming, keyword(content), VariantArbitrary), true
		}
		return ParsedStyle{}, false
	})
	r.Register("animate", resolveAnimate)
}

func durationResolver(prop Property) ResolverFunc {
	return func(u Utility, _ *theme.Theme) (ParsedStyle, bool) {
		if n, ok := parseInteger(u.Value); ok && n >= 0 {
			return single(prop, number(float64(n), "ms"), VariantPreset), true
		}
		if ref, _, ok := customProperty(u.Value); ok {
			return single(prop, keyword(ref), VariantCustomProperty), true
		}
		if content, _, ok := arbitrary(u.Value); ok {
			if ms, ok := parseDuration(content); ok && ms >= 0 {
				return single(prop, number(ms, "ms"), VariantArbitrary), true
			}
		}
		return ParsedStyle{}, false
	}
}

// resolveAnimate handles theme animations, animate-none and the
// name_duration_easing_iterations arbitrary form.
func resolveAnimate(u Utility, th *theme.Theme) (ParsedStyle, bool) {
	if u.Value == "none" {
		return single(PropAnimation, Value{Kind: KindAnimation, Animation: &Animation{Name: "none"}}, VariantPreset), true
	}
	if a, ok := th.Animation(u.Value); ok {
		anim := &Animation{Name: u.Value, Duration: a.Duration, Easing: normalizeEasing(a.Easing), Iterations: a.Iterations}
		return single(PropAnimation, Value{Kind: KindAnimation, Animation: anim}, VariantPreset), true
	}
	if ref, _, ok := customProperty(u.Value); ok {
		return single(PropAnimation, keyword(ref), VariantCustomProperty), true
	}
	if len(u.Value) > 2 && u.Value[0] == '[' && u.Value[len(u.Value)-1] == ']' {
		anim, ok := parseAnimationArbitrary(u.Value[1:len(u.Value)-1], th)
		if !ok {
			return ParsedStyle{}, false
		}
		return single(PropAnimation, Value{Kind: KindAnimation, Animation: anim}, VariantArbitrary), true
	}
	return ParsedStyle{}, false
}

// parseAnimationArbitrary parses the underscore-separated form
// name_duration_easing_iterations. Later fields are optional and
// recognized by shape; a double underscore skips one.
//
//	pulse_500ms         -> pulse at 500ms
//	bounce_1s_ease-out  -> bounce at 1s with ease-out
//	spin_2s_linear_3    -> spin three times at 2s, linear
//	pulse_1s__infinite  -> pulse forever at 1s
//
// Fields left out fall back to the theme animation of the same name.
func parseAnimationArbitrary(value string, th *theme.Theme) (*Animation, bool) {
	parts := strings.Split(value, "_")
	if parts[0] == "" {
		return nil, false
	}
	anim := &Animation{Name: parts[0]}
	if base, ok := th.Animation(anim.Name); ok {
		anim.Duration, anim.Easing, anim.Iterations = base.Duration, normalizeEasing(base.Easing), base.Iterations
	}

	for _, part := range parts[1:] {
		switch {
		case part == "":
			continue
		case part == "infinite":
			anim.Iterations = 0
		case isDurationToken(part):
			anim.Duration, _ = parseDuration(part)
		case isEasing(part):
			anim.Easing = normalizeEasing(part)
		default:
			n, ok := parseInteger(part)
			if !ok || n < 1 {
				return nil, false
			}
			anim.Iterations = n
		}
	}
	return anim, true
}

func isDurationToken(s string) bool {
	if !strings.HasSuffix(s, "s") {
		return false
	}
	_, ok := parseDuration(s)
	return ok
}

func isEasing(s string) bool {
	switch s {
	case "linear", "ease", "ease-in", "ease-out", "ease-in-out", "step-start", "step-end":
		return true
	}
	return strings.HasPrefix(s, "cubic-bezier(") || strings.HasPrefix(s, "steps(")
}

// normalizeEasing spaces function arguments the way theme presets spell
// them: "cubic-bezier(0,0,0.2,1)" → "cubic-bezier(0, 0, 0.2, 1)".
func normalizeEasing(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, ",", ", ")
}
