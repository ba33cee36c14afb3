package css

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/twconv/tw"
)

func parse(t *testing.T, token string) tw.ParsedStyle {
	t.Helper()
	s, err := tw.ParseToken(token, tw.Options{})
	require.NoError(t, err, token)
	return s
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"p-4", "p-4"},
		{"w-[320px]", `w-\[320px\]`},
		{"md:hover:p-4", `md\:hover\:p-4`},
		{"w-1/2", `w-1\/2`},
		{"w-2.5", `w-2\.5`},
		{"bg-[#ff0000]", `bg-\[\#ff0000\]`},
		{"w-[50%]", `w-\[50\%\]`},
		{"gap-(--gutter)", `gap-\(--gutter\)`},
		{"!p-4", `\!p-4`},
		{"[data-state=open]:p-2", `\[data-state\=open\]\:p-2`},
		{"w-[calc(100%+2*1px)]", `w-\[calc\(100\%\+2\*1px\)\]`},
		{"a?b^c$d|e", `a\?b\^c\$d\|e`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.in))
		})
	}
}

func TestDeclarations(t *testing.T) {
	tests := []struct {
		token string
		want  []Declaration
	}{
		{"p-[13px]", []Declaration{
			{"padding-top", "13px"}, {"padding-right", "13px"}, {"padding-bottom", "13px"}, {"padding-left", "13px"},
		}},
		{"w-[320]", []Declaration{{"width", "320px"}}},
		{"bg-[#1da1f2]", []Declaration{{"background-color", "#1da1f2"}}},
		{"bg-red-500/50", []Declaration{{"background-color", "rgba(239,68,68,0.5)"}}},
		{"gap-(--gutter)", []Declaration{{"column-gap", "var(--gutter)"}, {"row-gap", "var(--gutter)"}}},
		{"grid-cols-3", []Declaration{{"grid-template-columns", "repeat(3, minmax(0, 1fr))"}}},
		{"col-span-full", []Declaration{{"grid-column", "1 / -1"}}},
		{"rotate-[30deg]", []Declaration{{"rotate", "30deg"}}},
		{"duration-[250ms]", []Declaration{{"transition-duration", "250ms"}}},
		{"uppercase", []Declaration{{"text-transform", "uppercase"}}},
		{"line-through", []Declaration{{"text-decoration-line", "line-through"}}},
		{"!opacity-[0.3]", []Declaration{{"opacity", "0.3 !important"}}},
		{"blur-[2px]", []Declaration{{"filter", "blur(2px)"}}},
		{"shadow-[0_2px_4px_#000]", []Declaration{{"box-shadow", "0px 2px 4px 0px #000000"}}},
		{"translate-x-[10px]", []Declaration{
			{"--tw-translate-x", "10px"}, {"translate", "var(--tw-translate-x) var(--tw-translate-y, 0)"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, Declarations(parse(t, tt.token)))
		})
	}
}

func TestRule(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{
			token: "w-[320px]",
			want:  `.w-\[320px\] { width: 320px; }`,
		},
		{
			token: "hover:bg-[#ff0000]",
			want:  `.hover\:bg-\[\#ff0000\]:hover { background-color: #ff0000; }`,
		},
		{
			token: "md:w-[50%]",
			want:  "@media (min-width: 768px) {\n  .md\\:w-\\[50\\%\\] { width: 50%; }\n}",
		},
		{
			token: "max-md:w-[50%]",
			want:  "@media not all and (min-width: 768px) {\n  .max-md\\:w-\\[50\\%\\] { width: 50%; }\n}",
		},
		{
			token: "[data-state=open]:opacity-[0.5]",
			want:  `.\[data-state\=open\]\:opacity-\[0\.5\][data-state="open"] { opacity: 0.5; }`,
		},
		{
			token: "group-hover:w-[10px]",
			want:  `.group:hover .group-hover\:w-\[10px\] { width: 10px; }`,
		},
		{
			token: "dark:md:w-[1px]",
			want:  "@media (min-width: 768px) {\n  @media (prefers-color-scheme: dark) {\n    .dark\\:md\\:w-\\[1px\\] { width: 1px; }\n  }\n}",
		},
		{
			token: "before:w-[1px]",
			want:  `.before\:w-\[1px\]::before { width: 1px; }`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := Rule(parse(t, tt.token))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerate(t *testing.T) {
	styles, _ := tw.Parse("p-4 w-[320px] w-[320px] hover:w-[320px] bg-(--brand) flex", tw.Options{})
	rules := Generate(styles)
	require.Len(t, rules, 3)
	assert.Contains(t, rules[0], `.w-\[320px\]`)
	assert.Contains(t, rules[1], `.hover\:w-\[320px\]:hover`)
	assert.Contains(t, rules[2], "background-color: var(--brand)")

	all := GenerateAll(styles)
	assert.Len(t, all, 5)
	assert.Equal(t, ".flex { display: flex; }", all[4])
}

func TestInjected(t *testing.T) {
	in := NewInjected()
	assert.True(t, in.Add(".a { width: 1px; }"))
	assert.False(t, in.Add(".a { width: 1px; }"))
	assert.True(t, in.Add(".b { width: 2px; }"))
	assert.True(t, in.Has(".a { width: 1px; }"))
	assert.False(t, in.Has(".c { width: 3px; }"))
	assert.Equal(t, 2, in.Len())
	assert.Equal(t, ".a { width: 1px; }\n.b { width: 2px; }", in.CSS())

	fresh := in.Filter([]string{".b { width: 2px; }", ".c { width: 3px; }"})
	assert.Equal(t, []string{".c { width: 3px; }"}, fresh)
	assert.Equal(t, 3, in.Len())
}

func TestInjectedConcurrentAdds(t *testing.T) {
	in := NewInjected()
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		added int
	)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if in.Add(fmt.Sprintf(".r%d {}", i)) {
					mu.Lock()
					added++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, added)
	assert.Equal(t, 100, in.Len())
}
