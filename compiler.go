// Package twconv compiles utility class strings into structured style
// records and serializes them back.
//
// A Compiler owns a theme, a resolver registry and a bounded parse cache:
//
//	c, err := twconv.New(twconv.WithThemeFile("theme.toml"))
//	a := c.Compile("flex gap-4 md:p-8 hover:bg-blue-600")
//	classes := c.SerializeAssembled(&a)
package twconv

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/zerr"

	"github.com/agiangrant/twconv/css"
	"github.com/agiangrant/twconv/internal/logging"
	"github.com/agiangrant/twconv/node"
	"github.com/agiangrant/twconv/theme"
	"github.com/agiangrant/twconv/tw"
)

// DefaultCacheSize is the number of distinct class strings kept parsed.
const DefaultCacheSize = 1024

// ErrInvalidOption is returned by New for bad option values.
var ErrInvalidOption = zerr.New("invalid compiler option")

type config struct {
	theme     *theme.Theme
	themeFile string
	registry  *tw.Registry
	strict    bool
	cacheSize int
	log       *logging.Logger
}

// Option configures a Compiler.
type Option func(*config) error

// WithTheme uses th instead of the built-in theme.
func WithTheme(th *theme.Theme) Option {
	return func(c *config) error {
		if th == nil {
			return zerr.With(ErrInvalidOption, "option", "theme")
		}
		c.theme = th
		return nil
	}
}

// WithThemeFile merges a TOML or YAML override file over the built-in
// preset.
func WithThemeFile(path string) Option {
	return func(c *config) error {
		c.themeFile = path
		return nil
	}
}

// WithRegistry replaces the resolver registry, for hosts that register
// their own utilities on a clone of tw.DefaultRegistry().
func WithRegistry(r *tw.Registry) Option {
	return func(c *config) error {
		if r == nil {
			return zerr.With(ErrInvalidOption, "option", "registry")
		}
		c.registry = r
		return nil
	}
}

// WithStrict rejects tokens with unknown modifiers instead of treating
// them as literals.
func WithStrict(strict bool) Option {
	return func(c *config) error {
		c.strict = strict
		return nil
	}
}

// WithCacheSize bounds the parse cache. Zero disables caching.
func WithCacheSize(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return zerr.With(ErrInvalidOption, "cache_size", n)
		}
		c.cacheSize = n
		return nil
	}
}

// WithLogger sets the session logger. The default logs nothing.
func WithLogger(l *logging.Logger) Option {
	return func(c *config) error {
		c.log = l
		return nil
	}
}

// Compiler is a parse/serialize session. It is safe for concurrent use.
type Compiler struct {
	theme *theme.Theme
	opts  tw.Options
	cache *lru.Cache[string, *tw.Assembled]
	log   *logging.Logger
}

// New builds a Compiler.
func New(opts ...Option) (*Compiler, error) {
	cfg := config{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	th := cfg.theme
	if cfg.themeFile != "" {
		override, err := theme.Load(cfg.themeFile)
		if err != nil {
			return nil, err
		}
		base := theme.DefaultPreset()
		if cfg.theme != nil {
			base = cfg.theme.Preset()
		}
		th, err = theme.New(base, override)
		if err != nil {
			return nil, zerr.With(err, "path", cfg.themeFile)
		}
	}
	if th == nil {
		th = theme.Default()
	}

	c := &Compiler{
		theme: th,
		opts:  tw.Options{Theme: th, Registry: cfg.registry, Strict: cfg.strict},
		log:   cfg.log.WithFields(map[string]any{"theme": th.Name(), "strict": cfg.strict}),
	}
	if cfg.cacheSize > 0 {
		cache, err := lru.New[string, *tw.Assembled](cfg.cacheSize)
		if err != nil {
			return nil, zerr.Wrap(err, ErrInvalidOption.Error())
		}
		c.cache = cache
	}
	c.log.Debug("compiler ready")
	return c, nil
}

// Theme returns the session theme.
func (c *Compiler) Theme() *theme.Theme { return c.theme }

// Options returns the parse options the session uses.
func (c *Compiler) Options() tw.Options { return c.opts }

// ParseToken resolves a single class token.
func (c *Compiler) ParseToken(token string) (tw.ParsedStyle, error) {
	return tw.ParseToken(token, c.opts)
}

// Parse resolves a class string token by token.
func (c *Compiler) Parse(classes string) ([]tw.ParsedStyle, []string) {
	return tw.Parse(classes, c.opts)
}

// Compile parses and assembles classes. Results are cached by class
// string; the returned value is a private copy.
func (c *Compiler) Compile(classes string) tw.Assembled {
	key := normalize(classes)
	if c.cache != nil {
		if a, ok := c.cache.Get(key); ok {
			return a.Clone()
		}
	}
	a := tw.Compile(key, c.opts)
	if len(a.Literals) > 0 {
		c.log.With("literals", a.Literals).Debug("unresolved tokens kept as literals")
	}
	if c.cache != nil {
		c.cache.Add(key, &a)
		return a.Clone()
	}
	return a
}

// normalize collapses whitespace so equivalent class strings share a
// cache entry.
func normalize(classes string) string {
	return strings.Join(strings.Fields(classes), " ")
}

// Serialize converts one bag to canonical class tokens.
func (c *Compiler) Serialize(b *tw.Bag) []string {
	return tw.Serialize(b, c.theme)
}

// SerializeAssembled converts an assembled record back to a class string.
func (c *Compiler) SerializeAssembled(a *tw.Assembled) string {
	return tw.SerializeAssembled(a, c.theme)
}

// SerializeNode converts a design-tool node snapshot to a class string.
func (c *Compiler) SerializeNode(n *node.Node) string {
	b := n.Bag()
	return strings.Join(tw.Serialize(&b, c.theme), " ")
}

// Node compiles classes and converts the unconditional bag to a node
// snapshot.
func (c *Compiler) Node(classes string) *node.Node {
	a := c.Compile(classes)
	return node.FromBag(a.Unconditional)
}

// Resolve compiles classes and folds the bags that match ctx.
func (c *Compiler) Resolve(classes string, ctx tw.Context) tw.Bag {
	a := c.Compile(classes)
	return a.ResolveFor(ctx)
}

// CSS returns the rules for classes that need runtime styles and are not
// yet in injected. Pass a nil set to get every rule.
func (c *Compiler) CSS(classes string, injected *css.Injected) []string {
	styles, _ := c.Parse(classes)
	rules := css.Generate(styles)
	if injected == nil {
		return rules
	}
	return injected.Filter(rules)
}

// CacheLen returns the number of cached class strings.
func (c *Compiler) CacheLen() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

// ClearCache drops every cached parse, for example after a theme reload.
func (c *Compiler) ClearCache() {
	if c.cache != nil {
		c.cache.Purge()
	}
}
