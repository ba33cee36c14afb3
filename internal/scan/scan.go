// Package scan finds class attributes in source files and compiles them
// into the stylesheet rules the arbitrary-valued classes need.
package scan

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/agiangrant/twconv"
	"github.com/agiangrant/twconv/css"
	"github.com/agiangrant/twconv/internal/logging"
)

// ErrInvalidPattern is returned for malformed include/exclude globs.
var ErrInvalidPattern = zerr.New("invalid glob pattern")

// Options controls discovery and extraction.
type Options struct {
	Root    string
	Include []string
	Exclude []string
	// Attributes are the markup attributes holding class strings.
	Attributes []string
	// Concurrency bounds file reads; 0 means GOMAXPROCS.
	Concurrency int
}

// DefaultOptions scans common template and component sources.
func DefaultOptions(root string) Options {
	return Options{
		Root:       root,
		Include:    []string{"**/*.{html,htm,jsx,tsx,vue,svelte,templ,go,gohtml,tmpl}"},
		Exclude:    []string{"**/node_modules/**", "**/.git/**", "**/vendor/**", "**/dist/**"},
		Attributes: []string{"class", "className"},
	}
}

// Result is the outcome of one scan.
type Result struct {
	Files int
	// Classes are the distinct tokens found, sorted.
	Classes []string
	// Rules are the stylesheet rules for tokens that need runtime CSS,
	// minus any already in the injected set.
	Rules []string
}

// Scanner walks a tree and compiles the classes it finds.
type Scanner struct {
	compiler *twconv.Compiler
	opts     Options
	attrRe   *regexp.Regexp
	log      *logging.Logger
}

// New validates opts and returns a Scanner.
func New(c *twconv.Compiler, opts Options, log *logging.Logger) (*Scanner, error) {
	for _, p := range append(append([]string(nil), opts.Include...), opts.Exclude...) {
		if !doublestar.ValidatePattern(p) {
			return nil, zerr.With(ErrInvalidPattern, "pattern", p)
		}
	}
	if len(opts.Attributes) == 0 {
		opts.Attributes = DefaultOptions("").Attributes
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = runtime.GOMAXPROCS(0)
	}
	if opts.Root == "" {
		opts.Root = "."
	}
	return &Scanner{
		compiler: c,
		opts:     opts,
		attrRe:   attributePattern(opts.Attributes),
		log:      log.With("root", opts.Root),
	}, nil
}

// attributePattern matches class="..", className='..' and
// className={`..`} for each attribute name.
func attributePattern(attrs []string) *regexp.Regexp {
	names := make([]string, len(attrs))
	for i, a := range attrs {
		names[i] = regexp.QuoteMeta(a)
	}
	return regexp.MustCompile(`(?:^|[^\w-])(?:` + strings.Join(names, "|") + `)\s*=\s*\{?\s*(?:"([^"]*)"|'([^']*)'|` + "`([^`]*)`" + `)`)
}

// Extract returns every class token found in src, in order of appearance.
func (s *Scanner) Extract(src []byte) []string {
	var tokens []string
	for _, m := range s.attrRe.FindAllSubmatch(src, -1) {
		for _, g := range m[1:] {
			if len(g) > 0 {
				tokens = append(tokens, strings.Fields(string(g))...)
			}
		}
	}
	return tokens
}

// Match reports whether a root-relative path is included and not excluded.
func (s *Scanner) Match(rel string) bool {
	rel = filepath.ToSlash(rel)
	if s.excluded(rel) {
		return false
	}
	if len(s.opts.Include) == 0 {
		return true
	}
	for _, p := range s.opts.Include {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

// Discover lists the files to scan, sorted.
func (s *Scanner) Discover(ctx context.Context) ([]string, error) {
	var files []string
	err := filepath.WalkDir(s.opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.log.Warn("walk error: " + err.Error())
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		rel, err := filepath.Rel(s.opts.Root, path)
		if err != nil || rel == "." {
			return nil
		}
		if d.IsDir() {
			if s.excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if s.Match(rel) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to walk"), "root", s.opts.Root)
	}
	sort.Strings(files)
	return files, nil
}

func (s *Scanner) excluded(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, p := range s.opts.Exclude {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(p, rel+"/"); ok {
			return true
		}
	}
	return false
}

// Scan reads every discovered file concurrently, collects the class tokens
// and generates rules for those not yet in injected. A nil injected set
// returns every rule.
func (s *Scanner) Scan(ctx context.Context, injected *css.Injected) (Result, error) {
	files, err := s.Discover(ctx)
	if err != nil {
		return Result{}, err
	}
	classes, err := s.collect(ctx, files)
	if err != nil {
		return Result{}, err
	}

	rules := s.compiler.CSS(strings.Join(classes, " "), injected)
	s.log.WithFields(map[string]any{"files": len(files), "classes": len(classes), "rules": len(rules)}).Info("scan complete")
	return Result{Files: len(files), Classes: classes, Rules: rules}, nil
}

// ScanFiles is Scan restricted to the given paths, for incremental
// rescans from a watcher.
func (s *Scanner) ScanFiles(ctx context.Context, files []string, injected *css.Injected) (Result, error) {
	classes, err := s.collect(ctx, files)
	if err != nil {
		return Result{}, err
	}
	return Result{Files: len(files), Classes: classes, Rules: s.compiler.CSS(strings.Join(classes, " "), injected)}, nil
}

func (s *Scanner) collect(ctx context.Context, files []string) ([]string, error) {
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{})
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)
	for _, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				// Removed between discovery and read.
				s.log.Debug("skipping vanished file " + path)
				return nil
			}
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to read source"), "path", path)
			}
			tokens := s.Extract(data)
			mu.Lock()
			for _, t := range tokens {
				seen[t] = struct{}{}
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	classes := make([]string, 0, len(seen))
	for t := range seen {
		classes = append(classes, t)
	}
	sort.Strings(classes)
	return classes, nil
}
