package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/twconv"
	"github.com/agiangrant/twconv/css"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newScanner(t *testing.T, root string) *Scanner {
	t.Helper()
	c, err := twconv.New()
	require.NoError(t, err)
	s, err := New(c, DefaultOptions(root), nil)
	require.NoError(t, err)
	return s
}

func TestExtract(t *testing.T) {
	s := newScanner(t, t.TempDir())
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"html", `<div class="flex p-4">x</div>`, []string{"flex", "p-4"}},
		{"jsx braces", "<div className={`w-[320px]  gap-2`} />", []string{"w-[320px]", "gap-2"}},
		{"single quotes", `<span class='hover:bg-[#f00]'>`, []string{"hover:bg-[#f00]"}},
		{"go template", `<p class="text-sm {{.Extra}}">`, []string{"text-sm", "{{.Extra}}"}},
		{"data-class is not class", `<div data-class="p-2" aria-class="m-1">`, nil},
		{"multiple", `<a class="a"></a><b class="b c"></b>`, []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Extract([]byte(tt.src)))
		})
	}
}

func TestNewRejectsBadPatterns(t *testing.T) {
	c, err := twconv.New()
	require.NoError(t, err)
	_, err = New(c, Options{Include: []string{"[unclosed"}}, nil)
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.html", `<div class="p-4 w-[320px]"></div>`)
	writeFile(t, root, "src/App.tsx", `export const A = () => <b className="w-[320px] h-[10px] flex" />`)
	writeFile(t, root, "node_modules/lib/x.html", `<i class="m-[99px]"></i>`)
	writeFile(t, root, "README.md", `class="m-[1px]"`)

	s := newScanner(t, root)
	files, err := s.Discover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "index.html"), filepath.Join(root, "src", "App.tsx")}, files)

	injected := css.NewInjected()
	res, err := s.Scan(context.Background(), injected)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Files)
	assert.Equal(t, []string{"flex", "h-[10px]", "p-4", "w-[320px]"}, res.Classes)
	assert.Equal(t, []string{
		`.h-\[10px\] { height: 10px; }`,
		`.w-\[320px\] { width: 320px; }`,
	}, res.Rules)

	// A second scan finds nothing new.
	again, err := s.Scan(context.Background(), injected)
	require.NoError(t, err)
	assert.Empty(t, again.Rules)
}

func TestScanFilesSkipsVanished(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.html", `<div class="w-[320px]"></div>`)
	gone := filepath.Join(root, "gone.html")

	res, err := newScanner(t, root).ScanFiles(context.Background(),
		[]string{filepath.Join(root, "a.html"), gone}, css.NewInjected())
	require.NoError(t, err)
	assert.Equal(t, []string{"w-[320px]"}, res.Classes)
	assert.Equal(t, []string{`.w-\[320px\] { width: 320px; }`}, res.Rules)
}

func TestScanCancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.html", `<div class="p-4"></div>`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newScanner(t, root).Scan(ctx, nil)
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.html", `<div class="p-4"></div>`)
	s := newScanner(t, root)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	results := make(chan Result, 4)
	done := make(chan error, 1)
	go func() {
		done <- s.Watch(ctx, css.NewInjected(), 20*time.Millisecond, func(r Result) { results <- r })
	}()

	// Give the watcher time to register directories.
	time.Sleep(100 * time.Millisecond)
	writeFile(t, root, "a.html", `<div class="p-4 w-[42px]"></div>`)

	select {
	case r := <-results:
		assert.Equal(t, []string{`.w-\[42px\] { width: 42px; }`}, r.Rules)
	case <-time.After(5 * time.Second):
		t.Fatal("no rescan after write")
	}

	cancel()
	require.NoError(t, <-done)
}
