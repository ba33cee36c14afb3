package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/twconv/cmd/twconv/commands"
	"github.com/agiangrant/twconv/tw"
)

// run executes the CLI against an isolated config and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), commands.ConfigFile)
	return runWithConfig(t, cfg, stdin, args...)
}

func runWithConfig(t *testing.T, cfg, stdin string, args ...string) (string, error) {
	t.Helper()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cli := commands.New()
	cli.SetArgs(append([]string{"--config", cfg}, args...))
	cli.SetOutput(out, errOut)
	cli.SetInput(strings.NewReader(stdin))
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_Parse(t *testing.T) {
	t.Run("prints assembled record", func(t *testing.T) {
		out, err := run(t, "", "parse", "p-4 md:p-8")
		require.NoError(t, err)

		var a tw.Assembled
		require.NoError(t, json.Unmarshal([]byte(out), &a))
		require.NotNil(t, a.Unconditional.Spacing.PaddingTop)
		assert.Equal(t, 16.0, *a.Unconditional.Spacing.PaddingTop)
		assert.Equal(t, []string{"md"}, a.Keys)
	})

	t.Run("resolves for a context", func(t *testing.T) {
		out, err := run(t, "", "parse", "--width", "800", "p-4 md:p-8 hover:p-10")
		require.NoError(t, err)

		var b tw.Bag
		require.NoError(t, json.Unmarshal([]byte(out), &b))
		assert.Equal(t, 32.0, *b.Spacing.PaddingLeft)
	})

	t.Run("resolves states and attributes", func(t *testing.T) {
		out, err := run(t, "", "parse", "--state", "hover", "--attr", "data-state=open",
			"p-4 hover:p-10 [data-state=open]:opacity-50")
		require.NoError(t, err)

		var b tw.Bag
		require.NoError(t, json.Unmarshal([]byte(out), &b))
		assert.Equal(t, 40.0, *b.Spacing.PaddingLeft)
		require.NotNil(t, b.Effects.Opacity)
		assert.Equal(t, 0.5, *b.Effects.Opacity)
	})

	t.Run("reads stdin", func(t *testing.T) {
		out, err := run(t, "rounded-lg\n", "parse", "--tokens")
		require.NoError(t, err)
		assert.Contains(t, out, `"raw": "rounded-lg"`)
	})

	t.Run("no input", func(t *testing.T) {
		_, err := run(t, "  ", "parse")
		assert.ErrorIs(t, err, commands.ErrNoInput)
	})
}

func TestCommands_Serialize(t *testing.T) {
	t.Run("assembled round trip", func(t *testing.T) {
		parsed, err := run(t, "", "parse", "flex p-4 md:p-8 hover:bg-blue-500")
		require.NoError(t, err)

		out, err := run(t, parsed, "serialize")
		require.NoError(t, err)
		assert.Equal(t, "flex p-4 md:p-8 hover:bg-blue-500\n", out)
	})

	t.Run("node from file", func(t *testing.T) {
		nodeJSON, err := run(t, "", "parse", "--node", "flex flex-col gap-2 p-4 rounded-lg bg-white")
		require.NoError(t, err)
		path := filepath.Join(t.TempDir(), "card.json")
		require.NoError(t, os.WriteFile(path, []byte(nodeJSON), 0o644))

		out, err := run(t, "", "serialize", "--from", "node", path)
		require.NoError(t, err)
		assert.Equal(t, "flex flex-col p-4 gap-2 rounded-lg bg-white\n", out)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, "{}", "serialize", "--from", "xml")
		assert.ErrorIs(t, err, commands.ErrUnknownFormat)
	})

	t.Run("bad json", func(t *testing.T) {
		_, err := run(t, "{", "serialize")
		assert.Error(t, err)
	})
}

func TestCommands_CSS(t *testing.T) {
	out, err := run(t, "", "css", "p-4 w-[320px]")
	require.NoError(t, err)
	assert.Equal(t, ".w-\\[320px\\] { width: 320px; }\n", out)

	out, err = run(t, "", "css", "--all", "flex")
	require.NoError(t, err)
	assert.Equal(t, ".flex { display: flex; }\n", out)
}

func TestCommands_Scan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"),
		[]byte(`<div class="p-4 w-[320px]"><b class="h-[10px]"></b></div>`), 0o644))
	cfg := filepath.Join(dir, commands.ConfigFile)
	config := commands.DefaultConfig()
	config.Output.File = "out.css"
	require.NoError(t, commands.SaveConfig(cfg, config))

	_, err := runWithConfig(t, cfg, "", "scan")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "out.css"))
	require.NoError(t, err)
	assert.Equal(t, ".h-\\[10px\\] { height: 10px; }\n.w-\\[320px\\] { width: 320px; }\n", string(data))

	out, err := runWithConfig(t, cfg, "", "scan", "--classes")
	require.NoError(t, err)
	assert.Equal(t, "h-[10px]\np-4\nw-[320px]\n", out)
}

func TestCommands_Init(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, commands.ConfigFile)

	out, err := runWithConfig(t, cfg, "", "init", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	config, err := commands.LoadConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "theme.toml"), config.Theme.File)

	// The starter theme is picked up through the config.
	out, err = runWithConfig(t, cfg, "", "parse", "--tokens", "bg-brand-500 3xl:p-4")
	require.NoError(t, err)
	assert.NotContains(t, out, `"literals": [`)

	_, err = runWithConfig(t, cfg, "", "init", "--dir", dir)
	assert.ErrorIs(t, err, commands.ErrExists)

	_, err = runWithConfig(t, cfg, "", "init", "--dir", dir, "--force")
	assert.NoError(t, err)
}

func TestCommands_Theme(t *testing.T) {
	t.Run("dump", func(t *testing.T) {
		out, err := run(t, "", "theme", "dump")
		require.NoError(t, err)
		assert.Contains(t, out, "name = 'tailwind'")
	})

	t.Run("check file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "theme.yaml")
		require.NoError(t, os.WriteFile(path, []byte("colors:\n  brand:\n    500: \"#1da1f2\"\n"), 0o644))
		out, err := run(t, "", "theme", "check", path)
		require.NoError(t, err)
		assert.Contains(t, out, ": ok")
	})

	t.Run("check rejects invalid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "theme.toml")
		require.NoError(t, os.WriteFile(path, []byte("[colors]\nbrand = \"not-a-color\"\n"), 0o644))
		_, err := run(t, "", "theme", "check", path)
		assert.Error(t, err)
	})

	t.Run("colors", func(t *testing.T) {
		out, err := run(t, "", "theme", "colors", "--plain", "blue-50")
		require.NoError(t, err)
		assert.Equal(t, "blue-50 #eff6ff\nblue-500 #3b82f6\n", out)
	})
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, commands.ConfigFile), nil, 0o644))

	got, err := commands.FindProjectRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestCommands_Generate(t *testing.T) {
	out, err := run(t, "", "generate", "--package", "design", "--func", "Tokens")
	require.NoError(t, err)
	assert.Contains(t, out, "package design")
	assert.Contains(t, out, "func Tokens() theme.Preset {")

	path := filepath.Join(t.TempDir(), "design", "tokens.go")
	_, err = run(t, "", "generate", "--out", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "func Preset() theme.Preset {")
}
