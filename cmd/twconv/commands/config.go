package commands

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/zerr"
)

// ConfigFile is the project configuration file name.
const ConfigFile = "twconv.toml"

// ErrNoProject is returned by FindProjectRoot outside any project.
var ErrNoProject = zerr.New("not in a twconv project (no twconv.toml or go.mod found)")

// ProjectConfig represents twconv.toml.
type ProjectConfig struct {
	Theme  ThemeConfig  `toml:"theme"`
	Parser ParserConfig `toml:"parser"`
	Scan   ScanConfig   `toml:"scan"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

type ThemeConfig struct {
	// File is a theme.toml or theme.yaml override, relative to the project.
	File string `toml:"file"`
}

type ParserConfig struct {
	Strict    bool `toml:"strict"`
	CacheSize int  `toml:"cache_size"`
}

type ScanConfig struct {
	Root       string   `toml:"root"`
	Include    []string `toml:"include"`
	Exclude    []string `toml:"exclude"`
	Attributes []string `toml:"attributes"`
}

type OutputConfig struct {
	// File receives generated CSS; empty means stdout.
	File string `toml:"file"`
}

type LogConfig struct {
	Level string `toml:"level"`
	Human bool   `toml:"human"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Theme:  ThemeConfig{File: ""},
		Parser: ParserConfig{CacheSize: 1024},
		Scan: ScanConfig{
			Root:       ".",
			Include:    []string{"**/*.{html,htm,jsx,tsx,vue,svelte,templ,go,gohtml,tmpl}"},
			Exclude:    []string{"**/node_modules/**", "**/.git/**", "**/vendor/**", "**/dist/**"},
			Attributes: []string{"class", "className"},
		},
		Log: LogConfig{Level: "warn", Human: true},
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error.
// Relative paths inside the file are resolved against its directory.
func LoadConfig(path string) (ProjectConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, zerr.With(zerr.Wrap(err, "failed to read config"), "path", path)
	}
	if err := toml.Unmarshal(data, &config); err != nil {
		return config, zerr.With(zerr.Wrap(err, "failed to parse config"), "path", path)
	}

	dir := filepath.Dir(path)
	if config.Theme.File != "" && !filepath.IsAbs(config.Theme.File) {
		config.Theme.File = filepath.Join(dir, config.Theme.File)
	}
	if !filepath.IsAbs(config.Scan.Root) {
		config.Scan.Root = filepath.Join(dir, config.Scan.Root)
	}
	if config.Output.File != "" && !filepath.IsAbs(config.Output.File) {
		config.Output.File = filepath.Join(dir, config.Output.File)
	}
	return config, nil
}

// SaveConfig writes config to path.
func SaveConfig(path string, config ProjectConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write config"), "path", path)
	}
	return nil
}

// FindProjectRoot walks up from dir to the first directory holding
// twconv.toml, falling back to the nearest go.mod.
func FindProjectRoot(dir string) (string, error) {
	var modRoot string
	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFile)); err == nil {
			return dir, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && modRoot == "" {
			modRoot = dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			if modRoot != "" {
				return modRoot, nil
			}
			return "", ErrNoProject
		}
		dir = parent
	}
}
