package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/agiangrant/twconv/theme"
)

// ErrExists is returned by init when it would overwrite a file.
var ErrExists = zerr.New("file already exists (use --force to overwrite)")

const themeFile = "theme.toml"

func (c *CLI) newInitCmd() *cobra.Command {
	var (
		dir   string
		force bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create twconv.toml and a starter theme.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return zerr.Wrap(err, "failed to get working directory")
				}
				dir = wd
			}
			return c.runInit(cmd, dir, force)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Project directory (default: current directory)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return cmd
}

func (c *CLI) runInit(cmd *cobra.Command, dir string, force bool) error {
	configPath := filepath.Join(dir, ConfigFile)
	themePath := filepath.Join(dir, themeFile)
	if !force {
		for _, p := range []string{configPath, themePath} {
			if _, err := os.Stat(p); err == nil {
				return zerr.With(ErrExists, "path", p)
			}
		}
	}

	config := DefaultConfig()
	config.Theme.File = themeFile
	config.Output.File = "twconv.css"
	if err := SaveConfig(configPath, config); err != nil {
		return err
	}

	f, err := os.Create(themePath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create theme"), "path", themePath)
	}
	defer f.Close()
	if err := theme.Encode(f, starterTheme()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", configPath)
	fmt.Fprintf(out, "Created %s\n", themePath)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  1. Edit theme.toml to add your design tokens")
	fmt.Fprintln(out, "  2. Run 'twconv scan' to generate twconv.css")
	return nil
}

// starterTheme is the override written by init. It only adds to the
// default preset.
func starterTheme() theme.Preset {
	return theme.Preset{
		Name:    "custom",
		Version: "0.1.0",
		Colors: map[string]string{
			"brand-500": "#1da1f2",
			"brand-700": "#0c7abf",
		},
		Layout: theme.LayoutPreset{
			Breakpoints: map[string]float64{"3xl": 1920},
		},
	}
}
