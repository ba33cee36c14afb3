package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/agiangrant/twconv/theme"
)

func (c *CLI) newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and validate themes",
	}
	cmd.AddCommand(c.newThemeDumpCmd(), c.newThemeCheckCmd(), c.newThemeColorsCmd())
	return cmd
}

func (c *CLI) newThemeDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the effective theme as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return theme.Encode(cmd.OutOrStdout(), c.compiler.Theme().Preset())
		},
	}
}

func (c *CLI) newThemeCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a theme override file",
		Long: `Validate a theme override file against the default preset and print
the size of each token table. Without a file the configured theme is
checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			th := c.compiler.Theme()
			if len(args) == 1 {
				override, err := theme.Load(args[0])
				if err != nil {
					return err
				}
				if th, err = theme.New(theme.DefaultPreset(), override); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s: ok\n", th.Name(), th.Version())
			for _, line := range th.Summary() {
				fmt.Fprintln(out, "  "+line)
			}
			return nil
		},
	}
}

func (c *CLI) newThemeColorsCmd() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "colors [prefix]",
		Short: "List theme colors with swatches",
		Example: `  twconv theme colors blue
  twconv theme colors --plain`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			colors := c.compiler.Theme().Preset().Colors
			names := make([]string, 0, len(colors))
			for name := range colors {
				if strings.HasPrefix(name, prefix) {
					names = append(names, name)
				}
			}
			sort.Strings(names)

			out := cmd.OutOrStdout()
			label := lipgloss.NewStyle().Width(16)
			for _, name := range names {
				hex := colors[name]
				if plain {
					fmt.Fprintf(out, "%s %s\n", name, hex)
					continue
				}
				swatch := lipgloss.NewStyle().Background(lipgloss.Color(swatchHex(hex))).Render("    ")
				fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top, swatch, " ", label.Render(name), hex))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Print name and value only")
	return cmd
}

// swatchHex drops an alpha channel, which terminals cannot show.
func swatchHex(hex string) string {
	if len(hex) == 9 {
		return hex[:7]
	}
	return hex
}
