package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/agiangrant/twconv/internal/gen"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	var (
		out  string
		opts gen.Options
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compile the effective theme into a Go source file",
		Long: `Compile the effective theme (defaults plus the configured override)
into a Go function returning a theme.Preset, so an application can
embed its tokens instead of loading theme files at run time.`,
		Example: `  twconv generate --out internal/design/preset.go --package design`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := gen.PresetSource(c.compiler.Theme().Preset(), opts)
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", out)
			}
			if err := os.WriteFile(out, src, 0o644); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to write generated source"), "path", out)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Generated %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&opts.Package, "package", "theme", "Package name of the generated file")
	cmd.Flags().StringVar(&opts.Func, "func", "Preset", "Name of the generated function")
	return cmd
}
