package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/agiangrant/twconv/css"
	"github.com/agiangrant/twconv/internal/scan"
)

type scanFlags struct {
	root     string
	out      string
	watch    bool
	debounce time.Duration
	classes  bool
}

func (c *CLI) newScanCmd() *cobra.Command {
	var f scanFlags
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Collect classes from source files and write the CSS they need",
		Long: `Walk the project, extract class attributes from matching files and
write the stylesheet rules for arbitrary-valued classes.

Include, exclude and attribute lists come from the [scan] section of
twconv.toml. With --watch the command keeps running and rewrites the
output whenever a change introduces new rules.`,
		Example: `  twconv scan --out public/twconv.css
  twconv scan --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runScan(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.root, "root", "", "Directory to scan (default: config scan.root)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "CSS output file (default: config output.file or stdout)")
	cmd.Flags().BoolVarP(&f.watch, "watch", "w", false, "Watch for changes and regenerate")
	cmd.Flags().DurationVar(&f.debounce, "debounce", scan.DefaultDebounce, "Delay grouping file changes in watch mode")
	cmd.Flags().BoolVar(&f.classes, "classes", false, "Print the distinct classes found instead of CSS")
	return cmd
}

func (c *CLI) runScan(cmd *cobra.Command, f scanFlags) error {
	opts := scan.Options{
		Root:       c.config.Scan.Root,
		Include:    c.config.Scan.Include,
		Exclude:    c.config.Scan.Exclude,
		Attributes: c.config.Scan.Attributes,
	}
	if f.root != "" {
		opts.Root = f.root
	}
	output := c.config.Output.File
	if f.out != "" {
		output = f.out
	}

	s, err := scan.New(c.compiler, opts, c.log)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	injected := css.NewInjected()
	res, err := s.Scan(ctx, injected)
	if err != nil {
		return err
	}
	if f.classes {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(res.Classes, "\n"))
		return err
	}
	for _, r := range res.Rules {
		injected.Add(r)
	}
	if err := writeCSS(cmd.OutOrStdout(), output, injected); err != nil {
		return err
	}
	if output != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d rules from %d files to %s\n", injected.Len(), res.Files, output)
	}
	if !f.watch {
		return nil
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)\n", opts.Root)
	return s.Watch(ctx, injected, f.debounce, func(r scan.Result) {
		fresh := css.NewInjected()
		for _, rule := range r.Rules {
			injected.Add(rule)
			fresh.Add(rule)
		}
		// Stdout only gets the new rules; a file is rewritten whole.
		target := injected
		if output == "" {
			target = fresh
		}
		if err := writeCSS(cmd.OutOrStdout(), output, target); err != nil {
			c.log.Error(err, "failed to write CSS")
			return
		}
		c.log.With("rules", len(r.Rules)).Info("stylesheet updated")
	})
}

// writeCSS writes every injected rule to path, or appends them to w when
// path is empty.
func writeCSS(w io.Writer, path string, injected *css.Injected) error {
	text := injected.CSS()
	if text != "" {
		text += "\n"
	}
	if path == "" {
		_, err := io.WriteString(w, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write CSS"), "path", path)
	}
	return nil
}
