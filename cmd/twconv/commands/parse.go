package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/agiangrant/twconv/tw"
)

type parseFlags struct {
	tokens bool
	node   bool
	width  float64
	states []string
	attrs  []string
}

func (c *CLI) newParseCmd() *cobra.Command {
	var f parseFlags
	cmd := &cobra.Command{
		Use:   "parse [classes...]",
		Short: "Compile a class string to structured styles (JSON)",
		Long: `Compile a class string to structured styles.

By default the assembled record (unconditional and conditional bags) is
printed. --width, --state and --attr resolve the bags that apply in that
context into one flat bag instead.`,
		Example: `  twconv parse "flex p-4 md:p-8 hover:bg-blue-500"
  twconv parse --width 800 --state hover "p-4 md:p-8 hover:bg-blue-500"
  echo "rounded-lg shadow-md" | twconv parse --node`,
		RunE: func(cmd *cobra.Command, args []string) error {
			classes, err := classesArg(cmd, args)
			if err != nil {
				return err
			}
			return c.runParse(cmd, classes, f)
		},
	}
	cmd.Flags().BoolVar(&f.tokens, "tokens", false, "Print the per-token parse instead of the assembled record")
	cmd.Flags().BoolVar(&f.node, "node", false, "Print the unconditional styles as a design-tool node")
	cmd.Flags().Float64Var(&f.width, "width", 0, "Viewport width in px to resolve for")
	cmd.Flags().StringSliceVar(&f.states, "state", nil, "Active state modifiers to resolve for (repeatable)")
	cmd.Flags().StringArrayVar(&f.attrs, "attr", nil, "Element attribute name=value to resolve for (repeatable)")
	return cmd
}

func (c *CLI) runParse(cmd *cobra.Command, classes string, f parseFlags) error {
	out := cmd.OutOrStdout()
	switch {
	case f.tokens:
		styles, literals := c.compiler.Parse(classes)
		return writeJSON(out, map[string]any{"styles": styles, "literals": literals})
	case f.node:
		return writeJSON(out, c.compiler.Node(classes))
	}

	resolving := cmd.Flags().Changed("width") || len(f.states) > 0 || len(f.attrs) > 0
	if !resolving {
		a := c.compiler.Compile(classes)
		return writeJSON(out, a)
	}

	ctx := tw.Context{Width: f.width, States: f.states}
	if len(f.attrs) > 0 {
		ctx.Attributes = make(map[string]string, len(f.attrs))
		for _, kv := range f.attrs {
			k, v, _ := strings.Cut(kv, "=")
			if k == "" {
				return zerr.With(zerr.New("invalid attribute"), "attr", kv)
			}
			ctx.Attributes[k] = v
		}
	}
	b := c.compiler.Resolve(classes, ctx)
	return writeJSON(out, b)
}
