package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agiangrant/twconv/css"
)

func (c *CLI) newCSSCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "css [classes...]",
		Short: "Print stylesheet rules for a class string",
		Long: `Print stylesheet rules for a class string.

Only tokens that need a runtime rule (arbitrary values and custom
property references) are emitted unless --all is given.`,
		Example: `  twconv css "w-[320px] md:bg-[#123456] p-4"
  twconv css --all "flex p-4 hover:opacity-50"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			classes, err := classesArg(cmd, args)
			if err != nil {
				return err
			}
			var rules []string
			if all {
				styles, _ := c.compiler.Parse(classes)
				rules = css.GenerateAll(styles)
			} else {
				rules = c.compiler.CSS(classes, nil)
			}
			out := cmd.OutOrStdout()
			for _, r := range rules {
				if _, err := fmt.Fprintln(out, r); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Emit rules for every resolved token")
	return cmd
}
