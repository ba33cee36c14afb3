package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/agiangrant/twconv/node"
	"github.com/agiangrant/twconv/tw"
)

// ErrUnknownFormat is returned for an unsupported --from value.
var ErrUnknownFormat = zerr.New("unknown input format")

func (c *CLI) newSerializeCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "serialize [file]",
		Short: "Convert structured styles (JSON) back to a class string",
		Long: `Convert structured styles back to a canonical class string.

The input is read from file, or stdin when no file (or "-") is given.
--from selects its shape: an assembled record as printed by "parse",
a single bag as printed by "parse --width", or a design-tool node.`,
		Example: `  twconv parse "p-4 md:p-8" | twconv serialize
  twconv serialize --from node card.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readSource(cmd, path)
			if err != nil {
				return err
			}
			classes, err := c.serialize(data, from)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), classes)
			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", "assembled", "Input shape: assembled, bag or node")
	return cmd
}

func (c *CLI) serialize(data []byte, from string) (string, error) {
	switch from {
	case "assembled":
		var a tw.Assembled
		if err := json.Unmarshal(data, &a); err != nil {
			return "", zerr.Wrap(err, "failed to decode assembled styles")
		}
		return c.compiler.SerializeAssembled(&a), nil
	case "bag":
		var b tw.Bag
		if err := json.Unmarshal(data, &b); err != nil {
			return "", zerr.Wrap(err, "failed to decode style bag")
		}
		return strings.Join(c.compiler.Serialize(&b), " "), nil
	case "node":
		n, err := node.Parse(data)
		if err != nil {
			return "", zerr.Wrap(err, "failed to decode node")
		}
		return c.compiler.SerializeNode(n), nil
	}
	return "", zerr.With(ErrUnknownFormat, "from", from)
}
