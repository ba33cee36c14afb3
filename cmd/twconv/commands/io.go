package commands

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// ErrNoInput is returned when a command got neither arguments nor stdin.
var ErrNoInput = zerr.New("no input")

// classesArg joins positional arguments into one class string, or reads
// stdin when there are none.
func classesArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", zerr.Wrap(err, "failed to read stdin")
	}
	s := strings.TrimSpace(string(data))
	if s == "" {
		return "", ErrNoInput
	}
	return s, nil
}

// readSource reads a named file, or stdin for "" and "-".
func readSource(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, zerr.Wrap(err, "failed to read stdin")
		}
		if len(strings.TrimSpace(string(data))) == 0 {
			return nil, ErrNoInput
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read input"), "path", path)
	}
	return data, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to encode JSON")
	}
	return nil
}
