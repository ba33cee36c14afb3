// Package commands implements the twconv command line.
package commands

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agiangrant/twconv"
	"github.com/agiangrant/twconv/internal/logging"
)

// Version is set at build time.
var Version = "0.1.0"

// CLI is the twconv command tree.
type CLI struct {
	rootCmd *cobra.Command

	configPath string
	themeFile  string
	strict     bool
	logLevel   string

	config   ProjectConfig
	log      *logging.Logger
	compiler *twconv.Compiler
}

// New builds the command tree.
func New() *CLI {
	c := &CLI{}
	rootCmd := &cobra.Command{
		Use:           "twconv",
		Short:         "Convert utility class strings to structured styles and back",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}
	rootCmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "Path to "+ConfigFile+" (default: search upwards)")
	flags.StringVarP(&c.themeFile, "theme", "t", "", "Theme override file (.toml or .yaml)")
	flags.BoolVar(&c.strict, "strict", false, "Treat unknown modifiers as errors")
	flags.StringVar(&c.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(
		c.newParseCmd(),
		c.newSerializeCmd(),
		c.newCSSCmd(),
		c.newScanCmd(),
		c.newThemeCmd(),
		c.newInitCmd(),
		c.newGenerateCmd(),
	)
	return c
}

// Execute runs the command line with ctx.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams. Used for testing.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

// SetInput sets the stream read when a command takes stdin. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// setup loads the project config, applies flag overrides and builds the
// logger and compiler shared by every subcommand.
func (c *CLI) setup(cmd *cobra.Command) error {
	path := c.configPath
	if path == "" {
		path = ConfigFile
		if wd, err := os.Getwd(); err == nil {
			if root, err := FindProjectRoot(wd); err == nil {
				path = filepath.Join(root, ConfigFile)
			}
		}
	}
	config, err := LoadConfig(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("theme") {
		config.Theme.File = c.themeFile
	}
	if cmd.Flags().Changed("strict") {
		config.Parser.Strict = c.strict
	}
	if cmd.Flags().Changed("log-level") {
		config.Log.Level = c.logLevel
	}
	c.config = config

	log, err := logging.New(logging.Options{
		Level:         config.Log.Level,
		HumanReadable: config.Log.Human,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	c.log = log.With("cmd", cmd.Name())

	opts := []twconv.Option{
		twconv.WithStrict(config.Parser.Strict),
		twconv.WithCacheSize(config.Parser.CacheSize),
		twconv.WithLogger(c.log),
	}
	if config.Theme.File != "" {
		opts = append(opts, twconv.WithThemeFile(config.Theme.File))
	}
	compiler, err := twconv.New(opts...)
	if err != nil {
		return err
	}
	c.compiler = compiler
	c.log.Debug("config loaded from " + path)
	return nil
}
