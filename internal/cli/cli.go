// Package cli implements the bnrepo maintainer tool. The tool is used at
// build time only; the catalog itself is consumed as a library.
//
// The tool packs network definitions into the compressed form embedded by
// the catalog, verifies that every embedded network materializes and
// matches its curated metadata, lists the catalog and exports node-link
// diagrams. It is built using cobra and logs via charmbracelet/log.
//
// # Commands
//
//   - list: print the catalog as a table, optionally for one size tier
//   - verify: materialize networks and cross-check their metadata
//   - pack: compress JSON sources into the embedded resource directory
//   - dot: export a network as Graphviz DOT or SVG
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context; user-facing results go to the command's
// output writer.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bnrepo/pkg/buildinfo"
	"github.com/matzehuels/bnrepo/pkg/catalog"
	"github.com/matzehuels/bnrepo/pkg/observability"
)

// appName is the application name used for display and the config file.
const appName = "bnrepo"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer
}

// New creates a new CLI that prints results to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		Out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Before any subcommand runs, the logger is attached to the command context
// and registered for library events.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "bnrepo maintains the embedded Bayesian network catalog",
		Long: `bnrepo packs, verifies and inspects the benchmark Bayesian networks embedded in
the catalog package.

It is a build-time maintainer tool. Programs use the networks through the
github.com/matzehuels/bnrepo/pkg/catalog package, not through this command.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			hooks := logHooks{logger: c.Logger}
			observability.SetResourceHooks(hooks)
			observability.SetCatalogHooks(hooks)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)

	root.AddCommand(c.listCommand())
	root.AddCommand(c.verifyCommand())
	root.AddCommand(c.packCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// parseSpecs resolves command arguments to specs. No arguments selects the
// whole catalog.
func parseSpecs(args []string) ([]catalog.Spec, error) {
	if len(args) == 0 {
		return catalog.All(), nil
	}
	specs := make([]catalog.Spec, 0, len(args))
	for _, arg := range args {
		s, err := catalog.Parse(arg)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return specs, nil
}

// completeSpecs offers catalog names for positional arguments.
func completeSpecs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return catalog.Names(), cobra.ShellCompDirectiveNoFileComp
}
