// Package cli implements the graphml command-line interface.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/modolabs/graphml/pkg/buildinfo"
)

// appName is the application name used for the root command and display.
const appName = "graphml"

// Execute runs the graphml CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with the export subcommand,
// configures logging based on the --verbose flag, and executes the command
// tree against ctx, so an interrupted process cancels in-flight work.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "graphml exports graph descriptions as GraphML documents",
		Long: `graphml converts graph descriptions into GraphML, the XML interchange
format understood by graph tools such as yEd, Gephi, and igraph.

A graph description is a JSON or TOML file listing vertices, edges, and
their typed attributes. The export command reads one description, runs the
GraphML export pass, and writes the resulting XML document to a file or to
stdout.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newExportCmd())

	return root.ExecuteContext(ctx)
}
