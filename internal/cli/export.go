package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modolabs/graphml/pkg/graph"
	"github.com/modolabs/graphml/pkg/graphml"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output string // output file path (stdout if empty)
}

// newExportCmd creates the export command: read one graph description,
// run the GraphML export pass, write the document.
func newExportCmd() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export <graph.json|graph.toml>",
		Short: "Export a graph description as a GraphML document",
		Long: `Export a graph description as a GraphML document.

The input format is chosen by file extension: .toml files are decoded as
TOML, everything else as JSON. The resulting XML is written to --output,
or to stdout when no output file is given.

Examples:
  graphml export topology.json                  # GraphML to stdout
  graphml export topology.json -o topology.graphml
  graphml export services.toml -o services.graphml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runExport loads the graph description from input, marshals it as GraphML,
// and writes the document to opts.output (or stdout). Status decoration is
// only printed when writing to a file, so stdout output stays clean XML.
func runExport(ctx context.Context, input string, opts *exportOpts) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Loading %s", input)

	g, err := loadGraph(input)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}
	logger.Infof("Loaded graph: %d vertices, %d edges", g.VertexCount(), g.EdgeCount())

	spinner := newSpinnerWithContext(ctx, "Exporting GraphML...")
	spinner.Start()

	prog := newProgress(logger)
	data, err := graphml.Marshal(g)
	if err != nil {
		spinner.StopWithError("Export failed")
		return fmt.Errorf("export: %w", err)
	}
	spinner.Stop()
	if err := ctx.Err(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Exported %d vertices and %d edges", g.VertexCount(), g.EdgeCount()))

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Exported GraphML")
		printFile(opts.output)
		printStats(g.VertexCount(), g.EdgeCount())
	}
	return nil
}

// loadGraph decodes a graph description file, choosing the decoder by
// extension: .toml is decoded as TOML, everything else as JSON.
func loadGraph(path string) (*graph.Graph, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return graph.ImportTOML(path)
	}
	return graph.ImportJSON(path)
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
