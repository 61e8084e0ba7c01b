package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bnrepo/pkg/catalog"
	"github.com/matzehuels/bnrepo/pkg/render/nodelink"
)

// dotOpts holds the command-line flags for the dot command.
type dotOpts struct {
	output   string // output file; stdout when empty
	svg      bool   // render SVG instead of DOT source
	detailed bool   // include row and CPT metadata in node labels
}

// dotCommand creates the dot command, which exports a node-link diagram.
func (c *CLI) dotCommand() *cobra.Command {
	var opts dotOpts

	cmd := &cobra.Command{
		Use:               "dot <spec>",
		Short:             "Export a network as a Graphviz diagram",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSpecs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := catalog.Parse(args[0])
			if err != nil {
				return err
			}
			return runDot(cmd.Context(), c.Out, s, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.svg, "svg", false, "render SVG instead of DOT source")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show row, states and parameters in node labels")

	return cmd
}

func runDot(ctx context.Context, out io.Writer, s catalog.Spec, opts dotOpts) error {
	logger := loggerFromContext(ctx)

	n, err := s.Network()
	if err != nil {
		return err
	}

	dot := nodelink.ToDOT(n.DAG(), nodelink.Options{Detailed: opts.detailed, Name: n.Name()})
	data := []byte(dot)
	if opts.svg {
		prog := newProgress(logger)
		if data, err = nodelink.RenderSVG(ctx, dot); err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Rendered %s (%d nodes)", s.Name(), n.Nodes()))
	}

	if opts.output == "" {
		_, err := out.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printFile(out, opts.output)
	return nil
}
