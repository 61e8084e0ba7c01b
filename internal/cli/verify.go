package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bnrepo/pkg/catalog"
	bnerrors "github.com/matzehuels/bnrepo/pkg/errors"
)

// verifyCommand creates the verify command, which materializes networks and
// checks them against the curated metadata.
func (c *CLI) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [spec...]",
		Short: "Check that embedded networks load and match the catalog",
		Long: `Verify inflates and builds each selected network (all by default) and
compares its node, arc and parameter counts with the catalog. It exits with
an error if any network fails.`,
		ValidArgsFunction: completeSpecs,
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := parseSpecs(args)
			if err != nil {
				return err
			}
			return runVerify(cmd.Context(), c.Out, specs)
		},
	}
}

// runVerify checks every spec and keeps going after failures so that one
// run reports all of them.
func runVerify(ctx context.Context, out io.Writer, specs []catalog.Spec) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var failed int
	for _, s := range specs {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		n, err := s.Network()
		if err == nil {
			err = s.Verify(n)
		}
		if err != nil {
			failed++
			logger.Debug("verify failed", "spec", s.Name(), "code", bnerrors.GetCode(err))
			printError(out, "%s: %s", s.Name(), bnerrors.UserMessage(err))
			continue
		}

		printSuccess(out, "%s", s.Name())
		printStats(out,
			StyleNumber.Render(strconv.Itoa(n.Nodes()))+" nodes",
			StyleNumber.Render(strconv.Itoa(n.Arcs()))+" arcs",
			StyleNumber.Render(strconv.Itoa(n.Parameters()))+" parameters",
			StyleNumber.Render(strconv.Itoa(n.DAG().MaxRow()+1))+" layers",
			time.Since(start).Round(time.Millisecond).String(),
		)
		if s.Payload() == catalog.PayloadStandIn {
			printWarning(out, "%s is a structural stand-in, not the published network", s.Name())
		}
		if _, ok := s.Arcs(); !ok {
			printWarning(out, "%s has no curated arc or parameter counts; only nodes were compared", s.Name())
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d networks failed verification", failed, len(specs))
	}
	prog.done(fmt.Sprintf("Verified %d networks", len(specs)))
	return nil
}
