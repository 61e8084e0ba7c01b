package cli

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bnrepo/pkg/catalog"
)

// listCommand creates the list command, which prints the catalog.
func (c *CLI) listCommand() *cobra.Command {
	var tier string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the networks in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			specs := catalog.All()
			if tier != "" {
				t, err := catalog.ParseTier(tier)
				if err != nil {
					return err
				}
				specs = t.Specs()
			}
			printCatalog(c.Out, specs)
			return nil
		},
	}

	cmd.Flags().StringVar(&tier, "tier", "", "only list one tier: small, medium, large, very-large")
	_ = cmd.RegisterFlagCompletionFunc("tier", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, t := range catalog.Tiers() {
			names = append(names, t.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// printCatalog prints specs as a table. Counts that were never computed
// show as "-"; the last column tells published networks from stand-ins.
func printCatalog(w io.Writer, specs []catalog.Spec) {
	rows := make([][]string, len(specs))
	for i, s := range specs {
		rows[i] = []string{
			s.Name(),
			s.Tier().String(),
			strconv.Itoa(s.Nodes()),
			countString(s.Arcs()),
			countString(s.Parameters()),
			s.Payload().String(),
		}
	}
	printTable(w, []string{"Network", "Tier", "Nodes", "Arcs", "Parameters", "Payload"}, rows)
}

func countString(n int, ok bool) string {
	if !ok {
		return "-"
	}
	return strconv.Itoa(n)
}
