package catalog

import (
	"fmt"
	"strings"

	"github.com/matzehuels/bnrepo/pkg/bn"
	bnerrors "github.com/matzehuels/bnrepo/pkg/errors"
)

// Nodes returns the number of variables in the network.
func (s Spec) Nodes() int { return s.info().nodes }

// Arcs returns the number of arcs in the network. The boolean is false when
// the count has not been computed for this spec (Tiny and Tiny2); this is not
// an error and the returned number is meaningless.
func (s Spec) Arcs() (int, bool) {
	in := s.info()
	return in.arcs, in.counted
}

// Parameters returns the number of free CPT parameters in the network, with
// the same meaning of the boolean as Arcs.
func (s Spec) Parameters() (int, bool) {
	in := s.info()
	return in.parameters, in.counted
}

func (s Spec) info() info {
	if !s.Valid() {
		return info{}
	}
	return specs[s]
}

// Verify cross-checks the curated counts of s against a materialized network.
// Node counts are always compared; arc and parameter counts only where they
// are known. Any disagreement fails with METADATA_MISMATCH listing every
// differing figure.
func (s Spec) Verify(n *bn.Network) error {
	var diffs []string
	check := func(what string, want, got int) {
		if want != got {
			diffs = append(diffs, fmt.Sprintf("%s: catalog %d, network %d", what, want, got))
		}
	}

	check("nodes", s.Nodes(), n.Nodes())
	if arcs, ok := s.Arcs(); ok {
		check("arcs", arcs, n.Arcs())
	}
	if params, ok := s.Parameters(); ok {
		check("parameters", params, n.Parameters())
	}

	if len(diffs) > 0 {
		return bnerrors.New(bnerrors.ErrCodeMetadataMismatch, "%s: %s", s.Name(), strings.Join(diffs, "; "))
	}
	return nil
}
