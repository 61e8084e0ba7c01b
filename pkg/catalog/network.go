package catalog

import (
	"fmt"
	"time"

	"github.com/matzehuels/bnrepo/internal/resource"
	"github.com/matzehuels/bnrepo/pkg/bn"
	"github.com/matzehuels/bnrepo/pkg/observability"
)

// Resource returns a copy of the compressed payload embedded for s.
// Every valid spec has one; a missing payload is a packaging defect and
// panics.
func (s Spec) Resource() []byte {
	data, ok := resource.Default.Compressed(s.Name())
	if !ok {
		panic(fmt.Sprintf("catalog: no embedded resource for %s", s))
	}
	return data
}

// JSON returns the decompressed network definition for s. The text is
// inflated once per process and shared by all callers. The only failure is a
// CORRUPT_RESOURCE error, which is permanent and not worth retrying.
func (s Spec) JSON() (string, error) {
	return resource.Default.Text(s.Name())
}

// Network materializes the Bayesian network for s. Errors from building the
// network are returned exactly as package bn reports them.
func (s Spec) Network() (*bn.Network, error) {
	text, err := s.JSON()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	n, err := bn.FromJSON(text)
	nodes := 0
	if n != nil {
		nodes = n.Nodes()
	}
	observability.Catalog().OnMaterialize(s.Name(), nodes, time.Since(start), err)
	return n, err
}
