package bn

import (
	"slices"

	"github.com/matzehuels/bnrepo/pkg/dag"
)

// Variable is one discrete random variable with its conditional table.
type Variable struct {
	name    string
	states  []string
	parents []string
	cpt     []float64
	rows    int // number of parent configurations
}

// Name returns the variable's name.
func (v *Variable) Name() string { return v.name }

// States returns a copy of the variable's state labels.
func (v *Variable) States() []string { return slices.Clone(v.states) }

// Cardinality returns the number of states.
func (v *Variable) Cardinality() int { return len(v.states) }

// Parents returns a copy of the parent names in CPT order.
func (v *Variable) Parents() []string { return slices.Clone(v.parents) }

// Rows returns the number of parent configurations (CPT rows).
func (v *Variable) Rows() int { return v.rows }

// Row returns a copy of the distribution for parent configuration i, or nil
// if i is out of range.
func (v *Variable) Row(i int) []float64 {
	if i < 0 || i >= v.rows {
		return nil
	}
	k := len(v.states)
	return slices.Clone(v.cpt[i*k : (i+1)*k])
}

// Parameters returns the number of free parameters in the CPT.
func (v *Variable) Parameters() int { return (len(v.states) - 1) * v.rows }

// Network is a materialized Bayesian network.
type Network struct {
	name  string
	vars  []*Variable
	index map[string]*Variable
	graph *dag.DAG
	order []string
}

// Name returns the network name from the document, which may be empty.
func (n *Network) Name() string { return n.name }

// Nodes returns the number of variables.
func (n *Network) Nodes() int { return len(n.vars) }

// Arcs returns the number of parent links.
func (n *Network) Arcs() int { return n.graph.EdgeCount() }

// Parameters returns the number of free parameters across all CPTs.
func (n *Network) Parameters() int {
	total := 0
	for _, v := range n.vars {
		total += v.Parameters()
	}
	return total
}

// Variables returns the variables in document order.
func (n *Network) Variables() []*Variable { return slices.Clone(n.vars) }

// Variable looks up a variable by name.
func (n *Network) Variable(name string) (*Variable, bool) {
	v, ok := n.index[name]
	return v, ok
}

// TopologicalOrder returns variable names ordered parents first.
func (n *Network) TopologicalOrder() []string { return slices.Clone(n.order) }

// DAG returns the network structure. Node rows hold each variable's depth
// and node metadata holds "states" (cardinality) and "parameters".
// Callers must not modify the returned graph.
func (n *Network) DAG() *dag.DAG { return n.graph }
