package bn

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"strings"

	"github.com/matzehuels/bnrepo/pkg/dag"
	bnerrors "github.com/matzehuels/bnrepo/pkg/errors"
)

// rowTolerance is how far a CPT row may sum from 1. Published tables are
// rounded to a few decimals, so exact sums are not guaranteed.
const rowTolerance = 1e-3

type document struct {
	Name      string     `json:"name"`
	Variables []variable `json:"variables"`
}

type variable struct {
	Name          string    `json:"name"`
	States        []string  `json:"states"`
	Parents       []string  `json:"parents"`
	Probabilities []float64 `json:"probabilities"`
}

// FromJSON builds a network from its serialized text.
// It is shorthand for ReadJSON(strings.NewReader(text)).
func FromJSON(text string) (*Network, error) {
	return ReadJSON(strings.NewReader(text))
}

// ReadJSON decodes a network document from r and validates it.
//
// ReadJSON returns an error with code INVALID_NETWORK if:
//   - The JSON is malformed, followed by more data, or has no variables
//   - A variable or state name is empty, duplicated or contains control characters
//   - A parent is unknown, repeated, or the variable itself
//   - The parent links form a cycle
//   - A CPT has the wrong length, a negative entry, or a row not summing to 1
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Network, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, bnerrors.Wrap(bnerrors.ErrCodeInvalidNetwork, err, "decode network")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, bnerrors.New(bnerrors.ErrCodeInvalidNetwork, "decode network: unexpected data after document")
	}
	return build(doc)
}

func build(doc document) (*Network, error) {
	if len(doc.Variables) == 0 {
		return nil, bnerrors.New(bnerrors.ErrCodeInvalidNetwork, "network has no variables")
	}

	n := &Network{
		name:  doc.Name,
		vars:  make([]*Variable, 0, len(doc.Variables)),
		index: make(map[string]*Variable, len(doc.Variables)),
		graph: dag.New(dag.Metadata{"name": doc.Name}),
	}

	for _, dv := range doc.Variables {
		v, err := newVariable(dv)
		if err != nil {
			return nil, err
		}
		if err := n.graph.AddNode(dag.Node{ID: v.name}); err != nil {
			if errors.Is(err, dag.ErrDuplicateNodeID) {
				return nil, bnerrors.New(bnerrors.ErrCodeInvalidNetwork, "duplicate variable %q", v.name)
			}
			return nil, bnerrors.Wrap(bnerrors.ErrCodeInvalidNetwork, err, "variable %q", v.name)
		}
		n.vars = append(n.vars, v)
		n.index[v.name] = v
	}

	for _, v := range n.vars {
		if err := n.link(v); err != nil {
			return nil, err
		}
	}

	if err := n.graph.Validate(); err != nil {
		return nil, bnerrors.Wrap(bnerrors.ErrCodeInvalidNetwork, err, "network %q", doc.Name)
	}
	if err := n.graph.AssignLayers(); err != nil {
		return nil, bnerrors.Wrap(bnerrors.ErrCodeInvalidNetwork, err, "network %q", doc.Name)
	}
	order, err := n.graph.TopologicalSort()
	if err != nil {
		return nil, bnerrors.Wrap(bnerrors.ErrCodeInvalidNetwork, err, "network %q", doc.Name)
	}
	n.order = order
	return n, nil
}

func newVariable(dv variable) (*Variable, error) {
	if err := bnerrors.ValidateName(dv.Name); err != nil {
		return nil, err
	}
	if len(dv.States) == 0 {
		return nil, bnerrors.New(bnerrors.ErrCodeInvalidNetwork, "variable %q has no states", dv.Name)
	}
	seen := make(map[string]bool, len(dv.States))
	for _, s := range dv.States {
		if err := bnerrors.ValidateName(s); err != nil {
			return nil, bnerrors.Wrap(bnerrors.ErrCodeInvalidNetwork, err, "variable %q state", dv.Name)
		}
		if seen[s] {
			return nil, bnerrors.New(bnerrors.ErrCodeInvalidNetwork, "variable %q has duplicate state %q", dv.Name, s)
		}
		seen[s] = true
	}
	return &Variable{
		name:    dv.Name,
		states:  dv.States,
		parents: dv.Parents,
		cpt:     dv.Probabilities,
	}, nil
}

// link resolves v's parents, adds the arcs and checks the CPT shape.
func (n *Network) link(v *Variable) error {
	rows := 1
	seen := make(map[string]bool, len(v.parents))
	for _, p := range v.parents {
		parent, ok := n.index[p]
		if !ok {
			return bnerrors.New(bnerrors.ErrCodeInvalidNetwork, "variable %q has unknown parent %q", v.name, p)
		}
		if seen[p] {
			return bnerrors.New(bnerrors.ErrCodeInvalidNetwork, "variable %q lists parent %q twice", v.name, p)
		}
		seen[p] = true
		if err := n.graph.AddEdge(dag.Edge{From: p, To: v.name}); err != nil {
			return bnerrors.Wrap(bnerrors.ErrCodeInvalidNetwork, err, "variable %q parent %q", v.name, p)
		}
		rows *= parent.Cardinality()
		if rows*v.Cardinality() > len(v.cpt) {
			return cptSizeError(v)
		}
	}
	if rows*v.Cardinality() != len(v.cpt) {
		return cptSizeError(v)
	}
	v.rows = rows

	k := v.Cardinality()
	for i := 0; i < rows; i++ {
		sum := 0.0
		for _, p := range v.cpt[i*k : (i+1)*k] {
			if p < 0 || math.IsNaN(p) {
				return bnerrors.New(bnerrors.ErrCodeInvalidNetwork, "variable %q row %d has invalid probability %v", v.name, i, p)
			}
			sum += p
		}
		if math.Abs(sum-1) > rowTolerance {
			return bnerrors.New(bnerrors.ErrCodeInvalidNetwork, "variable %q row %d sums to %g", v.name, i, sum)
		}
	}

	node, _ := n.graph.Node(v.name)
	node.Meta["states"] = k
	node.Meta["parameters"] = v.Parameters()
	return nil
}

func cptSizeError(v *Variable) error {
	return bnerrors.New(bnerrors.ErrCodeInvalidNetwork, "variable %q has %d probabilities, which does not match its states and parents", v.name, len(v.cpt))
}
