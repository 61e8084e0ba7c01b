// Package dag provides the directed acyclic graph that backs every
// materialized network in the catalog.
//
// # Overview
//
// A Bayesian network is a DAG whose vertices are random variables and whose
// edges point from a parent to each variable it conditions. This package
// holds only the structure: nodes, edges, per-node metadata and a depth
// (row) index. Probability tables live in package bn.
//
// # Basic Usage
//
// Create a new graph with [New], add nodes with [DAG.AddNode], and edges with
// [DAG.AddEdge]:
//
//	g := dag.New(nil)
//	g.AddNode(dag.Node{ID: "Smoker"})
//	g.AddNode(dag.Node{ID: "Cancer"})
//	g.AddEdge(dag.Edge{From: "Smoker", To: "Cancer"})
//
// Query the structure with [DAG.Children], [DAG.Parents], [DAG.Sources] and
// [DAG.Sinks]. [DAG.TopologicalSort] returns a parent-first ordering and
// [DAG.AssignLayers] stores each node's depth in [Node.Row] so that
// [DAG.NodesInRow] groups variables by depth.
//
// # Ordering
//
// Nodes keep their insertion order. Every listing method (Nodes, Sources,
// Sinks, NodesInRow, TopologicalSort) is therefore deterministic, which keeps
// DOT exports and test output stable.
//
// # Metadata
//
// Both nodes and the graph itself support arbitrary metadata via [Metadata]
// maps. Metadata maps are never nil after creation.
//
// # Concurrency
//
// DAG instances are not safe for concurrent mutation. A graph that is no
// longer modified can be read from any number of goroutines.
package dag
