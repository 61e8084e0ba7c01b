// Package nodelink renders network structures as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// each variable appears as a box and each parent link as an arrow from parent
// to child. Nodes are ranked by depth so that root variables sit at the top.
//
// # Usage
//
// Convert a network's DAG to DOT format, then render to SVG:
//
//	n, _ := catalog.Alarm.Network()
//	dot := nodelink.ToDOT(n.DAG(), nodelink.Options{Name: n.Name()})
//	svg, err := nodelink.RenderSVG(context.Background(), dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: node labels include the row and all node metadata
//     (state count and CPT parameters for networks built by package bn)
//   - Name: graph label drawn above the diagram
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be rendered
// directly via [RenderSVG] or saved and processed with external Graphviz
// tools. Nodes of equal row share a rank.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no external binaries are needed.
package nodelink
