// Package pkg provides the libraries of the bnrepo benchmark catalog.
//
// # Overview
//
// bnrepo catalogs sixteen benchmark Bayesian networks, from single-node toy
// models to the 724-variable Link network, with their definitions compressed
// inside the binary. Only Cancer embeds the published network; Tiny and
// Tiny2 are hand-written toy models, and the other thirteen are
// count-matched structural stand-ins (synthetic DAGs with the published
// node, arc and parameter counts) until bnrepo pack replaces them with the
// published files. catalog.Spec.Payload tells them apart.
//
// The pkg directory is organized into these areas:
//
//  1. [catalog] - The network identifiers, their metadata and size tiers
//  2. [bn] - Network documents and the materialized Bayesian network
//  3. [dag] - Directed acyclic graph underlying every network structure
//  4. [render/nodelink] - Graphviz node-link diagrams
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The data flow from an identifier to a network:
//
//	"alarm"
//	   ↓
//	[catalog] Parse → Spec
//	   ↓
//	embedded resource (raw DEFLATE), inflated once per process
//	   ↓
//	[bn] FromJSON → *bn.Network (variables, CPTs, [dag] structure)
//
// Metadata and tier queries never touch the embedded data.
//
// # Quick Start
//
// The catalog is used as a library. The bnrepo command in cmd/bnrepo is a
// build-time maintainer tool for packing and verifying the embedded data;
// it is not the catalog's interface.
//
//	s, err := catalog.Parse("alarm")
//	if err != nil {
//	    log.Fatal(err) // Got: ..., Expected one of: tiny, tiny2, ...
//	}
//	n, err := s.Network()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(n.Nodes(), n.Arcs(), n.Parameters())
//
// Select benchmarks by size:
//
//	for _, s := range catalog.Medium() {
//	    arcs, ok := s.Arcs()
//	    ...
//	}
//
// # Testing
//
//	go test ./...           # All tests
//	go test -short ./...    # Skip Graphviz rendering
//	go test -run Example    # Examples only
//
// [catalog]: https://pkg.go.dev/github.com/matzehuels/bnrepo/pkg/catalog
// [bn]: https://pkg.go.dev/github.com/matzehuels/bnrepo/pkg/bn
// [dag]: https://pkg.go.dev/github.com/matzehuels/bnrepo/pkg/dag
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/bnrepo/pkg/render/nodelink
// [errors]: https://pkg.go.dev/github.com/matzehuels/bnrepo/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/bnrepo/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/bnrepo/pkg/buildinfo
package pkg
