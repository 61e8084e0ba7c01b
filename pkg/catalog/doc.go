// Package catalog is the registry of embedded Bayesian-network benchmarks.
//
// # Overview
//
// Each [Spec] names one of 16 benchmark networks, from the single-variable
// Tiny up to the 724-node Link network. For every spec the catalog embeds a
// compressed JSON definition and keeps hand-curated structural counts:
//
//	s, err := catalog.Parse("alarm")
//	if err != nil {
//	    return err // lists every valid name
//	}
//	fmt.Println(s.Nodes())         // 37
//	arcs, ok := s.Arcs()           // 46, true
//	n, err := s.Network()          // materialized *bn.Network
//
// # Ordering and Tiers
//
// Specs are declared smallest first, and [All] returns them in that master
// order. [Small], [Medium], [Large] and [VeryLarge] return the members of
// each size [Tier] in the same relative order:
//
//	small       < 20 nodes      Tiny Tiny2 Cancer Sachs
//	medium      20-49 nodes     Insurance Water Mildew Alarm Barley
//	large       50-99 nodes     Hailfinder Hepar2 Win95pts
//	very-large  100-999 nodes   Pathfinder Andes Diabetes Link
//
// # Metadata
//
// [Spec.Nodes] is always known. [Spec.Arcs] and [Spec.Parameters] return
// false as their second value for Tiny and Tiny2, whose counts have not been
// computed; that is a distinct outcome from a zero count and from an error.
// The counts are constants and are not derived from the payload, so
// [Spec.Verify] exists to cross-check them against a materialized network.
//
// # Payloads
//
// Only Cancer embeds the published network. Tiny and Tiny2 are small
// hand-written models. The other thirteen payloads are count-matched
// structural stand-ins: synthetic DAGs with the published node, arc and
// parameter counts, but with generated variable names (ALARM_000, ...),
// states (s0, s1, ...) and conditional tables. They are fine for benchmarks
// that depend on network size and shape, and wrong for anything that
// depends on the actual model. [Spec.Payload] reports which kind a spec
// has. Running bnrepo pack over the published files replaces the stand-ins;
// the payload column of the catalog table is then updated by hand.
//
// # Errors
//
// [Parse] fails with a [*ParseError] whose message has the fixed form
//
//	Got: <input>, Expected one of: tiny, tiny2, cancer, sachs, ...
//
// [Spec.JSON] and [Spec.Network] fail with CORRUPT_RESOURCE only if an
// embedded payload is damaged, which means the binary was packaged wrongly.
// Errors from building the network come from package bn unchanged. Nothing
// in this package logs or retries.
//
// # Concurrency
//
// All lookups read immutable tables. Payloads are inflated once per process
// behind a per-resource sync.Once, so any number of goroutines may call any
// function concurrently.
package catalog
