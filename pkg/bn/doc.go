// Package bn loads discrete Bayesian networks from their serialized JSON form.
//
// # Overview
//
// A [Network] is a set of discrete variables arranged in a DAG (see package
// dag) where every variable carries a conditional probability table (CPT)
// given its parents. This package only builds and validates that structure;
// it performs no inference.
//
// # JSON Format
//
//	{
//	  "name": "cancer",
//	  "variables": [
//	    {"name": "Smoker", "states": ["True", "False"], "parents": [],
//	     "probabilities": [0.3, 0.7]},
//	    {"name": "Cancer", "states": ["True", "False"], "parents": ["Smoker"],
//	     "probabilities": [0.03, 0.97, 0.001, 0.999]}
//	  ]
//	}
//
// probabilities is the CPT flattened row-major. There is one row per
// configuration of the parents, enumerated with the last parent varying
// fastest, and each row is a distribution over the variable's states. A
// variable with k states and parents with cardinalities c1..cn therefore has
// k*c1*...*cn entries. Variables may appear in any order; parents are
// resolved by name after all variables are read.
//
// # Counts
//
// [Network.Nodes] is the number of variables, [Network.Arcs] the number of
// parent links and [Network.Parameters] the number of free parameters:
// the sum over variables of (k-1)*c1*...*cn. These are the figures published
// for the benchmark networks and are what the catalog cross-checks.
//
// # Errors
//
// Every malformed document fails with code INVALID_NETWORK from package
// errors, with the offending variable named in the message.
//
// # Concurrency
//
// A Network is immutable once returned and safe for concurrent reads.
package bn
