package catalog

// Payload describes where the embedded network definition of a spec comes
// from.
type Payload int

const (
	// PayloadUnknown is reported for invalid specs.
	PayloadUnknown Payload = iota

	// PayloadPublished is the network as published in the benchmark
	// repository, structure and conditional tables included.
	PayloadPublished

	// PayloadToy is a small hand-written model with no published
	// counterpart.
	PayloadToy

	// PayloadStandIn is a synthetic network with the published node, arc
	// and parameter counts but generated variables, states and tables.
	// Structural benchmarks that only depend on size see the right shape;
	// anything that depends on the actual model does not.
	PayloadStandIn
)

func (p Payload) String() string {
	switch p {
	case PayloadPublished:
		return "published"
	case PayloadToy:
		return "toy"
	case PayloadStandIn:
		return "stand-in"
	default:
		return "unknown"
	}
}

// Payload reports the provenance of the network embedded for s.
func (s Spec) Payload() Payload { return s.info().payload }
