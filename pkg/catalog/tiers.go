package catalog

import (
	"strings"

	bnerrors "github.com/matzehuels/bnrepo/pkg/errors"
)

// Tier groups specs by network size for benchmark selection.
type Tier int

// TierUnknown is reported by Spec.Tier for invalid specs. It has no
// members and empty bounds.
const TierUnknown Tier = -1

// Tiers in ascending size order.
const (
	TierSmall     Tier = iota // fewer than 20 nodes
	TierMedium                // 20 to 49 nodes
	TierLarge                 // 50 to 99 nodes
	TierVeryLarge             // 100 to 999 nodes

	numTiers = iota
)

var tierInfo = [numTiers]struct {
	name   string
	lo, hi int
}{
	TierSmall:     {"small", 0, 20},
	TierMedium:    {"medium", 20, 50},
	TierLarge:     {"large", 50, 100},
	TierVeryLarge: {"very-large", 100, 1000},
}

// String returns the tier's name: small, medium, large or very-large.
func (t Tier) String() string {
	if t < 0 || t >= numTiers {
		return "unknown"
	}
	return tierInfo[t].name
}

// Bounds returns the half-open node-count range [lo, hi) of the tier.
func (t Tier) Bounds() (lo, hi int) {
	if t < 0 || t >= numTiers {
		return 0, 0
	}
	return tierInfo[t].lo, tierInfo[t].hi
}

// Specs returns the tier's members in master order.
func (t Tier) Specs() []Spec {
	var out []Spec
	for _, s := range All() {
		if specs[s].tier == t {
			out = append(out, s)
		}
	}
	return out
}

// Tier returns the size tier the spec belongs to.
// Invalid specs report TierUnknown.
func (s Spec) Tier() Tier {
	if !s.Valid() {
		return TierUnknown
	}
	return specs[s].tier
}

// ParseTier returns the tier with the given name, ignoring case.
func ParseTier(name string) (Tier, error) {
	for _, t := range Tiers() {
		if strings.EqualFold(t.String(), name) {
			return t, nil
		}
	}
	return 0, bnerrors.New(bnerrors.ErrCodeInvalidInput, "unknown tier %q (want small, medium, large or very-large)", name)
}

// Tiers returns every tier, smallest first.
func Tiers() []Tier {
	return []Tier{TierSmall, TierMedium, TierLarge, TierVeryLarge}
}

// All returns every spec in ascending order of node count. Each call
// returns a new slice.
func All() []Spec {
	out := make([]Spec, 0, numSpecs-1)
	for s := Tiny; s <= Link; s++ {
		out = append(out, s)
	}
	return out
}

// Names returns the lowercase names of All, in the same order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name()
	}
	return names
}

// Small returns networks with fewer than 20 nodes.
func Small() []Spec { return TierSmall.Specs() }

// Medium returns networks with 20 to 49 nodes.
func Medium() []Spec { return TierMedium.Specs() }

// Large returns networks with 50 to 99 nodes.
func Large() []Spec { return TierLarge.Specs() }

// VeryLarge returns networks with 100 to 999 nodes.
func VeryLarge() []Spec { return TierVeryLarge.Specs() }
