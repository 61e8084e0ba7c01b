package catalog

import (
	"slices"
	"testing"
)

func TestAllOrderedBySize(t *testing.T) {
	all := All()
	if len(all) != 16 {
		t.Fatalf("len(All()) = %d, want 16", len(all))
	}

	seen := make(map[Spec]bool)
	for i, s := range all {
		if !s.Valid() {
			t.Errorf("All()[%d] = %d is not valid", i, s)
		}
		if seen[s] {
			t.Errorf("All() repeats %s", s)
		}
		seen[s] = true
		if i > 0 && all[i-1].Nodes() > s.Nodes() {
			t.Errorf("All() not sorted: %s (%d) before %s (%d)", all[i-1], all[i-1].Nodes(), s, s.Nodes())
		}
	}
}

func TestAllIsRestartable(t *testing.T) {
	first := All()
	first[0] = Link
	if second := All(); second[0] != Tiny {
		t.Errorf("All()[0] = %s after mutating a previous result, want Tiny", second[0])
	}
}

func TestTiersPartitionAll(t *testing.T) {
	tiers := map[string]struct {
		specs []Spec
		tier  Tier
	}{
		"small":      {Small(), TierSmall},
		"medium":     {Medium(), TierMedium},
		"large":      {Large(), TierLarge},
		"very-large": {VeryLarge(), TierVeryLarge},
	}

	var union []Spec
	for name, tt := range tiers {
		t.Run(name, func(t *testing.T) {
			if tt.tier.String() != name {
				t.Errorf("String() = %q, want %q", tt.tier.String(), name)
			}
			if len(tt.specs) == 0 {
				t.Fatal("tier is empty")
			}
			lo, hi := tt.tier.Bounds()
			for _, s := range tt.specs {
				if s.Nodes() < lo || s.Nodes() >= hi {
					t.Errorf("%s has %d nodes, outside [%d, %d)", s, s.Nodes(), lo, hi)
				}
				if s.Tier() != tt.tier {
					t.Errorf("%s.Tier() = %s, want %s", s, s.Tier(), tt.tier)
				}
			}
			// same relative order as All
			if !slices.IsSortedFunc(tt.specs, func(a, b Spec) int { return int(a - b) }) {
				t.Errorf("tier order %v differs from All()", tt.specs)
			}
		})
		union = append(union, tt.specs...)
	}

	slices.Sort(union)
	if !slices.Equal(union, All()) {
		t.Errorf("tiers cover %v, want exactly %v", union, All())
	}
}

func TestTierMembers(t *testing.T) {
	tests := []struct {
		tier Tier
		want []Spec
	}{
		{TierSmall, []Spec{Tiny, Tiny2, Cancer, Sachs}},
		{TierMedium, []Spec{Insurance, Water, Mildew, Alarm, Barley}},
		{TierLarge, []Spec{Hailfinder, Hepar2, Win95pts}},
		{TierVeryLarge, []Spec{Pathfinder, Andes, Diabetes, Link}},
	}

	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			if got := tt.tier.Specs(); !slices.Equal(got, tt.want) {
				t.Errorf("Specs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTiersBoundsAreContiguous(t *testing.T) {
	prevHi := 0
	for _, tier := range Tiers() {
		lo, hi := tier.Bounds()
		if lo != prevHi {
			t.Errorf("%s starts at %d, want %d", tier, lo, prevHi)
		}
		if hi <= lo {
			t.Errorf("%s has empty range [%d, %d)", tier, lo, hi)
		}
		prevHi = hi
	}
}

func TestParseTier(t *testing.T) {
	for _, tier := range Tiers() {
		got, err := ParseTier(tier.String())
		if err != nil || got != tier {
			t.Errorf("ParseTier(%q) = %v, %v", tier.String(), got, err)
		}
	}
	if got, err := ParseTier("Very-Large"); err != nil || got != TierVeryLarge {
		t.Errorf("ParseTier(Very-Large) = %v, %v", got, err)
	}
	if _, err := ParseTier("huge"); err == nil {
		t.Error("ParseTier(huge) should fail")
	}
	if got := Tier(9).String(); got != "unknown" {
		t.Errorf("Tier(9).String() = %q", got)
	}
}

func TestMetadata(t *testing.T) {
	tests := []struct {
		spec       Spec
		nodes      int
		arcs       int
		parameters int
	}{
		{Cancer, 5, 4, 10},
		{Sachs, 11, 17, 178},
		{Insurance, 27, 52, 1008},
		{Water, 32, 66, 10083},
		{Mildew, 35, 46, 540150},
		{Alarm, 37, 46, 509},
		{Barley, 48, 84, 114005},
		{Hailfinder, 56, 66, 2656},
		{Hepar2, 70, 123, 1453},
		{Win95pts, 76, 112, 574},
		{Pathfinder, 109, 195, 72079},
		{Andes, 223, 338, 1157},
		{Diabetes, 413, 602, 429409},
		{Link, 724, 1125, 14211},
	}

	for _, tt := range tests {
		t.Run(tt.spec.String(), func(t *testing.T) {
			if got := tt.spec.Nodes(); got != tt.nodes {
				t.Errorf("Nodes() = %d, want %d", got, tt.nodes)
			}
			if got, ok := tt.spec.Arcs(); !ok || got != tt.arcs {
				t.Errorf("Arcs() = %d, %v, want %d, true", got, ok, tt.arcs)
			}
			if got, ok := tt.spec.Parameters(); !ok || got != tt.parameters {
				t.Errorf("Parameters() = %d, %v, want %d, true", got, ok, tt.parameters)
			}
		})
	}
}

func TestUnspecifiedMetadata(t *testing.T) {
	for _, s := range []Spec{Tiny, Tiny2} {
		t.Run(s.String(), func(t *testing.T) {
			if s.Nodes() == 0 {
				t.Error("Nodes() should always be known")
			}
			if _, ok := s.Arcs(); ok {
				t.Error("Arcs() should be unspecified")
			}
			if _, ok := s.Parameters(); ok {
				t.Error("Parameters() should be unspecified")
			}
		})
	}

	var counted int
	for _, s := range All() {
		if _, ok := s.Arcs(); ok {
			counted++
		}
	}
	if counted != 14 {
		t.Errorf("%d specs have arc counts, want 14", counted)
	}
}

func TestStringAndName(t *testing.T) {
	tests := []struct {
		spec    Spec
		display string
		name    string
	}{
		{Win95pts, "Win95pts", "win95pts"},
		{Tiny2, "Tiny2", "tiny2"},
		{Hepar2, "Hepar2", "hepar2"},
		{Spec(0), "Spec(0)", "spec(0)"},
		{Spec(99), "Spec(99)", "spec(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.display, func(t *testing.T) {
			if got := tt.spec.String(); got != tt.display {
				t.Errorf("String() = %q, want %q", got, tt.display)
			}
			if got := tt.spec.Name(); got != tt.name {
				t.Errorf("Name() = %q, want %q", got, tt.name)
			}
		})
	}
}

func TestInvalidSpecMetadata(t *testing.T) {
	var s Spec
	if s.Valid() {
		t.Fatal("zero Spec should not be valid")
	}
	if s.Nodes() != 0 {
		t.Errorf("Nodes() = %d, want 0", s.Nodes())
	}
	if _, ok := s.Arcs(); ok {
		t.Error("Arcs() should be unspecified for an invalid spec")
	}

	for _, bad := range []Spec{0, -1, numSpecs, 99} {
		if got := bad.Tier(); got != TierUnknown {
			t.Errorf("%s.Tier() = %s, want %s", bad, got, TierUnknown)
		}
		if got := bad.Payload(); got != PayloadUnknown {
			t.Errorf("%s.Payload() = %s, want %s", bad, got, PayloadUnknown)
		}
	}
	if got := TierUnknown.String(); got != "unknown" {
		t.Errorf("TierUnknown.String() = %q, want unknown", got)
	}
	if members := TierUnknown.Specs(); len(members) != 0 {
		t.Errorf("TierUnknown.Specs() = %v, want none", members)
	}
	if lo, hi := TierUnknown.Bounds(); lo != 0 || hi != 0 {
		t.Errorf("TierUnknown.Bounds() = [%d, %d), want empty", lo, hi)
	}
}
