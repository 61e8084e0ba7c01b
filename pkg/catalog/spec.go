package catalog

import (
	"errors"
	"fmt"
	"strings"

	bnerrors "github.com/matzehuels/bnrepo/pkg/errors"
)

// Spec identifies one benchmark network in the catalog.
//
// Specs are declared in ascending order of node count, so declaration
// order is the catalog's master ordering. The zero value is not a valid
// Spec.
type Spec int

// The catalog, smallest network first.
const (
	Tiny Spec = iota + 1
	Tiny2
	Cancer
	Sachs
	Insurance
	Water
	Mildew
	Alarm
	Barley
	Hailfinder
	Hepar2
	Win95pts
	Pathfinder
	Andes
	Diabetes
	Link

	numSpecs = iota + 1
)

// info is the curated record for one spec. arcs and parameters are only
// meaningful when counted is set.
type info struct {
	name       string
	nodes      int
	arcs       int
	parameters int
	counted    bool
	tier       Tier
	payload    Payload
}

// Arc and parameter counts follow https://www.bnlearn.com/bnrepository.
// Tiny and Tiny2 are not listed there and have not been counted. The payload
// column must be updated whenever bnrepo pack replaces a stand-in.
var specs = [numSpecs]info{
	Tiny:       {name: "Tiny", nodes: 1, tier: TierSmall, payload: PayloadToy},
	Tiny2:      {name: "Tiny2", nodes: 5, tier: TierSmall, payload: PayloadToy},
	Cancer:     {name: "Cancer", nodes: 5, arcs: 4, parameters: 10, counted: true, tier: TierSmall, payload: PayloadPublished},
	Sachs:      {name: "Sachs", nodes: 11, arcs: 17, parameters: 178, counted: true, tier: TierSmall, payload: PayloadStandIn},
	Insurance:  {name: "Insurance", nodes: 27, arcs: 52, parameters: 1008, counted: true, tier: TierMedium, payload: PayloadStandIn},
	Water:      {name: "Water", nodes: 32, arcs: 66, parameters: 10083, counted: true, tier: TierMedium, payload: PayloadStandIn},
	Mildew:     {name: "Mildew", nodes: 35, arcs: 46, parameters: 540150, counted: true, tier: TierMedium, payload: PayloadStandIn},
	Alarm:      {name: "Alarm", nodes: 37, arcs: 46, parameters: 509, counted: true, tier: TierMedium, payload: PayloadStandIn},
	Barley:     {name: "Barley", nodes: 48, arcs: 84, parameters: 114005, counted: true, tier: TierMedium, payload: PayloadStandIn},
	Hailfinder: {name: "Hailfinder", nodes: 56, arcs: 66, parameters: 2656, counted: true, tier: TierLarge, payload: PayloadStandIn},
	Hepar2:     {name: "Hepar2", nodes: 70, arcs: 123, parameters: 1453, counted: true, tier: TierLarge, payload: PayloadStandIn},
	Win95pts:   {name: "Win95pts", nodes: 76, arcs: 112, parameters: 574, counted: true, tier: TierLarge, payload: PayloadStandIn},
	Pathfinder: {name: "Pathfinder", nodes: 109, arcs: 195, parameters: 72079, counted: true, tier: TierVeryLarge, payload: PayloadStandIn},
	Andes:      {name: "Andes", nodes: 223, arcs: 338, parameters: 1157, counted: true, tier: TierVeryLarge, payload: PayloadStandIn},
	Diabetes:   {name: "Diabetes", nodes: 413, arcs: 602, parameters: 429409, counted: true, tier: TierVeryLarge, payload: PayloadStandIn},
	Link:       {name: "Link", nodes: 724, arcs: 1125, parameters: 14211, counted: true, tier: TierVeryLarge, payload: PayloadStandIn},
}

// byName maps lowercase names to specs.
var byName = func() map[string]Spec {
	m := make(map[string]Spec, numSpecs-1)
	for _, s := range All() {
		m[strings.ToLower(specs[s].name)] = s
	}
	return m
}()

// Valid reports whether s is one of the declared specs.
func (s Spec) Valid() bool { return s >= Tiny && s <= Link }

// String returns the display name as declared, e.g. "Win95pts".
func (s Spec) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Spec(%d)", int(s))
	}
	return specs[s].name
}

// Name returns the canonical lowercase name, e.g. "win95pts". It is the
// form used by Parse diagnostics, text marshaling and resource files.
func (s Spec) Name() string { return strings.ToLower(s.String()) }

// ErrUnknownSpec matches every error returned for a string that names no
// spec. Use errors.Is(err, ErrUnknownSpec) or errors.As with *ParseError.
var ErrUnknownSpec = errors.New("unknown network")

// ParseError reports a string that does not name any spec.
type ParseError struct {
	Input    string   // the rejected string, verbatim
	Expected []string // every valid lowercase name, smallest network first
}

// Error lists every valid name so that the message alone tells the user
// what to type.
func (e *ParseError) Error() string {
	return fmt.Sprintf("Got: %s, Expected one of: %s", e.Input, strings.Join(e.Expected, ", "))
}

// Is makes errors.Is(err, ErrUnknownSpec) hold.
func (e *ParseError) Is(target error) bool { return target == ErrUnknownSpec }

// Code returns the error code for this error type.
func (e *ParseError) Code() bnerrors.Code { return bnerrors.ErrCodeUnknownSpec }

// Parse returns the spec named by s, ignoring ASCII case.
// On failure the error is a *ParseError listing every valid name.
func Parse(s string) (Spec, error) {
	if spec, ok := byName[asciiLower(s)]; ok {
		return spec, nil
	}
	return 0, &ParseError{Input: s, Expected: Names()}
}

// MarshalText encodes s as its canonical lowercase name.
func (s Spec) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, bnerrors.New(bnerrors.ErrCodeInvalidInput, "cannot marshal %s", s)
	}
	return []byte(s.Name()), nil
}

// UnmarshalText decodes a name with the same rules as Parse.
func (s *Spec) UnmarshalText(text []byte) error {
	spec, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = spec
	return nil
}

// asciiLower folds only A-Z so that non-ASCII look-alikes never match a
// catalog name.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
