package catalog_test

import (
	"fmt"

	"github.com/matzehuels/bnrepo/pkg/catalog"
)

func ExampleParse() {
	s, err := catalog.Parse("ALARM")
	if err != nil {
		fmt.Println(err)
		return
	}
	arcs, _ := s.Arcs()
	fmt.Println(s, s.Nodes(), arcs, s.Tier())
	// Output:
	// Alarm 37 46 medium
}

func ExampleParse_unknown() {
	_, err := catalog.Parse("asia")
	fmt.Println(err)
	// Output:
	// Got: asia, Expected one of: tiny, tiny2, cancer, sachs, insurance, water, mildew, alarm, barley, hailfinder, hepar2, win95pts, pathfinder, andes, diabetes, link
}

func ExampleSpec_Arcs() {
	for _, s := range catalog.Small() {
		if arcs, ok := s.Arcs(); ok {
			fmt.Printf("%s: %d arcs\n", s, arcs)
		} else {
			fmt.Printf("%s: not counted\n", s)
		}
	}
	// Output:
	// Tiny: not counted
	// Tiny2: not counted
	// Cancer: 4 arcs
	// Sachs: 17 arcs
}

func ExampleSpec_Network() {
	n, err := catalog.Cancer.Network()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(n.Nodes(), n.Arcs(), n.Parameters())
	fmt.Println(n.TopologicalOrder())
	// Output:
	// 5 4 10
	// [Pollution Smoker Cancer Xray Dyspnoea]
}

func ExampleTiers() {
	for _, t := range catalog.Tiers() {
		lo, hi := t.Bounds()
		fmt.Printf("%-10s [%d, %d) %v\n", t, lo, hi, t.Specs())
	}
	// Output:
	// small      [0, 20) [Tiny Tiny2 Cancer Sachs]
	// medium     [20, 50) [Insurance Water Mildew Alarm Barley]
	// large      [50, 100) [Hailfinder Hepar2 Win95pts]
	// very-large [100, 1000) [Pathfinder Andes Diabetes Link]
}
