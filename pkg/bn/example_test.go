package bn_test

import (
	"fmt"

	"github.com/matzehuels/bnrepo/pkg/bn"
)

func ExampleFromJSON() {
	n, err := bn.FromJSON(`{
		"name": "sprinkler",
		"variables": [
			{"name": "Rain", "states": ["yes", "no"], "parents": [], "probabilities": [0.2, 0.8]},
			{"name": "Sprinkler", "states": ["on", "off"], "parents": ["Rain"], "probabilities": [0.01, 0.99, 0.4, 0.6]},
			{"name": "Wet", "states": ["yes", "no"], "parents": ["Rain", "Sprinkler"],
			 "probabilities": [0.99, 0.01, 0.8, 0.2, 0.9, 0.1, 0, 1]}
		]
	}`)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("nodes:", n.Nodes())
	fmt.Println("arcs:", n.Arcs())
	fmt.Println("parameters:", n.Parameters())
	fmt.Println("order:", n.TopologicalOrder())
	// Output:
	// nodes: 3
	// arcs: 3
	// parameters: 7
	// order: [Rain Sprinkler Wet]
}
