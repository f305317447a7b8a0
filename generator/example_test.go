package generator_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/generator"
)

// ExampleGenerate builds an acyclic 5×5 maze with each algorithm. Without
// cycles every result is a spanning tree: 25 cells joined by 24 links.
func ExampleGenerate() {
	for _, alg := range generator.Algorithms() {
		m, err := generator.Generate(alg, false, 5, 5, generator.WithSeed(7))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: %dx%d, %d links\n", alg, m.Height(), m.Width(), m.EdgeCount())
	}
	// Output:
	// kruskal: 5x5, 24 links
	// prim: 5x5, 24 links
	// eulerian: 5x5, 24 links
}

// ExampleParseAlgorithm resolves user input to a selector.
func ExampleParseAlgorithm() {
	alg, err := generator.ParseAlgorithm("Euler")
	fmt.Println(alg, err)

	_, err = generator.ParseAlgorithm("wilson")
	fmt.Println(err)
	// Output:
	// eulerian <nil>
	// generator: unknown algorithm: "wilson"
}
