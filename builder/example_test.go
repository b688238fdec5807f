// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/spantree/builder"
)

// ExampleBuildGraph builds a weighted wheel next to a lone vertex.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.Option{builder.WithWeightFn(builder.SequenceWeightFn(1, 1))},
		builder.Wheel(4),
		builder.Isolated(1),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("vertices:", g.VertexCount())
	for _, e := range g.Edges() {
		fmt.Println(e)
	}
	// Output:
	// vertices: 5
	// 0 -- 1 == 1
	// 0 -- 2 == 2
	// 0 -- 3 == 3
	// 1 -- 2 == 4
	// 2 -- 3 == 5
	// 3 -- 1 == 6
}
