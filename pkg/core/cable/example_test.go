package cable_test

import (
	"fmt"

	"github.com/matzehuels/ledwire/pkg/core/cable"
	"github.com/matzehuels/ledwire/pkg/core/grid"
	"github.com/matzehuels/ledwire/pkg/core/wiring"
)

func ExampleClassify() {
	panels, _ := grid.Build(10, 4)
	conns, _ := wiring.Derive(panels, 10, 4)

	for _, h := range cable.Harnesses {
		counts, err := cable.Classify(conns, cable.DefaultPolicy(h))
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%s: small=%d medium=%d large=%d\n", h.Title(), counts.Small, counts.Medium, counts.Large)
	}
	// Output:
	// LAN: small=33 medium=3 large=4
	// Power: small=32 medium=3 large=5
}

func ExampleClassify_invalidPolicy() {
	_, err := cable.Classify(nil, cable.RunPolicy{MaxRunLength: cable.RunLength(0)})
	fmt.Println(err)
	// Output:
	// INVALID_POLICY: max run length must be positive, got 0
}
