package subsets_test

import (
	"fmt"

	"github.com/katalvlaran/lvlcomp/subsets"
)

// ExampleIncreasing enumerates the unique non-empty subsets of {x, y, z},
// smallest first.
func ExampleIncreasing() {
	for s := range subsets.Increasing([]string{"x", "y", "z"}) {
		fmt.Println(s)
	}
	// Output:
	// [x]
	// [y]
	// [z]
	// [x y]
	// [x z]
	// [y z]
	// [x y z]
}
