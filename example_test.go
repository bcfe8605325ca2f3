package trajectory_test

import (
	"fmt"

	trajectory "github.com/tphakala/go-trajectory"
)

func ExampleAppendDerivatives() {
	controls, err := trajectory.AppendDerivatives([]float64{0, 2, 1, 4, 2, 0}, 1, 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(trajectory.FormatControlPoints(controls))
	// Output: [[0 0] [2 0] 1 4 [2 0] [0 0]]
}

func ExampleComputeRefTime() {
	d, err := trajectory.ComputeRefTime([]float64{0, 2, 8}, 7)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f\n", d)
	// Output: 1.1429
}
