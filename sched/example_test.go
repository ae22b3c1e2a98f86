// File: sched/example_test.go
package sched_test

import (
	"fmt"

	"github.com/schedkit/schedkit/sched"
)

// ExampleBuildGreedy demonstrates the least-loaded construction on the
// canonical two-processor instance.
// Scenario:
//
//   - M=2 processors, N=3 jobs, processing times p=[3,5,2]
//   - job 0 → P0 (load 3), job 1 → P1 (load 5), job 2 → P0 (load 5)
//   - completion times: C0=3, C2=5, C1=5 ⇒ K2 cost 13, makespan 5
//
// Complexity: O(N·M)
func ExampleBuildGreedy() {
	inst, _ := sched.NewInstance(2, 3, []int64{3, 5, 2})
	sol, _ := sched.BuildGreedy(inst)

	fmt.Println("valid:", sol.IsValid())
	fmt.Println("assignment:", sol.Assignment())
	fmt.Println("cost:", sol.Cost())
	fmt.Println("makespan:", sol.Makespan())
	// Output:
	// valid: true
	// assignment: [[0 2] [1]]
	// cost: 13
	// makespan: 5
}
