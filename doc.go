// Package schedkit schedules N independent, non-preemptive jobs on M
// identical parallel processors, minimizing the sum of job completion
// times via simulated annealing.
//
// What is schedkit?
//
//	A library-level optimization engine plus its offline collaborators:
//		• sched    - problem instances, candidate schedules, greedy construction
//		• cooling  - geometric, linear and Cauchy temperature schedules
//		• anneal   - the sequential SA loop and the parallel multi-restart manager
//		• schedio  - CSV instance load/save and reproducible random generation
//		• research - YAML-declared experiment sweeps with CSV aggregates
//		• cmd/schedkit - the CLI front-end (generate / solve / research)
//
// Why simulated annealing?
//
//   - The K2 criterion (sum of completion times) over per-processor job
//     orders has a combinatorial search space; annealing with the
//     Metropolis acceptance rule escapes the local optima a pure greedy
//     descent gets stuck in.
//   - The parallel manager runs waves of independent restarts that race
//     to improve one lock-guarded global best, so extra cores buy search
//     breadth without changing the sequential semantics.
//
// Quick sketch of one schedule for M=2, N=3, p=[3,5,2]:
//
//	P0: [job0][job2.]      C0=3, C2=5
//	P1: [job1....]         C1=5        ⇒ cost 13, makespan 5
//
// Start with sched.BuildGreedy for the canonical initial solution, then
// hand it to anneal.New or anneal.NewParallelManager.
package schedkit
