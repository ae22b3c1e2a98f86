// Package anneal implements simulated annealing for the K2 scheduling
// objective, sequentially and as a parallel multi-restart orchestration.
//
// Building blocks:
//
//   - Mutation - pluggable neighbor generation. A Mutation never modifies
//     its input; it returns an independently owned, structurally valid
//     solution. MoveOne is the concrete operator: relocate one random job
//     to a random position on a random processor.
//
//   - SimulatedAnnealing - the sequential loop. Owns a current/best
//     solution pair, one cooling.Schedule and one RNG; accepts worse
//     neighbors by the Metropolis rule exp(-delta/T); stops on stagnation
//     of the best solution or a hard iteration cap.
//
//   - ParallelManager - repeated "waves" of independent SimulatedAnnealing
//     runs across goroutines. Each wave seeds every worker from the current
//     global best (snapshot under a single exclusive lock), joins all
//     workers before the next wave starts, and stops once a configured
//     number of consecutive waves pass without improving the global best.
//
// Concurrency contract:
//   - globalBest is the only state shared across workers; every read and
//     write of it happens under one sync.Mutex, and only clones cross the
//     lock boundary - a solution is never aliased across goroutines.
//   - Each worker owns its RNG stream and its cooling.Schedule instance
//     (the CoolingFactory is invoked once per worker per wave).
//   - The Mutation is shared read-only and must be stateless.
//
// Randomness: seed derivation is centralized in rng.go. With
// ParallelParams.Seed == 0, the base seed is taken from the wall clock and
// parallel runs are not reproducible; a non-zero Seed switches to fully
// deterministic per-(wave, worker) streams.
//
// Guarantees: a run never returns a solution worse than its initial one,
// and the global best cost is non-increasing over time. Simulated annealing
// is a heuristic; global optimality is not guaranteed.
package anneal
