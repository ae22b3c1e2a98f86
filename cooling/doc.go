// Package cooling provides temperature schedules for simulated annealing.
//
// A Schedule is a small state machine producing a monotonically
// non-increasing temperature sequence:
//
//   - CurrentTemperature - pure read of the temperature at the current step.
//   - NextStep           - advance exactly one step per the variant formula.
//   - Reset              - return to T0 / step 0, used at the start of every
//     independent search run.
//
// Three variants are provided, all clamped to MinTemperature so the
// temperature never reaches zero or goes negative:
//
//   - Geometric: T_{k+1} = alpha · T_k,     0 < alpha < 1
//   - Linear:    T_{k+1} = T_k − beta,      beta > 0, T0 > beta
//   - Cauchy:    T_k     = T0 / (1 + gamma·k), gamma > 0
//
// Constructors validate their parameters and fail fast with sentinel
// errors; an invalid schedule is never handed back.
//
// Concurrency: a Schedule carries mutable state and must not be shared
// across goroutines; create one per worker (see anneal.CoolingFactory).
package cooling
