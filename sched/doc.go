// Package sched defines the scheduling problem and its candidate solutions.
//
// The problem: N independent, non-preemptive jobs must be placed on M
// identical parallel processors. The objective minimized downstream is the
// sum of job completion times (the K2 criterion); the makespan is exposed
// as an informational metric only.
//
// Two types live here:
//
//   - ProblemInstance - immutable description of one problem
//     (M processors, N jobs, processing-time vector).
//
//   - ScheduleSolution - one candidate assignment: an ordered job queue per
//     processor, with a lazily memoized K2 cost, deep cloning, and a full
//     validity check.
//
// BuildGreedy constructs the canonical starting solution via least-loaded
// list scheduling; it always yields a valid solution for a valid instance.
//
// Ownership:
//   - A ScheduleSolution holds a non-owning pointer to its ProblemInstance;
//     the instance must outlive every solution referencing it and is never
//     modified through a solution.
//   - Clone copies the assignment deeply but shares the instance pointer.
//
// Errors are strict sentinels (see errors.go); constructors fail fast and
// no function in this package panics or logs.
package sched
