// Package research runs repeatable experiment sweeps over the annealing
// engine and aggregates the outcomes.
//
// A Sweep is declared as data (typically a YAML file): the instance grid
// (M-list, N-list, processing-time range), a cooling configuration, the
// inner/outer search limits, the execution mode (sequential or parallel)
// and the number of repeated runs per case. The Runner executes every case,
// collects per-run final costs and wall times, and reduces them to
// best/mean/std records suitable for CSV export and plotting.
//
// Reproducibility: instances are generated from Seed+case offsets and each
// repetition r uses Seed+r, so a fixed Seed reproduces the whole sweep in
// sequential mode (parallel mode inherits the engine's determinism rules).
//
// This package is a collaborator of the core engine, not part of it: it
// talks to sched/cooling/anneal only through their public constructors and
// Run entry points.
package research
