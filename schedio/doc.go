// Package schedio loads, saves and generates scheduling problem instances.
//
// File format (CSV, two records):
//
//	M,N
//	p0,p1,...,p{N-1}
//
// The first record holds the processor and job counts; the second holds
// exactly N integral processing times. Whitespace around fields is
// tolerated on load; Save emits the canonical compact form.
//
// RandomInstance draws processing times uniformly from an inclusive
// [pMin, pMax] range using a caller-supplied random stream, so instance
// generation is reproducible under a fixed seed.
//
// All structural defects of an input file map to sentinel errors from this
// package; the numeric validity of the parsed instance itself is enforced
// by sched.NewInstance and surfaces as wrapped sched errors.
package schedio
