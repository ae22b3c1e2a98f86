package sched

import "errors"

var (
	// ErrProcessorCount indicates a non-positive processor count M.
	ErrProcessorCount = errors.New("sched: processor count must be >= 1")
	// ErrJobCount indicates a non-positive job count N.
	ErrJobCount = errors.New("sched: job count must be >= 1")
	// ErrProcessingLength indicates len(p) != N.
	ErrProcessingLength = errors.New("sched: processing-time vector length must equal job count")
	// ErrProcessingTime indicates a processing time < 1.
	ErrProcessingTime = errors.New("sched: every processing time must be >= 1")
	// ErrNilInstance indicates a nil ProblemInstance where one is required.
	ErrNilInstance = errors.New("sched: problem instance must not be nil")
	// ErrProcessorIndex indicates a processor index outside [0, M).
	ErrProcessorIndex = errors.New("sched: processor index out of range")
	// ErrQueuePosition indicates a queue position outside the valid range.
	ErrQueuePosition = errors.New("sched: queue position out of range")
)
