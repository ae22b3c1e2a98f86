package research

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/schedkit/schedkit/anneal"
	"github.com/schedkit/schedkit/cooling"
)

var (
	// ErrMode indicates an execution mode other than "seq" or "par".
	ErrMode = errors.New(`research: mode must be "seq" or "par"`)
	// ErrEmptyGrid indicates an empty M-list or N-list.
	ErrEmptyGrid = errors.New("research: m_list and n_list must not be empty")
	// ErrRuns indicates a non-positive repetition count.
	ErrRuns = errors.New("research: runs must be >= 1")
	// ErrCoolingKind indicates an unknown cooling kind.
	ErrCoolingKind = errors.New(`research: cooling kind must be "geometric", "linear" or "cauchy"`)
)

// Execution modes.
const (
	ModeSequential = "seq"
	ModeParallel   = "par"
)

// Cooling kinds accepted in sweep configurations.
const (
	CoolingGeometric = "geometric"
	CoolingLinear    = "linear"
	CoolingCauchy    = "cauchy"
)

// CoolingConfig selects one schedule variant and its parameters.
type CoolingConfig struct {
	// Kind is one of the Cooling* constants.
	Kind string `yaml:"kind"`
	// T0 is the initial temperature.
	T0 float64 `yaml:"t0"`
	// Param is the shape parameter: alpha (geometric), beta (linear) or
	// gamma (cauchy).
	Param float64 `yaml:"param"`
}

// Factory returns an anneal.CoolingFactory building independent schedules
// of the configured kind. Parameter validation happens inside the schedule
// constructors, so a bad configuration fails on first use.
func (c CoolingConfig) Factory() (anneal.CoolingFactory, error) {
	switch c.Kind {
	case CoolingGeometric:
		return func() (cooling.Schedule, error) { return cooling.NewGeometric(c.T0, c.Param) }, nil
	case CoolingLinear:
		return func() (cooling.Schedule, error) { return cooling.NewLinear(c.T0, c.Param) }, nil
	case CoolingCauchy:
		return func() (cooling.Schedule, error) { return cooling.NewCauchy(c.T0, c.Param) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrCoolingKind, c.Kind)
	}
}

// Sweep declares one experiment grid: every (M, N) pair is one case, run
// Runs times.
type Sweep struct {
	// Mode selects sequential ("seq") or parallel ("par") execution.
	Mode string `yaml:"mode"`

	// MList and NList span the instance grid.
	MList []int `yaml:"m_list"`
	NList []int `yaml:"n_list"`

	// PMin and PMax bound the generated processing times, 1 <= PMin <= PMax.
	PMin int64 `yaml:"p_min"`
	PMax int64 `yaml:"p_max"`

	// Runs is the number of repetitions per case, >= 1.
	Runs int `yaml:"runs"`

	// Cooling configures the temperature schedule shared by all cases.
	Cooling CoolingConfig `yaml:"cooling"`

	// MaxNoImprove and HardIterLimit bound every inner annealing run.
	MaxNoImprove  int `yaml:"max_no_improve"`
	HardIterLimit int `yaml:"hard_iter_limit"`

	// Workers and OuterNoImprove configure parallel mode; ignored for seq.
	Workers        int `yaml:"workers"`
	OuterNoImprove int `yaml:"outer_no_improve"`

	// Seed is the reproducibility anchor for instance generation and run
	// streams. Zero is a legal seed here (the runner offsets it per case).
	Seed int64 `yaml:"seed"`
}

// Validate fails fast on a malformed sweep declaration.
func (s Sweep) Validate() error {
	if s.Mode != ModeSequential && s.Mode != ModeParallel {
		return ErrMode
	}
	if len(s.MList) == 0 || len(s.NList) == 0 {
		return ErrEmptyGrid
	}
	if s.Runs < 1 {
		return ErrRuns
	}
	if _, err := s.Cooling.Factory(); err != nil {
		return err
	}

	inner := anneal.Params{MaxNoImprove: s.MaxNoImprove, HardIterLimit: s.HardIterLimit}
	if err := inner.Validate(); err != nil {
		return err
	}
	if s.Mode == ModeParallel {
		par := anneal.ParallelParams{
			Workers:        s.Workers,
			OuterNoImprove: s.OuterNoImprove,
			Inner:          inner,
		}
		if err := par.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// LoadSweep reads and validates a YAML sweep declaration.
func LoadSweep(path string) (Sweep, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Sweep{}, fmt.Errorf("research: read %s: %w", path, err)
	}

	return ParseSweep(raw)
}

// ParseSweep decodes and validates YAML bytes.
func ParseSweep(raw []byte) (Sweep, error) {
	var s Sweep
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Sweep{}, fmt.Errorf("research: parsing sweep: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Sweep{}, err
	}

	return s, nil
}
