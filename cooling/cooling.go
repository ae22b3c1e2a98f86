// Package cooling - the three schedule implementations.
//
// All variants embed a shared base holding T0, the current temperature and
// the step counter; each NextStep applies the variant formula and clamps the
// result with clampPositive. Comparisons use the !(x > 0) form so NaN
// parameters fail validation instead of slipping through.
package cooling

// base carries the state shared by every schedule variant.
type base struct {
	t0    float64 // initial temperature, > 0
	tCurr float64 // current temperature, always clamped > 0
	step  int     // cooling step index, 0 at reset
}

// newBase validates T0 and seeds the state at step 0.
func newBase(t0 float64) (base, error) {
	if !(t0 > 0) {
		return base{}, ErrInitialTemperature
	}

	return base{t0: t0, tCurr: t0}, nil
}

// CurrentTemperature implements Schedule.
func (b *base) CurrentTemperature() float64 { return b.tCurr }

// Reset implements Schedule: back to T0, step 0.
func (b *base) Reset() {
	b.tCurr = b.t0
	b.step = 0
}

// clampPositive floors t at MinTemperature; NaN and negatives also land on
// the floor, keeping downstream exp(-delta/T) finite.
func clampPositive(t float64) float64 {
	if !(t > MinTemperature) {
		return MinTemperature
	}

	return t
}

// Geometric implements T_{k+1} = alpha · T_k with 0 < alpha < 1.
type Geometric struct {
	base
	alpha float64
}

// NewGeometric validates T0 > 0 and alpha ∈ (0, 1).
func NewGeometric(t0, alpha float64) (*Geometric, error) {
	b, err := newBase(t0)
	if err != nil {
		return nil, err
	}
	if !(alpha > 0 && alpha < 1) {
		return nil, ErrAlphaRange
	}

	return &Geometric{base: b, alpha: alpha}, nil
}

// NextStep implements Schedule.
func (g *Geometric) NextStep() {
	g.tCurr = clampPositive(g.tCurr * g.alpha)
	g.step++
}

// Linear implements T_{k+1} = T_k − beta with beta > 0 and T0 > beta.
type Linear struct {
	base
	beta float64
}

// NewLinear validates T0 > 0, beta > 0 and T0 > beta. The last condition
// rejects parameters that would drop the temperature to the floor on the
// very first step.
func NewLinear(t0, beta float64) (*Linear, error) {
	b, err := newBase(t0)
	if err != nil {
		return nil, err
	}
	if !(beta > 0) {
		return nil, ErrBetaRange
	}
	if !(t0 > beta) {
		return nil, ErrBetaExceedsT0
	}

	return &Linear{base: b, beta: beta}, nil
}

// NextStep implements Schedule.
func (l *Linear) NextStep() {
	l.tCurr = clampPositive(l.tCurr - l.beta)
	l.step++
}

// Cauchy implements the inverse-time schedule T_k = T0 / (1 + gamma·k)
// with gamma > 0. The temperature tends to zero asymptotically without
// ever reaching it.
type Cauchy struct {
	base
	gamma float64
}

// NewCauchy validates T0 > 0 and gamma > 0.
func NewCauchy(t0, gamma float64) (*Cauchy, error) {
	b, err := newBase(t0)
	if err != nil {
		return nil, err
	}
	if !(gamma > 0) {
		return nil, ErrGammaRange
	}

	return &Cauchy{base: b, gamma: gamma}, nil
}

// NextStep implements Schedule. The formula is evaluated at the incremented
// step index so the call yields T_{k+1}, not T_k again.
func (c *Cauchy) NextStep() {
	k := c.step + 1
	c.tCurr = clampPositive(c.t0 / (1 + c.gamma*float64(k)))
	c.step = k
}
