package cs146

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

//Interval is a central credible interval at the given level.
type Interval struct {
	Lower float64
	Upper float64
	Level float64 // e.g. 0.95
}

//Quantiler wraps the quantile (inverse CDF) function of a continuous distribution.
//All the distuv distributions used here satisfy it.
type Quantiler interface {
	Quantile(p float64) float64
}

//CredibleInterval will return the exact central interval of a distribution from its
//quantile function.
func CredibleInterval(q Quantiler, level float64) (Interval, error) {
	if level <= 0 || level >= 1 {
		return Interval{}, fmt.Errorf("cs146: credible level %g outside (0,1)", level)
	}
	tail := (1. - level) / 2.
	return Interval{
		Lower: q.Quantile(tail),
		Upper: q.Quantile(1. - tail),
		Level: level,
	}, nil
}

//MonteCarloInterval will return the empirical central interval of a set of draws.
//As the number of draws grows the bounds converge to the analytic quantiles of the
//sampled distribution.
func MonteCarloInterval(samples []float64, level float64) (Interval, error) {
	if level <= 0 || level >= 1 {
		return Interval{}, fmt.Errorf("cs146: credible level %g outside (0,1)", level)
	}
	if len(samples) < 2 {
		return Interval{}, fmt.Errorf("cs146: need at least 2 samples, got %d", len(samples))
	}
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)
	tail := (1. - level) / 2.
	return Interval{
		Lower: stat.Quantile(tail, stat.Empirical, sorted, nil),
		Upper: stat.Quantile(1.-tail, stat.Empirical, sorted, nil),
		Level: level,
	}, nil
}

//MeanInterval will return the analytic central interval for the mean under the
//distribution's Student's t marginal.
func (p *NormInvGamma) MeanInterval(level float64) (Interval, error) {
	return CredibleInterval(p.MeanMarginal(), level)
}

//VarianceInterval will return the analytic central interval for the variance under
//the distribution's inverse-gamma marginal.
func (p *NormInvGamma) VarianceInterval(level float64) (Interval, error) {
	if level <= 0 || level >= 1 {
		return Interval{}, fmt.Errorf("cs146: credible level %g outside (0,1)", level)
	}
	tail := (1. - level) / 2.
	return Interval{
		Lower: InverseGammaQuantile(p.Alpha, p.Beta, tail),
		Upper: InverseGammaQuantile(p.Alpha, p.Beta, 1.-tail),
		Level: level,
	}, nil
}
