package cs146

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Normal approximation helpers for a binomial proportion. MOE and WaldInterval use
// the plain normal approximation; WilsonInterval is the score interval, which
// behaves better for small samples and proportions near 0 or 1.

//MOE will return the margin of error of the normal approximation to a proportion p
//estimated from the given number of trials, z * sqrt(p(1-p)/n).
func MOE(p float64, trials int, level float64) (float64, error) {
	if trials <= 0 {
		return 0, fmt.Errorf("cs146: non-positive trial count %d", trials)
	}
	if p < 0 || p > 1 {
		return 0, fmt.Errorf("cs146: proportion %g outside [0,1]", p)
	}
	if level <= 0 || level >= 1 {
		return 0, fmt.Errorf("cs146: confidence level %g outside (0,1)", level)
	}
	return zScore(level) * math.Sqrt(p*(1.-p)/float64(trials)), nil
}

//NormalApprox will return the normal approximation to the sampling distribution of
//the observed proportion successes/trials.
func NormalApprox(successes, trials int) (distuv.Normal, error) {
	if trials <= 0 {
		return distuv.Normal{}, fmt.Errorf("cs146: non-positive trial count %d", trials)
	}
	if successes < 0 || successes > trials {
		return distuv.Normal{}, fmt.Errorf("cs146: successes %d outside 0..%d", successes, trials)
	}
	p := float64(successes) / float64(trials)
	return distuv.Normal{Mu: p, Sigma: math.Sqrt(p * (1. - p) / float64(trials))}, nil
}

//WaldInterval will return the normal-approximation confidence interval for the
//underlying proportion, clamped to [0,1].
func WaldInterval(successes, trials int, level float64) (Interval, error) {
	if trials <= 0 {
		return Interval{}, fmt.Errorf("cs146: non-positive trial count %d", trials)
	}
	if successes < 0 || successes > trials {
		return Interval{}, fmt.Errorf("cs146: successes %d outside 0..%d", successes, trials)
	}
	p := float64(successes) / float64(trials)
	m, err := MOE(p, trials, level)
	if err != nil {
		return Interval{}, err
	}
	return Interval{
		Lower: math.Max(0., p-m),
		Upper: math.Min(1., p+m),
		Level: level,
	}, nil
}

//WilsonInterval will return the Wilson score confidence interval for the underlying
//proportion. The interval center is shrunk toward 1/2, which keeps the bounds inside
//[0,1] and honest for small trial counts.
func WilsonInterval(successes, trials int, level float64) (Interval, error) {
	if trials <= 0 {
		return Interval{}, fmt.Errorf("cs146: non-positive trial count %d", trials)
	}
	if successes < 0 || successes > trials {
		return Interval{}, fmt.Errorf("cs146: successes %d outside 0..%d", successes, trials)
	}
	if level <= 0 || level >= 1 {
		return Interval{}, fmt.Errorf("cs146: confidence level %g outside (0,1)", level)
	}
	z := zScore(level)
	p := float64(successes) / float64(trials)
	n := float64(trials)
	denom := 1. + z*z/n
	center := (p + z*z/(2.*n)) / denom
	spread := (z / denom) * math.Sqrt(p*(1.-p)/n+z*z/(4.*n*n))
	return Interval{
		Lower: math.Max(0., center-spread),
		Upper: math.Min(1., center+spread),
		Level: level,
	}, nil
}

func zScore(level float64) float64 {
	return distuv.UnitNormal.Quantile(0.5 + level/2.)
}
