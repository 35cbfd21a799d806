package cs146

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// Hyperparameter elicitation: recover distribution parameters from stated credible
// intervals. These replace the by-hand parameter searches that motivated them with
// explicit solvers that either converge to a stated tolerance or report failure.

//SolveNormalMean will return the mean and standard deviation of the normal
//distribution whose central interval at the given level is [lo, hi]. The solution
//is closed form.
func SolveNormalMean(lo, hi, level float64) (mu, sigma float64, err error) {
	if hi <= lo {
		return 0, 0, fmt.Errorf("cs146: empty interval [%g, %g]", lo, hi)
	}
	if level <= 0 || level >= 1 {
		return 0, 0, fmt.Errorf("cs146: credible level %g outside (0,1)", level)
	}
	mu = (lo + hi) / 2.
	sigma = (hi - lo) / (2. * zScore(level))
	return mu, sigma, nil
}

//SolveInverseGamma will find the shape and scale of the inverse-gamma distribution
//whose central interval at the given level is [lo, hi]. The ratio hi/lo pins down
//the shape alone, so the shape is bisected first and the scale then follows from
//the lower bound. A non-positive tol defaults to 1e-9. An error is returned when
//no shape in [1e-2, 1e4] can produce the requested interval ratio.
func SolveInverseGamma(lo, hi, level, tol float64) (alpha, beta float64, err error) {
	if lo <= 0 || hi <= lo {
		return 0, 0, fmt.Errorf("cs146: invalid variance interval [%g, %g]", lo, hi)
	}
	if level <= 0 || level >= 1 {
		return 0, 0, fmt.Errorf("cs146: credible level %g outside (0,1)", level)
	}
	if tol <= 0 {
		tol = 1e-9
	}
	tail := (1. - level) / 2.
	target := hi / lo
	// interval ratio at unit scale; strictly decreasing in the shape
	ratio := func(a float64) float64 {
		return mathext.GammaIncRegCompInv(a, tail) / mathext.GammaIncRegCompInv(a, 1.-tail)
	}
	aLo, aHi := 1e-2, 1e4
	if ratio(aLo) < target || ratio(aHi) > target {
		return 0, 0, fmt.Errorf("cs146: no inverse-gamma shape matches interval ratio %g at level %g", target, level)
	}
	for i := 0; i < 200; i++ {
		mid := math.Sqrt(aLo * aHi) // bisect in log space, the bracket spans orders of magnitude
		if ratio(mid) > target {
			aLo = mid
		} else {
			aHi = mid
		}
		if aHi-aLo <= tol*aLo {
			break
		}
	}
	alpha = math.Sqrt(aLo * aHi)
	if r := ratio(alpha); math.Abs(r-target) > 1e-6*target {
		return 0, 0, fmt.Errorf("cs146: inverse-gamma interval match did not converge (ratio %g, target %g)", r, target)
	}
	beta = lo * mathext.GammaIncRegCompInv(alpha, tail)
	return alpha, beta, nil
}

//SolveNIG will find the normal-inverse-gamma hyperparameters whose variance marginal
//has central interval [varLo, varHi] and whose mean marginal has central interval
//[meanLo, meanHi], both at the given level. The mean interval must be symmetric by
//construction; its center becomes Mu and its half-width fixes Nu through the
//Student's t marginal.
func SolveNIG(meanLo, meanHi, varLo, varHi, level, tol float64) (*NormInvGamma, error) {
	alpha, beta, err := SolveInverseGamma(varLo, varHi, level, tol)
	if err != nil {
		return nil, err
	}
	if meanHi <= meanLo {
		return nil, fmt.Errorf("cs146: empty mean interval [%g, %g]", meanLo, meanHi)
	}
	tail := (1. - level) / 2.
	tq := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: 2. * alpha}.Quantile(1. - tail)
	scale := (meanHi - meanLo) / (2. * tq) // sqrt(beta/(alpha*nu))
	nu := beta / (alpha * scale * scale)
	return InitNIG((meanLo+meanHi)/2., nu, alpha, beta), nil
}
