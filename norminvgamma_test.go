package cs146

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/integrate/quad"
)

func TestInitNIGValidates(t *testing.T) {
	assert.Panics(t, func() { InitNIG(0, 0, 1, 1) })
	assert.Panics(t, func() { InitNIG(0, 1, -2, 1) })
	assert.Panics(t, func() { InitNIG(0, 1, 1, 0) })
	assert.NotPanics(t, func() { InitNIG(-3, 0.5, 2, 0.1) })
}

func TestProbOutsideSupport(t *testing.T) {
	p := InitNIG(0, 1, 2, 1)
	assert.Equal(t, 0., p.Prob(0.5, 0))
	assert.Equal(t, 0., p.Prob(0.5, -1))
	assert.True(t, math.IsInf(p.LogProb(0.5, -1), -1))
}

// The joint density must integrate to 1 over the (x, sigma2>0) plane. The inner
// integral is taken over +-10 conditional standard deviations around Mu so the
// Gaussian factor is resolved at every variance node.
func TestProbNormalizes(t *testing.T) {
	p := InitNIG(1.5, 2., 3., 1.2)
	total := quad.Fixed(func(s2 float64) float64 {
		sd := math.Sqrt(s2 / p.Nu)
		return quad.Fixed(func(x float64) float64 {
			return p.Prob(x, s2)
		}, p.Mu-10.*sd, p.Mu+10.*sd, 120, nil, 0)
	}, 1e-6, 80., 400, nil, 0)
	assert.InDelta(t, 1., total, 1e-3)
}

func TestLogProbMatchesProb(t *testing.T) {
	p := InitNIG(-0.5, 3., 2.5, 0.8)
	for _, c := range [][2]float64{{0, 0.5}, {-1, 0.2}, {2, 3}, {-0.5, 0.4}} {
		assert.InDelta(t, math.Log(p.Prob(c[0], c[1])), p.LogProb(c[0], c[1]), 1e-12)
	}
}

func TestRandNValidates(t *testing.T) {
	p := InitNIG(0, 1, 2, 1)
	assert.Panics(t, func() { p.RandN(0) })
}

// Empirical 2.5/97.5 percentiles of both marginals must converge to the analytic
// quantiles for large draw counts.
func TestSamplerMarginalQuantiles(t *testing.T) {
	p := InitNIG(0., 2., 4., 3.)
	p.Src = rand.NewSource(1)
	draws := p.RandN(200000)
	xs := make([]float64, len(draws))
	vs := make([]float64, len(draws))
	for i, d := range draws {
		xs[i] = d.X
		vs[i] = d.Sigma2
		assert.Greater(t, d.Sigma2, 0.)
	}
	mcMean, err := MonteCarloInterval(xs, 0.95)
	assert.NoError(t, err)
	mcVar, err := MonteCarloInterval(vs, 0.95)
	assert.NoError(t, err)

	st := p.MeanMarginal()
	assert.InEpsilon(t, st.Quantile(0.025), mcMean.Lower, 0.05)
	assert.InEpsilon(t, st.Quantile(0.975), mcMean.Upper, 0.05)
	assert.InEpsilon(t, InverseGammaQuantile(p.Alpha, p.Beta, 0.025), mcVar.Lower, 0.05)
	assert.InEpsilon(t, InverseGammaQuantile(p.Alpha, p.Beta, 0.975), mcVar.Upper, 0.05)
}

func TestMeanMarginal(t *testing.T) {
	p := InitNIG(1., 4., 3., 2.)
	st := p.MeanMarginal()
	assert.Equal(t, 1., st.Mu)
	assert.Equal(t, 6., st.Nu)
	assert.InDelta(t, math.Sqrt(2./12.), st.Sigma, 1e-12)
}

func TestPredictiveWiderThanMeanMarginal(t *testing.T) {
	p := InitNIG(1., 4., 3., 2.)
	assert.Greater(t, p.Predictive().Sigma, p.MeanMarginal().Sigma)
	assert.Equal(t, p.MeanMarginal().Nu, p.Predictive().Nu)
}

func TestInverseGammaQuantileInvertsCDF(t *testing.T) {
	ig := InitNIG(0, 1, 2.5, 1.7).VarianceMarginal()
	for _, prob := range []float64{0.025, 0.25, 0.5, 0.75, 0.975} {
		q := InverseGammaQuantile(2.5, 1.7, prob)
		assert.InDelta(t, prob, ig.CDF(q), 1e-10)
	}
}
