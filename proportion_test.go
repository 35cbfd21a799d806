package cs146

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMOE(t *testing.T) {
	m, err := MOE(0.5, 100, 0.95)
	assert.NoError(t, err)
	assert.InDelta(t, 1.959964*0.05, m, 1e-4)

	_, err = MOE(0.5, 0, 0.95)
	assert.Error(t, err)
	_, err = MOE(1.2, 100, 0.95)
	assert.Error(t, err)
	_, err = MOE(0.5, 100, 1.)
	assert.Error(t, err)
}

func TestNormalApprox(t *testing.T) {
	norm, err := NormalApprox(107, 141)
	assert.NoError(t, err)
	p := 107. / 141.
	assert.InDelta(t, p, norm.Mu, 1e-12)
	assert.InDelta(t, math.Sqrt(p*(1-p)/141.), norm.Sigma, 1e-12)

	_, err = NormalApprox(-1, 141)
	assert.Error(t, err)
	_, err = NormalApprox(5, 0)
	assert.Error(t, err)
}

func TestWaldIntervalCentersOnProportion(t *testing.T) {
	iv, err := WaldInterval(107, 141, 0.95)
	assert.NoError(t, err)
	p := 107. / 141.
	assert.InDelta(t, p, (iv.Lower+iv.Upper)/2., 1e-12)
	assert.Less(t, iv.Lower, p)
	assert.Greater(t, iv.Upper, p)
}

func TestWaldIntervalClamps(t *testing.T) {
	iv, err := WaldInterval(1, 10, 0.99)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, iv.Lower, 0.)
	iv, err = WaldInterval(10, 10, 0.95)
	assert.NoError(t, err)
	assert.LessOrEqual(t, iv.Upper, 1.)
}

func TestWilsonIntervalStaysInUnitRange(t *testing.T) {
	for _, c := range [][2]int{{0, 10}, {10, 10}, {1, 3}, {107, 141}} {
		iv, err := WilsonInterval(c[0], c[1], 0.95)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, iv.Lower, 0.)
		assert.LessOrEqual(t, iv.Upper, 1.)
		assert.LessOrEqual(t, iv.Lower, iv.Upper)
	}
}

// For large trial counts the score interval and the normal approximation agree.
func TestWilsonApproachesWaldForLargeN(t *testing.T) {
	wilson, err := WilsonInterval(7500, 10000, 0.95)
	assert.NoError(t, err)
	wald, err := WaldInterval(7500, 10000, 0.95)
	assert.NoError(t, err)
	assert.InDelta(t, wald.Lower, wilson.Lower, 1e-3)
	assert.InDelta(t, wald.Upper, wilson.Upper, 1e-3)
}

func TestWilsonIntervalValidates(t *testing.T) {
	_, err := WilsonInterval(5, 0, 0.95)
	assert.Error(t, err)
	_, err = WilsonInterval(11, 10, 0.95)
	assert.Error(t, err)
	_, err = WilsonInterval(5, 10, 0.)
	assert.Error(t, err)
}
