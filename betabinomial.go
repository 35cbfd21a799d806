package cs146

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/combin"
	"gonum.org/v1/gonum/stat/distuv"
)

//BetaBinomial is the distribution of the number of successes in N trials when the
//success probability itself follows Beta(Alpha, Beta). It is the marginal likelihood
//of binomial count data under a beta prior, and the posterior predictive after a
//conjugate update.
type BetaBinomial struct {
	N     int // number of trials
	Alpha float64
	Beta  float64
	Src   rand.Source
}

//InitBetaBinomial will initialize a beta-binomial distribution over 0..n successes.
func InitBetaBinomial(n int, alpha, beta float64) *BetaBinomial {
	if n < 0 {
		panic("cs146: negative trial count")
	}
	if alpha <= 0 || beta <= 0 {
		panic("cs146: non-positive beta-binomial hyperparameter")
	}
	b := new(BetaBinomial)
	b.N = n
	b.Alpha = alpha
	b.Beta = beta
	return b
}

//LogProb will return the log probability of exactly k successes,
//log C(n,k) + log B(k+alpha, n-k+beta) - log B(alpha, beta).
func (b *BetaBinomial) LogProb(k int) float64 {
	if k < 0 || k > b.N {
		return math.Inf(-1)
	}
	n := float64(b.N)
	kf := float64(k)
	return combin.LogGeneralizedBinomial(n, kf) +
		lbeta(kf+b.Alpha, n-kf+b.Beta) - lbeta(b.Alpha, b.Beta)
}

//Prob will return the probability of exactly k successes. Zero outside 0..N.
func (b *BetaBinomial) Prob(k int) float64 {
	if k < 0 || k > b.N {
		return 0.
	}
	return math.Exp(b.LogProb(k))
}

//CDF will return the probability of k or fewer successes.
func (b *BetaBinomial) CDF(k int) float64 {
	if k < 0 {
		return 0.
	}
	if k >= b.N {
		return 1.
	}
	sum := 0.
	for i := 0; i <= k; i++ {
		sum += b.Prob(i)
	}
	if sum > 1. {
		sum = 1.
	}
	return sum
}

//Mean will return the expected number of successes, N*Alpha/(Alpha+Beta).
func (b *BetaBinomial) Mean() float64 {
	return float64(b.N) * b.Alpha / (b.Alpha + b.Beta)
}

//Variance will return the variance of the success count.
func (b *BetaBinomial) Variance() float64 {
	n := float64(b.N)
	s := b.Alpha + b.Beta
	return n * b.Alpha * b.Beta * (s + n) / (s * s * (s + 1.))
}

//Rand will draw a success count by first drawing a success probability from the
//beta mixing distribution and then a binomial count conditioned on it.
func (b *BetaBinomial) Rand() int {
	p := distuv.Beta{Alpha: b.Alpha, Beta: b.Beta, Src: b.Src}.Rand()
	k := distuv.Binomial{N: float64(b.N), P: p, Src: b.Src}.Rand()
	return int(k)
}

//PosteriorBeta will return the conjugate posterior over the success probability
//after observing the given success and failure counts under the Beta(Alpha, Beta) prior.
func (b *BetaBinomial) PosteriorBeta(successes, failures int) (distuv.Beta, error) {
	if successes < 0 || failures < 0 {
		return distuv.Beta{}, fmt.Errorf("cs146: negative count (%d successes, %d failures)", successes, failures)
	}
	if successes+failures == 0 {
		return distuv.Beta{}, fmt.Errorf("cs146: posterior update requires at least one trial")
	}
	return distuv.Beta{
		Alpha: b.Alpha + float64(successes),
		Beta:  b.Beta + float64(failures),
		Src:   b.Src,
	}, nil
}

//Predictive will return the posterior-predictive distribution of the success count
//in m future trials, after updating on the observed successes and failures.
func (b *BetaBinomial) Predictive(successes, failures, m int) (*BetaBinomial, error) {
	if m < 0 {
		return nil, fmt.Errorf("cs146: negative future trial count %d", m)
	}
	post, err := b.PosteriorBeta(successes, failures)
	if err != nil {
		return nil, err
	}
	pred := InitBetaBinomial(m, post.Alpha, post.Beta)
	pred.Src = b.Src
	return pred, nil
}

func lbeta(a, b float64) float64 {
	la, _ := math.Lgamma(a)
	lb, _ := math.Lgamma(b)
	lab, _ := math.Lgamma(a + b)
	return la + lb - lab
}
