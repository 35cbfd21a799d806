package cs146

import (
	"errors"
	"math"
)

//Posterior will return the hyperparameters of the exact conjugate posterior after
//observing obs under a normal likelihood with unknown mean and variance. The update
//is closed form; an empty dataset is rejected rather than silently returning the prior.
func (p *NormInvGamma) Posterior(obs Dataset) (*NormInvGamma, error) {
	n, mean, ssd := obs.SufficientStats()
	if n == 0 {
		return nil, errors.New("cs146: posterior update requires at least one observation")
	}
	return p.PosteriorStats(float64(n), mean, ssd), nil
}

//PosteriorStats will apply the conjugate update directly from sufficient statistics:
//the observation count n, the sample mean, and the sum of squared deviations from
//that mean. Useful when the raw observations are streamed rather than held in memory.
func (p *NormInvGamma) PosteriorStats(n, mean, ssd float64) *NormInvGamma {
	post := new(NormInvGamma)
	post.Nu = p.Nu + n
	post.Mu = (p.Nu*p.Mu + n*mean) / post.Nu
	post.Alpha = p.Alpha + n/2.
	post.Beta = p.Beta + 0.5*ssd + (n*p.Nu*math.Pow(mean-p.Mu, 2.))/(2.*post.Nu)
	post.Src = p.Src
	return post
}
