package cs146

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

//Sample is a single (mean, variance) pair drawn from a NormInvGamma distribution.
type Sample struct {
	X      float64 // drawn mean
	Sigma2 float64 // drawn variance
}

//NormInvGamma is a joint normal-inverse-gamma distribution over the unknown mean
//and variance of a normal likelihood. The variance follows InverseGamma(Alpha, Beta)
//and the mean, conditioned on a drawn variance s2, follows Normal(Mu, s2/Nu).
type NormInvGamma struct {
	Mu    float64 // hyperparameter for the expected mean
	Nu    float64 // belief in Mu (pseudo-observation count behind the mean)
	Alpha float64 // shape hyperparameter on the variance
	Beta  float64 // scale hyperparameter on the variance
	Src   rand.Source
}

//InitNIG will initialize a normal-inverse-gamma distribution from the four hyperparameters.
//Nu, Alpha and Beta must all be positive.
func InitNIG(mu, nu, alpha, beta float64) *NormInvGamma {
	if nu <= 0 || alpha <= 0 || beta <= 0 {
		panic("cs146: non-positive normal-inverse-gamma hyperparameter")
	}
	p := new(NormInvGamma)
	p.Mu = mu
	p.Nu = nu
	p.Alpha = alpha
	p.Beta = beta
	return p
}

//Prob will return the joint density at a candidate mean x and candidate variance sigma2.
//The density is zero outside the support sigma2 > 0.
func (p *NormInvGamma) Prob(x, sigma2 float64) float64 {
	if sigma2 <= 0 {
		return 0.
	}
	norm := distuv.Normal{Mu: p.Mu, Sigma: math.Sqrt(sigma2 / p.Nu)}
	ig := distuv.InverseGamma{Alpha: p.Alpha, Beta: p.Beta}
	return norm.Prob(x) * ig.Prob(sigma2)
}

//LogProb will return the log of the joint density at (x, sigma2).
func (p *NormInvGamma) LogProb(x, sigma2 float64) float64 {
	if sigma2 <= 0 {
		return math.Inf(-1)
	}
	norm := distuv.Normal{Mu: p.Mu, Sigma: math.Sqrt(sigma2 / p.Nu)}
	ig := distuv.InverseGamma{Alpha: p.Alpha, Beta: p.Beta}
	return norm.LogProb(x) + ig.LogProb(sigma2)
}

//Rand will draw a single (mean, variance) pair. The variance is drawn from the
//inverse-gamma marginal first and the mean from the normal conditioned on it.
func (p *NormInvGamma) Rand() Sample {
	ig := distuv.InverseGamma{Alpha: p.Alpha, Beta: p.Beta, Src: p.Src}
	s2 := ig.Rand()
	norm := distuv.Normal{Mu: p.Mu, Sigma: math.Sqrt(s2 / p.Nu), Src: p.Src}
	return Sample{X: norm.Rand(), Sigma2: s2}
}

//RandN will draw k independent (mean, variance) pairs. Within each pair the mean
//depends on the drawn variance.
func (p *NormInvGamma) RandN(k int) []Sample {
	if k < 1 {
		panic("cs146: non-positive sample count")
	}
	draws := make([]Sample, k)
	for i := range draws {
		draws[i] = p.Rand()
	}
	return draws
}

//MeanMarginal will return the marginal distribution of the mean, which is a
//Student's t with 2*Alpha degrees of freedom centered on Mu.
func (p *NormInvGamma) MeanMarginal() distuv.StudentsT {
	return distuv.StudentsT{
		Mu:    p.Mu,
		Sigma: math.Sqrt(p.Beta / (p.Alpha * p.Nu)),
		Nu:    2. * p.Alpha,
		Src:   p.Src,
	}
}

//VarianceMarginal will return the marginal distribution of the variance.
func (p *NormInvGamma) VarianceMarginal() distuv.InverseGamma {
	return distuv.InverseGamma{Alpha: p.Alpha, Beta: p.Beta, Src: p.Src}
}

//Predictive will return the posterior-predictive distribution of a single new
//observation, a Student's t wider than the mean marginal by one extra unit of
//observation noise.
func (p *NormInvGamma) Predictive() distuv.StudentsT {
	return distuv.StudentsT{
		Mu:    p.Mu,
		Sigma: math.Sqrt(p.Beta * (p.Nu + 1.) / (p.Alpha * p.Nu)),
		Nu:    2. * p.Alpha,
		Src:   p.Src,
	}
}

//InverseGammaQuantile will return the quantile at probability prob of an
//InverseGamma(alpha, beta) distribution. distuv exposes the inverse-gamma CDF but
//not its inverse, so it is computed from the regularized incomplete gamma function.
func InverseGammaQuantile(alpha, beta, prob float64) float64 {
	if alpha <= 0 || beta <= 0 {
		panic("cs146: non-positive inverse-gamma parameter")
	}
	if prob < 0 || prob > 1 {
		panic("cs146: probability outside [0,1]")
	}
	return beta / mathext.GammaIncRegCompInv(alpha, prob)
}
