package main

import (
	"flag"

	cs146 "github.com/lanceaquino/CS146"
	log "github.com/sirupsen/logrus"
)

func main() {
	succArg := flag.Int("s", 0, "observed successes")
	trialsArg := flag.Int("n", 0, "observed trials")
	alphaArg := flag.Float64("a", 1., "beta prior alpha (1,1 is flat)")
	betaArg := flag.Float64("b", 1., "beta prior beta")
	levelArg := flag.Float64("level", 0.95, "interval level")
	predArg := flag.Int("pred", 0, "future trial count for the posterior predictive (0 skips it)")
	flag.Parse()
	if *trialsArg <= 0 {
		log.Fatal("no trials given (-n)")
	}
	if *succArg < 0 || *succArg > *trialsArg {
		log.Fatalf("successes %d outside 0..%d", *succArg, *trialsArg)
	}
	successes := *succArg
	failures := *trialsArg - *succArg
	log.Infof("observed %d/%d successes (%.4f)", successes, *trialsArg, float64(successes)/float64(*trialsArg))

	model := cs146.InitBetaBinomial(*trialsArg, *alphaArg, *betaArg)
	post, err := model.PosteriorBeta(successes, failures)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("posterior Beta(%g, %g), mean %.4f", post.Alpha, post.Beta, post.Mean())
	betaIv, err := cs146.CredibleInterval(post, *levelArg)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("posterior %g%% credible interval: [%.4f, %.4f]", 100*(*levelArg), betaIv.Lower, betaIv.Upper)

	wilson, err := cs146.WilsonInterval(successes, *trialsArg, *levelArg)
	if err != nil {
		log.Fatal(err)
	}
	wald, err := cs146.WaldInterval(successes, *trialsArg, *levelArg)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("Wilson %g%% interval: [%.4f, %.4f]", 100*(*levelArg), wilson.Lower, wilson.Upper)
	log.Infof("Wald   %g%% interval: [%.4f, %.4f]", 100*(*levelArg), wald.Lower, wald.Upper)

	if *predArg > 0 {
		pred, err := model.Predictive(successes, failures, *predArg)
		if err != nil {
			log.Fatal(err)
		}
		log.Infof("predictive over %d future trials: mean %.2f, variance %.2f",
			pred.N, pred.Mean(), pred.Variance())
	}
}
