package main

import (
	"flag"
	"time"

	cs146 "github.com/lanceaquino/CS146"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

func main() {
	dataArg := flag.String("d", "", "input data file with one observation per line")
	muArg := flag.Float64("mu", 0., "prior expectation for the mean")
	nuArg := flag.Float64("nu", 1., "prior pseudo-observations behind mu")
	alphaArg := flag.Float64("a", 1., "prior shape on the variance")
	betaArg := flag.Float64("b", 1., "prior scale on the variance")
	drawsArg := flag.Int("k", 100000, "number of Monte Carlo draws")
	seedArg := flag.Uint64("seed", 0, "random seed (0 seeds from the clock)")
	levelArg := flag.Float64("level", 0.95, "credible level for reported intervals")
	flag.Parse()
	if *dataArg == "" {
		log.Fatal("no data file given (-d)")
	}
	obs, err := cs146.ReadDataset(*dataArg)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("read %d observations from %s", len(obs), *dataArg)

	prior := cs146.InitNIG(*muArg, *nuArg, *alphaArg, *betaArg)
	post, err := prior.Posterior(obs)
	if err != nil {
		log.Fatal(err)
	}
	seed := *seedArg
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	post.Src = rand.NewSource(seed)
	log.Infof("prior     mu=%g nu=%g alpha=%g beta=%g", prior.Mu, prior.Nu, prior.Alpha, prior.Beta)
	log.Infof("posterior mu=%g nu=%g alpha=%g beta=%g", post.Mu, post.Nu, post.Alpha, post.Beta)

	meanIv, err := post.MeanInterval(*levelArg)
	if err != nil {
		log.Fatal(err)
	}
	varIv, err := post.VarianceInterval(*levelArg)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("analytic %g%% interval for the mean:     [%g, %g]", 100*(*levelArg), meanIv.Lower, meanIv.Upper)
	log.Infof("analytic %g%% interval for the variance: [%g, %g]", 100*(*levelArg), varIv.Lower, varIv.Upper)

	start := time.Now()
	draws := post.RandN(*drawsArg)
	xs := make([]float64, len(draws))
	vs := make([]float64, len(draws))
	for i, d := range draws {
		xs[i] = d.X
		vs[i] = d.Sigma2
	}
	mcMean, err := cs146.MonteCarloInterval(xs, *levelArg)
	if err != nil {
		log.Fatal(err)
	}
	mcVar, err := cs146.MonteCarloInterval(vs, *levelArg)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("MC %g%% interval for the mean:     [%g, %g]", 100*(*levelArg), mcMean.Lower, mcMean.Upper)
	log.Infof("MC %g%% interval for the variance: [%g, %g]", 100*(*levelArg), mcVar.Lower, mcVar.Upper)
	log.Infof("completed %d draws in %v", *drawsArg, time.Since(start))
}
