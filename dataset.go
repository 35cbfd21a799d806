package cs146

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

//Dataset is an ordered sequence of real-valued observations. It carries no identity
//beyond its values; only the sufficient statistics matter for the conjugate update.
type Dataset []float64

//SufficientStats will return the observation count, the sample mean, and the sum of
//squared deviations from the sample mean. All three are zero for an empty dataset.
func (d Dataset) SufficientStats() (n int, mean, ssd float64) {
	if len(d) == 0 {
		return 0, 0., 0.
	}
	n = len(d)
	mean = stat.Mean(d, nil)
	for _, x := range d {
		ssd += math.Pow(x-mean, 2.)
	}
	return
}

//ReadDataset will read whitespace- or newline-separated observations from a file.
func ReadDataset(path string) (Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %v", path, err)
	}
	var d Dataset
	for _, field := range strings.Fields(string(b)) {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q in %s: %v", field, path, err)
		}
		d = append(d, v)
	}
	if len(d) == 0 {
		return nil, fmt.Errorf("no observations in %s", path)
	}
	return d, nil
}
