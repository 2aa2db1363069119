package solver

import (
	"io"

	"github.com/aybabtme/uniplot/histogram"

	"github.com/crossfill/crossfill/grid"
)

// DomainSizes snapshots the current candidate count for every slot. Useful
// before and after propagation to see how much pruning bought.
func (f *Filler) DomainSizes() map[grid.Slot]int {
	sizes := make(map[grid.Slot]int, len(f.domains))
	for s, domain := range f.domains {
		sizes[s] = len(domain)
	}
	return sizes
}

// FprintDomainHistogram writes a histogram of domain sizes to w.
func (f *Filler) FprintDomainHistogram(w io.Writer) error {
	sizes := make([]float64, 0, len(f.domains))
	for _, domain := range f.domains {
		sizes = append(sizes, float64(len(domain)))
	}
	hist := histogram.Hist(9, sizes)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}
