package solver

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/crossfill/crossfill/grid"
)

// enforceNodeConsistency drops every candidate whose length differs from its
// slot's length. Each domain is rebuilt as a filtered copy; removing entries
// from a collection while ranging over it is exactly the hazard this avoids.
func (f *Filler) enforceNodeConsistency() {
	for s, domain := range f.domains {
		filtered := make(map[string]struct{}, len(domain))
		for w := range domain {
			if len(w) == s.Length {
				filtered[w] = struct{}{}
			}
		}
		f.domains[s] = filtered
	}
}

// revise makes x arc-consistent with y: every candidate of x that has no
// supporting candidate in y's domain is removed. A candidate wy supports wx
// when the overlap letters agree and the words differ (two slots may never
// hold the same word). Reports whether anything was removed.
func (f *Filler) revise(x, y grid.Slot) bool {
	ov, ok := f.g.Overlap(x, y)
	if !ok {
		return false
	}
	revised := false
	for _, wx := range lo.Keys(f.domains[x]) {
		supported := false
		for wy := range f.domains[y] {
			if wx[ov.I] == wy[ov.J] && wx != wy {
				supported = true
				break
			}
		}
		if !supported {
			delete(f.domains[x], wx)
			revised = true
		}
	}
	return revised
}

type arc struct {
	x, y grid.Slot
}

// ac3 runs the classical arc-consistency fixpoint over a FIFO worklist of
// ordered slot pairs. A nil worklist is seeded with every ordered pair of
// intersecting slots. Returns false the moment any domain empties; true once
// the worklist drains, at which point every remaining candidate has a
// supporter in every neighboring domain.
func (f *Filler) ac3(queue []arc) bool {
	if queue == nil {
		for _, x := range f.g.Slots() {
			for _, y := range f.g.Neighbors(x) {
				queue = append(queue, arc{x, y})
			}
		}
	}
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		if !f.revise(a.x, a.y) {
			continue
		}
		if len(f.domains[a.x]) == 0 {
			log.Debug().Stringer("slot", a.x).Msg("domain emptied during arc consistency")
			return false
		}
		// x's domain shrank, which may strip support from candidates in
		// every other neighbor of x.
		for _, z := range f.g.Neighbors(a.x) {
			if z != a.y {
				queue = append(queue, arc{z, a.x})
			}
		}
	}
	return true
}
