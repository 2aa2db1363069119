package solver

import (
	"context"
	"maps"
	"sort"

	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/crossfill/crossfill/grid"
)

// complete reports whether every slot has a word.
func (f *Filler) complete(a Assignment) bool {
	for _, s := range f.g.Slots() {
		if a[s] == "" {
			return false
		}
	}
	return true
}

// consistent checks the whole assignment: no word used twice, every word's
// length matching its slot, and every assigned neighboring pair agreeing at
// the overlap. Re-checking everything instead of just the newest binding
// costs a small constant factor and keeps the check auditable.
func (f *Filler) consistent(a Assignment) bool {
	used := make(map[string]int, len(a))
	for _, w := range a {
		used[w]++
	}
	for s, w := range a {
		if used[w] > 1 {
			return false
		}
		if len(w) != s.Length {
			return false
		}
		for _, n := range f.g.Neighbors(s) {
			wn, assigned := a[n]
			if !assigned {
				continue
			}
			ov, _ := f.g.Overlap(s, n)
			if w[ov.I] != wn[ov.J] {
				return false
			}
		}
	}
	return true
}

// selectUnassignedSlot picks the next variable: fewest remaining candidates
// first (MRV), most neighbors on ties (degree). Remaining ties fall back to
// grid position so the search is reproducible.
func (f *Filler) selectUnassignedSlot(a Assignment) grid.Slot {
	slots := lo.Filter(f.g.Slots(), func(s grid.Slot, _ int) bool {
		_, assigned := a[s]
		return !assigned
	})
	sort.Slice(slots, func(i, j int) bool {
		si, sj := slots[i], slots[j]
		if d := len(f.domains[si]) - len(f.domains[sj]); d != 0 {
			return d < 0
		}
		if d := f.g.Degree(si) - f.g.Degree(sj); d != 0 {
			return d > 0
		}
		if si.Row != sj.Row {
			return si.Row < sj.Row
		}
		if si.Col != sj.Col {
			return si.Col < sj.Col
		}
		return si.Dir < sj.Dir
	})
	return slots[0]
}

// ruledOut counts how many candidates the word w, placed in x, would remove
// from the domains of x's unassigned neighbors: candidates disagreeing at
// the overlap, plus w itself wherever it appears (no two slots share a
// word).
func (f *Filler) ruledOut(w string, x grid.Slot, a Assignment) int {
	count := 0
	for _, n := range f.g.Neighbors(x) {
		if _, assigned := a[n]; assigned {
			continue
		}
		ov, _ := f.g.Overlap(x, n)
		for wn := range f.domains[n] {
			if w[ov.I] != wn[ov.J] || w == wn {
				count++
			}
		}
	}
	return count
}

// orderDomainValues returns x's candidates least-constraining first. Ties
// are lexicographic by default; with Options.Randomize the candidates are
// shuffled before the stable sort, so ties come out in random order while
// the heuristic order is preserved.
func (f *Filler) orderDomainValues(x grid.Slot, a Assignment) []string {
	words := lo.Keys(f.domains[x])
	sort.Strings(words)
	if f.opts.Randomize {
		frand.Shuffle(len(words), func(i, j int) {
			words[i], words[j] = words[j], words[i]
		})
	}
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w] = f.ruledOut(w, x, a)
	}
	sort.SliceStable(words, func(i, j int) bool {
		return counts[words[i]] < counts[words[j]]
	})
	return words
}

// backtrack is chronological depth-first search. Each branch extends a copy
// of the assignment, so failed branches simply fall out of scope. Returns
// (nil, nil) when every candidate for the chosen slot fails, and checks ctx
// once per call so a cancelled or timed-out search unwinds promptly.
func (f *Filler) backtrack(ctx context.Context, a Assignment) (Assignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.complete(a) {
		return a, nil
	}
	x := f.selectUnassignedSlot(a)
	for _, w := range f.orderDomainValues(x, a) {
		candidate := maps.Clone(a)
		candidate[x] = w
		if !f.consistent(candidate) {
			continue
		}
		result, err := f.backtrack(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}
	}
	return nil, nil
}
