// Package solver fills a crossword grid from a vocabulary. It is a
// finite-domain CSP engine: slots are the variables, candidate words the
// domains, and the constraints are word length plus letter agreement at
// every slot intersection. Propagation (node consistency, then AC-3) prunes
// the domains; heuristic backtracking search produces the fill.
package solver

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/crossfill/crossfill/grid"
	"github.com/crossfill/crossfill/wordlist"
)

// ErrNoSolution is the definitive negative outcome: the puzzle cannot be
// filled from the given vocabulary. It is a valid result, not a failure.
var ErrNoSolution = errors.New("no solution exists for this puzzle")

// Options tune the search. Randomize shuffles candidate words before the
// least-constraining-value sort, so equally ranked candidates are tried in
// random order; the default is deterministic (lexicographic ties).
type Options struct {
	Randomize bool
}

// An Assignment maps slots to chosen words. It is transient search state:
// the engine copies it between recursion levels rather than mutating it in
// place, so backtracking needs no undo.
type Assignment map[grid.Slot]string

// A Filler owns the mutable domain store for a single solve. Construct one
// per puzzle; it must not be shared across solves.
type Filler struct {
	g       *grid.Grid
	domains map[grid.Slot]map[string]struct{}
	opts    Options
}

// New builds a Filler whose every slot starts with the full vocabulary as
// its domain.
func New(g *grid.Grid, words *wordlist.Set, opts Options) *Filler {
	f := &Filler{
		g:       g,
		domains: make(map[grid.Slot]map[string]struct{}, len(g.Slots())),
		opts:    opts,
	}
	for _, s := range g.Slots() {
		domain := make(map[string]struct{}, words.Len())
		for _, w := range words.Words() {
			domain[w] = struct{}{}
		}
		f.domains[s] = domain
	}
	return f
}

// Propagate enforces node consistency and then arc consistency over the
// domain store. It returns ErrNoSolution as soon as any slot's domain
// empties, in which case search would be pointless.
func (f *Filler) Propagate() error {
	f.enforceNodeConsistency()
	for s, domain := range f.domains {
		if len(domain) == 0 {
			log.Debug().Stringer("slot", s).Msg("domain empty after node consistency")
			return ErrNoSolution
		}
	}
	if !f.ac3(nil) {
		return ErrNoSolution
	}
	return nil
}

// Solve prunes the domains and runs backtracking search. It returns the
// first complete consistent assignment found, ErrNoSolution if none exists,
// or ctx's error if the context is cancelled mid-search.
func (f *Filler) Solve(ctx context.Context) (Assignment, error) {
	if err := f.Propagate(); err != nil {
		return nil, err
	}
	log.Debug().Int("slots", len(f.g.Slots())).Msg("domains pruned, starting search")
	a, err := f.backtrack(ctx, Assignment{})
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNoSolution
	}
	return a, nil
}
