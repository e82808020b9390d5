// SPDX-License-Identifier: MIT
// Package: tilesearch/experiment
//
// instance.go - reproducible puzzle fixtures for sweeps.
//
// Determinism policy:
//   • An Instance is fully determined by (Depth, Seed): its State is
//     exactly board.Scramble(Depth, Seed), so a CSV row re-creates its
//     fixture from its columns alone.
//   • Seeds increment globally across depths; re-running Generate with the
//     same arguments yields the same instances in the same order.

package experiment

import (
	"fmt"

	"github.com/katalvlaran/tilesearch/core"
	"github.com/katalvlaran/tilesearch/puzzle"
)

// budgetPerInstance caps generation retries: at most PerDepth times this
// many scrambles are attempted at one depth before giving up.
const budgetPerInstance = 2000

// Instance is one puzzle fixture: the seed and depth that made it, and the
// start state they produced.
type Instance struct {
	Seed  int64
	Depth int
	State core.State
}

// Generate collects perDepth solvable instances for every depth, seeding
// scrambles from startSeed onward. Scrambles are random walks from the
// goal and therefore solvable by construction; the solvability check and
// the retry budget exist to catch a domain whose parity logic disagrees
// with its own walks. Exceeding the budget at any depth returns
// ErrGenerationBudget.
func Generate(b *puzzle.Board, depths []int, perDepth int, startSeed int64) ([]Instance, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil board", ErrBadConfig)
	}
	if perDepth < 1 {
		return nil, fmt.Errorf("%w: per-depth count %d is not positive", ErrBadConfig, perDepth)
	}

	out := make([]Instance, 0, len(depths)*perDepth)
	seed := startSeed
	for _, d := range depths {
		if d < 1 {
			return nil, fmt.Errorf("%w: depth %d is not positive", ErrBadConfig, d)
		}
		made, attempts := 0, 0
		for made < perDepth {
			s := b.Scramble(d, seed)
			used := seed
			seed++
			attempts++
			if b.Solvable(s) {
				out = append(out, Instance{Seed: used, Depth: d, State: s})
				made++
			}
			if attempts > perDepth*budgetPerInstance {
				return nil, fmt.Errorf("%w: depth %d after %d attempts", ErrGenerationBudget, d, attempts)
			}
		}
	}
	return out, nil
}
