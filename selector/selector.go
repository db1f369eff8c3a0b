// Package selector implements the random page and item choice.
package selector

import (
	"math/rand/v2"

	"github.com/s0up4200/magroulette/archive"
)

// MaxReachableResults is how deep into a result set the search API pages reliably
const MaxReachableResults = 1000

// Selector makes uniform random choices
type Selector struct {
	rng *rand.Rand
}

// New creates a selector. A nil source uses a randomly seeded generator.
func New(src rand.Source) *Selector {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Selector{rng: rand.New(src)}
}

// ChoosePage picks the page to request. Without randomization, or when all
// results fit on one page, it returns 1. Otherwise it draws uniformly from
// [1, min(MaxReachableResults, total)/maxResults], falling back to 1 when
// that bound is below 1.
func (s *Selector) ChoosePage(total, maxResults int, randomize bool) int {
	if !Paginates(total, maxResults, randomize) {
		return 1
	}

	upper := min(MaxReachableResults, total) / maxResults
	if upper < 1 {
		return 1
	}

	return s.rng.IntN(upper) + 1
}

// Paginates reports whether ChoosePage draws a page at all
func Paginates(total, maxResults int, randomize bool) bool {
	return randomize && maxResults >= 1 && total > maxResults
}

// ChooseItem picks one record. ok is false for an empty slice.
func (s *Selector) ChooseItem(records []archive.Magazine) (archive.Magazine, bool) {
	if len(records) == 0 {
		return archive.Magazine{}, false
	}
	return records[s.rng.IntN(len(records))], true
}
