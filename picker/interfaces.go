package picker

import (
	"context"

	"github.com/s0up4200/magroulette/archive"
)

// Searcher defines the search API operations the picker needs
type Searcher interface {
	// Count returns the number of matches for query
	Count(ctx context.Context, query string) (int, error)

	// Fetch returns one page of randomly ordered matches
	Fetch(ctx context.Context, query string, page, rows int) ([]archive.Magazine, error)
}

// Display defines how outcomes reach the user
type Display interface {
	Show(m archive.Magazine)
	ShowNoResult(failed bool)
}
