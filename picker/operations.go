package picker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/s0up4200/magroulette/archive"
	"github.com/s0up4200/magroulette/filter"
	"github.com/s0up4200/magroulette/selector"
)

// Options describes one random pick
type Options struct {
	Filters    archive.Filters
	MaxResults int
	RandomPage bool
	// Filter is optional and narrows the fetched page before selection
	Filter *filter.Filter
}

// Operations runs the fetch, select and present cycle
type Operations struct {
	searcher  Searcher
	display   Display
	selector  *selector.Selector
	out       io.Writer
	countdown bool
	logger    zerolog.Logger
}

// NewOperations creates a new operations handler
func NewOperations(searcher Searcher, display Display, logger zerolog.Logger) *Operations {
	return &Operations{
		searcher: searcher,
		display:  display,
		selector: selector.New(nil),
		out:      io.Discard,
		logger:   logger,
	}
}

// SetSelector replaces the random selector
func (o *Operations) SetSelector(s *selector.Selector) {
	o.selector = s
}

// SetOutput sets where progress lines are written
func (o *Operations) SetOutput(out io.Writer) {
	o.out = out
}

// SetCountdown enables the progress bar while waiting in continuous mode
func (o *Operations) SetCountdown(enabled bool) {
	o.countdown = enabled
}

// PickRandom fetches a random page and selects one magazine from it.
// Errors never escape: they are logged and reported as OutcomeFailed. A
// count response without numFound counts as no matches.
func (o *Operations) PickRandom(ctx context.Context, opts Options) Outcome {
	query := archive.BuildQuery(opts.Filters)
	o.logger.Debug().Str("query", query).Msg("Built search query")

	total, err := o.searcher.Count(ctx, query)
	if errors.Is(err, archive.ErrMissingField) {
		// a count without numFound is treated as zero matches
		o.logger.Warn().Err(err).Str("query", query).Msg("Search response had no result count")
		return Outcome{Kind: OutcomeEmpty}
	}
	if err != nil {
		return o.failed(ctx, err)
	}

	if total == 0 {
		o.logger.Info().Str("query", query).Msg("Search matched no items")
		return Outcome{Kind: OutcomeEmpty}
	}

	page := o.selector.ChoosePage(total, opts.MaxResults, opts.RandomPage)
	if selector.Paginates(total, opts.MaxResults, opts.RandomPage) {
		pages := min(selector.MaxReachableResults, total) / opts.MaxResults
		fmt.Fprintf(o.out, "Searching page %d of approximately %d pages (%d total results)\n", page, pages, total)
	}

	docs, err := o.searcher.Fetch(ctx, query, page, opts.MaxResults)
	if err != nil {
		return o.failed(ctx, err)
	}

	candidates := withIdentifier(docs)
	if len(candidates) < len(docs) {
		o.logger.Debug().
			Int("dropped", len(docs)-len(candidates)).
			Msg("Skipped items without identifier")
	}

	if opts.Filter != nil {
		before := len(candidates)
		var errs []error
		candidates, errs = opts.Filter.Apply(candidates)
		for _, err := range errs {
			o.logger.Warn().Err(err).Msg("Filter could not be evaluated, skipping item")
		}
		o.logger.Debug().
			Str("filter", opts.Filter.String()).
			Int("before", before).
			Int("after", len(candidates)).
			Msg("Applied record filter")
	}

	magazine, ok := o.selector.ChooseItem(candidates)
	if !ok {
		o.logger.Info().Int("page", page).Msg("No usable items on the fetched page")
		return Outcome{Kind: OutcomeEmpty, Total: total, Page: page}
	}

	o.logger.Debug().
		Str("identifier", magazine.Identifier).
		Int("page", page).
		Int("candidates", len(candidates)).
		Msg("Selected magazine")

	return Outcome{Kind: OutcomeFound, Magazine: magazine, Total: total, Page: page}
}

// Present hands an outcome to the display
func (o *Operations) Present(outcome Outcome) {
	if outcome.Found() {
		o.display.Show(outcome.Magazine)
		return
	}
	o.display.ShowNoResult(outcome.Kind == OutcomeFailed)
}

// RunOnce picks and presents a single magazine. It only returns an error
// when ctx is done.
func (o *Operations) RunOnce(ctx context.Context, opts Options) error {
	outcome := o.PickRandom(ctx, opts)
	if err := ctx.Err(); err != nil {
		return err
	}

	o.Present(outcome)
	return nil
}

// RunContinuous repeats RunOnce with delay between iterations until ctx is
// done, and returns ctx's error.
func (o *Operations) RunContinuous(ctx context.Context, opts Options, delay time.Duration) error {
	for count := 1; ; count++ {
		fmt.Fprintf(o.out, "\n[%d] Finding next random magazine...\n", count)

		if err := o.RunOnce(ctx, opts); err != nil {
			return err
		}

		fmt.Fprintf(o.out, "Waiting %s before opening the next magazine...\n", formatDelay(delay))

		if err := o.wait(ctx, delay); err != nil {
			return err
		}
	}
}

// failed logs a search failure. Cancellation is not logged: it is the
// user stopping the program.
func (o *Operations) failed(ctx context.Context, err error) Outcome {
	if ctx.Err() != nil {
		return Outcome{Kind: OutcomeFailed, Err: err}
	}

	var apiErr *archive.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.IsRateLimited():
		o.logger.Error().Err(err).Msg("Internet Archive is rate limiting requests, try a longer delay")
	case errors.As(err, &apiErr) && apiErr.IsServerError():
		o.logger.Error().Err(err).Msg("Internet Archive returned a server error")
	default:
		o.logger.Error().Err(err).Msg("Error connecting to Internet Archive")
	}
	return Outcome{Kind: OutcomeFailed, Err: err}
}

func withIdentifier(docs []archive.Magazine) []archive.Magazine {
	kept := make([]archive.Magazine, 0, len(docs))
	for _, d := range docs {
		if d.Identifier != "" {
			kept = append(kept, d)
		}
	}
	return kept
}

func formatDelay(d time.Duration) string {
	if d%time.Second == 0 {
		secs := int(d / time.Second)
		if secs == 1 {
			return "1 second"
		}
		return fmt.Sprintf("%d seconds", secs)
	}
	return d.String()
}
