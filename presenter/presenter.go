// Package presenter prints selected magazines and opens them in a browser.
package presenter

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/s0up4200/magroulette/archive"
)

// Presenter writes magazine details and hands the URL to an Opener
type Presenter struct {
	out        io.Writer
	formatter  *ConsoleFormatter
	opener     Opener
	detailsURL string
	logger     zerolog.Logger
}

// New creates a presenter. An empty detailsURL uses DefaultDetailsURL.
func New(out io.Writer, formatter *ConsoleFormatter, opener Opener, detailsURL string, logger zerolog.Logger) *Presenter {
	if detailsURL == "" {
		detailsURL = DefaultDetailsURL
	}
	if !strings.HasSuffix(detailsURL, "/") {
		detailsURL += "/"
	}

	return &Presenter{
		out:        out,
		formatter:  formatter,
		opener:     opener,
		detailsURL: detailsURL,
		logger:     logger,
	}
}

// DetailsURL returns the page URL for an identifier
func (p *Presenter) DetailsURL(identifier string) string {
	return p.detailsURL + identifier
}

// Show prints the magazine and opens its page. Opening is fire-and-forget:
// a failure is logged, never returned.
func (p *Presenter) Show(m archive.Magazine) {
	url := p.DetailsURL(m.Identifier)
	io.WriteString(p.out, p.formatter.FormatMagazine(m, url))

	if err := p.opener.Open(url); err != nil {
		p.logger.Warn().Err(err).Str("url", url).Msg("Failed to open browser")
	}
}

// ShowNoResult prints why nothing is being opened
func (p *Presenter) ShowNoResult(failed bool) {
	io.WriteString(p.out, p.formatter.FormatNoResult(failed))
}

// ShowCollections prints the curated collection list
func (p *Presenter) ShowCollections(collections []string, usage string) {
	io.WriteString(p.out, p.formatter.FormatCollections(collections, usage))
}
