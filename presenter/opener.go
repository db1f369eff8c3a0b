package presenter

import (
	"github.com/pkg/browser"
	"github.com/rs/zerolog"
)

// Opener launches a URL somewhere the user can see it
type Opener interface {
	Open(url string) error
}

// BrowserOpener opens URLs in the system's default browser
type BrowserOpener struct{}

// Open implements Opener
func (BrowserOpener) Open(url string) error {
	return browser.OpenURL(url)
}

// LogOpener only records the URL. Used when browser launching is disabled.
type LogOpener struct {
	Logger zerolog.Logger
}

// Open implements Opener
func (o LogOpener) Open(url string) error {
	o.Logger.Debug().Str("url", url).Msg("Browser disabled, not opening")
	return nil
}
