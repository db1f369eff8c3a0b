package presenter

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/s0up4200/magroulette/archive"
)

const (
	// DefaultDetailsURL is prefixed to an identifier to build its page URL
	DefaultDetailsURL = "https://archive.org/details/"
	// DefaultMaxValues caps how many collections or subjects are listed
	DefaultMaxValues = 5
	// DefaultDescriptionLength caps the printed description, in runes
	DefaultDescriptionLength = 300
	// UnknownTitle is shown for records without a title
	UnknownTitle = "Unknown Title"
)

// FormatOptions contains options for formatting output
type FormatOptions struct {
	MaxValues         int
	ShowDescription   bool
	DescriptionLength int
}

// DefaultFormatOptions mirrors the console output of the CLI
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		MaxValues:         DefaultMaxValues,
		DescriptionLength: DefaultDescriptionLength,
	}
}

// ConsoleFormatter renders magazines for terminal output
type ConsoleFormatter struct {
	options FormatOptions
	policy  *bluemonday.Policy
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(options FormatOptions) *ConsoleFormatter {
	if options.MaxValues < 1 {
		options.MaxValues = DefaultMaxValues
	}
	if options.DescriptionLength < 1 {
		options.DescriptionLength = DefaultDescriptionLength
	}

	return &ConsoleFormatter{
		options: options,
		policy:  bluemonday.StrictPolicy(),
	}
}

// FormatMagazine formats the selected magazine and its page URL
func (f *ConsoleFormatter) FormatMagazine(m archive.Magazine, detailsURL string) string {
	var sb strings.Builder

	title := m.Title.String()
	if m.Title.IsZero() {
		title = UnknownTitle
	}
	fmt.Fprintf(&sb, "\nOpening: %s\n", title)

	if !m.Year.IsZero() {
		fmt.Fprintf(&sb, "Year: %s\n", m.Year)
	}
	if !m.Creator.IsZero() {
		fmt.Fprintf(&sb, "Creator: %s\n", m.Creator)
	}
	if len(m.Collection) > 0 {
		fmt.Fprintf(&sb, "%s: %s\n", label("Collection", len(m.Collection)), f.JoinValues(m.Collection))
	}
	if len(m.Subject) > 0 {
		fmt.Fprintf(&sb, "%s: %s\n", label("Subject", len(m.Subject)), f.JoinValues(m.Subject))
	}
	if f.options.ShowDescription && !m.Description.IsZero() {
		if desc := f.CleanDescription(m.Description.String()); desc != "" {
			fmt.Fprintf(&sb, "Description: %s\n", desc)
		}
	}

	fmt.Fprintf(&sb, "URL: %s\n", detailsURL)
	return sb.String()
}

// JoinValues joins at most MaxValues entries with ", "
func (f *ConsoleFormatter) JoinValues(values archive.List) string {
	return strings.Join(values.First(f.options.MaxValues), ", ")
}

// CleanDescription strips markup, collapses whitespace and truncates
func (f *ConsoleFormatter) CleanDescription(raw string) string {
	text := html.UnescapeString(f.policy.Sanitize(raw))
	text = strings.Join(strings.Fields(text), " ")

	runes := []rune(text)
	if len(runes) > f.options.DescriptionLength {
		return strings.TrimSpace(string(runes[:f.options.DescriptionLength])) + "..."
	}
	return text
}

// FormatNoResult explains why nothing was opened
func (f *ConsoleFormatter) FormatNoResult(failed bool) string {
	if failed {
		return "Could not reach the Internet Archive, no magazine selected.\n"
	}
	return "No magazines found with the specified criteria.\n"
}

// FormatCollections formats the curated collection list and a usage hint
func (f *ConsoleFormatter) FormatCollections(collections []string, usage string) string {
	var sb strings.Builder

	sb.WriteString("\nPopular magazine collections on Internet Archive:\n")
	for i, c := range collections {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, c)
	}
	fmt.Fprintf(&sb, "\nUse with: %s\n", usage)

	return sb.String()
}

func label(singular string, count int) string {
	if count == 1 {
		return singular
	}
	return singular + "s"
}
