package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/magroulette/archive"
	"github.com/s0up4200/magroulette/config"
	"github.com/s0up4200/magroulette/filter"
	"github.com/s0up4200/magroulette/picker"
	"github.com/s0up4200/magroulette/presenter"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger

	// Command flags
	flags           searchFlags
	listCollections bool
	continuous      bool
	noBrowser       bool
	showDescription bool
)

// searchFlags holds the flags that shape a search
type searchFlags struct {
	collection string
	maxResults int
	minYear    int
	maxYear    int
	decade     int
	delay      int
	filterExpr string
	preset     string
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "magroulette",
	Short: "Open a random magazine from the Internet Archive",
	Long: `magroulette picks a random magazine or periodical from the Internet Archive
and opens it in your browser. Narrow the search by collection, year range or
decade, or keep it running to get a new magazine every few seconds.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
	RunE:              runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.Flags().StringVar(&flags.collection, "collection", "", "specific collection to search within")
	rootCmd.Flags().IntVar(&flags.maxResults, "max", 100, "maximum number of results to search through")
	rootCmd.Flags().IntVar(&flags.minYear, "min-year", 0, "minimum publication year to include")
	rootCmd.Flags().IntVar(&flags.maxYear, "max-year", 0, "maximum publication year to include")
	rootCmd.Flags().IntVar(&flags.decade, "decade", 0, "specify a decade (e.g. 1960 for the 1960s)")
	rootCmd.Flags().BoolVar(&listCollections, "list-collections", false, "list popular magazine collections")
	rootCmd.Flags().BoolVar(&continuous, "continuous", false, "open magazines continuously with a delay")
	rootCmd.Flags().IntVar(&flags.delay, "delay", 30, "delay in seconds between magazines in continuous mode")
	rootCmd.Flags().StringVarP(&flags.filterExpr, "filter", "f", "", "filter expression applied to fetched magazines")
	rootCmd.Flags().StringVarP(&flags.preset, "preset", "p", "", "use a preset filter from config")
	rootCmd.Flags().BoolVar(&noBrowser, "no-browser", false, "print the magazine without opening a browser")
	rootCmd.Flags().BoolVar(&showDescription, "show-description", false, "print the item description")
}

// initializeApp loads the configuration and sets up logging
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(os.Stderr),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runRoot(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	formatter := presenter.NewConsoleFormatter(formatOptions(cfg.Display))

	if listCollections {
		presenter.New(out, formatter, nil, cfg.Search.DetailsURL, logger).
			ShowCollections(archive.PopularCollections, "magroulette --collection collection_name")
		return nil
	}

	opts, delay, err := flags.resolve(cfg, cmd.Flags().Changed)
	if err != nil {
		return err
	}

	client := archive.NewClient(logger,
		archive.WithBaseURL(cfg.Search.BaseURL),
		archive.WithTimeout(cfg.Search.Timeout),
		archive.WithRateLimit(cfg.Search.RateLimit),
		archive.WithUserAgent(cfg.Search.UserAgent),
	)

	var opener presenter.Opener = presenter.BrowserOpener{}
	if noBrowser || !cfg.Browser.Enabled {
		opener = presenter.LogOpener{Logger: logger}
	}

	display := presenter.New(out, formatter, opener, cfg.Search.DetailsURL, logger)

	operations := picker.NewOperations(client, display, logger)
	operations.SetOutput(out)
	operations.SetCountdown(isTerminal(os.Stdout))

	fmt.Fprintln(out, "Fetching a random magazine from Internet Archive...")
	if opts.Filters.HasYearRange() {
		fmt.Fprintf(out, "Year range: %s\n", describeYearRange(opts.Filters))
	}

	ctx := cmd.Context()
	if continuous {
		fmt.Fprintln(out, "Continuous mode enabled. Press Ctrl+C to exit.")
		err = operations.RunContinuous(ctx, opts, delay)
	} else {
		err = operations.RunOnce(ctx, opts)
	}

	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(out, "\nProgram terminated by user.")
		return nil
	}
	return err
}

// formatOptions applies command line overrides to the display config
func formatOptions(display config.DisplayConfig) presenter.FormatOptions {
	opts := presenter.DefaultFormatOptions()
	opts.MaxValues = display.MaxValues
	opts.ShowDescription = display.ShowDescription || showDescription
	return opts
}

// resolve merges flags over config. changed reports whether a flag was
// set on the command line.
func (f searchFlags) resolve(cfg *config.Config, changed func(string) bool) (picker.Options, time.Duration, error) {
	opts := picker.Options{
		Filters: archive.Filters{
			Collection: f.collection,
			MinYear:    f.minYear,
			MaxYear:    f.maxYear,
		},
		MaxResults: cfg.Search.MaxResults,
		RandomPage: cfg.Search.RandomPage,
	}

	// The decade wins over explicit year bounds
	if f.decade != 0 {
		opts.Filters.MinYear, opts.Filters.MaxYear = decadeRange(f.decade)
	}

	if changed("max") {
		if f.maxResults < 1 {
			return picker.Options{}, 0, fmt.Errorf("--max must be at least 1, got %d", f.maxResults)
		}
		opts.MaxResults = f.maxResults
	}

	delay := cfg.Loop.Delay
	if changed("delay") {
		if f.delay < 0 {
			return picker.Options{}, 0, fmt.Errorf("--delay must not be negative, got %d", f.delay)
		}
		delay = time.Duration(f.delay) * time.Second
	}

	expression, err := filter.ResolveExpression(f.filterExpr, f.preset, cfg.Filters)
	if err != nil {
		return picker.Options{}, 0, err
	}
	if expression != "" {
		compiled, err := filter.Compile(expression)
		if err != nil {
			return picker.Options{}, 0, fmt.Errorf("invalid filter expression: %w", err)
		}
		opts.Filter = compiled
	}

	return opts, delay, nil
}

// decadeRange maps a decade like 1960 to 1960..1969
func decadeRange(decade int) (int, int) {
	return decade, decade + 9
}

func describeYearRange(f archive.Filters) string {
	from, to := "earliest", "latest"
	if f.MinYear != 0 {
		from = fmt.Sprint(f.MinYear)
	}
	if f.MaxYear != 0 {
		to = fmt.Sprint(f.MaxYear)
	}
	return fmt.Sprintf("from %s to %s", from, to)
}
