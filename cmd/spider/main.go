package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/GBuch1/spider"
	"github.com/GBuch1/spider/bloom"
	"github.com/GBuch1/spider/crawl"
	"github.com/GBuch1/spider/etree"
	"github.com/GBuch1/spider/fs"
	"github.com/GBuch1/spider/goquery"
	"github.com/GBuch1/spider/readability"
	spiderslog "github.com/GBuch1/spider/slog"
	"github.com/GBuch1/spider/sqlite"
	"github.com/GBuch1/spider/trafilatura"
	"github.com/GBuch1/spider/yaml"
	"github.com/alecthomas/kong"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("spider"),
		kong.Description("Crawl a local document corpus and report two-gram frequencies"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg, err := yaml.LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "error: invalid configuration file %s: %s\n", cli.Config, spider.ErrorMessage(err))
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose || cfg.Agent.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Config: cfg,
		Logger: logger,
	}

	var fetcher spider.Fetcher
	fetcher, err = fs.NewFetcher(cfg.Agent)
	if err != nil {
		return err
	}

	markup, err := newMarkupParser(cfg.Agent.Parser)
	if err != nil {
		return err
	}

	// Wrap services with logging decorators when verbose
	if cli.Verbose {
		fetcher = spiderslog.NewLoggingFetcher(fetcher, logger)
		markup = spiderslog.NewLoggingParser(markup, logger)
	}

	stores, err := newStores(cli.Store)
	if err != nil {
		return err
	}
	defer stores.Close()
	deps.Stores = stores

	deps.Crawler = &crawl.Crawler{
		Frontier: crawl.NewFrontier(),
		Agent: &crawl.Agent{
			Fetcher:   fetcher,
			Extractor: crawl.NewExtractor(markup, cfg.Agent),
			Documents: stores.Documents,
			Locations: stores.Locations,
			Logger:    logger,
		},
	}

	cmd := &CrawlCmd{
		Seeds:  spider.Locations(cfg.Seeds...),
		Output: cli.Output,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Store   string `short:"s" enum:"memory,bloom,sqlite" default:"memory" help:"Membership store backend (memory, bloom, sqlite)"`
	Verbose bool   `short:"v" help:"Log every open and parse"`
	Config  string `arg:"" required:"" type:"path" help:"Path to the configuration file (JSON or YAML)"`
	Output  string `arg:"" optional:"" type:"path" help:"Path to the output report (default: stdout)"`
}

// newMarkupParser returns the markup engine for a parser selector.
func newMarkupParser(name string) (spider.MarkupParser, error) {
	switch name {
	case spider.ParserHTML, spider.ParserLXML, spider.ParserHTML5Lib:
		return goquery.NewParser(), nil
	case spider.ParserXML, spider.ParserLXMLXML:
		return etree.NewParser(), nil
	case spider.ParserTrafilatura:
		return trafilatura.NewParser(), nil
	case spider.ParserReadability:
		return readability.NewParser(), nil
	}
	return nil, spider.Errorf(spider.EINVALID, "unknown parser %q", name)
}

// Stores holds the two membership stores of a run.
type Stores struct {
	Documents spider.DocumentStore
	Locations spider.LocationStore

	// Err reports a backend failure hidden behind the membership interface.
	Err func() error

	close func() error
}

// Close releases the backend.
func (s *Stores) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// newStores creates the document and location stores for a backend kind.
func newStores(kind string) (*Stores, error) {
	switch kind {
	case "", "memory":
		return &Stores{
			Documents: crawl.NewStore[spider.Fingerprint](),
			Locations: crawl.NewStore[spider.Location](),
			Err:       func() error { return nil },
		}, nil
	case "bloom":
		return &Stores{
			Documents: bloom.NewStore[spider.Fingerprint](bloom.DefaultExpectedItems, bloom.DefaultFalsePositiveRate),
			Locations: bloom.NewStore[spider.Location](bloom.DefaultExpectedItems, bloom.DefaultFalsePositiveRate),
			Err:       func() error { return nil },
		}, nil
	case "sqlite":
		db := sqlite.NewDB()
		if err := db.Open(); err != nil {
			return nil, spider.Errorf(spider.EINTERNAL, "open store: %v", err)
		}
		docs := sqlite.NewStore[spider.Fingerprint](db, "document")
		locs := sqlite.NewStore[spider.Location](db, "location")
		return &Stores{
			Documents: docs,
			Locations: locs,
			Err: func() error {
				if err := docs.Err(); err != nil {
					return err
				}
				return locs.Err()
			},
			close: db.Close,
		}, nil
	}
	return nil, spider.Errorf(spider.EINVALID, "unknown store %q", kind)
}
