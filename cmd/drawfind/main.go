package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/drawfind"
	"github.com/fwojciec/drawfind/fs"
	"github.com/fwojciec/drawfind/goquery"
	dfhttp "github.com/fwojciec/drawfind/http"
	"github.com/fwojciec/drawfind/scan"
	"github.com/fwojciec/drawfind/search"
	dfslog "github.com/fwojciec/drawfind/slog"
	"github.com/fwojciec/drawfind/zip"
)

func main() {
	// Ctrl-C stops a search in progress.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config is the configuration in effect after Run has parsed arguments.
	Config Config
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Config: DefaultConfig()}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("drawfind"),
		kong.Description("Find the latest revision of technical drawings"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'drawfind --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		return err
	}
	applyFlags(&cfg, cli)
	if err := cfg.Validate(); err != nil {
		return err
	}
	for _, name := range cli.Skip {
		if !slices.Contains(backends, drawfind.Backend(name)) {
			return fmt.Errorf("unknown backend %q: use web, legacy-archive or current-archive", name)
		}
	}
	m.Config = cfg

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	opts := []dfhttp.Option{
		dfhttp.WithRetryDelays(cfg.RetryDelays()...),
		dfhttp.WithLimiter(dfhttp.NewDomainLimiter(cfg.RateLimit)),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, dfhttp.WithTimeout(cfg.Timeout))
	}
	fetcher := dfhttp.NewFetcher(opts...)
	files := fs.NewListingSource()

	var webSource, shareSource drawfind.ListingSource
	webSource = dfhttp.NewListingSource(fetcher, goquery.NewIndexParser())
	shareSource = files
	if logger != nil {
		webSource = dfslog.NewLoggingListingSource(webSource, logger)
		shareSource = dfslog.NewLoggingListingSource(shareSource, logger)
	}

	// Backends in priority order: web, retired drawings share, current share.
	var resolvers []drawfind.Resolver
	if cfg.WebURL != "" && !slices.Contains(cli.Skip, string(drawfind.BackendWeb)) {
		resolvers = append(resolvers, &scan.RemoteScanner{Source: webSource, RootURL: cfg.WebURL})
	}
	if cfg.LegacyRoot != "" && !slices.Contains(cli.Skip, string(drawfind.BackendLegacy)) {
		resolvers = append(resolvers, &scan.LocalScanner{Source: shareSource, Root: cfg.LegacyRoot, Kind: drawfind.BackendLegacy})
	}
	if cfg.CurrentRoot != "" && !slices.Contains(cli.Skip, string(drawfind.BackendCurrent)) {
		resolvers = append(resolvers, &scan.LocalScanner{Source: shareSource, Root: cfg.CurrentRoot, Kind: drawfind.BackendCurrent})
	}
	if len(resolvers) == 0 {
		return fmt.Errorf("all backends skipped")
	}
	if logger != nil {
		for i, r := range resolvers {
			resolvers[i] = dfslog.NewLoggingResolver(r, logger)
		}
	}
	deps.Searcher = search.NewSearcher(resolvers...)

	var packager drawfind.Packager = &zip.Packager{
		Remote:      fetcher,
		Local:       files,
		Concurrency: cfg.Concurrency,
	}
	if logger != nil {
		packager = dfslog.NewLoggingPackager(packager, logger)
	}
	deps.Packager = packager

	return kongCtx.Run(deps)
}

var backends = []drawfind.Backend{drawfind.BackendWeb, drawfind.BackendLegacy, drawfind.BackendCurrent}

// applyFlags overrides configuration values with flags that were set.
func applyFlags(cfg *Config, cli *CLI) {
	if cli.WebURL != "" {
		cfg.WebURL = cli.WebURL
	}
	if cli.LegacyRoot != "" {
		cfg.LegacyRoot = cli.LegacyRoot
	}
	if cli.CurrentRoot != "" {
		cfg.CurrentRoot = cli.CurrentRoot
	}
	if cli.Timeout > 0 {
		cfg.Timeout = cli.Timeout
	}
}
