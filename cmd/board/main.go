package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"

	"github.com/rxtech-lab/argo-board/internal/board"
	"github.com/rxtech-lab/argo-board/internal/codec"
	"github.com/rxtech-lab/argo-board/internal/feed"
	"github.com/rxtech-lab/argo-board/internal/history"
	"github.com/rxtech-lab/argo-board/internal/logger"
	"github.com/rxtech-lab/argo-board/internal/storage"
	"github.com/rxtech-lab/argo-board/internal/types"
	"github.com/rxtech-lab/argo-board/internal/version"
)

// newAction writes an empty board document to the given path.
func newAction(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("output")

	blob, err := codec.NewCodec(nil).Encode(types.NewBoard())
	if err != nil {
		return fmt.Errorf("failed to encode empty board: %w", err)
	}

	if err := os.WriteFile(path, blob, 0644); err != nil {
		return fmt.Errorf("failed to write board file: %w", err)
	}

	log.Printf("Wrote empty board to %s", path)

	return nil
}

// validateAction decodes a board file and checks it for cycles.
func validateAction(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("usage: board validate <file>")
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read board file: %w", err)
	}

	decoded := codec.NewCodec(nil).Decode(blob)

	if board.HasCycle(decoded.Nodes, decoded.Edges) {
		return fmt.Errorf("board %s contains a cycle", path)
	}

	// Unversioned documents are accepted as the current format.
	formatVersion := decoded.Version
	if formatVersion == "" {
		formatVersion = version.BoardFormatVersion
	}

	log.Printf("Board %s is valid: %d nodes, %d edges, format %s",
		path, len(decoded.Nodes), len(decoded.Edges), formatVersion)

	return nil
}

// schemaAction prints the board document JSON schema.
func schemaAction(ctx context.Context, cmd *cli.Command) error {
	blob, err := codec.SchemaJSON()
	if err != nil {
		return fmt.Errorf("failed to generate board schema: %w", err)
	}

	fmt.Println(blob)

	return nil
}

// fetchAction downloads a historical price series and prints it as JSON.
func fetchAction(ctx context.Context, cmd *cli.Command) error {
	ticker := cmd.String("ticker")
	startDate := cmd.Timestamp("start")
	endDate := cmd.Timestamp("end")
	providerFlag := cmd.String("provider")
	baseURL := cmd.String("base-url")

	timeframe, err := history.ParseTimeframe(cmd.String("timeframe"))
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(100,
		progressbar.OptionSetDescription(fmt.Sprintf("Fetching %s", ticker)),
		progressbar.OptionShowCount())

	onProgress := func(current float64, total float64, message string) {
		if total > 0 {
			bar.Set(int(current / total * 100))
		}
	}

	client, err := history.NewClient(history.Config{
		ProviderType:  history.ProviderType(providerFlag),
		BaseURL:       baseURL,
		PolygonApiKey: os.Getenv("POLYGON_API_KEY"),
	}, nil, onProgress)
	if err != nil {
		return fmt.Errorf("failed to create history client: %w", err)
	}

	series, err := client.GetHistory(ctx, history.FetchParams{
		Ticker:    ticker,
		Timeframe: timeframe,
		Start:     startDate,
		End:       endDate,
	})
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	bar.Finish()
	fmt.Println()

	stats := history.ComputeStats(series)
	log.Printf("Fetched %d bars for %s: high %s, low %s, total return %s",
		stats.Bars, ticker, stats.High, stats.Low, stats.TotalReturn.StringFixed(4))

	if output := cmd.String("output"); output != "" {
		blob, err := json.MarshalIndent(series, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode series: %w", err)
		}

		if err := os.WriteFile(output, blob, 0644); err != nil {
			return fmt.Errorf("failed to write series file: %w", err)
		}

		log.Printf("Wrote series to %s", output)
	}

	return nil
}

// serveAction loads a board from storage and serves it until interrupted.
func serveAction(ctx context.Context, cmd *cli.Command) error {
	config := feed.DefaultConfig()

	if configPath := cmd.String("config"); configPath != "" {
		loaded, err := feed.LoadConfig(configPath)
		if err != nil {
			return err
		}

		config = loaded
	}

	if address := cmd.String("address"); address != "" {
		config.Address = address
	}

	appLogger, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer appLogger.Sync()

	store, err := storage.NewFileStorage(config.DataPath, appLogger)
	if err != nil {
		return err
	}

	saved, err := store.LoadBoard(config.BoardName)
	if err != nil {
		// A failed load is reported but never fatal.
		log.Printf("Warning: %v", err)
	}

	boardStore := board.NewStore(board.WithLogger(appLogger))
	boardStore.Load(saved)

	server := feed.NewServer(boardStore, appLogger)
	if err := server.Start(config.Address); err != nil {
		return fmt.Errorf("failed to start feed server: %w", err)
	}

	log.Printf("Serving board %q on %s", config.BoardName, server.BaseURL())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
	case <-ctx.Done():
	}

	if err := store.SaveBoard(config.BoardName, boardStore.Snapshot()); err != nil {
		log.Printf("Warning: failed to save board on shutdown: %v", err)
	}

	return server.Stop()
}

func main() {
	cmd := &cli.Command{
		Name:  "board",
		Usage: "Strategy board tooling",
		Commands: []*cli.Command{
			{
				Name:  "new",
				Usage: "Write an empty board document",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path of the board file to create",
						Value:   "board.json",
					},
				},
				Action: newAction,
			},
			{
				Name:      "validate",
				Usage:     "Decode a board file and check it for cycles",
				ArgsUsage: "<file>",
				Action:    validateAction,
			},
			{
				Name:   "schema",
				Usage:  "Print the board document JSON schema",
				Action: schemaAction,
			},
			{
				Name:  "fetch",
				Usage: "Fetch a historical price series",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "ticker",
						Aliases:  []string{"t"},
						Usage:    "Ticker symbol",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "timeframe",
						Aliases: []string{"f"},
						Usage:   "Bar resolution (1d, 30m, 5m)",
						Value:   string(history.TimeframeOneDay),
					},
					&cli.TimestampFlag{
						Name:    "start",
						Aliases: []string{"s"},
						Usage:   "Start date in `YYYY-MM-DD` format",
						Config: cli.TimestampConfig{
							Layouts: []string{"2006-01-02"},
						},
						Required: true,
					},
					&cli.TimestampFlag{
						Name:    "end",
						Aliases: []string{"e"},
						Usage:   "End date in `YYYY-MM-DD` format. Defaults to today.",
						Value:   time.Now(),
						Config: cli.TimestampConfig{
							Layouts: []string{"2006-01-02"},
						},
					},
					&cli.StringFlag{
						Name:    "provider",
						Aliases: []string{"p"},
						Usage:   fmt.Sprintf("History provider (%s, %s, %s)", history.ProviderLocal, history.ProviderPolygon, history.ProviderBinance),
						Value:   string(history.ProviderLocal),
					},
					&cli.StringFlag{
						Name:  "base-url",
						Usage: "Base URL of the local history service",
						Value: "http://localhost:8080",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Optional path to write the fetched series as JSON",
					},
				},
				Action: fetchAction,
			},
			{
				Name:  "serve",
				Usage: "Serve a board over HTTP and WebSocket",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to a YAML feed config file",
					},
					&cli.StringFlag{
						Name:    "address",
						Aliases: []string{"a"},
						Usage:   "Listen address, overrides the config file",
					},
				},
				Action: serveAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
