// hirelens-process ingests job postings from a JSONL file, runs the
// extraction pipeline over each and stores the results in SQLite.
//
// Input lines look like:
//
//	{"url": "...", "title": "...", "company": "...", "location": "...", "source": "...", "description": "..."}
//
// With no input file, it drains the store's unprocessed queue instead.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/hirelens/hirelens/internal/logger"
	"github.com/hirelens/hirelens/pkg/hirelens"
	"github.com/hirelens/hirelens/pkg/hirelens/config"
	"github.com/hirelens/hirelens/pkg/hirelens/store"
	"github.com/hirelens/hirelens/pkg/hirelens/store/sqlite"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config file")
		inputPath  = flag.String("input", "", "postings JSONL file (default: process pending queue)")
		dbPath     = flag.String("db", "", "sqlite database path (overrides config)")
		limit      = flag.Int("limit", 0, "max postings to process, 0 for all")
		debug      = flag.Bool("debug", false, "enable debug logging")
		jsonLogs   = flag.Bool("json-logs", false, "emit JSON logs")
	)
	flag.Parse()

	log, err := logger.New(*jsonLogs, *debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(*configPath, *inputPath, *dbPath, *limit, log); err != nil {
		log.Fatal("processing failed", zap.Error(err))
	}
}

func run(configPath, inputPath, dbPath string, limit int, log *zap.Logger) error {
	ctx := context.Background()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			log.Warn("config unusable, using defaults", zap.String("path", configPath), zap.Error(err))
		}
		cfg = loaded
	}
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}

	st, err := sqlite.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open store %s: %w", cfg.DatabasePath, err)
	}

	engine := hirelens.New(hirelens.Options{Config: cfg, Store: st, Logger: log})
	defer engine.Close()

	if inputPath != "" {
		n, err := loadPostings(ctx, inputPath, st)
		if err != nil {
			return err
		}
		log.Info("postings loaded", zap.String("file", inputPath), zap.Int("count", n))
	}

	start := time.Now()
	results, err := engine.ProcessPending(ctx, limit)
	for _, res := range results {
		log.Info("processed",
			zap.String("url", res.Metadata.URL),
			zap.String("id", res.ID),
			zap.Int("keyword_matches", res.Keywords.TotalMatches),
			zap.Float64("keyword_confidence", res.Confidence["keyword_confidence"]),
			zap.Duration("duration", res.Duration))
	}
	if err != nil {
		return err
	}

	log.Info("run complete",
		zap.Int("processed", len(results)),
		zap.Duration("elapsed", time.Since(start)),
		zap.String("db", cfg.DatabasePath))
	return nil
}

// loadPostings reads a JSONL file and upserts every posting.
func loadPostings(ctx context.Context, path string, st store.Store) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	count := 0
	for line := 1; sc.Scan(); line++ {
		raw := sc.Bytes()
		if len(raw) == 0 {
			continue
		}
		var p store.Posting
		if err := json.Unmarshal(raw, &p); err != nil {
			return count, fmt.Errorf("line %d: %w", line, err)
		}
		if p.URL == "" {
			return count, fmt.Errorf("line %d: posting without url", line)
		}
		if p.FetchedAt.IsZero() {
			p.FetchedAt = time.Now().UTC()
		}
		if err := st.UpsertPosting(ctx, p); err != nil {
			return count, fmt.Errorf("line %d: %w", line, err)
		}
		count++
	}
	return count, sc.Err()
}
