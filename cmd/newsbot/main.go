package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"NewsSentinel/internal/collector"
	"NewsSentinel/internal/config"
	"NewsSentinel/internal/feed"
	"NewsSentinel/internal/sentiment"
	"NewsSentinel/internal/storage"
	"NewsSentinel/pkg/logger"
)

func main() {
	var (
		symbol  = flag.String("symbol", "", "stock ticker symbol, e.g. MSFT")
		op      = flag.String("op", "all", "operation: news, sentiment, social, aggregate or all")
		cfgPath = flag.String("config", "configs/config.yaml", "path to config file")
		verbose = flag.Bool("v", false, "print progress output")
	)
	flag.Parse()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	if *symbol == "" {
		fmt.Fprintln(os.Stderr, "-symbol is required")
		flag.Usage()
		os.Exit(2)
	}

	if v := os.Getenv("CONFIG_PATH"); v != "" {
		*cfgPath = v
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()
	logger.Info("NewsSentinel starting", zap.String("symbol", *symbol), zap.String("op", *op))

	fetcher := collector.NewFMPFetcher(cfg.FMP.BaseURL, cfg.FMP.APIKey, cfg.Proxy, cfg.FMP.CallsPerMinute)
	logger.Info("data source ready", zap.String("fetcher", fetcher.Name()))

	var store storage.Store
	switch cfg.Storage.Backend {
	case "sqlite":
		ss, err := storage.NewSQLiteStore(cfg.Storage.SQLitePath)
		if err != nil {
			logger.Fatal("init sqlite store", zap.Error(err))
		}
		store = ss
	case "none":
		store = storage.NewNoopStore()
	default:
		store = storage.NewCSVStore(cfg.Storage.DataDir)
	}
	defer store.Close()

	fd := feed.New(*symbol, fetcher, sentiment.NewVaderScorer(), store)

	if err := run(fd, *op, *verbose); err != nil {
		logger.Fatal("operation failed", zap.String("op", *op), zap.Error(err))
	}
	logger.Info("done", zap.String("symbol", fd.Symbol), zap.String("op", *op))
}

func run(fd *feed.Feed, op string, verbose bool) error {
	switch op {
	case "news":
		return fd.ReadNews(verbose)
	case "sentiment":
		return fd.AddSentimentToNews()
	case "social":
		return fd.ReadSocialSentiment(verbose)
	case "aggregate":
		days, err := fd.AggregateNewsSentiment()
		if err != nil {
			return err
		}
		for _, d := range days {
			fmt.Printf("%s\t%+.4f\n", d.Date.Format("2006-01-02"), d.Score)
		}
		return nil
	case "all":
		if err := fd.ReadNews(verbose); err != nil {
			return err
		}
		if err := fd.AddSentimentToNews(); err != nil {
			return err
		}
		return fd.ReadSocialSentiment(verbose)
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
}
