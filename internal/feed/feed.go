package feed

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"NewsSentinel/internal/collector"
	"NewsSentinel/internal/model"
	"NewsSentinel/internal/sentiment"
	"NewsSentinel/internal/storage"
	"NewsSentinel/pkg/logger"
)

// Feed exposes the per-symbol operations: read news, annotate stored
// news with sentiment, and read social sentiment. Operations are
// sequential and independent; rerunning one repeats the request and
// overwrites the prior output. Nothing is persisted when an operation
// fails.
type Feed struct {
	Symbol  string
	Fetcher collector.Fetcher
	Scorer  sentiment.Scorer
	Store   storage.Store
}

// New creates a Feed for a symbol. The exchange extension, if any, is
// stripped so storage paths and API requests agree on the plain ticker.
func New(symbol string, fetcher collector.Fetcher, scorer sentiment.Scorer, store storage.Store) *Feed {
	return &Feed{
		Symbol:  collector.NormalizeSymbol(symbol),
		Fetcher: fetcher,
		Scorer:  scorer,
		Store:   store,
	}
}

// ReadNews fetches all news for the symbol and overwrites the stored
// news dataset. An empty API response yields an empty dataset, not an
// error.
func (f *Feed) ReadNews(verbose bool) error {
	articles, err := f.Fetcher.FetchNews(f.Symbol, verbose)
	if err != nil {
		return fmt.Errorf("fetch news: %w", err)
	}
	if err := f.Store.SaveNews(f.Symbol, articles); err != nil {
		return fmt.Errorf("save news: %w", err)
	}
	return nil
}

// AddSentimentToNews loads the stored news, scores every article that
// has no sentiment yet, and saves the dataset back. Articles already
// scored are left untouched, so reruns are cheap.
func (f *Feed) AddSentimentToNews() error {
	if f.Scorer == nil {
		return errors.New("feed: no scorer configured")
	}

	articles, err := f.Store.LoadNews(f.Symbol)
	if err != nil {
		return fmt.Errorf("load news: %w", err)
	}
	if len(articles) == 0 {
		logger.Debug("no stored news to annotate", zap.String("symbol", f.Symbol))
		return nil
	}

	annotated, err := sentiment.Annotate(articles, f.Scorer)
	if err != nil {
		return fmt.Errorf("annotate news: %w", err)
	}
	if err := f.Store.SaveNews(f.Symbol, annotated); err != nil {
		return fmt.Errorf("save annotated news: %w", err)
	}
	return nil
}

// ReadSocialSentiment fetches the symbol's social sentiment history and
// overwrites the stored dataset.
func (f *Feed) ReadSocialSentiment(verbose bool) error {
	entries, err := f.Fetcher.FetchSocialSentiment(f.Symbol, verbose)
	if err != nil {
		return fmt.Errorf("fetch social sentiment: %w", err)
	}
	if err := f.Store.SaveSocial(f.Symbol, entries); err != nil {
		return fmt.Errorf("save social sentiment: %w", err)
	}
	return nil
}

// AggregateNewsSentiment groups the stored, annotated news by calendar
// day and returns the per-day aggregate, oldest first.
func (f *Feed) AggregateNewsSentiment() ([]model.DailySentiment, error) {
	articles, err := f.Store.LoadNews(f.Symbol)
	if err != nil {
		return nil, fmt.Errorf("load news: %w", err)
	}
	return sentiment.AggregateDaily(articles), nil
}
