package storage

import (
	"path/filepath"
	"testing"
	"time"

	"NewsSentinel/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_SaveLoadRoundtrip(t *testing.T) {
	s := newTestSQLiteStore(t)

	articles := []model.NewsArticle{
		{
			Symbol:        "MSFT",
			PublishedDate: time.Date(2023, 3, 2, 10, 30, 0, 0, time.UTC),
			Title:         "scored",
			Text:          "body",
			URL:           "https://example.com/1",
			Site:          "siteA",
			Sentiment: &model.SentimentScore{
				Negative: 0.1, Neutral: 0.3, Positive: 0.6, Compound: 0.75,
				Overall: 1, Probability: 0.6,
			},
		},
		{
			Symbol:        "MSFT",
			PublishedDate: time.Date(2023, 3, 1, 9, 0, 0, 0, time.UTC),
			Title:         "unscored",
		},
	}
	if err := s.SaveNews("MSFT", articles); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := s.LoadNews("MSFT")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(loaded))
	}
	if loaded[0].Title != "scored" {
		t.Errorf("expected newest first, got %q", loaded[0].Title)
	}
	if loaded[0].Sentiment == nil || loaded[0].Sentiment.Overall != 1 {
		t.Errorf("expected sentiment to survive roundtrip, got %+v", loaded[0].Sentiment)
	}
	if loaded[1].Sentiment != nil {
		t.Error("unscored article must stay unscored")
	}
	if loaded[1].PublishedDate.Unix() != articles[1].PublishedDate.Unix() {
		t.Errorf("unexpected date: %v", loaded[1].PublishedDate)
	}
}

func TestSQLiteStore_SaveOverwrites(t *testing.T) {
	s := newTestSQLiteStore(t)

	many := []model.NewsArticle{
		{PublishedDate: time.Unix(300, 0), Title: "a"},
		{PublishedDate: time.Unix(200, 0), Title: "b"},
		{PublishedDate: time.Unix(100, 0), Title: "c"},
	}
	if err := s.SaveNews("MSFT", many); err != nil {
		t.Fatalf("first save: %v", err)
	}
	few := many[:1]
	if err := s.SaveNews("MSFT", few); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, err := s.LoadNews("MSFT")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected the second save to fully replace the first, got %d rows", len(loaded))
	}
}

func TestSQLiteStore_SymbolsAreIsolated(t *testing.T) {
	s := newTestSQLiteStore(t)

	if err := s.SaveNews("MSFT", []model.NewsArticle{{PublishedDate: time.Unix(100, 0), Title: "msft"}}); err != nil {
		t.Fatalf("save MSFT: %v", err)
	}
	if err := s.SaveNews("AAPL", []model.NewsArticle{{PublishedDate: time.Unix(100, 0), Title: "aapl"}}); err != nil {
		t.Fatalf("save AAPL: %v", err)
	}

	loaded, err := s.LoadNews("MSFT")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Title != "msft" {
		t.Errorf("expected only MSFT rows, got %+v", loaded)
	}
}

func TestSQLiteStore_SaveSocial(t *testing.T) {
	s := newTestSQLiteStore(t)

	entries := []model.SocialSentiment{
		{Symbol: "MSFT", Date: time.Unix(1000, 0), StocktwitsPosts: 5, TwitterSentiment: 0.5},
		{Symbol: "MSFT", Date: time.Unix(2000, 0), StocktwitsPosts: 7, TwitterSentiment: 0.6},
	}
	if err := s.SaveSocial("MSFT", entries); err != nil {
		t.Fatalf("save social: %v", err)
	}
	// Overwrite with a single entry.
	if err := s.SaveSocial("MSFT", entries[:1]); err != nil {
		t.Fatalf("second save: %v", err)
	}

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM social_sentiment WHERE symbol = ?`, "MSFT").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row after overwrite, got %d", count)
	}
}
