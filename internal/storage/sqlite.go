package storage

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"NewsSentinel/internal/model"
	"NewsSentinel/pkg/logger"
)

// SQLiteStore persists datasets to a SQLite database. It keeps the same
// overwrite semantics as the CSV files: a save replaces all rows stored
// for the symbol.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read
	// while the bot writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Info("sqlite store opened", zap.String("path", dbPath))
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS news_articles (
			id                    INTEGER PRIMARY KEY AUTOINCREMENT,
			symbol                TEXT NOT NULL,
			published_date        INTEGER NOT NULL,
			title                 TEXT,
			text                  TEXT,
			url                   TEXT,
			site                  TEXT,
			negative              REAL,
			neutral               REAL,
			positive              REAL,
			compound              REAL,
			sentiment             INTEGER,
			sentiment_probability REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_news_symbol_date ON news_articles(symbol, published_date)`,

		`CREATE TABLE IF NOT EXISTS social_sentiment (
			id                     INTEGER PRIMARY KEY AUTOINCREMENT,
			symbol                 TEXT NOT NULL,
			date                   INTEGER NOT NULL,
			stocktwits_posts       INTEGER,
			twitter_posts          INTEGER,
			stocktwits_comments    INTEGER,
			twitter_comments       INTEGER,
			stocktwits_likes       INTEGER,
			twitter_likes          INTEGER,
			stocktwits_impressions INTEGER,
			twitter_impressions    INTEGER,
			stocktwits_sentiment   REAL,
			twitter_sentiment      REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_social_symbol_date ON social_sentiment(symbol, date)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

func (s *SQLiteStore) SaveNews(symbol string, articles []model.NewsArticle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM news_articles WHERE symbol = ?`, symbol); err != nil {
		return fmt.Errorf("clear news: %w", err)
	}

	for _, a := range articles {
		var neg, neu, pos, comp, prob any
		var overall any
		if sc := a.Sentiment; sc != nil {
			neg, neu, pos, comp = sc.Negative, sc.Neutral, sc.Positive, sc.Compound
			overall, prob = sc.Overall, sc.Probability
		}
		if _, err := tx.Exec(`INSERT INTO news_articles
			(symbol, published_date, title, text, url, site,
			 negative, neutral, positive, compound, sentiment, sentiment_probability)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
			symbol, a.PublishedDate.Unix(), a.Title, a.Text, a.URL, a.Site,
			neg, neu, pos, comp, overall, prob,
		); err != nil {
			return fmt.Errorf("insert news: %w", err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) LoadNews(symbol string) ([]model.NewsArticle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT published_date, title, text, url, site,
		negative, neutral, positive, compound, sentiment, sentiment_probability
		FROM news_articles WHERE symbol = ? ORDER BY published_date DESC`, symbol)
	if err != nil {
		return nil, fmt.Errorf("query news: %w", err)
	}
	defer rows.Close()

	var articles []model.NewsArticle
	for rows.Next() {
		var (
			ts                  int64
			a                   model.NewsArticle
			neg, neu, pos, comp sql.NullFloat64
			overall             sql.NullInt64
			prob                sql.NullFloat64
		)
		if err := rows.Scan(&ts, &a.Title, &a.Text, &a.URL, &a.Site,
			&neg, &neu, &pos, &comp, &overall, &prob); err != nil {
			return nil, fmt.Errorf("scan news: %w", err)
		}
		a.Symbol = symbol
		a.PublishedDate = time.Unix(ts, 0).UTC()
		if overall.Valid {
			a.Sentiment = &model.SentimentScore{
				Negative:    neg.Float64,
				Neutral:     neu.Float64,
				Positive:    pos.Float64,
				Compound:    comp.Float64,
				Overall:     int(overall.Int64),
				Probability: prob.Float64,
			}
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (s *SQLiteStore) SaveSocial(symbol string, entries []model.SocialSentiment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM social_sentiment WHERE symbol = ?`, symbol); err != nil {
		return fmt.Errorf("clear social sentiment: %w", err)
	}

	for _, e := range entries {
		if _, err := tx.Exec(`INSERT INTO social_sentiment
			(symbol, date, stocktwits_posts, twitter_posts,
			 stocktwits_comments, twitter_comments,
			 stocktwits_likes, twitter_likes,
			 stocktwits_impressions, twitter_impressions,
			 stocktwits_sentiment, twitter_sentiment)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
			symbol, e.Date.Unix(), e.StocktwitsPosts, e.TwitterPosts,
			e.StocktwitsComments, e.TwitterComments,
			e.StocktwitsLikes, e.TwitterLikes,
			e.StocktwitsImpressions, e.TwitterImpressions,
			e.StocktwitsSentiment, e.TwitterSentiment,
		); err != nil {
			return fmt.Errorf("insert social sentiment: %w", err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	logger.Info("closing sqlite store")
	return s.db.Close()
}
