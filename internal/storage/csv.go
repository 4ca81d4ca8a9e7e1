package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"NewsSentinel/internal/model"
	"NewsSentinel/pkg/logger"
)

// dateLayout is the timestamp format used in stored files. It matches
// the provider's own format so dates round-trip unchanged.
const dateLayout = "2006-01-02 15:04:05"

var newsHeader = []string{
	"date", "title", "text", "url", "site",
	"negative", "neutral", "positive", "compound",
	"sentiment", "sentiment_probability",
}

// The symbol column is dropped on purpose: the file name carries it.
var socialHeader = []string{
	"date",
	"stocktwits_posts", "twitter_posts",
	"stocktwits_comments", "twitter_comments",
	"stocktwits_likes", "twitter_likes",
	"stocktwits_impressions", "twitter_impressions",
	"stocktwits_sentiment", "twitter_sentiment",
}

// CSVStore persists datasets as CSV files under a base directory:
// news/<SYMBOL>.csv and social_sentiment/<SYMBOL>.csv. Rows are sorted
// newest first and each save rewrites the whole file.
type CSVStore struct {
	Dir string
}

func NewCSVStore(dir string) *CSVStore {
	return &CSVStore{Dir: dir}
}

func (s *CSVStore) newsPath(symbol string) string {
	return filepath.Join(s.Dir, "news", symbol+".csv")
}

func (s *CSVStore) socialPath(symbol string) string {
	return filepath.Join(s.Dir, "social_sentiment", symbol+".csv")
}

func (s *CSVStore) SaveNews(symbol string, articles []model.NewsArticle) error {
	sorted := make([]model.NewsArticle, len(articles))
	copy(sorted, articles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedDate.After(sorted[j].PublishedDate)
	})

	rows := make([][]string, 0, len(sorted)+1)
	rows = append(rows, newsHeader)
	for _, a := range sorted {
		row := []string{
			a.PublishedDate.Format(dateLayout),
			a.Title, a.Text, a.URL, a.Site,
			"", "", "", "", "", "",
		}
		if sc := a.Sentiment; sc != nil {
			row[5] = formatFloat(sc.Negative)
			row[6] = formatFloat(sc.Neutral)
			row[7] = formatFloat(sc.Positive)
			row[8] = formatFloat(sc.Compound)
			row[9] = strconv.Itoa(sc.Overall)
			row[10] = formatFloat(sc.Probability)
		}
		rows = append(rows, row)
	}

	if err := s.writeFile(s.newsPath(symbol), rows); err != nil {
		return err
	}
	logger.Info("news saved", zap.String("path", s.newsPath(symbol)), zap.Int("count", len(sorted)))
	return nil
}

func (s *CSVStore) LoadNews(symbol string) ([]model.NewsArticle, error) {
	f, err := os.Open(s.newsPath(symbol))
	if err != nil {
		// No file yet means no stored news, which is not an error.
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open news file: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read news file: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	articles := make([]model.NewsArticle, 0, len(records)-1)
	for _, row := range records[1:] {
		if len(row) != len(newsHeader) {
			return nil, fmt.Errorf("news file %s: unexpected column count %d", s.newsPath(symbol), len(row))
		}
		a := model.NewsArticle{
			Symbol: symbol,
			Title:  row[1],
			Text:   row[2],
			URL:    row[3],
			Site:   row[4],
		}
		if t, err := time.Parse(dateLayout, row[0]); err == nil {
			a.PublishedDate = t
		}
		if row[9] != "" {
			sc := &model.SentimentScore{}
			sc.Negative, _ = strconv.ParseFloat(row[5], 64)
			sc.Neutral, _ = strconv.ParseFloat(row[6], 64)
			sc.Positive, _ = strconv.ParseFloat(row[7], 64)
			sc.Compound, _ = strconv.ParseFloat(row[8], 64)
			sc.Overall, _ = strconv.Atoi(row[9])
			sc.Probability, _ = strconv.ParseFloat(row[10], 64)
			a.Sentiment = sc
		}
		articles = append(articles, a)
	}
	return articles, nil
}

func (s *CSVStore) SaveSocial(symbol string, entries []model.SocialSentiment) error {
	sorted := make([]model.SocialSentiment, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	rows := make([][]string, 0, len(sorted)+1)
	rows = append(rows, socialHeader)
	for _, e := range sorted {
		rows = append(rows, []string{
			e.Date.Format(dateLayout),
			strconv.Itoa(e.StocktwitsPosts), strconv.Itoa(e.TwitterPosts),
			strconv.Itoa(e.StocktwitsComments), strconv.Itoa(e.TwitterComments),
			strconv.Itoa(e.StocktwitsLikes), strconv.Itoa(e.TwitterLikes),
			strconv.Itoa(e.StocktwitsImpressions), strconv.Itoa(e.TwitterImpressions),
			formatFloat(e.StocktwitsSentiment), formatFloat(e.TwitterSentiment),
		})
	}

	if err := s.writeFile(s.socialPath(symbol), rows); err != nil {
		return err
	}
	logger.Info("social sentiment saved", zap.String("path", s.socialPath(symbol)), zap.Int("count", len(sorted)))
	return nil
}

func (s *CSVStore) Close() error { return nil }

// writeFile creates the parent directory on demand and rewrites the
// whole file. The write is not atomic; callers treat it as one logical
// step and rerun the operation after a failure.
func (s *CSVStore) writeFile(path string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
