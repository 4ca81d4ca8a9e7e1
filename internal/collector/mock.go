package collector

import (
	"time"

	"NewsSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	News   []model.NewsArticle
	Social []model.SocialSentiment
	Err    error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchNews(symbol string, _ bool) ([]model.NewsArticle, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.News != nil {
		return m.News, nil
	}
	return generateMockNews(symbol, 5), nil
}

func (m *MockFetcher) FetchSocialSentiment(symbol string, _ bool) ([]model.SocialSentiment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Social, nil
}

func generateMockNews(symbol string, count int) []model.NewsArticle {
	articles := make([]model.NewsArticle, count)
	for i := 0; i < count; i++ {
		articles[i] = model.NewsArticle{
			Symbol:        symbol,
			PublishedDate: time.Now().AddDate(0, 0, -i),
			Title:         "Mock headline",
			Text:          "Mock article body used for development.",
			URL:           "https://example.com/mock",
			Site:          "mock",
		}
	}
	return articles
}
