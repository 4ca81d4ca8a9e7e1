package collector

import (
	"strings"

	"NewsSentinel/internal/model"
)

// Fetcher defines the interface for fetching news and social sentiment data.
type Fetcher interface {
	FetchNews(symbol string, verbose bool) ([]model.NewsArticle, error)
	FetchSocialSentiment(symbol string, verbose bool) ([]model.SocialSentiment, error)
	Name() string
}

// NormalizeSymbol strips an exchange extension from a ticker
// ("NESN.SW" -> "NESN"); the provider indexes plain symbols.
func NormalizeSymbol(symbol string) string {
	if i := strings.Index(symbol, "."); i > -1 {
		return symbol[:i]
	}
	return symbol
}
