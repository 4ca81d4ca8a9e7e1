package storage

import "NewsSentinel/internal/model"

// Store persists fetched datasets, one dataset per (symbol, content
// kind). A save fully overwrites whatever was stored for that symbol
// before; there is no merge.
type Store interface {
	SaveNews(symbol string, articles []model.NewsArticle) error
	LoadNews(symbol string) ([]model.NewsArticle, error)
	SaveSocial(symbol string, entries []model.SocialSentiment) error
	Close() error
}
