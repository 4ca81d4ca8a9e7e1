package storage

import "NewsSentinel/internal/model"

// NoopStore is a no-op implementation used when persistence is disabled.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) SaveNews(_ string, _ []model.NewsArticle) error       { return nil }
func (n *NoopStore) LoadNews(_ string) ([]model.NewsArticle, error)       { return nil, nil }
func (n *NoopStore) SaveSocial(_ string, _ []model.SocialSentiment) error { return nil }
func (n *NoopStore) Close() error                                         { return nil }
