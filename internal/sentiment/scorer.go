package sentiment

import (
	"errors"
	"sort"
	"time"

	"NewsSentinel/internal/model"
)

// VADER reference thresholds: a compound score at or above 0.05 is
// positive, at or below -0.05 negative, anything between neutral.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Scorer computes polarity scores for a piece of text. Implementations
// must be deterministic and free of I/O.
type Scorer interface {
	Score(text string) model.SentimentScore
}

// Annotate fills Sentiment for every article that does not already
// carry one. The article body is scored; when it is empty the title is
// scored instead, and when both are empty the article gets the neutral
// zero score. The returned slice has the same length and order as the
// input; articles are never dropped or reordered.
func Annotate(articles []model.NewsArticle, scorer Scorer) ([]model.NewsArticle, error) {
	if scorer == nil {
		return nil, errors.New("sentiment: nil scorer")
	}

	out := make([]model.NewsArticle, len(articles))
	copy(out, articles)

	for i := range out {
		if out[i].Sentiment != nil {
			continue
		}
		text := out[i].Text
		if text == "" {
			text = out[i].Title
		}
		if text == "" {
			out[i].Sentiment = &model.SentimentScore{Neutral: 1}
			continue
		}
		s := scorer.Score(text)
		out[i].Sentiment = &s
	}
	return out, nil
}

// classify derives the overall label and its probability from the raw
// proportions and compound score.
func classify(s model.SentimentScore) model.SentimentScore {
	switch {
	case s.Compound >= positiveThreshold:
		s.Overall = 1
		s.Probability = s.Positive
	case s.Compound <= negativeThreshold:
		s.Overall = -1
		s.Probability = s.Negative
	default:
		s.Overall = 0
		s.Probability = s.Neutral
	}
	return s
}

// AggregateDaily groups annotated articles by calendar day (UTC) and
// sums label * probability per day. Articles without a sentiment
// contribute nothing. The result is sorted oldest first.
func AggregateDaily(articles []model.NewsArticle) []model.DailySentiment {
	byDay := make(map[time.Time]float64)
	for _, a := range articles {
		if a.Sentiment == nil || a.PublishedDate.IsZero() {
			continue
		}
		day := a.PublishedDate.UTC().Truncate(24 * time.Hour)
		byDay[day] += float64(a.Sentiment.Overall) * a.Sentiment.Probability
	}

	out := make([]model.DailySentiment, 0, len(byDay))
	for day, score := range byDay {
		out = append(out, model.DailySentiment{Date: day, Score: score})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
