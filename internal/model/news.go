package model

import "time"

// NewsArticle is a single news item published for a symbol.
type NewsArticle struct {
	Symbol        string
	PublishedDate time.Time
	Title         string
	Text          string
	URL           string
	Site          string
	Sentiment     *SentimentScore // nil until annotated
}

// SentimentScore holds VADER polarity scores for a piece of text.
// Negative, Neutral and Positive are proportions summing to 1;
// Compound is the normalized overall polarity in [-1, 1].
type SentimentScore struct {
	Negative float64
	Neutral  float64
	Positive float64
	Compound float64

	Overall     int     // -1: negative, 0: neutral, 1: positive
	Probability float64 // confidence in Overall, range [0, 1]
}

// DailySentiment is the aggregated news sentiment for one calendar day.
type DailySentiment struct {
	Date  time.Time
	Score float64
}
