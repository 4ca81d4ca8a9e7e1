package model

import "time"

// SocialSentiment is an aggregated social-media engagement sample for a
// symbol, as supplied by the data provider. Never mutated after fetch.
type SocialSentiment struct {
	Symbol string
	Date   time.Time

	StocktwitsPosts       int
	TwitterPosts          int
	StocktwitsComments    int
	TwitterComments       int
	StocktwitsLikes       int
	TwitterLikes          int
	StocktwitsImpressions int
	TwitterImpressions    int

	StocktwitsSentiment float64
	TwitterSentiment    float64
}
