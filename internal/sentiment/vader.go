package sentiment

import (
	"github.com/jonreiter/govader"

	"NewsSentinel/internal/model"
)

// VaderScorer scores text with the VADER lexicon-and-rule algorithm.
// The analyzer is stateless after construction, so one instance can be
// reused across calls.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer builds a scorer with the default VADER lexicon.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderScorer) Score(text string) model.SentimentScore {
	s := v.analyzer.PolarityScores(text)
	return classify(model.SentimentScore{
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Positive: s.Positive,
		Compound: s.Compound,
	})
}
