package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"NewsSentinel/internal/model"
	"NewsSentinel/internal/progress"
	"NewsSentinel/pkg/logger"
)

// fmpTimeLayout is the timestamp format used by the FMP API
// (publishedDate on news, date on social sentiment).
const fmpTimeLayout = "2006-01-02 15:04:05"

// FMPFetcher implements Fetcher using the Financial Modeling Prep REST API.
type FMPFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client

	// CallDelay is the minimum spacing between API calls. Paged fetches
	// sleep off the remainder of each call slot. Zero disables throttling.
	CallDelay time.Duration
}

// NewFMPFetcher creates a new fetcher with optional proxy support.
// callsPerMinute is the plan's API budget; <= 0 disables throttling.
func NewFMPFetcher(baseURL, apiKey, proxyURL string, callsPerMinute int) *FMPFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	var delay time.Duration
	if callsPerMinute > 0 {
		delay = time.Minute / time.Duration(callsPerMinute)
	}
	return &FMPFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		CallDelay: delay,
	}
}

func (f *FMPFetcher) Name() string { return "fmp" }

// fmpNewsItem is the JSON shape of one entry from the stock_news endpoint.
type fmpNewsItem struct {
	Symbol        string `json:"symbol"`
	PublishedDate string `json:"publishedDate"`
	Title         string `json:"title"`
	Image         string `json:"image"`
	Site          string `json:"site"`
	Text          string `json:"text"`
	URL           string `json:"url"`
}

// fmpSocialItem is the JSON shape of one entry from the
// historical/social-sentiment endpoint.
type fmpSocialItem struct {
	Date                  string  `json:"date"`
	Symbol                string  `json:"symbol"`
	StocktwitsPosts       int     `json:"stocktwitsPosts"`
	TwitterPosts          int     `json:"twitterPosts"`
	StocktwitsComments    int     `json:"stocktwitsComments"`
	TwitterComments       int     `json:"twitterComments"`
	StocktwitsLikes       int     `json:"stocktwitsLikes"`
	TwitterLikes          int     `json:"twitterLikes"`
	StocktwitsImpressions int     `json:"stocktwitsImpressions"`
	TwitterImpressions    int     `json:"twitterImpressions"`
	StocktwitsSentiment   float64 `json:"stocktwitsSentiment"`
	TwitterSentiment      float64 `json:"twitterSentiment"`
}

// FetchNews reads all news pages for a symbol, in the order the API
// returns them (newest first). An empty first page yields an empty
// result, not an error.
func (f *FMPFetcher) FetchNews(symbol string, verbose bool) ([]model.NewsArticle, error) {
	if f.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	symbol = NormalizeSymbol(symbol)

	var articles []model.NewsArticle
	for page := 0; ; page++ {
		start := time.Now()
		if verbose {
			progress.Reprintf("%s news >> reading page %d...", symbol, page+1)
		}

		endpoint := fmt.Sprintf("%s/v3/stock_news?tickers=%s&page=%d", f.BaseURL, url.QueryEscape(symbol), page)
		var items []fmpNewsItem
		if err := f.getJSON(endpoint, &items); err != nil {
			return nil, err
		}
		if len(items) == 0 {
			break
		}

		for _, it := range items {
			articles = append(articles, model.NewsArticle{
				Symbol:        symbol,
				PublishedDate: parseFMPTime(it.PublishedDate),
				Title:         it.Title,
				Text:          it.Text,
				URL:           it.URL,
				Site:          it.Site,
			})
		}
		f.throttle(time.Since(start))
	}
	if verbose {
		progress.NewLine()
	}

	logger.Info("news fetched", zap.String("symbol", symbol), zap.Int("count", len(articles)))
	return articles, nil
}

// FetchSocialSentiment reads all social sentiment pages for a symbol,
// newest first.
func (f *FMPFetcher) FetchSocialSentiment(symbol string, verbose bool) ([]model.SocialSentiment, error) {
	if f.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	symbol = NormalizeSymbol(symbol)

	var entries []model.SocialSentiment
	for page := 0; ; page++ {
		start := time.Now()
		if verbose {
			progress.Reprintf("%s social sentiment >> reading page %d...", symbol, page+1)
		}

		endpoint := fmt.Sprintf("%s/v4/historical/social-sentiment?symbol=%s&page=%d", f.BaseURL, url.QueryEscape(symbol), page)
		var items []fmpSocialItem
		if err := f.getJSON(endpoint, &items); err != nil {
			return nil, err
		}
		if len(items) == 0 {
			break
		}

		for _, it := range items {
			entries = append(entries, model.SocialSentiment{
				Symbol:                symbol,
				Date:                  parseFMPTime(it.Date),
				StocktwitsPosts:       it.StocktwitsPosts,
				TwitterPosts:          it.TwitterPosts,
				StocktwitsComments:    it.StocktwitsComments,
				TwitterComments:       it.TwitterComments,
				StocktwitsLikes:       it.StocktwitsLikes,
				TwitterLikes:          it.TwitterLikes,
				StocktwitsImpressions: it.StocktwitsImpressions,
				TwitterImpressions:    it.TwitterImpressions,
				StocktwitsSentiment:   it.StocktwitsSentiment,
				TwitterSentiment:      it.TwitterSentiment,
			})
		}
		f.throttle(time.Since(start))
	}
	if verbose {
		progress.NewLine()
	}

	logger.Info("social sentiment fetched", zap.String("symbol", symbol), zap.Int("count", len(entries)))
	return entries, nil
}

// getJSON performs one GET against an endpoint (credentials appended
// here, never in the endpoint string) and decodes the body into target.
func (f *FMPFetcher) getJSON(endpoint string, target any) error {
	req, err := http.NewRequest("GET", endpoint+"&apikey="+url.QueryEscape(f.APIKey), nil)
	if err != nil {
		return &RequestError{URL: endpoint, Err: err}
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return &RequestError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{URL: endpoint, Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{URL: endpoint, Status: resp.StatusCode, Err: fmt.Errorf("body: %s", string(body))}
	}
	if err := json.Unmarshal(body, target); err != nil {
		return &RequestError{URL: endpoint, Status: resp.StatusCode, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

// throttle sleeps off whatever remains of the current call slot.
func (f *FMPFetcher) throttle(elapsed time.Duration) {
	if d := f.CallDelay - elapsed; d > 0 {
		time.Sleep(d)
	}
}

func parseFMPTime(s string) time.Time {
	t, err := time.Parse(fmpTimeLayout, s)
	if err != nil {
		logger.Debug("unparseable timestamp", zap.String("value", s))
		return time.Time{}
	}
	return t
}
