package billboard

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/epilanthanomai/chartsync/internal/cache"
	"github.com/epilanthanomai/chartsync/internal/chart"
)

const DefaultBaseURL = "https://www.billboard.com/"

type Options struct {
	// BaseURL defaults to the live site; tests point it elsewhere.
	BaseURL   string
	UserAgent string
	Strategy  Strategy
	// Store holds fetched chart editions, one file per slug-date key.
	Store *cache.Store
	// WebCacheDir, when set, receives a copy of every fetched page.
	WebCacheDir string
	Logger      *zap.Logger
}

// Client fetches chart pages from billboard.com, extracts them with the
// configured strategy, and serves previously fetched editions from the
// chart store without touching the network.
type Client struct {
	http     *resty.Client
	strategy Strategy
	logger   *zap.Logger
	getChart func(chart.Identity) (chart.Result, error)
}

func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	httpClient := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeader("User-Agent", opts.UserAgent).
		SetRetryCount(2)
	if opts.WebCacheDir != "" {
		dump := responseDump{dir: opts.WebCacheDir, logger: opts.Logger}
		httpClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			dump.write(resp)
			return nil
		})
	}

	c := &Client{
		http:     httpClient,
		strategy: opts.Strategy,
		logger:   opts.Logger,
	}
	c.getChart = cache.Memoize(opts.Store, chart.Identity.Key, c.requestChart)
	return c
}

// Chart returns the chart edition for slug and date. For a given cache
// directory each edition is fetched from the network at most once; any
// later call, in this process or another, reads the stored copy.
func (c *Client) Chart(slug, date string) (chart.Result, error) {
	return c.getChart(chart.Identity{Slug: slug, Date: date})
}

func (c *Client) requestChart(id chart.Identity) (chart.Result, error) {
	c.logger.Info("fetching chart",
		zap.String("slug", id.Slug),
		zap.String("date", id.Date))

	resp, err := c.http.R().Get(fmt.Sprintf("charts/%s/%s", id.Slug, id.Date))
	if err != nil {
		return chart.Result{}, fmt.Errorf("fetching chart %s: %w", id.Key(), err)
	}
	if !resp.IsSuccess() {
		return chart.Result{}, &StatusError{URL: resp.Request.URL, Code: resp.StatusCode()}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return chart.Result{}, fmt.Errorf("parsing chart page: %w", err)
	}

	result, err := c.strategy.Extract(doc)
	if err != nil {
		return chart.Result{}, err
	}
	if result.Chart.Identity != id {
		return chart.Result{}, &IdentityError{Want: id, Got: result.Chart.Identity}
	}
	if len(result.Positions) == 0 {
		return chart.Result{}, ErrNoPositions
	}

	c.logger.Info("chart extracted",
		zap.String("name", result.Chart.Name),
		zap.Int("positions", len(result.Positions)))
	return result, nil
}
