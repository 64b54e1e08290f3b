package serp

import (
	"context"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"

	"github.com/audiencelab/intentforge/core"
)

const (
	defaultBaseURL   = "https://www.searchapi.io/api/v1/search"
	defaultPerQuery  = 30
	defaultRateLimit = 5 // requests per second against the search API
	requestTimeout   = 25 * time.Second
)

// userAgent matches a common desktop browser; some result pages reject
// obvious bot agents.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/124.0 Safari/537.36"

var whitespaceRun = regexp.MustCompile(`\s+`)

// Client fetches Google search results through the SearchAPI service.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the SearchAPI endpoint. Used in tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithRateLimit sets the request rate against the search API in
// requests per second.
func WithRateLimit(perSecond float64) ClientOption {
	return func(c *Client) {
		if perSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSecond), int(perSecond)+1)
		}
	}
}

// NewClient creates a SearchAPI client.
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		limiter:    rate.NewLimiter(rate.Limit(defaultRateLimit), defaultRateLimit),
		logger:     slog.Default().With("component", "serp-client"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// FetchSERP fetches the search results for a single query.
// The locale is a BCP 47-ish tag such as "en-US"; the language part maps to
// hl and the region part to gl. num caps the requested result count; zero
// uses the default of 30.
func (c *Client) FetchSERP(ctx context.Context, query, locale string, num int) ([]core.Document, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	if num <= 0 {
		num = defaultPerQuery
	}
	hl, gl := splitLocale(locale)

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("api_key", c.apiKey)
	params.Set("hl", hl)
	params.Set("gl", gl)
	params.Set("num", strconv.Itoa(num))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	docs := parseSERPResponse(query, body)
	c.logger.Debug("fetched search results", "query", query, "docs", len(docs))
	return docs, nil
}

// parseSERPResponse plucks the organic results out of a SearchAPI response.
// Entries without a link are dropped; positions are 1-based over the kept
// entries.
func parseSERPResponse(query string, body []byte) []core.Document {
	organic := gjson.GetBytes(body, "organic_results")
	if !organic.Exists() {
		organic = gjson.GetBytes(body, "results")
	}

	var docs []core.Document
	pos := 1
	organic.ForEach(func(_, item gjson.Result) bool {
		link := firstString(item, "link", "url")
		if link == "" {
			return true
		}

		docs = append(docs, core.Document{
			Query:    query,
			Title:    cleanSnippet(firstString(item, "title", "headline")),
			Snippet:  cleanSnippet(firstString(item, "snippet", "description", "content")),
			Link:     link,
			Domain:   domainFromURL(link),
			Position: pos,
		})
		pos++
		return true
	})

	return docs
}

// firstString returns the first non-empty value among the given keys.
func firstString(item gjson.Result, keys ...string) string {
	for _, key := range keys {
		if v := item.Get(key).String(); v != "" {
			return v
		}
	}
	return ""
}

// cleanSnippet unescapes HTML entities and collapses whitespace runs.
func cleanSnippet(text string) string {
	if text == "" {
		return ""
	}
	text = html.UnescapeString(text)
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// splitLocale maps "en-US" to ("en", "US"). A bare language tag leaves the
// region empty.
func splitLocale(locale string) (hl, gl string) {
	hl = "en"
	if locale == "" {
		return hl, ""
	}
	if lang, region, found := strings.Cut(locale, "-"); found {
		return lang, region
	}
	return locale, ""
}

// domainFromURL returns the registrable domain of a link, falling back to
// the bare host and finally the raw URL when parsing fails.
func domainFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return rawURL
	}

	host := parsed.Hostname()
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return domain
}
