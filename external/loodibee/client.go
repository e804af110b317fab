package loodibee

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/antzucaro/matchr"
	"github.com/go-resty/resty/v2"
	"github.com/riskibarqy/team-report/internal/platform/cache"
	"github.com/riskibarqy/team-report/internal/platform/logging"
	"github.com/riskibarqy/team-report/internal/platform/resilience"
)

const (
	defaultPageURL        = "https://loodibee.com/nba/"
	defaultFuzzyThreshold = 0.93
	logoAltSuffix         = " Transparent Logo"
	logoContentType       = "image/png"
	galleryCacheKey       = "loodibee:gallery"
	userAgent             = "Mozilla/5.0 (X11; Linux x86_64) team-report"
)

var (
	ErrLogoNotFound = errors.New("team logo not found")
	errUpstream     = errors.New("logo site unavailable")
)

type ClientConfig struct {
	HTTPClient     *http.Client
	PageURL        string
	Timeout        time.Duration
	FuzzyThreshold float64
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client looks up transparent team logos on the loodibee NBA gallery.
type Client struct {
	http           *resty.Client
	pageURL        string
	fuzzyThreshold float64
	logger         *logging.Logger
	galleries      *cache.Store[gallery]
	breaker        *resilience.CircuitBreaker
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	pageURL := strings.TrimSpace(cfg.PageURL)
	if pageURL == "" {
		pageURL = defaultPageURL
	}
	threshold := cfg.FuzzyThreshold
	if threshold <= 0 || threshold > 1 {
		threshold = defaultFuzzyThreshold
	}
	return &Client{
		http:           resty.NewWithClient(httpClient).SetTimeout(timeout).SetHeader("User-Agent", userAgent),
		pageURL:        pageURL,
		fuzzyThreshold: threshold,
		logger:         logger,
		galleries:      cache.NewStore[gallery](0),
		breaker:        resilience.NewCircuitBreaker(cfg.CircuitBreaker),
	}
}

// FetchLogo downloads the transparent logo of the named team. Every failure
// wraps ErrLogoNotFound so callers can degrade without inspecting causes.
func (c *Client) FetchLogo(ctx context.Context, teamName string) ([]byte, error) {
	name := strings.TrimSpace(teamName)
	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrLogoNotFound)
	}

	gallery, err := c.loadGallery(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLogoNotFound, name, err)
	}

	src, ok := gallery.lookup(name+logoAltSuffix, c.fuzzyThreshold)
	if !ok {
		return nil, fmt.Errorf("%w: no gallery entry for %q", ErrLogoNotFound, name)
	}

	body, err := c.get(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("%w: download %s: %v", ErrLogoNotFound, src, err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty image for %q", ErrLogoNotFound, name)
	}
	if kind := http.DetectContentType(body); kind != logoContentType {
		return nil, fmt.Errorf("%w: %s served %s, want %s", ErrLogoNotFound, src, kind, logoContentType)
	}

	c.logger.DebugContext(ctx, "team logo downloaded", "team", name, "src", src, "bytes", len(body))
	return body, nil
}

func (c *Client) loadGallery(ctx context.Context) (gallery, error) {
	return c.galleries.GetOrLoad(ctx, galleryCacheKey, func(ctx context.Context) (gallery, error) {
		body, err := c.get(ctx, c.pageURL)
		if err != nil {
			return nil, err
		}
		return parseGallery(body, c.pageURL)
	})
}

func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	var body []byte
	err := c.breaker.Do(func() error {
		res, err := c.http.R().SetContext(ctx).Get(target)
		if err != nil {
			return fmt.Errorf("%w: send request: %v", errUpstream, err)
		}
		if res.IsError() {
			if res.StatusCode() >= http.StatusInternalServerError {
				return fmt.Errorf("%w: status=%d", errUpstream, res.StatusCode())
			}
			return fmt.Errorf("status=%d", res.StatusCode())
		}
		body = res.Body()
		return nil
	}, isUpstreamFailure)
	return body, err
}

func isUpstreamFailure(err error) bool {
	return errors.Is(err, errUpstream)
}

// gallery maps an image alt text to the absolute URL of its largest rendition.
type gallery map[string]string

func parseGallery(body []byte, pageURL string) (gallery, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse gallery page: %w", err)
	}

	wall := doc.Find("div.logos-layout")
	if wall.Length() == 0 {
		return nil, fmt.Errorf("logo wall not found on page")
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page url: %w", err)
	}

	out := make(gallery)
	wall.Find("img").Each(func(_ int, img *goquery.Selection) {
		alt := strings.TrimSpace(img.AttrOr("alt", ""))
		if alt == "" {
			return
		}
		src := largestCandidate(img.AttrOr("srcset", ""))
		if src == "" {
			src = strings.TrimSpace(img.AttrOr("src", ""))
		}
		if src == "" {
			return
		}
		ref, err := url.Parse(src)
		if err != nil {
			return
		}
		out[alt] = base.ResolveReference(ref).String()
	})

	return out, nil
}

// lookup tries an exact alt match, then a case-insensitive one, then the
// closest Jaro-Winkler match at or above threshold.
func (g gallery) lookup(alt string, threshold float64) (string, bool) {
	if src, ok := g[alt]; ok {
		return src, true
	}

	keys := make([]string, 0, len(g))
	for key := range g {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.EqualFold(key, alt) {
			return g[key], true
		}
	}

	bestKey := ""
	bestScore := 0.0
	target := strings.ToLower(alt)
	for _, key := range keys {
		score := matchr.JaroWinkler(strings.ToLower(key), target, false)
		if score > bestScore {
			bestKey, bestScore = key, score
		}
	}
	if bestKey == "" || bestScore < threshold {
		return "", false
	}
	return g[bestKey], true
}

// largestCandidate picks the widest URL of a srcset attribute. Candidates
// without a width descriptor rank by position, so the last one wins.
func largestCandidate(srcset string) string {
	best := ""
	bestWidth := -1
	for idx, candidate := range strings.Split(srcset, ",") {
		fields := strings.Fields(strings.TrimSpace(candidate))
		if len(fields) == 0 {
			continue
		}
		width := idx
		if len(fields) > 1 && strings.HasSuffix(fields[1], "w") {
			if parsed, err := strconv.Atoi(strings.TrimSuffix(fields[1], "w")); err == nil {
				width = parsed
			}
		}
		if width >= bestWidth {
			best, bestWidth = fields[0], width
		}
	}
	return best
}
