package sportytrader

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/riskibarqy/team-report/internal/domain/nextmatch"
	"github.com/riskibarqy/team-report/internal/platform/logging"
)

const (
	defaultPageURL = "https://www.sportytrader.es/cuotas/baloncesto/usa/nba-306/"
	userAgent      = "Mozilla/5.0 (X11; Linux x86_64) team-report"

	listingSelector = "div.px-box"
	cardSelector    = "div.cursor-pointer.border.rounded-md"
	oddsSelector    = "span.bg-primary-yellow"
)

type ClientConfig struct {
	HTTPClient *http.Client
	PageURL    string
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client reads upcoming NBA matches and their decimal odds from the
// sportytrader listing.
type Client struct {
	http    *resty.Client
	pageURL string
	logger  *logging.Logger
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

	return &Client{
		http:    resty.NewWithClient(httpClient).SetTimeout(timeout).SetHeader("User-Agent", userAgent),
		pageURL: pageURL,
		logger:  logger,
	}
}

// FetchNextMatch returns the first listed match whose participants mention
// familyName. The bool is false when the listing has no such match.
func (c *Client) FetchNextMatch(ctx context.Context, familyName string) (nextmatch.Info, bool, error) {
	name := strings.TrimSpace(familyName)
	if name == "" {
		return nextmatch.Info{}, false, fmt.Errorf("team family name is required")
	}

	res, err := c.http.R().SetContext(ctx).Get(c.pageURL)
	if err != nil {
		return nextmatch.Info{}, false, fmt.Errorf("fetch odds listing: %w", err)
	}
	if res.IsError() {
		return nextmatch.Info{}, false, fmt.Errorf("fetch odds listing: status=%d", res.StatusCode())
	}

	info, found, err := parseListing(res.Body(), name)
	if err != nil {
		return nextmatch.Info{}, false, err
	}
	if !found {
		c.logger.InfoContext(ctx, "no upcoming match listed", "team", name)
	}
	return info, found, nil
}

func parseListing(body []byte, familyName string) (nextmatch.Info, bool, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nextmatch.Info{}, false, fmt.Errorf("parse odds listing: %w", err)
	}

	var (
		out   nextmatch.Info
		found bool
	)
	doc.Find(listingSelector).Find(cardSelector).EachWithBreak(func(_ int, card *goquery.Selection) bool {
		participants := strings.TrimSpace(card.Find("span a").First().Text())
		if !strings.Contains(participants, familyName) {
			return true
		}

		teams := strings.SplitN(participants, " - ", 2)
		if len(teams) != 2 {
			return true
		}

		odds := make([]string, 0, 2)
		card.Find(oddsSelector).EachWithBreak(func(_ int, span *goquery.Selection) bool {
			if value := strings.TrimSpace(span.Text()); value != "" {
				odds = append(odds, value)
			}
			return len(odds) < 2
		})
		if len(odds) < 2 {
			return true
		}

		out = nextmatch.Info{
			Teams: [2]string{nextmatch.NormalizeTeamName(teams[0]), nextmatch.NormalizeTeamName(teams[1])},
			Odds:  [2]string{odds[0], odds[1]},
			Date:  strings.TrimSpace(card.Find("span span").First().Text()),
		}
		found = true
		return false
	})

	return out, found, nil
}
