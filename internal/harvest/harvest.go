// Package harvest scrapes episode facts from a public wiki page. Extraction is
// best effort; any fetch failure yields the built-in fallback dataset.
package harvest

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/mind-engage/showquiz/internal/episode"
)

type Options struct {
	MainURL     string
	EpisodesURL string
	Timeout     time.Duration
}

type Harvester struct {
	client *resty.Client
	opts   Options
}

func New(opts Options) *Harvester {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	client := resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("User-Agent", "showquiz-harvester/1.0")
	return &Harvester{client: client, opts: opts}
}

// Harvest always returns usable episodes: scraped ones when the source
// answers, the fallback set otherwise.
func (h *Harvester) Harvest(ctx context.Context) []episode.Episode {
	eps, err := h.scrape(ctx)
	if err != nil {
		log.Printf("[HARVEST] scrape failed: %v; using %d fallback episodes", err, len(Fallback()))
		return Fallback()
	}
	log.Printf("[HARVEST] collected %d episodes", len(eps))
	return eps
}

func (h *Harvester) scrape(ctx context.Context) ([]episode.Episode, error) {
	log.Printf("[HARVEST] fetching main page %s", h.opts.MainURL)
	if _, err := h.fetch(ctx, h.opts.MainURL); err != nil {
		return nil, err
	}
	log.Printf("[HARVEST] fetching episode list %s", h.opts.EpisodesURL)
	doc, err := h.fetch(ctx, h.opts.EpisodesURL)
	if err != nil {
		return nil, err
	}

	eps := ParseEpisodeTables(doc)
	if len(eps) < MinScraped {
		log.Printf("[HARVEST] only %d episodes parsed, adding well-known episodes", len(eps))
		eps = append(eps, KnownEpisodes()...)
	}
	Enrich(eps)
	return eps, nil
}

func (h *Harvester) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	resp, err := h.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get %s: status %d", url, resp.StatusCode())
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return doc, nil
}

// Enrich pads sparse records in place with common characters and quotes.
func Enrich(eps []episode.Episode) {
	for i := range eps {
		if len(eps[i].Characters) < 3 {
			eps[i].Characters = append(eps[i].Characters, commonCharacters[:3]...)
		}
		if len(eps[i].Quotes) < 2 {
			eps[i].Quotes = append(eps[i].Quotes, commonQuotes[:2]...)
		}
	}
}
