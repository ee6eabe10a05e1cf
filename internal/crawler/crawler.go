package crawler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/nahid-013/alkoteka-scraper/internal/export"
	"github.com/nahid-013/alkoteka-scraper/internal/fetch"
	"github.com/nahid-013/alkoteka-scraper/internal/observability"
	"github.com/nahid-013/alkoteka-scraper/internal/parser"
	"github.com/nahid-013/alkoteka-scraper/internal/queue"
)

// Crawler walks category seeds to exhaustion, enqueues every discovered
// product page and extracts records through a worker pool. Discovery and
// extraction are pure per-document transformations; all crawl state lives
// here: the task queue and the per-run seen set.
type Crawler struct {
	fetcher fetch.Fetcher
	parser  parser.Parser
	sink    export.Sink
	queue   queue.Queue
	logger  *slog.Logger
	workers int
	runID   string

	mu   sync.Mutex
	seen map[string]struct{}
}

func New(fetcher fetch.Fetcher, p parser.Parser, sink export.Sink, workers int, logger *slog.Logger) *Crawler {
	runID := uuid.NewString()
	return &Crawler{
		fetcher: fetcher,
		parser:  p,
		sink:    sink,
		queue:   queue.NewInMemoryQueue(),
		logger:  logger.With("component", "crawler", "run_id", runID),
		workers: workers,
		runID:   runID,
		seen:    make(map[string]struct{}),
	}
}

// Run crawls every seed and processes all discovered products. It returns
// once discovery is exhausted and the queue is drained, or earlier when the
// context is cancelled.
func (c *Crawler) Run(ctx context.Context, seeds []string) error {
	c.logger.Info("starting crawl", "seeds", len(seeds), "workers", c.workers)

	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.worker(ctx)
		}()
	}

	for _, seed := range seeds {
		if err := c.crawlCategory(ctx, seed); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				break
			}
			c.logger.Error("category crawl failed", "seed", seed, "error", err)
		}
	}

	c.queue.Close()
	wg.Wait()

	c.logger.Info("crawl finished", "discovered", len(c.seen))
	return ctx.Err()
}

// crawlCategory follows one seed through its pagination chain. A branch
// terminates when no next-page link is found; a next-page link pointing
// backward would loop, which is accepted as an external-document trust
// assumption.
func (c *Crawler) crawlCategory(ctx context.Context, seed string) error {
	pageURL := seed
	for pageNum := 1; pageURL != ""; pageNum++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		html, err := c.fetcher.Fetch(ctx, pageURL)
		if err != nil {
			observability.FetchErrorsTotal.Inc()
			return fmt.Errorf("failed to fetch category page %s: %w", pageURL, err)
		}

		page, err := ParseCategoryPage(html, pageURL, seed)
		if err != nil {
			return fmt.Errorf("failed to parse category page %s: %w", pageURL, err)
		}
		observability.CategoryPagesTotal.Inc()

		enqueued := 0
		for _, target := range page.Targets {
			if !c.markSeen(target.URL) {
				continue
			}
			if err := c.queue.Push(queue.NewTask(target)); err != nil {
				return fmt.Errorf("failed to enqueue target: %w", err)
			}
			enqueued++
		}

		c.logger.Info("category page processed",
			"url", pageURL,
			"page", pageNum,
			"links", len(page.Targets),
			"enqueued", enqueued,
			"has_next", page.NextPage != "",
		)

		pageURL = page.NextPage
	}
	return nil
}

func (c *Crawler) worker(ctx context.Context) {
	for {
		task, err := c.queue.Pop(ctx)
		if err != nil {
			return
		}
		c.processTarget(ctx, task)
	}
}

func (c *Crawler) processTarget(ctx context.Context, task *queue.Task) {
	html, err := c.fetcher.Fetch(ctx, task.Target.URL)
	if err != nil {
		observability.FetchErrorsTotal.Inc()
		c.logger.Error("failed to fetch product page",
			"url", task.Target.URL, "task", task.ID, "error", err)
		return
	}

	record, err := c.parser.ParseProductPage(html, task.Target.URL)
	if err != nil {
		c.logger.Error("failed to parse product page",
			"url", task.Target.URL, "task", task.ID, "error", err)
		return
	}

	if err := c.sink.Write(ctx, record); err != nil {
		c.logger.Error("failed to write record",
			"rpc", record.RPC, "url", record.URL, "error", err)
		return
	}

	observability.ProductsExtractedTotal.Inc()
	c.logger.Info("product extracted",
		"rpc", record.RPC,
		"url", record.URL,
		"seed", task.Target.SeedURL,
	)
}

// markSeen records url in the per-run seen set. It reports whether the URL
// was new.
func (c *Crawler) markSeen(url string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.seen[url]; ok {
		return false
	}
	c.seen[url] = struct{}{}
	return true
}
