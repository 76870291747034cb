// Package pipeline orchestrates one ingestion run: fetch the listings page,
// extract the embedded impressions, detect which are new against the store,
// persist them and notify subscribers. Stage failures short-circuit the rest of
// the run and are converted into a logged Result; nothing escapes to the trigger.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/dewmyth/screenwatch/pkg/domain"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/movie_store.go -pkg mocks -skip-ensure -fmt goimports . MovieStore
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// Fetcher retrieves the listings page markup
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Extractor pulls impressions out of the page markup
type Extractor interface {
	Extract(markup string) ([]domain.Impression, error)
}

// MovieStore persists movie records and answers novelty lookups
type MovieStore interface {
	MovieExists(ctx context.Context, movieID string) (bool, error)
	CreateMovie(ctx context.Context, movie *domain.Movie) error
}

// Notifier dispatches a notification for a batch of new movies
type Notifier interface {
	Notify(ctx context.Context, movies []domain.Movie) (string, error)
}

// Result is the outcome of one run
type Result struct {
	NewMovies int
	Err       error
}

// runKey is the constant singleflight token: all triggers share one in-flight run
const runKey = "ingest"

// Params holds pipeline dependencies and settings
type Params struct {
	Fetcher    Fetcher
	Extractor  Extractor
	Movies     MovieStore
	Notifier   Notifier
	SourceURL  string
	MaxWorkers int
}

// Pipeline runs the ingestion cycle
type Pipeline struct {
	fetcher    Fetcher
	extractor  Extractor
	movies     MovieStore
	notifier   Notifier
	sourceURL  string
	maxWorkers int
	runs       singleflight.Group
}

// New creates a pipeline with the provided collaborators
func New(params Params) *Pipeline {
	if params.MaxWorkers == 0 {
		params.MaxWorkers = 5
	}
	return &Pipeline{
		fetcher:    params.Fetcher,
		extractor:  params.Extractor,
		movies:     params.Movies,
		notifier:   params.Notifier,
		sourceURL:  params.SourceURL,
		maxWorkers: params.MaxWorkers,
	}
}

// Run executes one ingestion cycle. Concurrent callers (timer vs on-demand
// trigger) are collapsed into a single execution and observe the same Result.
func (p *Pipeline) Run(ctx context.Context) Result {
	v, _, shared := p.runs.Do(runKey, func() (interface{}, error) {
		return p.runOnce(ctx), nil
	})
	if shared {
		lgr.Printf("[DEBUG] run result shared with a concurrent trigger")
	}
	return v.(Result)
}

// Scrape fetches and extracts the current candidate list without persisting or
// notifying, for diagnostics.
func (p *Pipeline) Scrape(ctx context.Context) ([]domain.Impression, error) {
	markup, err := p.fetcher.Fetch(ctx, p.sourceURL)
	if err != nil {
		return nil, fmt.Errorf("fetch listings page: %w", err)
	}
	return p.extractor.Extract(markup)
}

func (p *Pipeline) runOnce(ctx context.Context) Result {
	started := time.Now()
	lgr.Printf("[INFO] starting ingestion run for %s", p.sourceURL)

	markup, err := p.fetcher.Fetch(ctx, p.sourceURL)
	if err != nil {
		lgr.Printf("[ERROR] fetch failed: %v", err)
		return Result{Err: fmt.Errorf("fetch listings page: %w", err)}
	}

	impressions, err := p.extractor.Extract(markup)
	if err != nil {
		// semantically "no data this cycle", still logged at error level
		lgr.Printf("[ERROR] extraction failed: %v", err)
		return Result{Err: err}
	}
	lgr.Printf("[INFO] scraped %d impressions", len(impressions))

	fresh, err := p.detectNew(ctx, impressions)
	if err != nil {
		lgr.Printf("[ERROR] novelty detection failed: %v", err)
		return Result{Err: err}
	}

	if len(fresh) == 0 {
		lgr.Printf("[INFO] no new movies found, run took %v", time.Since(started))
		return Result{}
	}

	// persistence is sequential; the first write failure aborts the rest of the
	// batch and already-written movies stay (the next run's novelty check
	// naturally retries the unsaved ones)
	saved := make([]domain.Movie, 0, len(fresh))
	for _, imp := range fresh {
		if imp.ID == "" {
			lgr.Printf("[WARN] skipping impression with empty id: %q", imp.Name)
			continue
		}
		movie := domain.MovieFromImpression(imp)
		if err := p.movies.CreateMovie(ctx, &movie); err != nil {
			lgr.Printf("[ERROR] failed to save movie %s: %v", imp.ID, err)
			return Result{NewMovies: len(saved), Err: fmt.Errorf("save movie %s: %w", imp.ID, err)}
		}
		lgr.Printf("[INFO] saved new movie: %s (%s)", movie.Name, movie.MovieID)
		saved = append(saved, movie)
	}

	if len(saved) == 0 {
		lgr.Printf("[INFO] no persistable movies in batch, run took %v", time.Since(started))
		return Result{}
	}

	// notification failure is subordinate to persistence: movies stay saved
	// even if nobody was told about them
	if _, err := p.notifier.Notify(ctx, saved); err != nil {
		lgr.Printf("[WARN] notification failed for %d new movies: %v", len(saved), err)
	}

	lgr.Printf("[INFO] ingestion run completed in %v, %d new movies", time.Since(started), len(saved))
	return Result{NewMovies: len(saved)}
}

// detectNew returns the candidates not yet present in the store, preserving
// input order. Lookups run concurrently with bounded parallelism; any lookup
// failure fails the whole run since the store is a hard dependency.
func (p *Pipeline) detectNew(ctx context.Context, candidates []domain.Impression) ([]domain.Impression, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	isNew := make([]bool, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxWorkers)

	for i, c := range candidates {
		g.Go(func() error {
			exists, err := p.movies.MovieExists(gctx, c.ID)
			if err != nil {
				return fmt.Errorf("check movie %s: %w", c.ID, err)
			}
			isNew[i] = !exists
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fresh := make([]domain.Impression, 0, len(candidates))
	for i, c := range candidates {
		if isNew[i] {
			fresh = append(fresh, c)
		}
	}
	return fresh, nil
}
