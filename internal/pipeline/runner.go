package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"vacature-scout/internal/config"
	"vacature-scout/internal/extract"
	"vacature-scout/internal/report"
	"vacature-scout/internal/scraper"
	"vacature-scout/internal/scraper/headed"
	"vacature-scout/internal/translate"
	"vacature-scout/pkg/models"
	"vacature-scout/pkg/utils"
)

// Runner drives the scrape-extract-translate pipeline. Everything runs
// sequentially: one page, one detail, one translation call at a time.
type Runner struct {
	config     *config.Config
	fetcher    *scraper.Fetcher
	translator translate.Translator
	records    *translate.RecordTranslator
	logger     *logrus.Logger
}

// NewRunner creates a pipeline runner with an injected translator
func NewRunner(cfg *config.Config, translator translate.Translator) *Runner {
	return &Runner{
		config:     cfg,
		fetcher:    scraper.NewFetcher(cfg),
		translator: translator,
		records:    translate.NewRecordTranslator(translator, cfg.Translator.SourceLang, cfg.Translator.TargetLang),
		logger:     utils.GetLogger(),
	}
}

// RunSingle processes the first job of a listing page end to end: render the
// detail page in a browser session, extract the structured record, translate
// it, print the report and persist the JSON artifact. A fetch failure here
// ends the run.
func (r *Runner) RunSingle(ctx context.Context, listURL string) (*models.TranslatedJobRecord, error) {
	runID := utils.GenerateRunID()
	log := r.logger.WithField("run_id", runID)

	log.WithField("url", listURL).Info("Fetching job listings")
	listHTML, err := r.fetcher.FetchHTML(ctx, listURL)
	if err != nil {
		return nil, err
	}

	jobs, err := scraper.ListJobs(listHTML)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, utils.NewNotFoundError("no job links found on the listing page")
	}

	jobURL := jobs[0].DetailURL
	log.WithField("url", jobURL).Info("Processing job detail page")

	// The detail page builds part of its content client-side; a rendering
	// session is required. The session lives for this one page only.
	session, err := headed.NewSession(r.config)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	detailHTML, err := session.Render(ctx, jobURL)
	if err != nil {
		return nil, err
	}

	record, err := extract.Extract(detailHTML, jobURL)
	if err != nil {
		return nil, err
	}

	log.Info("Translating record")
	translated := r.records.TranslateRecord(ctx, record)

	report.PrintRecord(os.Stdout, translated)

	if r.config.Output.File != "" {
		if err := report.WriteRecordFile(r.config.Output.File, translated); err != nil {
			return nil, err
		}
		log.WithField("file", r.config.Output.File).Info("Record written")
	}

	return translated, nil
}

// PageStats aggregates the outcome of a multi-page title run. PagesScraped
// counts pages whose cards were actually parsed, not mere fetches.
type PageStats struct {
	PagesScraped   int
	JobsFound      int
	JobsTranslated int
}

// RunPages scrapes up to numPages listing pages and translates each job's
// title. A page with no cards ends the loop; a page that fails to fetch is
// skipped and the run continues.
func (r *Runner) RunPages(ctx context.Context, baseURL string, numPages int) (*PageStats, error) {
	stats := &PageStats{}

	for page := 1; page <= numPages; page++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		pageURL := scraper.PageURL(baseURL, page)
		log := r.logger.WithFields(logrus.Fields{"page": page, "url": pageURL})

		listHTML, err := r.fetcher.FetchHTML(ctx, pageURL)
		if err != nil {
			log.WithError(err).Warn("Failed to fetch page, continuing with the next one")
			continue
		}

		jobs, err := scraper.ListJobs(listHTML)
		if err != nil {
			log.WithError(err).Warn("Failed to parse page, continuing with the next one")
			continue
		}
		stats.PagesScraped++
		if len(jobs) == 0 {
			log.Info("No job cards found, assuming last page")
			break
		}

		stats.JobsFound += len(jobs)
		log.WithField("jobs", len(jobs)).Info("Translating job titles")

		for _, job := range jobs {
			result := r.translator.Translate(ctx, job.Title, r.config.Translator.SourceLang, r.config.Translator.TargetLang)
			if result.Translated {
				stats.JobsTranslated++
			}
			fmt.Printf("  - Original: %s -> Translated: %s\n", job.Title, result.Text)
		}
	}

	r.logger.WithFields(logrus.Fields{
		"pages_scraped":   stats.PagesScraped,
		"jobs_found":      stats.JobsFound,
		"jobs_translated": stats.JobsTranslated,
	}).Info("Multi-page run completed")

	return stats, nil
}

// BulkStats aggregates the outcome and timing of a full-text bulk run
type BulkStats struct {
	JobsTranslated int
	TotalDuration  time.Duration
	MinCall        time.Duration
	MaxCall        time.Duration
	AvgCall        time.Duration
}

// RunBulk pages through the listings until maxJobs full card texts have been
// translated, measuring per-call durations. Pages that fail to fetch are
// skipped; an empty page ends the run early.
func (r *Runner) RunBulk(ctx context.Context, baseURL string, maxJobs int) (*BulkStats, error) {
	stats := &BulkStats{}
	var callTimes []time.Duration
	start := time.Now()

	for page := 1; stats.JobsTranslated < maxJobs; page++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		pageURL := scraper.PageURL(baseURL, page)
		log := r.logger.WithFields(logrus.Fields{"page": page, "translated": stats.JobsTranslated})

		listHTML, err := r.fetcher.FetchHTML(ctx, pageURL)
		if err != nil {
			log.WithError(err).Warn("Failed to fetch page, continuing with the next one")
			continue
		}

		jobs, err := scraper.ListJobs(listHTML)
		if err != nil {
			log.WithError(err).Warn("Failed to parse page, continuing with the next one")
			continue
		}
		if len(jobs) == 0 {
			log.Info("No more job cards found, ending run")
			break
		}

		for _, job := range jobs {
			if stats.JobsTranslated >= maxJobs {
				break
			}
			if job.CardText == "" {
				continue
			}

			callStart := time.Now()
			result := r.translator.Translate(ctx, job.CardText, r.config.Translator.SourceLang, r.config.Translator.TargetLang)
			elapsed := time.Since(callStart)

			if result.Translated {
				callTimes = append(callTimes, elapsed)
				stats.JobsTranslated++
				log.WithFields(logrus.Fields{
					"job":      stats.JobsTranslated,
					"duration": utils.FormatDuration(elapsed),
				}).Info("Job translated")
			} else {
				log.WithField("title", job.Title).Warn("Job translation degraded to original")
			}
		}
	}

	stats.TotalDuration = time.Since(start)

	if len(callTimes) > 0 {
		stats.MinCall, stats.MaxCall = callTimes[0], callTimes[0]
		var total time.Duration
		for _, d := range callTimes {
			total += d
			if d < stats.MinCall {
				stats.MinCall = d
			}
			if d > stats.MaxCall {
				stats.MaxCall = d
			}
		}
		stats.AvgCall = total / time.Duration(len(callTimes))
	}

	r.logger.WithFields(logrus.Fields{
		"jobs_translated": stats.JobsTranslated,
		"total_duration":  utils.FormatDuration(stats.TotalDuration),
		"min_call":        utils.FormatDuration(stats.MinCall),
		"max_call":        utils.FormatDuration(stats.MaxCall),
		"avg_call":        utils.FormatDuration(stats.AvgCall),
	}).Info("Bulk run completed")

	return stats, nil
}
