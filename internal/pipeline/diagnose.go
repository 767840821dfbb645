package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"vacature-scout/internal/scraper"
	"vacature-scout/internal/scraper/headed"
	"vacature-scout/pkg/utils"
)

// diagnosticSelectors is the probe list for locating the job body on an
// unfamiliar page layout
var diagnosticSelectors = []string{
	"article.job-body",
	"article",
	".job-body",
	".job-description",
	".jobColumn.wide",
	".content",
	".description",
	"#content",
	"main",
	".main-content",
	"[class*='job']",
	"[class*='description']",
	"[class*='content']",
}

// InspectListing dumps the raw listing HTML and an h2 census to stdout.
// Purely a development aid for finding selectors.
func (r *Runner) InspectListing(ctx context.Context, listURL string) error {
	html, err := r.fetcher.FetchHTML(ctx, listURL)
	if err != nil {
		return err
	}

	fmt.Println("--- Start of Page HTML ---")
	fmt.Println(html)
	fmt.Println("--- End of Page HTML ---")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return fmt.Errorf("failed to parse listing HTML: %w", err)
	}

	headings := doc.Find("h2")
	fmt.Printf("\n--- Found %d H2 tags for reference ---\n", headings.Length())
	headings.Each(func(_ int, s *goquery.Selection) {
		if outer, err := goquery.OuterHtml(s); err == nil {
			fmt.Println(outer)
		}
	})

	return nil
}

// InspectDetailPage fetches the first detail page behind a listing and dumps
// its full HTML for manual selector hunting
func (r *Runner) InspectDetailPage(ctx context.Context, listURL string) error {
	listHTML, err := r.fetcher.FetchHTML(ctx, listURL)
	if err != nil {
		return err
	}

	jobs, err := scraper.ListJobs(listHTML)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return utils.NewNotFoundError("no job links found on the listing page")
	}

	detailURL := jobs[0].DetailURL
	fmt.Printf("Found detail page URL: %s\n", detailURL)

	detailHTML, err := r.fetcher.FetchHTML(ctx, detailURL)
	if err != nil {
		return err
	}

	fmt.Println("========================= DETAIL PAGE HTML START =========================")
	fmt.Println(detailHTML)
	fmt.Println("========================= DETAIL PAGE HTML END ===========================")

	return nil
}

// DiagnoseSelectors probes the selector list against the first detail page,
// once over the plain HTTP response and once over browser-rendered markup,
// and saves both variants for manual inspection. The two differ when content
// is built client-side.
func (r *Runner) DiagnoseSelectors(ctx context.Context, listURL string) error {
	listHTML, err := r.fetcher.FetchHTML(ctx, listURL)
	if err != nil {
		return err
	}

	jobs, err := scraper.ListJobs(listHTML)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return utils.NewNotFoundError("no job links found on the listing page")
	}

	testURL := jobs[0].DetailURL
	fmt.Printf("Testing URL: %s\n", testURL)

	fmt.Println("\n=== Testing with plain HTTP request ===")
	plainHTML, err := r.fetcher.FetchHTML(ctx, testURL)
	if err != nil {
		return err
	}
	if err := probeSelectors(plainHTML); err != nil {
		return err
	}

	fmt.Println("\n=== Testing with rendered HTML (with JavaScript) ===")
	session, err := headed.NewSession(r.config)
	if err != nil {
		return err
	}
	defer session.Close()

	renderedHTML, err := session.Render(ctx, testURL)
	if err != nil {
		return err
	}
	if err := probeSelectors(renderedHTML); err != nil {
		return err
	}

	if err := os.WriteFile("diagnostic_plain.html", []byte(plainHTML), 0o644); err != nil {
		return fmt.Errorf("failed to save plain HTML: %w", err)
	}
	if err := os.WriteFile("diagnostic_rendered.html", []byte(renderedHTML), 0o644); err != nil {
		return fmt.Errorf("failed to save rendered HTML: %w", err)
	}
	fmt.Println("\nHTML files saved: diagnostic_plain.html, diagnostic_rendered.html")

	return nil
}

// probeSelectors reports hit counts and a text sample for every diagnostic
// selector
func probeSelectors(html string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return fmt.Errorf("failed to parse HTML: %w", err)
	}

	for _, selector := range diagnosticSelectors {
		matches := doc.Find(selector)
		if matches.Length() == 0 {
			fmt.Printf("MISS %-28s no elements found\n", selector)
			continue
		}

		sample := strings.TrimSpace(matches.First().Text())
		sample = utils.Truncate(strings.Join(strings.Fields(sample), " "), 120)
		fmt.Printf("HIT  %-28s %d element(s), sample: %s\n", selector, matches.Length(), sample)
	}

	return nil
}
