package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"vacature-scout/pkg/models"
)

// jobLinkSelector anchors each listing card: the h2 parents that hold an
// a.jobTitle are the job cards, everything else on the page is chrome
const jobLinkSelector = "a.jobTitle"

// ListJobs extracts the candidate job entries from a listing page. Cards
// without a usable detail link are skipped.
func ListJobs(markup string) ([]models.JobSummary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing HTML: %w", err)
	}

	var jobs []models.JobSummary
	doc.Find("h2").Each(func(_ int, heading *goquery.Selection) {
		card := heading.Parent()
		link := card.Find(jobLinkSelector).First()
		if link.Length() == 0 {
			return
		}

		href, ok := link.Attr("href")
		if !ok || href == "" {
			return
		}

		jobs = append(jobs, models.JobSummary{
			Title:     strings.TrimSpace(link.Text()),
			DetailURL: href,
			CardText:  cardText(card),
		})
	})

	return jobs, nil
}

// PageURL builds the URL for one page of the paginated search results
func PageURL(baseURL string, page int) string {
	return fmt.Sprintf("%s&page=%d", baseURL, page)
}

// cardText joins the trimmed text nodes of a card with a visible separator,
// mirroring how the card reads on the page
func cardText(s *goquery.Selection) string {
	var segments []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				segments = append(segments, text)
			}
			return
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, node := range s.Nodes {
		walk(node)
	}

	return strings.Join(segments, " | ")
}
