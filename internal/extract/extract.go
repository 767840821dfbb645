package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"vacature-scout/pkg/models"
	"vacature-scout/pkg/utils"
)

// CSS selectors for the job board's detail page layout
const (
	mainContentSelector = ".jobColumn.wide"
	titleSelector       = "h1"
	companyInfoSelector = ".responsiveCompanyInfo"
	featureSelector     = ".jobFeatures .feature"
	contactSelector     = ".jobContact .contactInfo"
)

const locationPrefix = "Standplaats: "

// Extract parses the rendered markup of one detail page into a JobRecord.
// It fails with a not-found error when the main content container is absent;
// every other field is best-effort and left unset when missing.
func Extract(markup, url string) (*models.JobRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	mainContent := doc.Find(mainContentSelector).First()
	if mainContent.Length() == 0 {
		return nil, utils.NewNotFoundError("no element matches " + mainContentSelector)
	}

	record := &models.JobRecord{
		URL:         url,
		ExtractedAt: time.Now(),
	}

	record.RawContent = strings.Join(textLines(mainContent), "\n")

	if title := strings.TrimSpace(doc.Find(titleSelector).First().Text()); title != "" {
		record.JobDetails.Title = title
	}

	record.CompanyInfo = extractCompanyInfo(doc)
	record.JobDetails.Features = extractFeatures(doc)
	record.ContactInfo = extractContactInfo(doc)
	record.StructuredContent = SplitSections(textLines(mainContent))

	return record, nil
}

// extractCompanyInfo parses the "Company · Standplaats: Location · Date"
// line. Fewer than 3 parts means the line has an unexpected shape; no field
// is populated in that case.
func extractCompanyInfo(doc *goquery.Document) models.CompanyInfo {
	var info models.CompanyInfo

	text := strings.TrimSpace(doc.Find(companyInfoSelector).First().Text())
	if text == "" {
		return info
	}

	parts := strings.Split(text, "·")
	if len(parts) < 3 {
		return info
	}

	info.Name = strings.TrimSpace(parts[0])
	info.Location = strings.TrimPrefix(strings.TrimSpace(parts[1]), locationPrefix)
	info.PostingDate = strings.TrimSpace(parts[2])

	return info
}

// extractFeatures collects the labeled sidebar features in DOM order. Blocks
// missing the bold label or the description are skipped.
func extractFeatures(doc *goquery.Document) []models.Feature {
	var features []models.Feature

	doc.Find(featureSelector).Each(func(_ int, s *goquery.Selection) {
		label := strings.TrimSpace(s.Find("b").First().Text())
		description := strings.TrimSpace(s.Find(".description").First().Text())
		if label == "" || description == "" {
			return
		}
		features = append(features, models.Feature{
			Label:       label,
			Description: description,
		})
	})

	return features
}

// extractContactInfo classifies contact blocks by substring presence.
// Unrecognized blocks are ignored.
func extractContactInfo(doc *goquery.Document) models.ContactInfo {
	var info models.ContactInfo

	doc.Find(contactSelector).Each(func(_ int, s *goquery.Selection) {
		text := strings.Join(textLines(s), " | ")
		switch {
		case strings.Contains(text, "Adres"):
			info.Address = strings.TrimPrefix(text, "Adres | ")
		case strings.Contains(text, "Contactgegevens"):
			info.ContactDetails = strings.TrimPrefix(text, "Contactgegevens | ")
		}
	})

	return info
}

// textLines walks the text nodes under a selection in document order and
// returns their trimmed, non-empty contents. Script and style subtrees are
// excluded.
func textLines(s *goquery.Selection) []string {
	var lines []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				lines = append(lines, text)
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

	return lines
}
