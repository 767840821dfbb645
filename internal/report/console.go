package report

import (
	"fmt"
	"io"
	"strings"

	"vacature-scout/pkg/models"
)

// Human-readable section headings for the console report
var sectionTitles = map[string]string{
	models.SectionJobDescription:       "JOB DESCRIPTION",
	models.SectionRequirements:         "REQUIREMENTS & QUALIFICATIONS",
	models.SectionWhatWeOffer:          "WHAT WE OFFER",
	models.SectionEmploymentConditions: "EMPLOYMENT CONDITIONS",
	models.SectionApplicationProcess:   "APPLICATION PROCESS",
}

// PrintRecord writes a human-readable dump of a translated record. This
// output is for inspection only and is not a contract surface.
func PrintRecord(w io.Writer, record *models.TranslatedJobRecord) {
	rule := strings.Repeat("=", 80)
	sub := strings.Repeat("-", 40)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "STRUCTURED JOB ANALYSIS REPORT")
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "\nURL:       %s\n", record.URL)
	fmt.Fprintf(w, "Extracted: %s\n", record.ExtractedAt.Format("2006-01-02 15:04:05"))

	if record.JobDetails.Title != "" {
		fmt.Fprintf(w, "\nJOB TITLE\n%s\n", sub)
		fmt.Fprintf(w, "Original: %s\n", record.JobDetails.Title)
		if record.TitleEN != "" && record.TitleEN != record.JobDetails.Title {
			fmt.Fprintf(w, "English:  %s\n", record.TitleEN)
		}
	}

	fmt.Fprintf(w, "\nCOMPANY INFORMATION\n%s\n", sub)
	if record.CompanyInfo.Name != "" {
		fmt.Fprintf(w, "Company:  %s\n", record.CompanyInfo.Name)
		if record.CompanyNameEN != "" && record.CompanyNameEN != record.CompanyInfo.Name {
			fmt.Fprintf(w, "          (%s)\n", record.CompanyNameEN)
		}
	}
	if record.CompanyInfo.Location != "" {
		fmt.Fprintf(w, "Location: %s\n", record.CompanyInfo.Location)
	}
	if record.CompanyInfo.PostingDate != "" {
		fmt.Fprintf(w, "Posted:   %s\n", record.CompanyInfo.PostingDate)
	}

	if len(record.TranslatedFeatures) > 0 {
		fmt.Fprintf(w, "\nJOB FEATURES\n%s\n", sub)
		for _, feature := range record.TranslatedFeatures {
			fmt.Fprintf(w, "%s\n    %s\n", feature.Label, feature.Description)
		}
	}

	if record.ContactInfo.Address != "" || record.ContactInfo.ContactDetails != "" {
		fmt.Fprintf(w, "\nCONTACT INFORMATION\n%s\n", sub)
		if record.ContactInfo.Address != "" {
			fmt.Fprintf(w, "Address: %s\n", record.ContactInfo.Address)
		}
		if record.ContactInfo.ContactDetails != "" {
			fmt.Fprintf(w, "Contact: %s\n", record.ContactInfo.ContactDetails)
		}
	}

	if len(record.TranslatedSections) > 0 {
		fmt.Fprintf(w, "\nDETAILED JOB CONTENT (TRANSLATED)\n%s\n", rule)

		// Fixed section order keeps the report stable across runs
		for _, name := range models.SectionNames {
			section, ok := record.TranslatedSections[name]
			if !ok || strings.TrimSpace(section.Translated) == "" {
				continue
			}

			title := sectionTitles[name]
			if title == "" {
				title = strings.ToUpper(strings.ReplaceAll(name, "_", " "))
			}

			fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("-", 60))
			fmt.Fprintf(w, "Word count: %d\n", section.WordCount)
			if !section.Succeeded {
				fmt.Fprintln(w, "Note: translation failed, original text shown")
			}
			fmt.Fprintln(w, section.Translated)
		}
	}

	fmt.Fprintf(w, "\nEXTRACTION STATISTICS\n%s\n", sub)
	fmt.Fprintf(w, "Total words extracted: %d\n", len(strings.Fields(record.RawContent)))
	fmt.Fprintf(w, "Sections identified:   %d\n", len(record.TranslatedSections))

	fmt.Fprintln(w, rule)
}
