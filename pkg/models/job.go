package models

import "time"

// Section names for the structured content of a job posting. The extractor
// always populates every key; values may be empty.
const (
	SectionJobDescription       = "job_description"
	SectionRequirements         = "requirements"
	SectionWhatWeOffer          = "what_we_offer"
	SectionEmploymentConditions = "employment_conditions"
	SectionApplicationProcess   = "application_process"
)

// SectionNames lists the fixed section keys in their priority order
var SectionNames = []string{
	SectionJobDescription,
	SectionRequirements,
	SectionWhatWeOffer,
	SectionEmploymentConditions,
	SectionApplicationProcess,
}

// JobRecord is a structured job posting extracted from one detail page
type JobRecord struct {
	URL               string            `json:"url"`
	ExtractedAt       time.Time         `json:"extracted_at"`
	CompanyInfo       CompanyInfo       `json:"company_info"`
	JobDetails        JobDetails        `json:"job_details"`
	ContactInfo       ContactInfo       `json:"contact_info"`
	RawContent        string            `json:"raw_content"`
	StructuredContent map[string]string `json:"structured_content"`
}

// CompanyInfo holds the fields parsed from the company info line. The line
// must split into at least 3 `·`-separated parts; otherwise all fields stay
// unset.
type CompanyInfo struct {
	Name        string `json:"name,omitempty"`
	Location    string `json:"location,omitempty"`
	PostingDate string `json:"posting_date,omitempty"`
}

// JobDetails holds the title and the labeled sidebar features. Features keep
// DOM order; labels are unique per page but not globally.
type JobDetails struct {
	Title    string    `json:"title,omitempty"`
	Features []Feature `json:"features,omitempty"`
}

// Feature is one labeled sidebar entry (e.g. "Dienstverband" -> "Fulltime")
type Feature struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ContactInfo holds the classified contact blocks of a detail page
type ContactInfo struct {
	Address        string `json:"address,omitempty"`
	ContactDetails string `json:"contact_details,omitempty"`
}

// TranslatedJobRecord is a JobRecord plus the English variants produced by
// the record translator
type TranslatedJobRecord struct {
	JobRecord

	CompanyNameEN      string                       `json:"company_name_en,omitempty"`
	TitleEN            string                       `json:"title_en,omitempty"`
	TranslatedFeatures []TranslatedFeature          `json:"translated_features,omitempty"`
	TranslatedSections map[string]TranslatedSection `json:"translated_sections"`
}

// TranslatedFeature is a feature rendered as "original (translated)" display
// strings for both the label and the description
type TranslatedFeature struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// TranslatedSection pairs a structured content section with its translation.
// WordCount is computed from the original, untruncated text. Succeeded is
// false when the translation degraded to the original text.
type TranslatedSection struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
	WordCount  int    `json:"word_count"`
	Succeeded  bool   `json:"succeeded"`
}

// JobSummary is one candidate entry on a listing page
type JobSummary struct {
	Title     string `json:"title"`
	DetailURL string `json:"detail_url"`
	CardText  string `json:"card_text"`
}
