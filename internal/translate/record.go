package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"vacature-scout/pkg/models"
	"vacature-scout/pkg/utils"
)

// maxSectionRunes caps the amount of section text sent to the remote API.
// Word counts are always computed from the untruncated original.
const maxSectionRunes = 3000

// RecordTranslator fans a Translator out over the translatable fields of a
// JobRecord. It never fails as a unit: individual fields that could not be
// translated keep their original text.
type RecordTranslator struct {
	translator Translator
	sourceLang string
	targetLang string
	logger     *logrus.Logger
}

// NewRecordTranslator creates a record translator for one language pair
func NewRecordTranslator(translator Translator, sourceLang, targetLang string) *RecordTranslator {
	return &RecordTranslator{
		translator: translator,
		sourceLang: sourceLang,
		targetLang: targetLang,
		logger:     utils.GetLogger(),
	}
}

// TranslateRecord produces the translated variant of a job record: company
// name, title, feature labels and values, and every non-empty structured
// section
func (rt *RecordTranslator) TranslateRecord(ctx context.Context, job *models.JobRecord) *models.TranslatedJobRecord {
	record := &models.TranslatedJobRecord{
		JobRecord:          *job,
		TranslatedSections: make(map[string]models.TranslatedSection),
	}

	if job.CompanyInfo.Name != "" {
		record.CompanyNameEN = rt.translate(ctx, job.CompanyInfo.Name).Text
	}

	if job.JobDetails.Title != "" {
		record.TitleEN = rt.translate(ctx, job.JobDetails.Title).Text
	}

	for _, feature := range job.JobDetails.Features {
		record.TranslatedFeatures = append(record.TranslatedFeatures, models.TranslatedFeature{
			Label:       rt.displayPair(feature.Label, rt.translate(ctx, feature.Label)),
			Description: rt.displayPair(feature.Description, rt.translate(ctx, feature.Description)),
		})
	}

	for name, content := range job.StructuredContent {
		if strings.TrimSpace(content) == "" {
			continue
		}

		result := rt.translate(ctx, utils.Truncate(content, maxSectionRunes))
		record.TranslatedSections[name] = models.TranslatedSection{
			Original:   content,
			Translated: result.Text,
			WordCount:  len(strings.Fields(content)),
			Succeeded:  result.Translated,
		}
	}

	rt.logger.WithFields(logrus.Fields{
		"url":                 job.URL,
		"translated_sections": len(record.TranslatedSections),
		"features":            len(record.TranslatedFeatures),
	}).Info("Record translation completed")

	return record
}

// translate runs one field through the adapter with the configured language pair
func (rt *RecordTranslator) translate(ctx context.Context, text string) Result {
	return rt.translator.Translate(ctx, text, rt.sourceLang, rt.targetLang)
}

// displayPair renders "original (translated)", or just the original when the
// translation degraded to the same text
func (rt *RecordTranslator) displayPair(original string, result Result) string {
	if !result.Translated || result.Text == original {
		return original
	}
	return fmt.Sprintf("%s (%s)", original, result.Text)
}
