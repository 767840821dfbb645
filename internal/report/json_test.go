package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacature-scout/pkg/models"
)

func sampleRecord() *models.TranslatedJobRecord {
	return &models.TranslatedJobRecord{
		JobRecord: models.JobRecord{
			URL:         "https://example.org/banen/1?q=go&page=1",
			ExtractedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
			CompanyInfo: models.CompanyInfo{Name: "Gemeente Süd · Oost"},
			JobDetails:  models.JobDetails{Title: "Magazijnmedewerker Koffie & Thee"},
			RawContent:  "Functieomschrijving\nJe zorgt voor de koffie.",
			StructuredContent: map[string]string{
				models.SectionJobDescription: "Functieomschrijving\nJe zorgt voor de koffie.",
			},
		},
		TitleEN: "Warehouse Worker Coffee & Tea",
		TranslatedSections: map[string]models.TranslatedSection{
			models.SectionJobDescription: {
				Original:   "Functieomschrijving\nJe zorgt voor de koffie.",
				Translated: "Job description\nYou take care of the coffee.",
				WordCount:  6,
				Succeeded:  true,
			},
		},
	}
}

func TestMarshalRecordFormatting(t *testing.T) {
	data, err := MarshalRecord(sampleRecord())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "Gemeente Süd · Oost", "non-ASCII characters stay unescaped")
	assert.Contains(t, text, "Koffie & Thee", "HTML-significant characters stay unescaped")
	assert.Contains(t, text, "?q=go&page=1")
	assert.Contains(t, text, "\n  \"url\":", "output uses 2-space indentation")
	assert.NotContains(t, text, `\u0026`, "ampersands stay literal")
	assert.NotContains(t, text, `\u00`)
}

func TestRecordRoundTrip(t *testing.T) {
	original := sampleRecord()

	data, err := MarshalRecord(original)
	require.NoError(t, err)

	var decoded models.TranslatedJobRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *original, decoded)
}

func TestWriteRecordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.json")
	require.NoError(t, WriteRecordFile(path, sampleRecord()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  "))

	var decoded models.TranslatedJobRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "https://example.org/banen/1?q=go&page=1", decoded.URL)
}
