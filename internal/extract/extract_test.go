package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacature-scout/pkg/models"
	"vacature-scout/pkg/utils"
)

const detailPage = `<html><body>
<h1> Senior Golang Developer </h1>
<div class="responsiveCompanyInfo">Acme BV · Standplaats: Amsterdam · 3 dagen geleden</div>
<div class="jobColumn wide">
  <p>Functieomschrijving</p>
  <p>Je bouwt mee aan ons platform.</p>
  <p>Functie-eisen</p>
  <p>Ervaring met Go.</p>
  <p>Wat bieden wij</p>
  <p>Een leaseauto en 30 vakantiedagen.</p>
</div>
<div class="jobFeatures">
  <div class="feature"><b>Dienstverband</b><div class="description">Fulltime</div></div>
  <div class="feature"><b>Opleidingsniveau</b><div class="description">HBO</div></div>
  <div class="feature"><b>Zonder beschrijving</b></div>
</div>
<div class="jobContact">
  <div class="contactInfo"><span>Adres</span><span>Hoofdstraat 1</span><span>1011 AB Amsterdam</span></div>
  <div class="contactInfo"><span>Contactgegevens</span><span>jobs@acme.nl</span></div>
  <div class="contactInfo"><span>Overig</span><span>niet geclassificeerd</span></div>
</div>
</body></html>`

func TestExtractDetailPage(t *testing.T) {
	record, err := Extract(detailPage, "https://example.org/banen/1")
	require.NoError(t, err)

	assert.Equal(t, "https://example.org/banen/1", record.URL)
	assert.False(t, record.ExtractedAt.IsZero())
	assert.Equal(t, "Senior Golang Developer", record.JobDetails.Title)

	assert.Equal(t, "Acme BV", record.CompanyInfo.Name)
	assert.Equal(t, "Amsterdam", record.CompanyInfo.Location)
	assert.Equal(t, "3 dagen geleden", record.CompanyInfo.PostingDate)

	// blocks without both sub-elements are skipped, DOM order is kept
	require.Len(t, record.JobDetails.Features, 2)
	assert.Equal(t, models.Feature{Label: "Dienstverband", Description: "Fulltime"}, record.JobDetails.Features[0])
	assert.Equal(t, models.Feature{Label: "Opleidingsniveau", Description: "HBO"}, record.JobDetails.Features[1])

	assert.Equal(t, "Hoofdstraat 1 | 1011 AB Amsterdam", record.ContactInfo.Address)
	assert.Equal(t, "jobs@acme.nl", record.ContactInfo.ContactDetails)

	expectedRaw := "Functieomschrijving\nJe bouwt mee aan ons platform.\n" +
		"Functie-eisen\nErvaring met Go.\n" +
		"Wat bieden wij\nEen leaseauto en 30 vakantiedagen."
	assert.Equal(t, expectedRaw, record.RawContent)

	assert.Equal(t, "Functieomschrijving\nJe bouwt mee aan ons platform.", record.StructuredContent[models.SectionJobDescription])
	assert.Equal(t, "Functie-eisen\nErvaring met Go.", record.StructuredContent[models.SectionRequirements])
	assert.Equal(t, "Wat bieden wij\nEen leaseauto en 30 vakantiedagen.", record.StructuredContent[models.SectionWhatWeOffer])
	assert.Empty(t, record.StructuredContent[models.SectionEmploymentConditions])
	assert.Empty(t, record.StructuredContent[models.SectionApplicationProcess])
}

func TestExtractMissingMainContent(t *testing.T) {
	_, err := Extract(`<html><body><h1>Titel</h1></body></html>`, "https://example.org/banen/2")
	require.Error(t, err)
	assert.True(t, utils.IsNotFound(err))
}

func TestExtractCompanyInfoTooFewParts(t *testing.T) {
	markup := `<html><body>
	<div class="jobColumn wide"><p>tekst</p></div>
	<div class="responsiveCompanyInfo">Acme BV · Standplaats: Amsterdam</div>
	</body></html>`

	record, err := Extract(markup, "https://example.org/banen/3")
	require.NoError(t, err)

	// fewer than 3 delimited parts means no partial population
	assert.Empty(t, record.CompanyInfo.Name)
	assert.Empty(t, record.CompanyInfo.Location)
	assert.Empty(t, record.CompanyInfo.PostingDate)
}

func TestExtractWithoutOptionalFields(t *testing.T) {
	markup := `<html><body><div class="jobColumn wide"><p>Alleen tekst.</p></div></body></html>`

	record, err := Extract(markup, "https://example.org/banen/4")
	require.NoError(t, err)

	assert.Empty(t, record.JobDetails.Title)
	assert.Empty(t, record.JobDetails.Features)
	assert.Empty(t, record.ContactInfo.Address)
	assert.Equal(t, "Alleen tekst.", record.RawContent)
	assert.Equal(t, "Alleen tekst.", record.StructuredContent[models.SectionJobDescription])
}

func TestExtractSkipsScriptText(t *testing.T) {
	markup := `<html><body><div class="jobColumn wide">
	<p>Zichtbare tekst</p><script>var hidden = true;</script>
	</div></body></html>`

	record, err := Extract(markup, "https://example.org/banen/5")
	require.NoError(t, err)
	assert.Equal(t, "Zichtbare tekst", record.RawContent)
}
