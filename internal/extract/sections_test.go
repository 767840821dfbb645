package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacature-scout/pkg/models"
)

func TestSplitSections(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected map[string]string
	}{
		{
			name:  "two marked sections",
			lines: []string{"Functieomschrijving", "line A", "Functie-eisen", "line B"},
			expected: map[string]string{
				models.SectionJobDescription: "Functieomschrijving\nline A",
				models.SectionRequirements:   "Functie-eisen\nline B",
			},
		},
		{
			name:  "no marker ever matches",
			lines: []string{"gewoon wat tekst", "meer tekst"},
			expected: map[string]string{
				models.SectionJobDescription: "gewoon wat tekst\nmeer tekst",
			},
		},
		{
			name:  "markers are case-insensitive",
			lines: []string{"WAT BIEDEN WIJ", "goede koffie"},
			expected: map[string]string{
				models.SectionWhatWeOffer: "WAT BIEDEN WIJ\ngoede koffie",
			},
		},
		{
			name:  "english markers",
			lines: []string{"What will you do", "build things", "Requirements", "Go experience", "How to apply", "send an email"},
			expected: map[string]string{
				models.SectionJobDescription:     "What will you do\nbuild things",
				models.SectionRequirements:       "Requirements\nGo experience",
				models.SectionApplicationProcess: "How to apply\nsend an email",
			},
		},
		{
			name:  "repeated section keeps only the last run",
			lines: []string{"Functie-eisen", "eerste run", "Solliciteren", "stuur een mail", "Functie-eisen", "tweede run"},
			expected: map[string]string{
				models.SectionRequirements:       "Functie-eisen\ntweede run",
				models.SectionApplicationProcess: "Solliciteren\nstuur een mail",
			},
		},
		{
			name:  "blank lines are dropped",
			lines: []string{"", "Arbeidsvoorwaarden", "  ", "40 uur per week"},
			expected: map[string]string{
				models.SectionEmploymentConditions: "Arbeidsvoorwaarden\n40 uur per week",
			},
		},
		{
			name:     "empty input",
			lines:    nil,
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := SplitSections(tt.lines)

			// every fixed key is present, value may be empty
			require.Len(t, sections, len(models.SectionNames))
			for _, name := range models.SectionNames {
				assert.Equal(t, tt.expected[name], sections[name], "section %s", name)
			}
		})
	}
}

// Segmentation demarcates lines, it never creates or destroys them: when
// every section starts at most once, the joined section contents hold
// exactly the non-empty input lines.
func TestSplitSectionsReconstructsInput(t *testing.T) {
	lines := []string{
		"Over de functie",
		"Je werkt aan de koppelingen.",
		"Wat vragen wij",
		"HBO werk- en denkniveau",
		"Kennis van Go",
		"Wat bieden wij",
		"Leaseauto",
		"Arbeidsvoorwaarden",
		"36-urige werkweek",
		"Bijzonderheden",
		"Reageren voor 1 september",
	}

	sections := SplitSections(lines)

	var reassigned []string
	for _, name := range models.SectionNames {
		if sections[name] == "" {
			continue
		}
		reassigned = append(reassigned, strings.Split(sections[name], "\n")...)
	}

	assert.ElementsMatch(t, lines, reassigned, "no line may be dropped or duplicated")
}

func TestMatchSectionPriorityOrder(t *testing.T) {
	// a line matching several tables resolves to the first table in order
	assert.Equal(t, models.SectionJobDescription, matchSection("Functieomschrijving en requirements"))
	assert.Equal(t, models.SectionRequirements, matchSection("Functie-eisen"))
	assert.Equal(t, "", matchSection("een gewone regel"))
}
