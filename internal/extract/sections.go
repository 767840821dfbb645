package extract

import (
	"regexp"
	"strings"

	"vacature-scout/pkg/models"
)

// sectionRule binds a section name to the marker patterns that open it
type sectionRule struct {
	name     string
	patterns []*regexp.Regexp
}

// sectionRules is the ordered marker table for section segmentation. Rules
// are checked in this fixed order and the first matching pattern wins, so
// the tie-break between overlapping markers stays auditable.
var sectionRules = []sectionRule{
	{
		name: models.SectionJobDescription,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(Functieomschrijving|Job description|What will you do|Wat ga je doen)`),
			regexp.MustCompile(`(?i)(About the role|Over de functie)`),
		},
	},
	{
		name: models.SectionRequirements,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(Functie-eisen|Job requirements|Requirements|Wat vragen wij|What do we ask)`),
			regexp.MustCompile(`(?i)(Your profile|Jouw profiel|Competencies|Competenties)`),
		},
	},
	{
		name: models.SectionWhatWeOffer,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(Wat bieden wij|What we offer|What do we offer|Wat krijg je ervoor terug)`),
		},
	},
	{
		name: models.SectionEmploymentConditions,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(Arbeidsvoorwaarden|Employment conditions|Salary|Salaris)`),
		},
	},
	{
		name: models.SectionApplicationProcess,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(Solliciteren|Apply|Application|How to apply|Bijzonderheden)`),
		},
	},
}

// matchSection returns the section a line opens, or "" when the line is not
// a section marker
func matchSection(line string) string {
	for _, rule := range sectionRules {
		for _, pattern := range rule.patterns {
			if pattern.MatchString(line) {
				return rule.name
			}
		}
	}
	return ""
}

// SplitSections distributes the non-empty content lines over the five fixed
// sections. A marker line flushes the running buffer into the current
// section (overwriting an earlier run for that section) and starts a new
// buffer with itself as first line. Lines before any marker, or all lines
// when no marker ever matches, land in job_description.
func SplitSections(lines []string) map[string]string {
	sections := make(map[string]string, len(models.SectionNames))
	for _, name := range models.SectionNames {
		sections[name] = ""
	}

	currentSection := models.SectionJobDescription
	var buffer []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if name := matchSection(line); name != "" {
			if len(buffer) > 0 {
				sections[currentSection] = strings.Join(buffer, "\n")
			}
			currentSection = name
			buffer = []string{line}
			continue
		}

		buffer = append(buffer, line)
	}

	if len(buffer) > 0 {
		sections[currentSection] = strings.Join(buffer, "\n")
	}

	return sections
}
