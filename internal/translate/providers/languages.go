package providers

// langNames maps the language codes the board realistically serves to
// human-readable names for translation prompts
var langNames = map[string]string{
	"nl": "Dutch",
	"en": "English",
	"de": "German",
	"fr": "French",
	"es": "Spanish",
	"it": "Italian",
}

// LanguageName returns the human-readable name for a language code, falling
// back to the raw code when unrecognized
func LanguageName(code string) string {
	if name, ok := langNames[code]; ok {
		return name
	}
	return code
}
