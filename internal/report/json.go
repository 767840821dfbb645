package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"vacature-scout/pkg/models"
)

// MarshalRecord renders a translated record as UTF-8 JSON with 2-space
// indentation. HTML escaping is off so Dutch text and URLs stay readable;
// the artifact must round-trip losslessly through standard JSON decode.
func MarshalRecord(record *models.TranslatedJobRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(record); err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteRecordFile persists a translated record to the given path
func WriteRecordFile(path string, record *models.TranslatedJobRecord) error {
	data, err := MarshalRecord(record)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
