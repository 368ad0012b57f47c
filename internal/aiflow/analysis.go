package aiflow

import (
	"encoding/json"
	"strings"
)

// Analysis is a tagged result for flows whose output may or may not be
// structured. Exactly one of Data and Text is populated, discriminated by
// Structured.
type Analysis struct {
	Structured bool            `json:"structured"`
	Data       json.RawMessage `json:"data,omitempty"`
	Text       string          `json:"text,omitempty"`
}

// ParseAnalysis decides whether raw provider output is valid JSON. Valid
// objects and arrays become the structured variant; anything else is carried
// verbatim as unstructured text.
func ParseAnalysis(raw string) Analysis {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		if json.Valid([]byte(trimmed)) {
			return Analysis{Structured: true, Data: json.RawMessage(trimmed)}
		}
	}
	return Analysis{Text: raw}
}
