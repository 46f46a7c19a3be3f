package service

import (
	"encoding/json"
	"strings"
)

// contentChunk is one element of a multi-part content field. Chunks without
// a text field contribute an empty line.
type contentChunk struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// normalizeContent collapses a provider content field, which may be a plain
// string or a sequence of typed chunks, into one trimmed string. The second
// return value is false when nothing usable is present. Unrecognized shapes
// degrade to absent rather than failing.
func normalizeContent(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		single = strings.TrimSpace(single)
		return single, single != ""
	}

	var chunks []contentChunk
	if err := json.Unmarshal(raw, &chunks); err == nil {
		parts := make([]string, len(chunks))
		for i, chunk := range chunks {
			parts[i] = chunk.Text
		}
		joined := strings.TrimSpace(strings.Join(parts, "\n"))
		return joined, joined != ""
	}

	return "", false
}
