package catalog

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
)

// ParseMetadataOverrides extracts an assessment-type to question-set mapping
// from free-text plan metadata. Older plans embed it as the first JSON object
// in the text, for example `notes... {"pulse": 12, "360": "7"}`. Anything it
// cannot read is ignored.
func ParseMetadataOverrides(metadata string) map[model.AssessmentType]int64 {
	for start := strings.IndexByte(metadata, '{'); start >= 0; {
		var raw map[string]json.RawMessage
		dec := json.NewDecoder(strings.NewReader(metadata[start:]))
		if err := dec.Decode(&raw); err == nil {
			if overrides := toOverrides(raw); len(overrides) > 0 {
				return overrides
			}
		}

		next := strings.IndexByte(metadata[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return nil
}

func toOverrides(raw map[string]json.RawMessage) map[model.AssessmentType]int64 {
	overrides := make(map[model.AssessmentType]int64)
	for key, value := range raw {
		t := model.AssessmentType(strings.ToLower(strings.TrimSpace(key)))
		if !t.Valid() {
			continue
		}
		if id, ok := parseID(value); ok {
			overrides[t] = id
		}
	}
	return overrides
}

// parseID accepts a positive integer written as a JSON number or string.
func parseID(value json.RawMessage) (int64, bool) {
	var n json.Number
	if err := json.Unmarshal(value, &n); err != nil {
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return 0, false
		}
		n = json.Number(strings.TrimSpace(s))
	}
	id, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
