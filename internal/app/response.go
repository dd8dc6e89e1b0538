package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/RisingZenByte/tianji-api/internal/domain"
)

var mingliKeys = []string{
	"personality", "career", "wealth", "marriage", "health",
	"luckyDirections", "luckyColors", "suggestions",
}

// stripCodeFence removes one leading ``` or ```json marker and one trailing
// ``` marker, plus surrounding whitespace.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ParseMingliResponse decodes a model reply into a MingliAnalysis. The reply
// must be a JSON object carrying at least one of the analysis keys; unknown
// keys are ignored and absent keys are left at their zero value.
func ParseMingliResponse(raw string) (domain.MingliAnalysis, error) {
	body := []byte(stripCodeFence(raw))

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return domain.MingliAnalysis{}, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}
	if !hasAnyKey(fields, mingliKeys) {
		return domain.MingliAnalysis{}, fmt.Errorf("%w: no analysis keys in object", domain.ErrMalformedResponse)
	}

	var out domain.MingliAnalysis
	if err := json.Unmarshal(body, &out); err != nil {
		return domain.MingliAnalysis{}, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}
	return out, nil
}

func hasAnyKey(m map[string]json.RawMessage, keys []string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}
