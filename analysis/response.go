package analysis

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/resumeinsight/backend/utils"
)

var errNotObject = errors.New("response is not a JSON object")

// StripCodeFence removes a surrounding markdown code fence, if present
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```JSON")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// ParseResponse turns the model's reply into a JSON object. Text around the
// object is tolerated by slicing from the first '{' to the last '}'.
func ParseResponse(raw string) (map[string]any, error) {
	text := StripCodeFence(raw)
	if text == "" {
		return nil, utils.NewEmptyModelResponse()
	}

	obj, err := decodeObject(text)
	if err == nil {
		return obj, nil
	}
	// valid JSON of the wrong type is not worth repairing
	if errors.Is(err, errNotObject) {
		return nil, utils.NewMalformedModelResponse(raw, err)
	}

	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start >= 0 && end > start {
		if repaired, repairErr := decodeObject(text[start : end+1]); repairErr == nil {
			return repaired, nil
		}
	}

	return nil, utils.NewMalformedModelResponse(raw, err)
}

func decodeObject(text string) (map[string]any, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	return obj, nil
}

// Stamp records which model produced the response, how long it took and when
func Stamp(obj map[string]any, model string, elapsed time.Duration, now time.Time) {
	obj["aiModel"] = model
	obj["processingTime"] = elapsed.Milliseconds()
	obj["processedAt"] = now.UTC().Format(time.RFC3339)
}
