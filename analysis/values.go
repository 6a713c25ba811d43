package analysis

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// number coerces a JSON-ish value to a finite float.
// ok is false when the value is absent, non-numeric or not finite.
func number(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(n), "%"))
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// clampScore rounds a score into [0,100]
func clampScore(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(math.Round(math.Max(0, math.Min(100, f))))
}

// readScore reads a clamped score; ok reports whether a finite number was present
func readScore(v any) (int, bool) {
	f, ok := number(v)
	if !ok {
		return 0, false
	}
	return clampScore(f), true
}

func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64, json.Number, int, int64, bool:
		return fmt.Sprint(s)
	default:
		return ""
	}
}

// textKeys are tried, in order, when a list item is an object instead of a string
var textKeys = []string{"text", "question", "point", "name", "title", "description", "issue", "suggestion"}

// stringSlice converts a JSON array into non-empty strings. A bare string becomes a
// single-element slice. The result is never nil.
func stringSlice(v any) []string {
	out := []string{}
	switch items := v.(type) {
	case []any:
		for _, item := range items {
			if s := itemText(item); s != "" {
				out = append(out, s)
			}
		}
	case []string:
		for _, item := range items {
			if s := strings.TrimSpace(item); s != "" {
				out = append(out, s)
			}
		}
	case string:
		if s := strings.TrimSpace(items); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func itemText(item any) string {
	if obj, ok := item.(map[string]any); ok {
		for _, key := range textKeys {
			if s := stringValue(obj[key]); s != "" {
				return s
			}
		}
		return ""
	}
	return stringValue(item)
}

func object(v any) map[string]any {
	if obj, ok := v.(map[string]any); ok {
		return obj
	}
	return map[string]any{}
}

// firstSlice returns the first value that is present as an array or string
func firstSlice(values ...any) []string {
	for _, v := range values {
		switch v.(type) {
		case []any, []string, string:
			return stringSlice(v)
		}
	}
	return []string{}
}

func firstString(values ...any) string {
	for _, v := range values {
		if s := stringValue(v); s != "" {
			return s
		}
	}
	return ""
}
