package server

import (
	"fmt"
	"strings"
)

// Parameter extraction helpers for tool argument maps.

// StringParam returns params[key] as a string. Numbers and booleans are
// formatted with %v.
func StringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

// IntParam returns params[key] as an int, truncating floats.
func IntParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		}
	}
	return defaultVal
}

// FloatParam returns params[key] as a float64.
func FloatParam(params map[string]interface{}, key string, defaultVal float64) float64 {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case int64:
			return float64(n)
		}
	}
	return defaultVal
}

// BoolParam returns params[key] when it is a bool.
func BoolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

// StringsParam accepts either an array of strings or a comma-separated
// string.
func StringsParam(params map[string]interface{}, key string) []string {
	var out []string
	switch v := params[key].(type) {
	case string:
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// MapParam returns params[key] when it is an object.
func MapParam(params map[string]interface{}, key string) map[string]interface{} {
	if m, ok := params[key].(map[string]interface{}); ok {
		return m
	}
	return nil
}
