package server

import (
	"math"
	"strings"

	wserrors "github.com/mj1618/workspace-output/internal/errors"
)

// StringParam extracts a string parameter from MCP arguments.
func StringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return def
}

// BoolParam extracts a bool parameter from MCP arguments.
func BoolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}

// IntParam extracts a required whole-number parameter. JSON numbers arrive
// as float64.
func IntParam(params map[string]interface{}, key string) (int, error) {
	switch v := params[key].(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, wserrors.New(wserrors.ErrCodeInvalidInput, "%s must be a whole number, got %v", key, v)
		}
		if v < math.MinInt || v >= math.MaxInt {
			return 0, wserrors.New(wserrors.ErrCodeInvalidInput, "%s is out of range, got %v", key, v)
		}
		return int(v), nil
	case int:
		return v, nil
	case nil:
		return 0, wserrors.New(wserrors.ErrCodeInvalidInput, "%s is required", key)
	default:
		return 0, wserrors.New(wserrors.ErrCodeInvalidInput, "%s must be a number", key)
	}
}
