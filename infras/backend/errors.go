package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"
)

// Error is a backend exchange that completed with a non-success status.
type Error struct {
	Method string
	Path   string
	Status int
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, e.Detail)
}

// ErrorDetail builds a human message from an error body. Structured bodies come in three
// forms: a single message under detail, message or error; field errors {"field": ["msg", ...]};
// and a bare list of messages.
// Anything else falls back to a generic message with the status.
func ErrorDetail(status int, body []byte) string {
	generic := fmt.Sprintf("API Error: %d %s", status, http.StatusText(status))

	var object map[string]any
	if err := json.Unmarshal(body, &object); err == nil && len(object) > 0 {
		for _, key := range []string{"detail", "message", "error"} {
			if text, ok := object[key].(string); ok && text != "" {
				return text
			}
		}

		fields := make([]string, 0, len(object))
		for field := range object {
			fields = append(fields, field)
		}

		slices.Sort(fields)

		lines := make([]string, 0, len(fields))
		for _, field := range fields {
			lines = append(lines, field+": "+flatten(object[field]))
		}

		return strings.Join(lines, "; ")
	}

	var list []any
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 {
		return flatten(list)
	}

	return generic
}

func flatten(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, flatten(item))
		}

		return strings.Join(parts, ", ")
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}

		slices.Sort(keys)

		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, key+": "+flatten(v[key]))
		}

		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}
