// Package params reads loosely-typed fields that shortcut clients send either as
// a JSON object or as a form body.
package params

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// maxBodyBytes caps request bodies read by Fields.
const maxBodyBytes = 1 << 20

// Fields returns the string fields of the request body. JSON objects are read when the
// content type says so or the body starts with '{'; anything else is parsed as a form.
// Non-string JSON values are ignored. An empty body yields an empty map.
func Fields(r *http.Request) (map[string]string, error) {
	fields := map[string]string{}
	if r.Body == nil || r.Method == http.MethodGet {
		return fields, nil
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return fields, nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" || strings.HasPrefix(trimmed, "{") {
		var raw map[string]any
		if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
			return nil, fmt.Errorf("invalid JSON body: %w", err)
		}
		for k, v := range raw {
			if s, ok := v.(string); ok {
				fields[k] = s
			}
		}
		return fields, nil
	}

	values, err := url.ParseQuery(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid form body: %w", err)
	}
	for k := range values {
		fields[k] = values.Get(k)
	}
	return fields, nil
}

// First returns the first non-blank value among the candidates.
func First(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
