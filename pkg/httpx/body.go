package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// PeekBody reads up to limit bytes of the request body and restores it so a
// downstream handler can still consume it. JSON endpoints use this when a
// middleware needs a field from the body before the handler runs.
func PeekBody(r *http.Request, limit int64) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, limit))
	if err != nil {
		return nil, err
	}
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

func jsonStringField(body []byte, field string) string {
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		return ""
	}
	if s, ok := m[field].(string); ok {
		return s
	}
	return ""
}
