package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/jroosing/mailreply/internal/pool"
)

var prettyBuffers = pool.NewBufferPool()

// ParseResponse is the loosely typed body of a parse call. Every field is
// optional; Raw keeps the body exactly as received.
type ParseResponse struct {
	Raw    json.RawMessage
	fields map[string]any
}

func newParseResponse(raw []byte) (*ParseResponse, error) {
	var fields map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if fields == nil {
		return nil, fmt.Errorf("failed to decode response: body is not a JSON object")
	}
	return &ParseResponse{Raw: append(json.RawMessage(nil), raw...), fields: fields}, nil
}

// Field returns a top-level value and whether it was present.
func (r *ParseResponse) Field(key string) (any, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// String returns a top-level string field, or "" when absent or not a string.
func (r *ParseResponse) String(key string) string {
	s, _ := r.fields[key].(string)
	return s
}

// Pretty re-indents the raw body with two spaces, keeping key order.
func (r *ParseResponse) Pretty() (string, error) {
	buf := prettyBuffers.Get()
	defer prettyBuffers.Put(buf)

	if err := json.Indent(buf, bytes.TrimSpace(r.Raw), "", "  "); err != nil {
		return "", fmt.Errorf("failed to format response: %w", err)
	}
	return buf.String(), nil
}

// errorField reports the "error" value of a decoded body when it is truthy,
// in the form a browser would print it.
func errorField(fields map[string]any) (string, bool) {
	v, ok := fields["error"]
	if !ok || !truthy(v) {
		return "", false
	}
	return stringify(v), true
}

// truthy follows browser semantics for a decoded JSON value.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0 && !math.IsNaN(f)
	case float64:
		return t != 0 && !math.IsNaN(t)
	default:
		// objects and arrays
		return true
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	case map[string]any:
		return "[object Object]"
	case []any:
		parts := make([]string, len(t))
		for i, item := range t {
			if item != nil {
				parts[i] = stringify(item)
			}
		}
		return strings.Join(parts, ",")
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
