// Package pricing extracts suggested prices from AI responses and computes
// the local heuristic estimate used when no model is configured.
package pricing

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"

	"github.com/donaldgifford/voltmarket/pkg/record"
)

// priceKeys are tried on an object body, in order, after the chat-style
// choices[0].message.content path.
var priceKeys = []string{"content", "suggestedPrice", "price"}

// Parse extracts an integer price from a free-form suggestion body. The body
// may be a decoded JSON value, raw bytes or plain text. Every non-digit
// character is stripped before parsing, which removes currency markers and
// thousands separators. It reports false when no digits remain or the number
// overflows; it never panics.
func Parse(body any) (int64, bool) {
	text := Text(Locate(decode(body)))
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Locate returns the price-bearing value of a suggestion body.
func Locate(body any) any {
	obj, ok := body.(map[string]any)
	if !ok {
		return body
	}
	if content := chatContent(obj); content != nil {
		return content
	}
	if v := record.Coalesce(obj, priceKeys...); v != nil {
		return v
	}
	return obj
}

// Text renders a located value as the string the digit scan runs over.
// Objects and arrays are JSON-encoded; nil renders as "".
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]any, []any:
		raw, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(raw)
	default:
		return record.ToString(t)
	}
}

func chatContent(obj map[string]any) any {
	choices, ok := obj["choices"].([]any)
	if !ok || len(choices) == 0 {
		return nil
	}
	choice, ok := choices[0].(map[string]any)
	if !ok {
		return nil
	}
	msg, ok := choice["message"].(map[string]any)
	if !ok {
		return nil
	}
	return msg["content"]
}

func decode(body any) any {
	var raw []byte
	switch t := body.(type) {
	case []byte:
		raw = t
	case json.RawMessage:
		raw = t
	default:
		return body
	}
	trimmed := strings.TrimLeftFunc(string(raw), unicode.IsSpace)
	if trimmed == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}
