package normalize

import (
	"strings"

	"github.com/donaldgifford/voltmarket/pkg/record"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// Images extracts the image URL list from the first image field present.
// Arrays keep their non-empty string entries; strings are split on commas.
// The result is never nil.
func Images(rec domain.RawRecord, keys ...string) []string {
	return ParseImages(record.Coalesce(rec, keys...))
}

// ParseImages converts an image field value to a clean URL list.
func ParseImages(v any) []string {
	out := []string{}
	switch t := v.(type) {
	case string:
		for p := range strings.SplitSeq(t, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	case []string:
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, e := range t {
			if s, ok := e.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
	}
	return out
}

// JoinImages renders an image list in the comma-separated wire format.
func JoinImages(urls []string) string {
	return strings.Join(ParseImages(urls), ",")
}
