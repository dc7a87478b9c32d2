// Package joke holds typed views over raw jokes API payloads.
//
// The API is only loosely shaped and the CLI reproduces payloads exactly in
// JSON mode, so the client returns raw decoded mappings. This package
// derives typed records from those mappings for text rendering. The
// constructors substitute zero values for missing or mistyped fields and
// never fail.
package joke

import "encoding/json"

// Joke is a single joke record.
type Joke struct {
	ID         string   `json:"id"`
	Value      string   `json:"value"`
	URL        string   `json:"url,omitempty"`
	IconURL    string   `json:"icon_url,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// FromMap builds a Joke from a decoded payload mapping. Category entries
// that are not strings are dropped.
func FromMap(m map[string]any) Joke {
	return Joke{
		ID:         stringField(m, "id"),
		Value:      stringField(m, "value"),
		URL:        stringField(m, "url"),
		IconURL:    stringField(m, "icon_url"),
		Categories: stringSliceField(m, "categories"),
	}
}

// SearchResult is the payload of a free-text search.
type SearchResult struct {
	Total  int    `json:"total"`
	Result []Joke `json:"result"`
}

// SearchResultFromMap builds a SearchResult from a decoded payload mapping.
// Result entries that are not mappings are dropped; Total falls back to the
// number of collected jokes when absent or unparseable.
func SearchResultFromMap(m map[string]any) SearchResult {
	var jokes []Joke
	if items, ok := m["result"].([]any); ok {
		jokes = make([]Joke, 0, len(items))
		for _, item := range items {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			jokes = append(jokes, FromMap(entry))
		}
	}
	total, ok := intField(m, "total")
	if !ok {
		total = len(jokes)
	}
	return SearchResult{Total: total, Result: jokes}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func stringSliceField(m map[string]any, key string) []string {
	items, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// intField handles the numeric encodings a decoded payload may carry:
// json.Number when decoded with UseNumber, float64 otherwise.
func intField(m map[string]any, key string) (int, bool) {
	switch n := m[key].(type) {
	case json.Number:
		v, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(v), true
	case float64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}
