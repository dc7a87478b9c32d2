package commands_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// searchServer serves a fixed number of hits and counts requests.
func searchServer(t *testing.T, hits int) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "/jokes/search", r.URL.Path, "Should call /jokes/search endpoint")

		result := make([]map[string]any, 0, hits)
		for i := range hits {
			result = append(result, map[string]any{
				"id":    fmt.Sprintf("joke-%d", i),
				"value": fmt.Sprintf("joke number %d", i),
			})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"total": hits, "result": result})
	}))
	t.Cleanup(server.Close)
	return server, &requests
}

// TestSearch_EmptyQuery verifies empty and whitespace queries are rejected
// before any network activity.
func TestSearch_EmptyQuery(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "missing argument",
			args: []string{"search"},
		},
		{
			name: "empty string",
			args: []string{"search", ""},
		},
		{
			name: "whitespace only",
			args: []string{"search", "   "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, requests := searchServer(t, 1)

			stdout, stderr, code := runCLI(t, server.URL, tt.args...)

			assert.Equal(t, 2, code, "empty query should exit 2")
			assert.Empty(t, stdout, "nothing should reach stdout")
			assert.Contains(t, stderr, "Error: search query cannot be empty", "rejection message should match")
			assert.Equal(t, int32(0), requests.Load(), "no request should be made for an empty query")
		})
	}
}

// TestSearch_ListsHits verifies the numbered text rendering and that exactly
// one request is made per invocation.
func TestSearch_ListsHits(t *testing.T) {
	server, requests := searchServer(t, 2)

	stdout, stderr, code := runCLI(t, server.URL, "search", "kick")

	assert.Equal(t, 0, code, "successful search should exit 0")
	assert.Equal(t, "1. joke number 0\n2. joke number 1\n", stdout, "hits should be numbered from 1")
	assert.Empty(t, stderr, "nothing should reach stderr on success")
	assert.Equal(t, int32(1), requests.Load(), "exactly one request should be made")
}

// TestSearch_LimitTruncates verifies --limit cuts the rendered list to a
// prefix of the server's results.
func TestSearch_LimitTruncates(t *testing.T) {
	server, _ := searchServer(t, 3)

	stdout, _, code := runCLI(t, server.URL, "search", "kick", "--limit", "1")

	assert.Equal(t, 0, code, "successful search should exit 0")
	assert.Equal(t, "1. joke number 0\n", stdout, "only the first hit should be rendered")
}

// TestSearch_DefaultLimit verifies the default limit of 10.
func TestSearch_DefaultLimit(t *testing.T) {
	server, _ := searchServer(t, 12)

	stdout, _, code := runCLI(t, server.URL, "search", "kick")

	assert.Equal(t, 0, code, "successful search should exit 0")
	assert.Contains(t, stdout, "10. joke number 9\n", "the tenth hit should be rendered")
	assert.NotContains(t, stdout, "11.", "hits beyond the default limit should be dropped")
}

// TestSearch_ShortLimitFlag verifies the -n shorthand.
func TestSearch_ShortLimitFlag(t *testing.T) {
	server, _ := searchServer(t, 3)

	stdout, _, code := runCLI(t, server.URL, "search", "kick", "-n", "2")

	assert.Equal(t, 0, code, "successful search should exit 0")
	assert.Contains(t, stdout, "2. joke number 1\n", "the second hit should be rendered")
	assert.NotContains(t, stdout, "3.", "hits beyond the limit should be dropped")
}

// TestSearch_NoResults verifies the friendly line for empty result sets.
func TestSearch_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"total": 0, "result": []}`))
	}))
	defer server.Close()

	stdout, _, code := runCLI(t, server.URL, "search", "nothing")

	assert.Equal(t, 0, code, "an empty result set is a success")
	assert.Equal(t, "No jokes found.\n", stdout, "the friendly line should be printed")
}

// TestSearch_MissingResultKey verifies a payload without "result" is treated
// as no hits, not as an error.
func TestSearch_MissingResultKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"total": 0}`))
	}))
	defer server.Close()

	stdout, stderr, code := runCLI(t, server.URL, "search", "anything")

	assert.Equal(t, 0, code, "a malformed result set is not an error")
	assert.Equal(t, "No jokes found.\n", stdout, "the friendly line should be printed")
	assert.Empty(t, stderr, "nothing should reach stderr")
}

// TestSearch_VerboseMetadata verifies the verbose sublines.
func TestSearch_VerboseMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"total": 2,
			"result": [
				{"id": "a1", "value": "first", "categories": ["dev"]},
				{"id": "b2", "value": "second"}
			]
		}`))
	}))
	defer server.Close()

	stdout, _, code := runCLI(t, server.URL, "search", "kick", "--verbose")

	assert.Equal(t, 0, code, "successful search should exit 0")
	assert.Equal(t,
		"1. first\n   id: a1\n   categories: dev\n2. second\n   id: b2\n",
		stdout,
		"verbose layout should match, with the categories line only where present")
}

// TestSearch_JSONOutput verifies --json emits the trimmed payload with
// everything else intact.
func TestSearch_JSONOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"total": 3,
			"extra": "kept",
			"result": [
				{"id": "a", "value": "first"},
				{"id": "b", "value": "second"},
				{"id": "c", "value": "third"}
			]
		}`))
	}))
	defer server.Close()

	stdout, _, code := runCLI(t, server.URL, "search", "kick", "--limit", "2", "--json")

	assert.Equal(t, 0, code, "successful search should exit 0")

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &got), "output should be valid JSON")

	assert.Equal(t, float64(3), got["total"], "total should be preserved from the server")
	assert.Equal(t, "kept", got["extra"], "unknown fields should be preserved")

	result, ok := got["result"].([]any)
	require.True(t, ok, "result should be a list")
	require.Len(t, result, 2, "result should be trimmed to the limit")
	first, ok := result[0].(map[string]any)
	require.True(t, ok, "result entries should be mappings")
	assert.Equal(t, "first", first["value"], "trimming should keep the prefix")
}

// TestSearch_JSONOutputEmptyResults verifies --json prints the payload even
// when there are no hits.
func TestSearch_JSONOutputEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"total": 0, "result": []}`))
	}))
	defer server.Close()

	stdout, _, code := runCLI(t, server.URL, "search", "nothing", "--json")

	assert.Equal(t, 0, code, "an empty result set is a success")
	assert.NotContains(t, stdout, "No jokes found.", "the friendly line is text mode only")

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &got), "output should be valid JSON")
	assert.Equal(t, float64(0), got["total"], "payload should be rendered as-is")
}

// TestSearch_QuerySentUntrimmed verifies validation trims only for the
// emptiness check, not for the request.
func TestSearch_QuerySentUntrimmed(t *testing.T) {
	const query = "  padded kick  "

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, query, r.URL.Query().Get("query"), "query should arrive untrimmed")
		_, _ = w.Write([]byte(`{"total": 0, "result": []}`))
	}))
	defer server.Close()

	_, _, code := runCLI(t, server.URL, "search", query)

	assert.Equal(t, 0, code, "successful search should exit 0")
}

// TestSearch_ServerFailure verifies API failures use the search error prefix
// and exit 2.
func TestSearch_ServerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, stderr, code := runCLI(t, server.URL, "search", "kick")

	assert.Equal(t, 2, code, "server failure should exit 2")
	assert.Contains(t, stderr, "Error: failed to search jokes - ", "failure should use the standard format")
	assert.Contains(t, stderr, "503", "failure should carry the status code")
}

// TestSearch_TooManyArguments verifies surplus positional arguments are
// parse failures.
func TestSearch_TooManyArguments(t *testing.T) {
	_, stderr, code := runCLI(t, "", "search", "kick", "punch")

	assert.Equal(t, 1, code, "surplus arguments should exit 1")
	assert.Contains(t, stderr, "Error:", "parse failure should be reported")
}
