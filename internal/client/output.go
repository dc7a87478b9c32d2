// Package client provides the chucknorris.io jokes API client used by the
// CLI: three operations returning raw decoded payloads, typed failure kinds,
// and the JSON output helper shared by the commands.
package client

import (
	"encoding/json"
	"io"
)

// WriteJSON writes v to w as two-space-indented JSON followed by a newline.
// HTML escaping is disabled so joke text is reproduced byte-for-byte.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
