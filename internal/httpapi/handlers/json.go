// Package handlers implements the HTTP surface: one handler type per
// resource, each registering its own routes on the chi router.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/dropDatabas3/userhabitat/internal/apierr"
	"github.com/dropDatabas3/userhabitat/internal/httpapi/respond"
)

const maxJSONBody = 1 << 20 // 1MB

// readBody decodes the request body into an open field map. An empty body is
// an empty map so field-presence validation happens in one place, the
// repositories. Returns false after writing the error response when the body
// is not valid JSON.
func readBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	defer r.Body.Close()

	fields := map[string]any{}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&fields); err != nil && err != io.EOF {
		respond.Error(w, apierr.New(http.StatusBadRequest, "Invalid JSON body"))
		return nil, false
	}
	return fields, true
}
