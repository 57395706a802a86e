// Package respond writes API responses in the service's uniform shape:
// success payloads as plain JSON, failures as {"code": <status>, "message": "..."}
// with the code mirrored in the HTTP status.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dropDatabas3/userhabitat/internal/apierr"
)

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// NoContent writes a bodyless 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error maps a typed API failure to the wire. Anything that is not an
// *apierr.Error becomes an opaque 500.
func Error(w http.ResponseWriter, err error) {
	var ae *apierr.Error
	if !errors.As(err, &ae) {
		ae = apierr.New(http.StatusInternalServerError, "Unexpected error")
	}
	JSON(w, ae.Status(), ae)
}
