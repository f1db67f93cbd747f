package v1

import (
    "net/http"
    "strings"

    base "github.com/tinoosan/employees/internal/httpapi"
)

// requireJSON ensures the request has Content-Type application/json (optionally with params).
// Writes 415 if not JSON and returns false; otherwise returns true.
func requireJSON(w http.ResponseWriter, r *http.Request) bool {
    ct := r.Header.Get("Content-Type")
    if ct == "" { base.UnsupportedMediaType(w); return false }
    mime := strings.ToLower(strings.TrimSpace(strings.Split(ct, ";")[0]))
    if mime != "application/json" { base.UnsupportedMediaType(w); return false }
    return true
}
