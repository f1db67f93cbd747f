// Package httpapi holds the response helpers shared by every API version.
package httpapi

import (
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "net/http"
)

// MaxBodyBytes caps request bodies accepted by DecodeJSON.
const MaxBodyBytes = 1 << 20

// JSON writes a JSON response with status code.
func JSON(w http.ResponseWriter, status int, v any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    _ = json.NewEncoder(w).Encode(v)
}

// DecodeJSON strictly decodes a single JSON object from the request body into dst.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
    dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
    dec.DisallowUnknownFields()
    if err := dec.Decode(dst); err != nil {
        if errors.Is(err, io.EOF) { return errors.New("empty body") }
        return err
    }
    if dec.More() {
        return fmt.Errorf("unexpected data after JSON object")
    }
    return nil
}
