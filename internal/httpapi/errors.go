package httpapi

import "net/http"

// ErrorResponse is the standard error payload for the API.
type ErrorResponse struct {
    Error  string            `json:"error"`
    Code   string            `json:"code,omitempty"`
    Fields map[string]string `json:"fields,omitempty"`
}

func WriteErr(w http.ResponseWriter, status int, msg, code string) {
    JSON(w, status, ErrorResponse{Error: msg, Code: code})
}

func BadRequest(w http.ResponseWriter, msg string) { WriteErr(w, http.StatusBadRequest, msg, "bad_request") }
func NotFound(w http.ResponseWriter, msg string)   { WriteErr(w, http.StatusNotFound, msg, "not_found") }
func Internal(w http.ResponseWriter, msg string)   { WriteErr(w, http.StatusInternalServerError, msg, "internal") }
func Unprocessable(w http.ResponseWriter, msg string, fields map[string]string) {
    JSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: msg, Code: "validation_error", Fields: fields})
}
func UnsupportedMediaType(w http.ResponseWriter) {
    WriteErr(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "unsupported_media_type")
}
