package services

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// WriteResponse encodes response as JSON and writes it with statusCode.
// A nil response writes the status only.
func WriteResponse(w http.ResponseWriter, statusCode int, response interface{}) {

	if response == nil {
		w.WriteHeader(statusCode)
		return
	}

	// Encode first so a failure can still change the status
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	// We don't want to cache API responses so the client receives most curent data
	w.Header().Set("Cache-Control", "max-age=0")

	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
}
