package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
)

// Envelope wraps every successful response body.
type Envelope struct {
	Data interface{} `json:"data"`
	Meta interface{} `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondData(w http.ResponseWriter, status int, data interface{}) {
	respondJSON(w, status, Envelope{Data: data})
}

func respondDataMeta(w http.ResponseWriter, status int, data, meta interface{}) {
	respondJSON(w, status, Envelope{Data: data, Meta: meta})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: "",
	})
}
