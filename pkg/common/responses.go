package common

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body of client-facing 404s
type MessageResponse struct {
	Message string `json:"Message"`
}

// DataResponse wraps a successful payload
type DataResponse struct {
	Data interface{} `json:"data"`
}

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// RespondMessage sends {"Message": message}
func RespondMessage(w http.ResponseWriter, status int, message string) error {
	return RespondJSON(w, status, MessageResponse{Message: message})
}

// RespondData sends {"data": data}
func RespondData(w http.ResponseWriter, status int, data interface{}) error {
	return RespondJSON(w, status, DataResponse{Data: data})
}
