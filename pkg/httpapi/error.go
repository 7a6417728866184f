// Package httpapi holds the JSON response helpers shared by every API
// controller: one success writer and one error writer emitting the fixed
// error envelope.
package httpapi

import (
	"encoding/json"
	"net/http"
)

// ErrorEnvelope is the wire shape of every API error. Code is a stable
// machine-readable identifier (BUSINESS_NOT_FOUND, INVALID_PAYLOAD, ...);
// Meta carries optional per-error context such as the request path.
type ErrorEnvelope struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Meta    map[string]string `json:"meta,omitempty"`
}

// WriteJSON serializes payload before touching the ResponseWriter, so a
// marshalling failure never leaks a half-written body behind a success
// status. A nil payload writes the status line only.
func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return nil
	}
	if payload == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		return nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(body)
	return err
}

// WriteError writes the error envelope with the given status.
func WriteError(w http.ResponseWriter, status int, code, message string, meta map[string]string) error {
	return WriteJSON(w, status, &ErrorEnvelope{
		Code:    code,
		Message: message,
		Meta:    meta,
	})
}
