// Package httpx holds the JSON response and request helpers shared by the
// handlers and the middleware.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// APIError is the body of every error response. Message is meant for people;
// Code is stable for clients.
type APIError struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

const maxBodyBytes = 1 << 20

var ErrEmptyBody = errors.New("request body is empty")

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, e APIError) {
	WriteJSON(w, status, e)
}

// DecodeJSON reads a single JSON value from the request body into v.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if dec.More() {
		return errors.New("invalid JSON body: trailing data")
	}
	return nil
}
