package httpapi

import (
	"encoding/json"
	"net/http"
)

// Renderer turns a response value into bytes. The home page goes through
// it so that an HTML front end can replace the JSON default.
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, status int, v any) error
}

type JSONRenderer struct{}

func (JSONRenderer) Render(w http.ResponseWriter, r *http.Request, status int, v any) error {
	return writeJSON(w, status, v)
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
