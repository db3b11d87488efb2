package twin

import (
	"encoding/json"
	"io"
	"net/http"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// DecodeJSON reads and decodes JSON from the request body into v. An empty
// body leaves v untouched and is not an error: the handlers report missing
// fields with their own error names.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// decode reads the request body into v. A body that is not valid JSON for v
// is answered with invalid_json and decode reports false.
func (t *Twin) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := DecodeJSON(r, v); err != nil {
		t.logger.Debug().Err(err).Str("path", r.URL.Path).Msg("Rejected request body")
		t.catalog.Write(w, errInvalidJSON)
		return false
	}
	return true
}

// writeInternalError answers 500 in the {code, message, details} shape.
func writeInternalError(w http.ResponseWriter, err error) {
	WriteJSON(w, http.StatusInternalServerError, map[string]any{
		"code":    "INTERNAL_SERVER_ERROR",
		"message": err.Error(),
		"details": []string{},
	})
}
