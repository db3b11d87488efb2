package finances

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bobmcallan/finqa/internal/models"
)

// Response is a snapshot of one HTTP exchange.
type Response struct {
	Method     string
	Path       string
	StatusCode int
	Header     http.Header

	body []byte
}

// Body returns a copy of the raw response body.
func (r *Response) Body() []byte {
	return bytes.Clone(r.body)
}

// JSON decodes the body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.body, v); err != nil {
		return fmt.Errorf("decode %s %s response (status %d): %w", r.Method, r.Path, r.StatusCode, err)
	}
	return nil
}

// JSONMap decodes an object body.
func (r *Response) JSONMap() (map[string]any, error) {
	var m map[string]any
	if err := r.JSON(&m); err != nil {
		return nil, err
	}
	return m, nil
}

// JSONList decodes an array body.
func (r *Response) JSONList() ([]any, error) {
	var l []any
	if err := r.JSON(&l); err != nil {
		return nil, err
	}
	return l, nil
}

// APIError decodes a {code, message, details} body.
func (r *Response) APIError() (*models.APIError, error) {
	var e models.APIError
	if err := r.JSON(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

// TokenError decodes a {msg} body.
func (r *Response) TokenError() (*models.TokenError, error) {
	var e models.TokenError
	if err := r.JSON(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Response) String() string {
	return fmt.Sprintf("%s %s -> %d %s", r.Method, r.Path, r.StatusCode, r.body)
}
