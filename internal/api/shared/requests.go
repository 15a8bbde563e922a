package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes bounds the size of request bodies read by DecodeJSON and ReadBody.
const MaxBodyBytes = 1 << 20

var (
	// ErrEmptyBody is returned when a request body is required but absent.
	ErrEmptyBody = errors.New("request body is empty")

	// ErrBodyTooLarge is returned when a request body exceeds MaxBodyBytes.
	ErrBodyTooLarge = errors.New("request body is too large")
)

// DecodeJSON decodes the request body into v. Unknown fields are rejected.
// Bodies larger than MaxBodyBytes fail with ErrBodyTooLarge.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return bodyError(err)
	}
	return nil
}

// ReadBody returns the raw request body.
// Bodies larger than MaxBodyBytes fail with ErrBodyTooLarge.
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", bodyError(err))
	}
	if len(data) == 0 {
		return nil, ErrEmptyBody
	}
	return data, nil
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
	}
	return err
}
