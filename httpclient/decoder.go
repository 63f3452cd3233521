package httpclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// Decoder turns a response body into a value. v is always a non-nil pointer.
type Decoder interface {
	Decode(data []byte, v any) error
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(data []byte, v any) error

// Decode calls f(data, v).
func (f DecoderFunc) Decode(data []byte, v any) error {
	return f(data, v)
}

// JSONDecoder decodes exactly one JSON value.
type JSONDecoder struct {
	// DisallowUnknownFields rejects objects with keys the target does not declare.
	DisallowUnknownFields bool
}

var (
	errTrailingData = errors.New("unexpected data after JSON value")
	errNullValue    = errors.New("JSON value is null")
)

// Decode implements Decoder.
func (d JSONDecoder) Decode(data []byte, v any) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errNullValue
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if d.DisallowUnknownFields {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}
