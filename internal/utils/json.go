package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// DecodeDocument parses an arbitrary JSON document. Numbers are kept as
// json.Number so that re-encoding reproduces them as written.
func DecodeDocument(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("invalid JSON: trailing data after document")
	}
	return doc, nil
}

func DecodeStrict(data []byte, dst interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}
