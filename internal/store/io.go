package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// errTrailingData is returned when a file holds more than one JSON value.
var errTrailingData = errors.New("unexpected data after JSON value")

// readJSON reads path into out. Unknown fields and anything after the first
// value are rejected so that typos in hand-written package files surface early.
func readJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s: %w", path, errTrailingData)
	}
	return nil
}
