package rankings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Encode writes the record as JSON with two space indentation and a
// trailing newline. Names are written as-is (no HTML escaping).
func Encode(w io.Writer, record Record) error {
	if len(record.Rankings) == 0 {
		return ErrEmptyList
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(record)
}

// Decode parses a record previously written by Encode.
func Decode(r io.Reader) (Record, error) {
	var record Record
	err := json.NewDecoder(r).Decode(&record)
	if err != nil {
		return Record{}, err
	}
	if len(record.Rankings) == 0 {
		return Record{}, ErrEmptyList
	}
	return record, nil
}

// WriteFile writes the record to `path`, replacing whatever was there.
func WriteFile(path string, record Record) error {
	var buff bytes.Buffer
	err := Encode(&buff, record)
	if err != nil {
		return fmt.Errorf("encode rankings: %w", err)
	}
	err = os.WriteFile(path, buff.Bytes(), 0644)
	if err != nil {
		return fmt.Errorf("write rankings: %w", err)
	}
	return nil
}

func ReadFile(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, err
	}
	defer f.Close()

	record, err := Decode(f)
	if err != nil {
		return Record{}, fmt.Errorf("read %s: %w", path, err)
	}
	return record, nil
}
