package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadSchema decodes a JSON Schema document from r.
func ReadSchema(r io.Reader) (*Schema, error) {
	s := &Schema{}
	dec := json.NewDecoder(r)
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("schema: decode document: %w", err)
	}
	return s, nil
}

// ReadSchemaFile reads and decodes the JSON Schema document at path.
func ReadSchemaFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schema: open document: %w", err)
	}
	defer f.Close()
	s, err := ReadSchema(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
