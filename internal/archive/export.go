// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// WriteYAML writes a run, records included, as a YAML document.
func WriteYAML(w io.Writer, run Run) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&run); err != nil {
		return fmt.Errorf("marshaling run %s: %w", run.ID, err)
	}
	return enc.Close()
}

// ReadYAML parses a run written by WriteYAML.
func ReadYAML(r io.Reader) (Run, error) {
	var run Run
	if err := yaml.NewDecoder(r).Decode(&run); err != nil {
		return Run{}, fmt.Errorf("parsing run: %w", err)
	}
	return run, nil
}
