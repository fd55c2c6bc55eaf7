package report

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/report.schema.json
var schemaText string

var snapshotSchema = jsonschema.MustCompileString("report.schema.json", schemaText)

// Write serializes rep with the canonical four-space indentation and writes
// it to path. The document is checked against the snapshot schema before
// anything touches the filesystem.
func Write(path string, rep *Report) error {
	data, err := json.MarshalIndent(rep, "", "    ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := validate(data); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

// Load reads a previously exported snapshot, rejecting files that do not
// match the snapshot schema.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	if err := validate(data); err != nil {
		return nil, err
	}
	var rep Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	rep.restoreVerdict()
	return &rep, nil
}

func validate(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode report: %w", err)
	}
	if err := snapshotSchema.Validate(doc); err != nil {
		return fmt.Errorf("report schema: %w", err)
	}
	return nil
}
