package presentation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// SnapshotSchema is the JSON schema applied to raw publish-state payloads
// before they are decoded into a Snapshot. Every facet is required on the
// wire; the defaulting escape hatch lives on Snapshot.WithDefaults, not here.
var SnapshotSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"ready":           map[string]any{"type": "boolean"},
		"live":            map[string]any{"type": "boolean"},
		"warnings":        map[string]any{"type": "boolean"},
		"errors":          map[string]any{"type": "boolean"},
		"staff_only":      map[string]any{"type": "boolean"},
		"hidden_from_toc": map[string]any{"type": "boolean"},
		"gated":           map[string]any{"type": "boolean"},
		"scheduled":       map[string]any{"type": "boolean"},
	},
	"required": []string{
		"ready", "live", "warnings", "errors",
		"staff_only", "hidden_from_toc", "gated", "scheduled",
	},
	"additionalProperties": false,
}

// ValidateSnapshotPayload validates a raw payload against SnapshotSchema.
func ValidateSnapshotPayload(payload map[string]any) error {
	if payload == nil {
		payload = map[string]any{}
	}
	compiled, err := compileSnapshotSchema()
	if err != nil {
		return err
	}
	if err := compiled.Validate(payload); err != nil {
		return &PayloadValidationError{
			Issues: collectValidationIssues(err),
			Cause:  err,
		}
	}
	return nil
}

// SnapshotFromPayload validates and decodes a raw payload into a Snapshot.
func SnapshotFromPayload(payload map[string]any) (Snapshot, error) {
	if err := ValidateSnapshotPayload(payload); err != nil {
		return Snapshot{}, err
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return Snapshot{}, &PayloadValidationError{Cause: err}
	}
	var snapshot Snapshot
	if err := json.Unmarshal(encoded, &snapshot); err != nil {
		return Snapshot{}, &PayloadValidationError{Cause: err}
	}
	return snapshot, nil
}

func compileSnapshotSchema() (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(SnapshotSchema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("snapshot.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("snapshot.json")
}

func collectValidationIssues(err error) []ValidationIssue {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) || validationErr == nil {
		return []ValidationIssue{{Message: err.Error()}}
	}

	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(validationErr)
	return issues
}
