package model

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML emits the canonical full-object shape with sorted sets.
func (f LicenseFinding) MarshalYAML() (any, error) {
	return f.wire(), nil
}

// UnmarshalYAML accepts the same legacy shapes as UnmarshalJSON, dispatching
// on the YAML node kind: a scalar is the bare-string form, a mapping is one
// of the two object forms.
func (f *LicenseFinding) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*f = NewLicenseFinding("", nil, nil)
			return nil
		}
		*f = NewLicenseFinding(node.Value, nil, nil)
		return nil

	case yaml.MappingNode:
		var licNode, locNode, copNode *yaml.Node
		for i := 0; i+1 < len(node.Content); i += 2 {
			switch node.Content[i].Value {
			case "license":
				licNode = node.Content[i+1]
			case "locations":
				locNode = node.Content[i+1]
			case "copyrights":
				copNode = node.Content[i+1]
			}
		}
		if licNode == nil || licNode.Kind != yaml.ScalarNode || licNode.Tag != "!!str" {
			return &DecodeError{Msg: "license field missing or invalid"}
		}
		locations, err := decodeYAMLSet[TextLocation](locNode, "locations")
		if err != nil {
			return err
		}
		copyrights, err := decodeYAMLSet[CopyrightFinding](copNode, "copyrights")
		if err != nil {
			return err
		}
		*f = NewLicenseFinding(licNode.Value, locations, copyrights)
		return nil

	default:
		return &DecodeError{Msg: "license finding has unrecognized shape"}
	}
}

func decodeYAMLSet[T any](node *yaml.Node, field string) ([]T, error) {
	if node == nil || node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, &DecodeError{Msg: field + " is not an array"}
	}
	out := make([]T, 0, len(node.Content))
	for i, e := range node.Content {
		var v T
		if err := e.Decode(&v); err != nil {
			return nil, &DecodeError{Msg: fmt.Sprintf("%s[%d]", field, i), Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

func (l *TextLocation) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Path      *string `yaml:"path"`
		StartLine *int    `yaml:"start_line"`
		EndLine   *int    `yaml:"end_line"`
	}
	if err := node.Decode(&raw); err != nil {
		return &DecodeError{Msg: "location has unrecognized shape", Err: err}
	}
	loc, err := validateLocation(raw.Path, raw.StartLine, raw.EndLine)
	if err != nil {
		return err
	}
	*l = loc
	return nil
}

func (c *CopyrightFinding) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Statement *string       `yaml:"statement"`
		Location  *TextLocation `yaml:"location"`
	}
	if err := node.Decode(&raw); err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			return &DecodeError{Msg: "copyright location", Err: err}
		}
		return &DecodeError{Msg: "copyright finding has unrecognized shape", Err: err}
	}
	if raw.Statement == nil {
		return &DecodeError{Msg: "copyright statement missing"}
	}
	if raw.Location == nil {
		return &DecodeError{Msg: "copyright location missing"}
	}
	*c = CopyrightFinding{Statement: *raw.Statement, Location: *raw.Location}
	return nil
}
