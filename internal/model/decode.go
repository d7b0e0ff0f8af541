package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DecodeError reports a malformed or incomplete serialized finding. It is
// fatal to decoding that single finding; the decoder never substitutes a
// default for a required field. Msg carries enough positional context (field
// name, element index) to locate the bad record.
type DecodeError struct {
	Msg string
	Err error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

// licenseFindingWire is the canonical serialized shape: the only shape ever
// produced on output. Sets are emitted sorted and as arrays, never null.
type licenseFindingWire struct {
	License    string             `json:"license" yaml:"license"`
	Locations  []TextLocation     `json:"locations" yaml:"locations"`
	Copyrights []CopyrightFinding `json:"copyrights" yaml:"copyrights"`
}

func (f LicenseFinding) wire() licenseFindingWire {
	w := licenseFindingWire{
		License:    f.license,
		Locations:  f.locations,
		Copyrights: f.copyrights,
	}
	if w.Locations == nil {
		w.Locations = []TextLocation{}
	}
	if w.Copyrights == nil {
		w.Copyrights = []CopyrightFinding{}
	}
	return w
}

// MarshalJSON emits the canonical full-object shape with sorted sets.
func (f LicenseFinding) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.wire())
}

// UnmarshalJSON reconstructs a finding from any shape the system has ever
// persisted. Shapes are probed in priority order:
//
//  1. a bare string (or null) is the license alone, with empty sets;
//  2. an object carries a required "license" plus optional "copyrights"
//     and "locations" sets, each defaulting to empty when absent.
//
// Field order in the source never matters, and a malformed element inside a
// set fails the whole finding with its index.
func (f *LicenseFinding) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = NewLicenseFinding(s, nil, nil)
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return &DecodeError{Msg: "license finding has unrecognized shape", Err: err}
	}

	var license *string
	if raw, ok := fields["license"]; ok {
		if err := json.Unmarshal(raw, &license); err != nil {
			return &DecodeError{Msg: "license field missing or invalid", Err: err}
		}
	}
	if license == nil {
		return &DecodeError{Msg: "license field missing or invalid"}
	}

	locations, err := decodeJSONSet[TextLocation](fields["locations"], "locations")
	if err != nil {
		return err
	}
	copyrights, err := decodeJSONSet[CopyrightFinding](fields["copyrights"], "copyrights")
	if err != nil {
		return err
	}

	*f = NewLicenseFinding(*license, locations, copyrights)
	return nil
}

// decodeJSONSet decodes an optional set-valued field. Absent or null means
// empty; a present-but-empty array is an empty set, not an error. Element
// failures carry the field name and index.
func decodeJSONSet[T any](raw json.RawMessage, field string) ([]T, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, &DecodeError{Msg: field + " is not an array", Err: err}
	}
	out := make([]T, 0, len(elems))
	for i, e := range elems {
		var v T
		if err := json.Unmarshal(e, &v); err != nil {
			return nil, &DecodeError{Msg: fmt.Sprintf("%s[%d]", field, i), Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

// UnmarshalJSON requires path and a valid line range.
func (l *TextLocation) UnmarshalJSON(data []byte) error {
	var raw struct {
		Path      *string `json:"path"`
		StartLine *int    `json:"start_line"`
		EndLine   *int    `json:"end_line"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return &DecodeError{Msg: "location has unrecognized shape", Err: err}
	}
	loc, err := validateLocation(raw.Path, raw.StartLine, raw.EndLine)
	if err != nil {
		return err
	}
	*l = loc
	return nil
}

// UnmarshalJSON requires statement and a valid location.
func (c *CopyrightFinding) UnmarshalJSON(data []byte) error {
	var raw struct {
		Statement *string       `json:"statement"`
		Location  *TextLocation `json:"location"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
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
