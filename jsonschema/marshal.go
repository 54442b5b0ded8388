package jsonschema

import (
	json "github.com/goccy/go-json"
)

// MarshalJSON serializes the schema and splices Extensions into the same
// object, so vendor keys like "x-ui" sit next to the standard keywords.
func (s *Schema) MarshalJSON() ([]byte, error) {
	type plain Schema
	base, err := json.Marshal((*plain)(s))
	if err != nil {
		return nil, err
	}
	if len(s.Extensions) == 0 {
		return base, nil
	}
	var merged map[string]any
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range s.Extensions {
		merged[k] = v
	}
	return json.Marshal(merged)
}
