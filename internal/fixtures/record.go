package fixtures

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

const profilesKey = "profiles"

// Record is one tagged fixture. Its data fields are kept as raw JSON and
// decoded on demand.
type Record struct {
	Root     string
	Profiles []string
	fields   map[string]json.RawMessage
}

func newRecord(root string, obj map[string]json.RawMessage) (Record, error) {
	raw, ok := obj[profilesKey]
	if !ok {
		return Record{}, errors.New("record has no profiles")
	}
	var profiles []string
	if err := json.Unmarshal(raw, &profiles); err != nil {
		return Record{}, fmt.Errorf("profiles must be an array of strings: %w", err)
	}
	if len(profiles) == 0 {
		return Record{}, errors.New("record has an empty profile set")
	}

	fields := make(map[string]json.RawMessage, len(obj)-1)
	for k, v := range obj {
		if k != profilesKey {
			fields[k] = v
		}
	}
	return Record{Root: root, Profiles: profiles, fields: fields}, nil
}

// HasAll reports whether the record carries every tag.
func (r Record) HasAll(tags ...string) bool {
	for _, tag := range tags {
		if !slices.Contains(r.Profiles, tag) {
			return false
		}
	}
	return true
}

// Has reports whether the record defines field key.
func (r Record) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

// String returns field key as a string, or "" when absent or not a string.
func (r Record) String(key string) string {
	var s string
	if raw, ok := r.fields[key]; ok {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}

// Fields returns a copy of the data fields, without profiles.
func (r Record) Fields() map[string]any {
	out := make(map[string]any, len(r.fields))
	for k, raw := range r.fields {
		var v any
		if err := json.Unmarshal(raw, &v); err == nil {
			out[k] = v
		}
	}
	return out
}

// Decode unmarshals the record's data fields into v.
func (r Record) Decode(v any) error {
	data, err := json.Marshal(r.fields)
	if err != nil {
		return fmt.Errorf("encode %s fixture: %w", r.Root, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s fixture: %w", r.Root, err)
	}
	return nil
}
