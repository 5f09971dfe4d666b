package models

import "encoding/json"

// OptionalString is a patch field that distinguishes "absent" (Set false)
// from "explicitly null" (Set true, Value nil). UnmarshalJSON only runs for
// fields present in the request body, so Set flips to true exactly when the
// caller supplied the field.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}

// OptionalInt is the integer counterpart of OptionalString.
type OptionalInt struct {
	Set   bool
	Value *int
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}
