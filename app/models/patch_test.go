package models

import (
	"encoding/json"
	"testing"
)

func TestOptionalStringAbsentNullValue(t *testing.T) {
	type body struct {
		Department OptionalString `json:"department"`
	}

	var absent body
	if err := json.Unmarshal([]byte(`{}`), &absent); err != nil {
		t.Fatal(err)
	}
	if absent.Department.Set {
		t.Error("absent field should not be marked set")
	}

	var null body
	if err := json.Unmarshal([]byte(`{"department": null}`), &null); err != nil {
		t.Fatal(err)
	}
	if !null.Department.Set || null.Department.Value != nil {
		t.Errorf("explicit null should be set with nil value, got set=%v value=%v",
			null.Department.Set, null.Department.Value)
	}

	var present body
	if err := json.Unmarshal([]byte(`{"department": "Physics"}`), &present); err != nil {
		t.Fatal(err)
	}
	if !present.Department.Set || present.Department.Value == nil || *present.Department.Value != "Physics" {
		t.Errorf("present field should be set with its value, got set=%v value=%v",
			present.Department.Set, present.Department.Value)
	}
}

func TestOptionalIntAbsentNullValue(t *testing.T) {
	type body struct {
		Year OptionalInt `json:"year"`
	}

	var absent body
	if err := json.Unmarshal([]byte(`{}`), &absent); err != nil {
		t.Fatal(err)
	}
	if absent.Year.Set {
		t.Error("absent field should not be marked set")
	}

	var null body
	if err := json.Unmarshal([]byte(`{"year": null}`), &null); err != nil {
		t.Fatal(err)
	}
	if !null.Year.Set || null.Year.Value != nil {
		t.Error("explicit null should be set with nil value")
	}

	var present body
	if err := json.Unmarshal([]byte(`{"year": 3}`), &present); err != nil {
		t.Fatal(err)
	}
	if !present.Year.Set || present.Year.Value == nil || *present.Year.Value != 3 {
		t.Error("present field should be set with its value")
	}
}
