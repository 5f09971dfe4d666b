package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCustomDateUnmarshal(t *testing.T) {
	var cd CustomDate
	if err := json.Unmarshal([]byte(`"2025-09-01"`), &cd); err != nil {
		t.Fatal(err)
	}
	want := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	if !cd.Time.Equal(want) {
		t.Errorf("got %v, want %v", cd.Time, want)
	}

	var null CustomDate
	if err := json.Unmarshal([]byte(`null`), &null); err != nil {
		t.Fatal(err)
	}
	if !null.Time.IsZero() {
		t.Errorf("null should parse to zero time, got %v", null.Time)
	}

	var bad CustomDate
	if err := json.Unmarshal([]byte(`"01/09/2025"`), &bad); err == nil {
		t.Error("expected error for non ISO date")
	}
}

func TestCustomDateMarshal(t *testing.T) {
	cd := CustomDate{Time: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)}
	out, err := json.Marshal(cd)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `"2025-09-01"` {
		t.Errorf("got %s", out)
	}
}
