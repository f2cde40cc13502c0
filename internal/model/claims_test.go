package model

import (
	"encoding/json"
	"testing"
)

func TestClaimsMarshalFlattens(t *testing.T) {
	t.Parallel()

	claims := Claims{
		Role: "teacher",
		Extra: map[string]any{
			"uid":  "u-9",
			"name": "R. Chowdhury",
		},
	}

	raw, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out["role"] != "teacher" {
		t.Errorf("role = %v, want teacher", out["role"])
	}
	if out["uid"] != "u-9" {
		t.Errorf("uid = %v, want u-9", out["uid"])
	}
	if len(out) != 3 {
		t.Errorf("marshalled %d fields, want 3: %v", len(out), out)
	}
}

func TestHasRole(t *testing.T) {
	t.Parallel()

	c := &Claims{Role: "teacher"}
	if !c.HasRole("teacher") {
		t.Error("HasRole(teacher) = false, want true")
	}
	if c.HasRole("Teacher") {
		t.Error("HasRole is case-insensitive, want exact match")
	}
	if (*Claims)(nil).HasRole("teacher") {
		t.Error("nil claims should not have any role")
	}
}
