package domain

import (
	"encoding/json"
	"testing"
)

func TestUser_ExtraFieldsRoundTrip(t *testing.T) {
	u := UserFromFields("0001", map[string]any{
		"name":     "Ana",
		"nickname": "annie",
		"age":      float64(30),
	})

	b, err := json.Marshal(u)
	if err != nil {
		t.Fatal(err)
	}

	var back User
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back.ID != "0001" || back.Name != "Ana" {
		t.Fatalf("known fields lost: %+v", back)
	}
	if back.Extra["nickname"] != "annie" || back.Extra["age"] != float64(30) {
		t.Fatalf("extra fields lost: %+v", back.Extra)
	}
}

func TestUserFromFields_IgnoresBodyID(t *testing.T) {
	u := UserFromFields("0001", map[string]any{"name": "Ana", "id": "9999"})
	if u.ID != "0001" {
		t.Fatalf("body id overrode the pinned id: %+v", u)
	}
	if _, ok := u.Extra["id"]; ok {
		t.Fatalf("body id leaked into extras: %+v", u.Extra)
	}
}

func TestHouse_MergeSkipsWrongTypedKnownFields(t *testing.T) {
	h := House{ID: "001", OwnerID: "0001", Address: "1 Main St", City: "Springfield", Country: "USA"}
	h.Merge(map[string]any{"city": 42, "address": "2 Main St", "ownerId": "9999"})

	if h.Address != "2 Main St" {
		t.Fatalf("string field not merged: %+v", h)
	}
	if h.City != "Springfield" {
		t.Fatalf("wrong-typed field overwrote value: %+v", h)
	}
	if h.OwnerID != "0001" {
		t.Fatalf("ownerId is pinned and must not merge: %+v", h)
	}
}

func TestHouse_MarshalKeepsWireFieldNames(t *testing.T) {
	h := House{ID: "001", OwnerID: "0001", Address: "1 Main St", City: "Springfield", Country: "USA"}

	b, err := json.Marshal(h)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"id", "ownerId", "address", "city", "country"} {
		if _, ok := m[k]; !ok {
			t.Fatalf("missing wire field %q in %s", k, b)
		}
	}
}
