// Package domain defines the persisted record types. Both types carry an
// Extra map so arbitrary caller-supplied fields round-trip opaquely through
// the JSON documents on disk.
package domain

import "encoding/json"

// User is a record in the users collection. ID is a 4-digit zero-padded
// sequential string assigned at creation and immutable afterwards. Name is
// the only field the service validates; anything else the caller sends lives
// in Extra untouched.
type User struct {
	ID    string
	Name  string
	Extra map[string]any
}

// UserFromFields builds a User from a request body, pinning the given id.
// "id" and "name" keys in fields never end up in Extra; an "id" in the body
// is ignored.
func UserFromFields(id string, fields map[string]any) User {
	u := User{ID: id}
	if v, ok := fields["name"].(string); ok {
		u.Name = v
	}
	for k, v := range fields {
		if k == "id" || k == "name" {
			continue
		}
		if u.Extra == nil {
			u.Extra = make(map[string]any)
		}
		u.Extra[k] = v
	}
	return u
}

// Merge applies a partial-update body over the user. Fields present in the
// body replace existing values, fields absent are retained. The id is never
// touched.
func (u *User) Merge(fields map[string]any) {
	if v, ok := fields["name"].(string); ok {
		u.Name = v
	}
	for k, v := range fields {
		if k == "id" || k == "name" {
			continue
		}
		if u.Extra == nil {
			u.Extra = make(map[string]any)
		}
		u.Extra[k] = v
	}
}

func (u User) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(u.Extra)+2)
	for k, v := range u.Extra {
		m[k] = v
	}
	m["id"] = u.ID
	m["name"] = u.Name
	return json.Marshal(m)
}

func (u *User) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	if v, ok := m["id"].(string); ok {
		u.ID = v
	}
	if v, ok := m["name"].(string); ok {
		u.Name = v
	}
	delete(m, "id")
	delete(m, "name")
	if len(m) > 0 {
		u.Extra = m
	} else {
		u.Extra = nil
	}
	return nil
}
