package domain

import "encoding/json"

// House is a record in the houses collection. ID is a 3-digit zero-padded
// sequential string drawn from a counter global to all owners. OwnerID
// references a User.ID, is set from the request path at creation and is
// immutable afterwards, even on full replace.
type House struct {
	ID      string
	OwnerID string
	Address string
	City    string
	Country string
	Extra   map[string]any
}

// HouseFromFields builds a House from a request body, pinning id and ownerId.
// "id"/"ownerId" keys in the body are ignored.
func HouseFromFields(id, ownerID string, fields map[string]any) House {
	h := House{ID: id, OwnerID: ownerID}
	h.Merge(fields)
	return h
}

// Merge applies a partial-update body over the house. The three core fields
// are only taken when string-typed; any other key goes to Extra as-is.
// id and ownerId are never touched.
func (h *House) Merge(fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "id", "ownerId":
			// pinned
		case "address":
			if s, ok := v.(string); ok {
				h.Address = s
			}
		case "city":
			if s, ok := v.(string); ok {
				h.City = s
			}
		case "country":
			if s, ok := v.(string); ok {
				h.Country = s
			}
		default:
			if h.Extra == nil {
				h.Extra = make(map[string]any)
			}
			h.Extra[k] = v
		}
	}
}

func (h House) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(h.Extra)+5)
	for k, v := range h.Extra {
		m[k] = v
	}
	m["id"] = h.ID
	m["ownerId"] = h.OwnerID
	m["address"] = h.Address
	m["city"] = h.City
	m["country"] = h.Country
	return json.Marshal(m)
}

func (h *House) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	take := func(key string, dst *string) {
		if v, ok := m[key].(string); ok {
			*dst = v
		}
		delete(m, key)
	}
	take("id", &h.ID)
	take("ownerId", &h.OwnerID)
	take("address", &h.Address)
	take("city", &h.City)
	take("country", &h.Country)
	if len(m) > 0 {
		h.Extra = m
	} else {
		h.Extra = nil
	}
	return nil
}
