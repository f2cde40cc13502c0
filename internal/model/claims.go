package model

import "encoding/json"

// RoleTeacher is the only elevated role; every other role is read-only.
const RoleTeacher = "teacher"

// Claims is the verified payload of an access token. The issuer controls
// which fields it embeds; only Role is required by this service. Everything
// else (uid, email, name, registered claims) lands in Extra untouched.
//
// Claims are re-derived from the token on every request and never persisted.
type Claims struct {
	Role  string
	Extra map[string]any
}

// HasRole reports whether the claim carries exactly the given role.
// Comparison is case-sensitive and there is no role hierarchy.
func (c *Claims) HasRole(role string) bool {
	return c != nil && c.Role == role
}

// MarshalJSON flattens the claim back into the issuer's shape: one object
// with "role" alongside the extra fields.
func (c Claims) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Extra)+1)
	for k, v := range c.Extra {
		out[k] = v
	}
	out["role"] = c.Role
	return json.Marshal(out)
}
