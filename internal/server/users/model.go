package users

import "encoding/json"

// IDKey is the reserved identifier field. It is assigned by the
// repository at creation time and is never taken from caller input.
const IDKey = "id"

// User is a single registered-user record.
//
// Records are schema-free: the durable JSON contract allows arbitrary
// extra fields, and partial updates may merge unknown keys, so the
// record is a field map rather than a fixed struct. The well-known
// keys are id, fullName, email, phone and password.
type User map[string]any

// ID returns the record identifier, coercing the numeric forms that
// encoding/json can produce. ok is false when the field is absent or
// not a number.
func (u User) ID() (int64, bool) {
	switch v := u[IDKey].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// Clone returns a shallow copy of the record.
func (u User) Clone() User {
	c := make(User, len(u))
	for k, v := range u {
		c[k] = v
	}
	return c
}

// Merge returns a copy of u with fields overlaid on top: keys present
// in fields overwrite, absent keys keep their current value. The
// identifier is never taken from the overlay.
func (u User) Merge(fields map[string]any) User {
	merged := u.Clone()
	for k, v := range fields {
		if k == IDKey {
			continue
		}
		merged[k] = v
	}
	return merged
}
