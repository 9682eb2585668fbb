package models

// Identity is the minimal projection of an authenticated caller.
// It never carries credentials.
type Identity struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Owns reports whether the caller is the owner of the record with the given id.
func (i Identity) Owns(id string) bool {
	return i.ID != "" && i.ID == id
}
