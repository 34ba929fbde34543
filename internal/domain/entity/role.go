package entity

// Role represents the kind of account a credential belongs to.
// The role is determined by which table the record lives in, not by a column.
type Role string

const (
	// RoleAstrologer indicates a consulting astrologer account.
	RoleAstrologer Role = "astrologer"
	// RoleClient indicates a regular client account (the 'users' table).
	RoleClient Role = "user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAstrologer, RoleClient:
		return true
	default:
		return false
	}
}
