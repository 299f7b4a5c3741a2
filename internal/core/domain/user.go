package domain

// Role tags a user with the set of gated routes it may call.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCommittee Role = "committee"
	RoleFinance   Role = "finance"
	RoleSuper     Role = "super"
	RoleAllocator Role = "allocator"
)

// User models a carnival account. Token is the single live session
// credential; it is empty until the first login and replaced on every login.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Token        string
	Role         Role
}

// HasToken reports whether the user has logged in at least once.
func (u *User) HasToken() bool {
	return u != nil && u.Token != ""
}
