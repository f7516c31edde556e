package domain

// Role enumerates marketplace roles.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// UserStatus tracks the seller-upgrade workflow. The zero value means no request was made.
type UserStatus string

const (
	UserStatusUnset     UserStatus = ""
	UserStatusRequested UserStatus = "requested"
	UserStatusVerified  UserStatus = "Verified"
)

// User is a marketplace account keyed by email.
type User struct {
	Email     string     `bson:"email" json:"email"`
	Name      string     `bson:"name,omitempty" json:"name,omitempty"`
	Image     string     `bson:"image,omitempty" json:"image,omitempty"`
	Role      Role       `bson:"role,omitempty" json:"role,omitempty"`
	Status    UserStatus `bson:"status,omitempty" json:"status,omitempty"`
	Timestamp int64      `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
}
