package domain

import "errors"

const RoleAdmin = "admin"

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("you do not have access to make admin")

// User is a portal account. Email is the natural key.
type User struct {
	ID          string `json:"_id,omitempty" bson:"_id,omitempty"`
	Email       string `json:"email" bson:"email"`
	DisplayName string `json:"displayName,omitempty" bson:"displayName,omitempty"`
	Role        string `json:"role,omitempty" bson:"role,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
