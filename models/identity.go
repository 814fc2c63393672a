package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role distinguishes the two kinds of authenticated callers
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Identity is the authenticated caller of a request. It is either a
// UserIdentity or an AdminIdentity; no other implementations exist.
type Identity interface {
	ID() primitive.ObjectID
	Role() Role
	identity()
}

// UserIdentity is an authenticated end-user
type UserIdentity struct {
	UserID primitive.ObjectID
}

func (u UserIdentity) ID() primitive.ObjectID { return u.UserID }
func (UserIdentity) Role() Role               { return RoleUser }
func (UserIdentity) identity()                {}

// AdminIdentity is an authenticated shop admin
type AdminIdentity struct {
	AdminID primitive.ObjectID
}

func (a AdminIdentity) ID() primitive.ObjectID { return a.AdminID }
func (AdminIdentity) Role() Role               { return RoleAdmin }
func (AdminIdentity) identity()                {}

// NewIdentity builds the variant matching role
func NewIdentity(id primitive.ObjectID, role Role) (Identity, bool) {
	switch role {
	case RoleUser:
		return UserIdentity{UserID: id}, true
	case RoleAdmin:
		return AdminIdentity{AdminID: id}, true
	}
	return nil, false
}
