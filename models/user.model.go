package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an end-user who browses shops and books services
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"`
}

// Admin represents a shop operator. An admin owns at most one shop.
type Admin struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"`
}

// UserSummary is the public projection of a user embedded in other views
type UserSummary struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email,omitempty"`
}

// AccountInfo is returned alongside a token after registration or login
type AccountInfo struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
	Role Role               `json:"role"`
}

// AuthResponse is the body returned by the register and login endpoints
type AuthResponse struct {
	Token string      `json:"token"`
	User  AccountInfo `json:"user"`
}
