package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role values stored on a user document. An absent role means Student.
const (
	RoleAdmin      = "Admin"
	RoleInstructor = "Instructor"
	RoleStudent    = "Student"
)

// User model
type User struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Photo   string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role    string             `bson:"role,omitempty" json:"role,omitempty"`
	Gender  string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Phone   string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string             `bson:"address,omitempty" json:"address,omitempty"`
}
