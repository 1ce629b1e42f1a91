package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Class status values. A class is created Pending and moves to Approved or
// Denied by admin action.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusDenied   = "Denied"
)

// Class is a course offering owned by an instructor.
type Class struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Photo      string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Instructor string             `bson:"instructor,omitempty" json:"instructor,omitempty"`
	Email      string             `bson:"email" json:"email"`
	Price      float64            `bson:"price" json:"price"`
	Seats      int                `bson:"seats" json:"seats"`
	Enrolled   int                `bson:"enrolled" json:"enrolled"`
	Status     string             `bson:"status,omitempty" json:"status,omitempty"`
	Feedback   string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
}

// ClassUpdate carries the four instructor-editable fields. Nil means the
// field was absent from the payload and must not be written.
type ClassUpdate struct {
	Price *float64 `json:"price"`
	Name  *string  `json:"name"`
	Seats *int     `json:"seats"`
	Photo *string  `json:"photo"`
}
