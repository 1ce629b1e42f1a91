package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a pending-purchase placeholder linking a student to a class.
// Its _id reuses the selected class's id, which is what makes a second
// select of the same class collide.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	UserEmail  string             `bson:"userEmail" json:"userEmail"`
	Name       string             `bson:"name" json:"name"`
	Photo      string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Instructor string             `bson:"instructor,omitempty" json:"instructor,omitempty"`
	Price      float64            `bson:"price" json:"price"`
}
