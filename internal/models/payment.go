package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records one completed purchase. Immutable after insert.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	Date          time.Time          `bson:"date" json:"date"`
	ClassID       string             `bson:"classId" json:"classId"`
	ClassName     string             `bson:"className,omitempty" json:"className,omitempty"`
	// CartItems holds the id of the cart document removed by this purchase.
	CartItems string `bson:"cartItems" json:"cartItems"`
}
