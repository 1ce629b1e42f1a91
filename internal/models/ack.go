package models

// Store acknowledgements returned to clients, shaped like the driver's
// raw results so existing frontends keep working.

type InsertAck struct {
	InsertedID interface{} `json:"insertedId"`
}

type UpdateAck struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteAck struct {
	DeletedCount int64 `json:"deletedCount"`
}

// PaymentAck combines the three sub-results of recording a purchase.
type PaymentAck struct {
	InsertResult InsertAck `json:"insertResult"`
	UpdateSeats  UpdateAck `json:"updateSeats"`
	DeleteResult DeleteAck `json:"deleteResult"`
}
