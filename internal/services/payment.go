package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/asif-fahad/b7a12-summer-camp-server-side-asif-fahad/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNoSeats is returned when the purchased class has no seats left.
var ErrNoSeats = errors.New("no seats available")

// PaymentService records purchases. A purchase spans three collections, so
// the service holds the database rather than a single collection.
type PaymentService struct {
	db *mongo.Database
}

func NewPaymentService(db *mongo.Database) *PaymentService {
	return &PaymentService{db: db}
}

// PaymentsByEmail returns a student's payment history, newest first.
func (s *PaymentService) PaymentsByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cur, err := s.db.Collection("payment").Find(ctx, bson.M{"email": email},
		options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		return nil, err
	}

	var payments []models.Payment
	defer cur.Close(ctx)

	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}

	return payments, nil
}

// Record persists a purchase: insert the payment, take one seat on the
// class, drop the cart entry. The seat update is guarded by seats > 0; when
// it matches nothing the inserted payment is removed again and ErrNoSeats is
// returned. The cart delete runs last and its count is reported as-is.
func (s *PaymentService) Record(ctx context.Context, payment *models.Payment) (*models.PaymentAck, error) {
	classID, err := primitive.ObjectIDFromHex(payment.ClassID)
	if err != nil {
		return nil, fmt.Errorf("invalid classId: %w", err)
	}
	cartID, err := primitive.ObjectIDFromHex(payment.CartItems)
	if err != nil {
		return nil, fmt.Errorf("invalid cartItems: %w", err)
	}

	payment.ID = primitive.NewObjectID()
	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}

	_, err = s.db.Collection("payment").InsertOne(ctx, payment)
	if err != nil {
		return nil, err
	}

	seatFilter := bson.M{"_id": classID, "seats": bson.M{"$gt": 0}}
	updateSeats, err := s.db.Collection("classes").UpdateOne(ctx, seatFilter, bson.M{
		"$inc": bson.M{"seats": -1, "enrolled": 1},
	})
	if err == nil && updateSeats.MatchedCount == 0 {
		err = ErrNoSeats
	}
	if err != nil {
		// Undo the payment insert so a sold-out class leaves no record.
		if _, derr := s.db.Collection("payment").DeleteOne(ctx, bson.M{"_id": payment.ID}); derr != nil {
			log.Printf("Failed to compensate payment %s: %v", payment.ID.Hex(), derr)
		}
		return nil, err
	}

	deleteResult, err := s.db.Collection("carts").DeleteOne(ctx, bson.M{"_id": cartID})
	if err != nil {
		return nil, err
	}

	return &models.PaymentAck{
		InsertResult: models.InsertAck{InsertedID: payment.ID.Hex()},
		UpdateSeats:  models.UpdateAck{MatchedCount: updateSeats.MatchedCount, ModifiedCount: updateSeats.ModifiedCount},
		DeleteResult: models.DeleteAck{DeletedCount: deleteResult.DeletedCount},
	}, nil
}

// EnrolledClasses returns the classes referenced by a student's payments.
func (s *PaymentService) EnrolledClasses(ctx context.Context, email string) ([]models.Class, error) {
	payments, err := s.PaymentsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	classIDs := make([]primitive.ObjectID, 0, len(payments))
	for _, p := range payments {
		objID, err := primitive.ObjectIDFromHex(p.ClassID)
		if err != nil {
			log.Printf("Skipping payment %s with bad classId %q", p.ID.Hex(), p.ClassID)
			continue
		}
		classIDs = append(classIDs, objID)
	}

	cur, err := s.db.Collection("classes").Find(ctx, bson.M{"_id": bson.M{"$in": classIDs}})
	if err != nil {
		return nil, err
	}

	var classes []models.Class
	defer cur.Close(ctx)

	if err := cur.All(ctx, &classes); err != nil {
		return nil, err
	}

	return classes, nil
}
