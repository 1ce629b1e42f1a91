package services

import (
	"context"
	"errors"

	"github.com/asif-fahad/b7a12-summer-camp-server-side-asif-fahad/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrClassSelected is returned when a cart document with the same id
// already exists.
var ErrClassSelected = errors.New("class already selected")

type CartService struct {
	collection *mongo.Collection
}

func NewCartService(db *mongo.Database) *CartService {
	return &CartService{collection: db.Collection("carts")}
}

func (s *CartService) CartList(ctx context.Context) ([]models.CartItem, error) {
	return s.find(ctx, bson.D{})
}

// ListForUser returns the cart documents belonging to an email.
func (s *CartService) ListForUser(ctx context.Context, email string) ([]models.CartItem, error) {
	return s.find(ctx, bson.M{"userEmail": email})
}

func (s *CartService) find(ctx context.Context, filter interface{}) ([]models.CartItem, error) {
	cur, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	defer cur.Close(ctx)

	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// Add inserts a cart item keyed by its class id. A second select of the
// same class collides on _id and is rejected.
func (s *CartService) Add(ctx context.Context, item *models.CartItem) (*models.InsertAck, error) {
	err := s.collection.FindOne(ctx, bson.M{"_id": item.ID}).Err()
	if err == nil {
		return nil, ErrClassSelected
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	result, err := s.collection.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}

	return &models.InsertAck{InsertedID: result.InsertedID}, nil
}

// Remove deletes a cart item by id. A missing document reports zero
// deletions rather than an error.
func (s *CartService) Remove(ctx context.Context, id string) (*models.DeleteAck, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return nil, err
	}

	return &models.DeleteAck{DeletedCount: result.DeletedCount}, nil
}
