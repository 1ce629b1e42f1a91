package services

import (
	"context"

	"github.com/asif-fahad/b7a12-summer-camp-server-side-asif-fahad/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PopularLimit caps the popular-classes listing.
const PopularLimit = 6

type ClassService struct {
	collection *mongo.Collection
}

func NewClassService(db *mongo.Database) *ClassService {
	return &ClassService{collection: db.Collection("classes")}
}

func (s *ClassService) ClassList(ctx context.Context) ([]models.Class, error) {
	return s.find(ctx, bson.D{}, nil)
}

func (s *ClassService) ApprovedList(ctx context.Context) ([]models.Class, error) {
	return s.find(ctx, bson.M{"status": models.StatusApproved}, nil)
}

// PopularList returns the approved classes with the highest enrollment.
func (s *ClassService) PopularList(ctx context.Context) ([]models.Class, error) {
	opts := options.Find().
		SetSort(bson.M{"enrolled": -1}).
		SetLimit(PopularLimit)
	return s.find(ctx, bson.M{"status": models.StatusApproved}, opts)
}

// ListByInstructor returns the classes owned by the instructor's email.
func (s *ClassService) ListByInstructor(ctx context.Context, email string) ([]models.Class, error) {
	return s.find(ctx, bson.M{"email": email}, nil)
}

func (s *ClassService) find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Class, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = s.collection.Find(ctx, filter, opts)
	} else {
		cur, err = s.collection.Find(ctx, filter)
	}
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

func (s *ClassService) Create(ctx context.Context, class *models.Class) (*models.InsertAck, error) {
	class.ID = primitive.NewObjectID()

	result, err := s.collection.InsertOne(ctx, class)
	if err != nil {
		return nil, err
	}

	return &models.InsertAck{InsertedID: result.InsertedID.(primitive.ObjectID).Hex()}, nil
}

func (s *ClassService) SetStatus(ctx context.Context, id, status string) (*models.UpdateAck, error) {
	return s.setFields(ctx, id, bson.M{"status": status})
}

func (s *ClassService) SetFeedback(ctx context.Context, id, feedback string) (*models.UpdateAck, error) {
	return s.setFields(ctx, id, bson.M{"feedback": feedback})
}

// UpdateDetails writes only the fields present in the payload; absent fields
// are left untouched.
func (s *ClassService) UpdateDetails(ctx context.Context, id string, update models.ClassUpdate) (*models.UpdateAck, error) {
	set := bson.M{}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Seats != nil {
		set["seats"] = *update.Seats
	}
	if update.Photo != nil {
		set["photo"] = *update.Photo
	}

	return s.setFields(ctx, id, set)
}

func (s *ClassService) setFields(ctx context.Context, id string, set bson.M) (*models.UpdateAck, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}

	return &models.UpdateAck{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}
