package services

import (
	"context"
	"errors"

	"github.com/asif-fahad/b7a12-summer-camp-server-side-asif-fahad/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrUserExists is returned when a user with the same email already exists.
var ErrUserExists = errors.New("user already exists")

type UserService struct {
	collection *mongo.Collection
}

func NewUserService(db *mongo.Database) *UserService {
	return &UserService{collection: db.Collection("users")}
}

// CreateIfAbsent inserts the user unless a document with the same email
// already exists.
func (s *UserService) CreateIfAbsent(ctx context.Context, user *models.User) (string, error) {
	err := s.collection.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return "", ErrUserExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	user.ID = primitive.NewObjectID()
	result, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *UserService) UserList(ctx context.Context) ([]models.User, error) {
	cur, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var users []models.User
	defer cur.Close(ctx)

	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (s *UserService) InstructorList(ctx context.Context) ([]models.User, error) {
	cur, err := s.collection.Find(ctx, bson.M{"role": models.RoleInstructor})
	if err != nil {
		return nil, err
	}

	var users []models.User
	defer cur.Close(ctx)

	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// RoleForEmail returns the stored role for an email. Unknown users and users
// without a role default to Student.
func (s *UserService) RoleForEmail(ctx context.Context, email string) (string, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.RoleStudent, nil
	}
	if err != nil {
		return "", err
	}

	if user.Role == "" {
		return models.RoleStudent, nil
	}
	return user.Role, nil
}

// SetRole promotes the user with the given id to the given role.
func (s *UserService) SetRole(ctx context.Context, id, role string) (*models.UpdateAck, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{
		"$set": bson.M{"role": role},
	})
	if err != nil {
		return nil, err
	}

	return &models.UpdateAck{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}
