package repository

import (
	"context"
	"errors"
	"time"

	"notes-server/apperrors"
	"notes-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MemberRepositoryInterface interface {
	Insert(member models.Member) (primitive.ObjectID, error)
	FindByID(id primitive.ObjectID) (*models.Member, error)
	FindByEmail(orgID primitive.ObjectID, email string) (*models.Member, error)
	FindByOrgID(orgID primitive.ObjectID) ([]models.Member, error)
}

type MemberRepository struct {
	collection *mongo.Collection
}

func NewMemberRepository(collection *mongo.Collection) *MemberRepository {
	return &MemberRepository{collection: collection}
}

// EnsureIndexes creates the compound unique index on (org_id, email).
// Email is unique per organization, not globally.
func (r *MemberRepository) EnsureIndexes() error {
	_, err := r.collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "org_id", Value: 1}, {Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MemberRepository) Insert(member models.Member) (primitive.ObjectID, error) {
	if member.ID.IsZero() {
		member.ID = primitive.NewObjectID()
	}
	if member.CreatedAt.IsZero() {
		member.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(context.Background(), member)
	if mongo.IsDuplicateKeyError(err) {
		return primitive.NilObjectID, apperrors.ErrMemberAlreadyExists
	}
	if err != nil {
		return primitive.NilObjectID, err
	}
	return member.ID, nil
}

func (r *MemberRepository) FindByID(id primitive.ObjectID) (*models.Member, error) {
	var member models.Member
	err := r.collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&member)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) FindByEmail(orgID primitive.ObjectID, email string) (*models.Member, error) {
	var member models.Member
	filter := bson.M{"org_id": orgID, "email": email}
	err := r.collection.FindOne(context.Background(), filter).Decode(&member)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) FindByOrgID(orgID primitive.ObjectID) ([]models.Member, error) {
	cursor, err := r.collection.Find(context.Background(), bson.M{"org_id": orgID})
	if err != nil {
		return nil, err
	}
	members := []models.Member{}
	if err = cursor.All(context.Background(), &members); err != nil {
		return nil, err
	}
	return members, nil
}
