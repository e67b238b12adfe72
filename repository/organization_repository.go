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

type OrganizationRepositoryInterface interface {
	Insert(org models.Organization) (primitive.ObjectID, error)
	FindByID(id primitive.ObjectID) (*models.Organization, error)
	FindByName(name string) (*models.Organization, error)
	FindAll() ([]models.Organization, error)
}

type OrganizationRepository struct {
	collection *mongo.Collection
}

func NewOrganizationRepository(collection *mongo.Collection) *OrganizationRepository {
	return &OrganizationRepository{collection: collection}
}

// EnsureIndexes creates the unique index on name. The index is the real
// enforcer of name uniqueness; the service pre-check is only advisory.
func (r *OrganizationRepository) EnsureIndexes() error {
	_, err := r.collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *OrganizationRepository) Insert(org models.Organization) (primitive.ObjectID, error) {
	if org.ID.IsZero() {
		org.ID = primitive.NewObjectID()
	}
	if org.CreatedAt.IsZero() {
		org.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(context.Background(), org)
	if mongo.IsDuplicateKeyError(err) {
		return primitive.NilObjectID, apperrors.ErrOrganizationAlreadyExists
	}
	if err != nil {
		return primitive.NilObjectID, err
	}
	return org.ID, nil
}

func (r *OrganizationRepository) FindByID(id primitive.ObjectID) (*models.Organization, error) {
	var org models.Organization
	err := r.collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&org)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) FindByName(name string) (*models.Organization, error) {
	var org models.Organization
	err := r.collection.FindOne(context.Background(), bson.M{"name": name}).Decode(&org)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) FindAll() ([]models.Organization, error) {
	cursor, err := r.collection.Find(context.Background(), bson.M{})
	if err != nil {
		return nil, err
	}
	orgs := []models.Organization{}
	if err = cursor.All(context.Background(), &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}
