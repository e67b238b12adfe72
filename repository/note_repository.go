package repository

import (
	"context"
	"errors"
	"time"

	"notes-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type NoteRepositoryInterface interface {
	Insert(note models.Note) (primitive.ObjectID, error)
	FindByID(id primitive.ObjectID) (*models.Note, error)
	FindByOrgID(orgID primitive.ObjectID) ([]models.Note, error)
	DeleteByID(id primitive.ObjectID) error
}

type NoteRepository struct {
	collection *mongo.Collection
}

func NewNoteRepository(collection *mongo.Collection) *NoteRepository {
	return &NoteRepository{collection: collection}
}

func (r *NoteRepository) Insert(note models.Note) (primitive.ObjectID, error) {
	if note.ID.IsZero() {
		note.ID = primitive.NewObjectID()
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(context.Background(), note)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return note.ID, nil
}

func (r *NoteRepository) FindByID(id primitive.ObjectID) (*models.Note, error) {
	var note models.Note
	err := r.collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&note)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepository) FindByOrgID(orgID primitive.ObjectID) ([]models.Note, error) {
	cursor, err := r.collection.Find(context.Background(), bson.M{"org_id": orgID})
	if err != nil {
		return nil, err
	}
	notes := []models.Note{}
	if err = cursor.All(context.Background(), &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NoteRepository) DeleteByID(id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(context.Background(), bson.M{"_id": id})
	return err
}
