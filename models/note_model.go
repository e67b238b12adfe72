package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Note struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Org       Ref[Organization]  `bson:"org_id" json:"org_id"`
	Author    Ref[Member]        `bson:"author_id" json:"author_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
