package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is a rating/comment pair for a book. BookID holds the product's
// ISBN (the external identifier), not its ObjectID.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Rating  int                `bson:"rating" json:"rating"`
	Comment string             `bson:"comment" json:"comment"`
	BookID  int64              `bson:"bookId" json:"bookId"`
}
