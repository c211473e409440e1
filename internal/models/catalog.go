package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Catalog represents a book genre grouping. Products reference a catalog
// by its GenreID code rather than by ObjectID.
type Catalog struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GenreID string             `bson:"genreID" json:"genreID"`
	Name    string             `bson:"genre2nd" json:"genre2nd"`
}
