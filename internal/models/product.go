package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product represents a book in the catalog.
// ISBN is the external identifier used by reviews and public lookups;
// internal references (order line items) use the ObjectID.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ISBN        int64              `bson:"ISBN" json:"ISBN"`
	Title       string             `bson:"bookTitle" json:"bookTitle"`
	Publisher   string             `bson:"publisher" json:"publisher"`
	Author      string             `bson:"author" json:"author"`
	PageCount   int                `bson:"pageCount" json:"pageCount"`
	Weight      string             `bson:"bookWeight" json:"bookWeight"`
	Price       int64              `bson:"price" json:"price"`
	Description string             `bson:"description" json:"description"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`
	Catalog     string             `bson:"catalog" json:"catalog"`
	SoldCount   int                `bson:"soldCount" json:"soldCount"`
	Stock       int                `bson:"stock" json:"stock"`
}
