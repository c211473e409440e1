package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserRole enumerates account roles.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// User represents a customer or admin account. PasswordHash holds a bcrypt
// hash; the raw credential is never stored.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string             `bson:"fullName" json:"fullName"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	PhoneNumber  string             `bson:"phoneNumber" json:"phoneNumber"`
	Address      string             `bson:"address" json:"address"`
	Role         UserRole           `bson:"role" json:"role"`
}
