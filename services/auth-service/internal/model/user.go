package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a user in the authentication system.
// PasswordHash is never rendered to JSON.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string        `bson:"email"         json:"email"`
	Username     string        `bson:"username"      json:"username"`
	PasswordHash string        `bson:"passwordHash"  json:"-"`
	CreatedAt    time.Time     `bson:"createdAt"     json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt"     json:"updatedAt"`
}
