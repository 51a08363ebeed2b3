package model

// User is a profile record keyed by the caller-supplied uid.
type User struct {
	UID   string `bson:"_id"   json:"uid"`
	Name  string `bson:"name"  json:"name"`
	Email string `bson:"email" json:"email"`
}
