package model

import (
	"strings"
	"time"
)

// Task is a single entry of a user's TaskCollection.
type Task struct {
	Title       string    `bson:"title"       json:"title"`
	Description string    `bson:"description" json:"description"`
	CreatedAt   time.Time `bson:"createdAt"   json:"createdAt"`
}

// TaskCollection maps task IDs to tasks. A user owns exactly one collection,
// stored as a single document keyed by SanitizeEmail(email).
type TaskCollection map[string]Task

var emailKeyReplacer = strings.NewReplacer(".", "_dot_", "@", "_at_")

// SanitizeEmail derives the TaskCollection document key from an email address
// by replacing "." with "_dot_" and "@" with "_at_".
//
// The mapping is not injective: an address that already contains "_dot_" or
// "_at_" can collide with another address. Existing collections are stored
// under these keys, so the scheme is kept as is.
func SanitizeEmail(email string) string {
	return emailKeyReplacer.Replace(email)
}
