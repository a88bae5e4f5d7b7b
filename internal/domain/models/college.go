// internal/domain/models/college.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// College includes a case/diacritic-insensitive name field for search/sort.
//
// EmailFormats is append-only and deduplicated; every entry starts with "@".
type College struct {
	ID           primitive.ObjectID   `bson:"_id" json:"id"`
	Name         string               `bson:"name" json:"name"`
	NameCI       string               `bson:"name_ci" json:"-"` // always stored
	Location     string               `bson:"location,omitempty" json:"location,omitempty"`
	EmailFormats []string             `bson:"email_formats,omitempty" json:"email_formats,omitempty"`
	MemberIDs    []primitive.ObjectID `bson:"member_ids,omitempty" json:"member_ids,omitempty"`
	OrgIDs       []primitive.ObjectID `bson:"org_ids,omitempty" json:"org_ids,omitempty"`
	CreatedAt    time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time            `bson:"updated_at" json:"updated_at"`
}
