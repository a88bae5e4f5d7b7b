// internal/domain/models/organization.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organization is a student society owned by exactly one college.
// Name uniqueness is scoped to the college (unique index on
// college_id + name_ci), not global.
//
// Invariants maintained by the membership operations:
//   - AdminIDs ⊆ MemberIDs at all times
//   - MemberIDs is never empty while the organization exists
type Organization struct {
	ID          primitive.ObjectID   `bson:"_id" json:"id"`
	Name        string               `bson:"name" json:"name"`
	NameCI      string               `bson:"name_ci" json:"-"` // always stored
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	AvatarURL   string               `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	CollegeID   primitive.ObjectID   `bson:"college_id" json:"college_id"`
	AdminIDs    []primitive.ObjectID `bson:"admin_ids" json:"admin_ids"`
	MemberIDs   []primitive.ObjectID `bson:"member_ids" json:"member_ids"`
	EventIDs    []primitive.ObjectID `bson:"event_ids,omitempty" json:"event_ids,omitempty"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updated_at"`
}

// IsAdmin reports whether the account is in the admin set.
func (o Organization) IsAdmin(accountID primitive.ObjectID) bool {
	for _, id := range o.AdminIDs {
		if id == accountID {
			return true
		}
	}
	return false
}

// IsMember reports whether the account is in the member set.
func (o Organization) IsMember(accountID primitive.ObjectID) bool {
	for _, id := range o.MemberIDs {
		if id == accountID {
			return true
		}
	}
	return false
}
