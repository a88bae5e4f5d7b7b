// internal/domain/models/account.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is an internal user record keyed by a verified email. It is
// created on first verified login and never deleted.
//
// NOTE:
//   - CollegeID is set at most once (self-service affiliation) and is never
//     cleared afterward.
//   - SocietyIDs mirrors the member_ids sets on organizations; the two sides
//     are kept consistent by the membership operations, not by the schema.
type Account struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Handle      *string             `bson:"handle,omitempty" json:"handle,omitempty"`
	HandleCI    *string             `bson:"handle_ci,omitempty" json:"-"` // lowercase, diacritics-stripped
	Email       string              `bson:"email" json:"email"`
	FullName    string              `bson:"full_name" json:"full_name"`
	AvatarURL   string              `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Department  string              `bson:"department,omitempty" json:"department,omitempty"`
	LevelOrYear string              `bson:"level_or_year,omitempty" json:"level_or_year,omitempty"`
	CollegeID   *primitive.ObjectID `bson:"college_id,omitempty" json:"college_id,omitempty"`
	SocietyIDs  []primitive.ObjectID `bson:"society_ids,omitempty" json:"society_ids,omitempty"`

	FullyRegistered bool `bson:"fully_registered" json:"fully_registered"`

	// RefreshToken holds the current renewal credential. It is rotated on
	// each session issuance and cleared on logout.
	RefreshToken string `bson:"refresh_token,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
